package catalog

import (
	"testing"

	"castanhas_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFallbackProductsAlwaysAvailable(t *testing.T) {
	products := FallbackProducts()
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Image)
		assert.Greater(t, p.Price, 0.0)
	}
}

func TestFallbackProductsReturnsCopy(t *testing.T) {
	a := FallbackProducts()
	a[0].Name = "alterado"
	b := FallbackProducts()
	assert.Equal(t, "Castanha-do-Pará descascada", b[0].Name)
}

func TestFallbackProductsCopiesInnerSlices(t *testing.T) {
	a := FallbackProducts()
	a[0].Benefits[0] = "alterado"
	a[0].AvailableSizes[0] = "9kg"

	b := FallbackProducts()
	assert.Equal(t, "Rica em Selênio, poderoso antioxidante.", b[0].Benefits[0])
	assert.Equal(t, "250g", b[0].AvailableSizes[0])
}

func TestNormalizeDefaultsBlankImages(t *testing.T) {
	products := Normalize([]models.Product{
		{ID: "10", Name: "Mix de castanhas", Price: 30.00},
		{ID: "11", Name: "Castanha caramelizada", Price: 28.00, Image: "/caramelizada.png"},
	})
	assert.Equal(t, DefaultProductImage, products[0].Image)
	assert.Equal(t, "/caramelizada.png", products[1].Image)
}

func TestFind(t *testing.T) {
	products := FallbackProducts()

	p, ok := Find(products, "2")
	assert.True(t, ok)
	assert.Equal(t, "Castanha-do-Pará granulada", p.Name)

	_, ok = Find(products, "999")
	assert.False(t, ok)
}
