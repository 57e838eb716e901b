package cart

import (
	"testing"

	"castanhas_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

var castanha = models.Product{ID: "1", Name: "Castanha-do-Pará descascada", Price: 25.00}

func TestAddMergesSameProductAndSize(t *testing.T) {
	c := Add(models.Cart{}, castanha, 2, "500g")
	c = Add(c, castanha, 3, "500g")

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestAddKeepsSeparateLinesPerSize(t *testing.T) {
	c := Add(models.Cart{}, castanha, 1, "250g")
	c = Add(c, castanha, 1, "1kg")

	assert.Len(t, c.Items, 2)
	assert.InDelta(t, 15.00, c.Items[0].Price, 1e-9) // 25.00 × 0.6
	assert.InDelta(t, 47.50, c.Items[1].Price, 1e-9) // 25.00 × 1.9
}

func TestAddFreezesUnitPrice(t *testing.T) {
	p := castanha
	c := Add(models.Cart{}, p, 1, "500g")

	// Mudança posterior no catálogo não mexe na linha já adicionada.
	p.Price = 99.00
	assert.InDelta(t, 25.00, c.Items[0].Price, 1e-9)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	c := Add(models.Cart{}, castanha, 0, "500g")
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	c := Add(models.Cart{}, castanha, 2, "500g")
	c = UpdateQuantity(c, "1", "500g", -5)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestUpdateQuantityMatchesBySize(t *testing.T) {
	c := Add(models.Cart{}, castanha, 1, "250g")
	c = Add(c, castanha, 1, "1kg")
	c = UpdateQuantity(c, "1", "1kg", 2)

	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 3, c.Items[1].Quantity)
}

func TestUpdateQuantityMissingLineIsNoop(t *testing.T) {
	c := Add(models.Cart{}, castanha, 1, "500g")
	c = UpdateQuantity(c, "999", "500g", 1)
	c = UpdateQuantity(c, "1", "2kg", 1)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestRemoveMatchesExactPair(t *testing.T) {
	c := Add(models.Cart{}, castanha, 1, "250g")
	c = Add(c, castanha, 1, "1kg")

	c = Remove(c, "1", "250g")
	assert.Len(t, c.Items, 1)
	assert.Equal(t, "1kg", c.Items[0].SelectedSize)

	// Par ausente é no-op.
	c = Remove(c, "1", "3kg")
	assert.Len(t, c.Items, 1)
}

func TestTotals(t *testing.T) {
	c := Add(models.Cart{}, castanha, 2, "500g")

	assert.InDelta(t, 50.00, Subtotal(c), 1e-9)
	assert.InDelta(t, 65.00, Total(c), 1e-9) // 50.00 + frete 15.00
}

func TestCount(t *testing.T) {
	c := Add(models.Cart{}, castanha, 2, "500g")
	c = Add(c, castanha, 3, "1kg")
	assert.Equal(t, 5, Count(c))
}
