package product

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"castanhas_back_end/internal/catalog"
	"castanhas_back_end/internal/database"
	"castanhas_back_end/internal/models"
	"castanhas_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 5 * time.Minute
)

// FetchCatalog devolve o catálogo para exibição: cache Redis primeiro,
// depois ScyllaDB. Erro ou resultado vazio degradam para a lista embutida
// — o app nunca fica sem produtos.
func FetchCatalog(ctx context.Context) []models.Product {
	if data, err := database.Redis.Get(ctx, catalogCacheKey).Result(); err == nil && data != "" {
		var products []models.Product
		if err := json.Unmarshal([]byte(data), &products); err == nil && len(products) > 0 {
			return products
		}
	}

	products := fetchFromScylla(ctx)
	if len(products) == 0 {
		return catalog.FallbackProducts()
	}

	products = catalog.Normalize(products)

	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, catalogCacheKey, data, catalogCacheTTL)
	}
	return products
}

func fetchFromScylla(ctx context.Context) []models.Product {
	iter := database.Scylla.Query(`SELECT product_id, name, price, image_url, description, available_sizes, benefits FROM products`).
		WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Description, &p.AvailableSizes, &p.Benefits) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		log.Println("❌ Erro lendo produtos do ScyllaDB:", err)
		return nil
	}
	return products
}

func invalidateCatalogCache(ctx context.Context) {
	database.Redis.Del(ctx, catalogCacheKey)
}

//
// 🟢 GET /api/products
//
func GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": FetchCatalog(c.Request.Context())})
}

//
// 🟢 GET /api/products/search?q=
//
func SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'q' obrigatório"})
		return
	}

	products, err := services.SearchProducts(query)
	if err != nil {
		// Busca indisponível não derruba a navegação — degrada para vazio.
		log.Println("⚠️ Busca de produtos indisponível:", err)
		c.JSON(http.StatusOK, gin.H{"products": []models.Product{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": catalog.Normalize(products)})
}

//
// 🟢 POST /api/admin/products
//
func CreateProduct(c *gin.Context) {
	var input struct {
		Name           string   `json:"name" binding:"required"`
		Price          float64  `json:"price" binding:"required"`
		Image          string   `json:"image"`
		Description    string   `json:"description"`
		AvailableSizes []string `json:"availableSizes"`
		Benefits       []string `json:"benefits"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	p := models.Product{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Price:          input.Price,
		Image:          input.Image,
		Description:    input.Description,
		AvailableSizes: input.AvailableSizes,
		Benefits:       input.Benefits,
	}
	if p.Image == "" {
		p.Image = catalog.DefaultProductImage
	}

	ctx := c.Request.Context()
	err := database.Scylla.Query(`INSERT INTO products (product_id, name, price, image_url, description, available_sizes, benefits) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.Image, p.Description, p.AvailableSizes, p.Benefits).
		WithContext(ctx).Exec()
	if err != nil {
		log.Println("❌ Erro ao criar produto:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar produto"})
		return
	}

	invalidateCatalogCache(ctx)
	services.IndexProduct(p)

	c.JSON(http.StatusCreated, p)
}

//
// 🟢 POST /api/admin/products/:id/image
//
func UploadProductImage(c *gin.Context) {
	productID := c.Param("id")

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo 'image' obrigatório"})
		return
	}

	url, err := services.UploadProductImage(productID, file)
	if err != nil {
		log.Println("❌ Erro no upload da foto:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no upload da foto"})
		return
	}

	ctx := c.Request.Context()
	err = database.Scylla.Query(`UPDATE products SET image_url = ? WHERE product_id = ?`, url, productID).
		WithContext(ctx).Exec()
	if err != nil {
		log.Println("❌ Erro ao salvar URL da foto:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar URL da foto"})
		return
	}

	invalidateCatalogCache(ctx)
	c.JSON(http.StatusOK, gin.H{"image": url})
}
