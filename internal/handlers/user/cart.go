package user

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"castanhas_back_end/internal/cart"
	"castanhas_back_end/internal/catalog"
	"castanhas_back_end/internal/database"
	"castanhas_back_end/internal/handlers/product"
	"castanhas_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// Carrinho por sessão no Redis, igual para logado e visitante:
// logado usa o user_id do token, visitante manda um token de carrinho
// gerado no cliente (header X-Cart-Token).
const cartTTL = 30 * 24 * time.Hour

func cartKey(c *gin.Context) (string, bool) {
	if userID := c.GetString("user_id"); userID != "" {
		return "cart:" + userID, true
	}
	if token := c.GetHeader("X-Cart-Token"); token != "" {
		return "cart:guest:" + token, true
	}
	return "", false
}

func loadCart(ctx context.Context, key string) models.Cart {
	var ct models.Cart
	data, err := database.Redis.Get(ctx, key).Result()
	if err != nil || data == "" {
		return ct
	}
	_ = json.Unmarshal([]byte(data), &ct.Items)
	return ct
}

func saveCart(ctx context.Context, key string, ct models.Cart) {
	data, _ := json.Marshal(ct.Items)
	database.Redis.Set(ctx, key, data, cartTTL)
}

func cartResponse(ct models.Cart) gin.H {
	items := ct.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return gin.H{
		"items":    items,
		"count":    cart.Count(ct),
		"subtotal": cart.Subtotal(ct),
		"shipping": cart.ShippingCost,
		"total":    cart.Total(ct),
	}
}

//
// 🟢 GET /api/cart
//
func GetCart(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificação do carrinho ausente"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(loadCart(c.Request.Context(), key)))
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificação do carrinho ausente"})
		return
	}

	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantidade inválida"})
		return
	}
	if input.Size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Peso obrigatório"})
		return
	}

	ctx := c.Request.Context()

	// O catálogo resolve o produto mesmo quando o banco está vazio
	// (lista embutida), então adicionar ao carrinho sempre funciona.
	p, found := catalog.Find(product.FetchCatalog(ctx), input.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}

	ct := loadCart(ctx, key)
	ct = cart.Add(ct, p, input.Quantity, input.Size)
	saveCart(ctx, key, ct)

	c.JSON(http.StatusOK, cartResponse(ct))
}

//
// 🟢 POST /api/cart/update
//
func UpdateCartQuantity(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificação do carrinho ausente"})
		return
	}

	var input struct {
		ProductID string `json:"productId"`
		Size      string `json:"size"`
		Delta     int    `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ctx := c.Request.Context()
	ct := loadCart(ctx, key)
	ct = cart.UpdateQuantity(ct, input.ProductID, input.Size, input.Delta)
	saveCart(ctx, key, ct)

	c.JSON(http.StatusOK, cartResponse(ct))
}

//
// 🟢 POST /api/cart/remove
//
func RemoveFromCart(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificação do carrinho ausente"})
		return
	}

	var input struct {
		ProductID string `json:"productId"`
		Size      string `json:"size"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ctx := c.Request.Context()
	ct := loadCart(ctx, key)
	ct = cart.Remove(ct, input.ProductID, input.Size)
	saveCart(ctx, key, ct)

	c.JSON(http.StatusOK, cartResponse(ct))
}
