package user

import (
	"context"
	"log"
	"net/http"
	"sort"

	"castanhas_back_end/internal/database"
	"castanhas_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

//
// 🟢 GET /api/orders
//
// Pedidos do usuário logado, mais recente primeiro. Erro de leitura
// degrada para lista vazia — a tela de perfil nunca quebra por isso.
//
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	ctx := c.Request.Context()

	iter := database.Scylla.Query(`SELECT order_id, user_id, total_amount, status, created_at FROM orders WHERE user_id = ?`, userID).
		WithContext(ctx).Iter()

	var orders []models.Order
	var o models.Order
	for iter.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt) {
		orders = append(orders, o)
		o = models.Order{}
	}
	if err := iter.Close(); err != nil {
		log.Println("❌ Erro lendo pedidos:", err)
		c.JSON(http.StatusOK, gin.H{"orders": []models.Order{}})
		return
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	for i := range orders {
		orders[i].Items = fetchOrderItems(ctx, orders[i].ID)
	}

	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func fetchOrderItems(ctx context.Context, orderID gocql.UUID) []models.OrderItem {
	iter := database.Scylla.Query(`SELECT order_id, product_name, size, quantity, price FROM order_items WHERE order_id = ?`, orderID).
		WithContext(ctx).Iter()

	var items []models.OrderItem
	var item models.OrderItem
	for iter.Scan(&item.OrderID, &item.ProductName, &item.Size, &item.Quantity, &item.Price) {
		items = append(items, item)
		item = models.OrderItem{}
	}
	if err := iter.Close(); err != nil {
		log.Println("❌ Erro lendo itens do pedido:", err)
	}
	return items
}
