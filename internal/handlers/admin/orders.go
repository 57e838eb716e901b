package admin

import (
	"context"
	"log"
	"net/http"
	"sort"

	"castanhas_back_end/internal/database"
	"castanhas_back_end/internal/models"
	"castanhas_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

//
// 🟢 GET /api/admin/orders
//
// Todos os pedidos, mais recente primeiro, com itens e nome do cliente.
// Erro de leitura degrada para lista vazia.
//
func GetAllOrders(c *gin.Context) {
	ctx := c.Request.Context()

	iter := database.Scylla.Query(`SELECT order_id, user_id, total_amount, status, created_at FROM orders`).
		WithContext(ctx).Iter()

	var orders []models.Order
	var o models.Order
	for iter.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt) {
		orders = append(orders, o)
		o = models.Order{}
	}
	if err := iter.Close(); err != nil {
		log.Println("❌ Erro lendo pedidos (admin):", err)
		c.JSON(http.StatusOK, gin.H{"orders": []models.Order{}})
		return
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	for i := range orders {
		orders[i].Items = fetchOrderItems(ctx, orders[i].ID)
		if orders[i].UserID != "" {
			orders[i].CustomerName = fetchCustomerName(ctx, orders[i].UserID)
		}
	}

	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

//
// 🟢 POST /api/admin/orders/:id/confirm
//
// pending → confirmed. A confirmação credita os pontos de fidelidade do
// cliente (1 ponto por real do total). Erros voltam crus para o painel
// exibir no alerta.
//
func ConfirmOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de pedido inválido"})
		return
	}
	orderID := gocql.UUID(id)

	ctx := c.Request.Context()

	var order models.Order
	err = database.Scylla.Query(`SELECT order_id, user_id, total_amount, status, created_at FROM orders WHERE order_id = ?`, orderID).
		WithContext(ctx).Scan(&order.ID, &order.UserID, &order.TotalAmount, &order.Status, &order.CreatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
		return
	}

	if !order.CanConfirm() {
		c.JSON(http.StatusConflict, gin.H{"error": "Pedido já confirmado"})
		return
	}

	err = database.Scylla.Query(`UPDATE orders SET status = ? WHERE order_id = ?`,
		models.OrderStatusConfirmed, orderID).WithContext(ctx).Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	order.Status = models.OrderStatusConfirmed
	order.Items = fetchOrderItems(ctx, order.ID)

	points := 0
	if order.UserID != "" {
		points = addLoyaltyPoints(ctx, order.UserID, int(order.TotalAmount))
		go sendReceipt(order)
	}

	log.Printf("✅ Pedido %s confirmado (+%d pontos)", order.ID, int(order.TotalAmount))
	c.JSON(http.StatusOK, gin.H{
		"order_id": order.ID.String(),
		"status":   order.Status,
		"points":   points,
	})
}

// addLoyaltyPoints credita 1 ponto por real e retorna o novo saldo.
func addLoyaltyPoints(ctx context.Context, userID string, earned int) int {
	var current int
	err := database.Scylla.Query(`SELECT points FROM profiles WHERE user_id = ?`, userID).
		WithContext(ctx).Scan(&current)
	if err != nil {
		log.Println("⚠️ Perfil de fidelidade não encontrado para", userID)
		current = 0
	}

	total := current + earned
	err = database.Scylla.Query(`UPDATE profiles SET points = ? WHERE user_id = ?`, total, userID).
		WithContext(ctx).Exec()
	if err != nil {
		log.Println("❌ Erro ao creditar pontos:", err)
		return current
	}
	return total
}

// sendReceipt envia o recibo por e-mail com PDF quando o Chrome do host
// consegue renderizar; sem PDF o e-mail vai do mesmo jeito.
func sendReceipt(order models.Order) {
	email := fetchCustomerEmail(context.Background(), order.UserID)
	if email == "" {
		return
	}

	pdf, err := utils.RenderReceiptPDF(utils.GetFrontendReceiptBaseURL(), order.ID.String())
	if err != nil {
		log.Println("⚠️ Recibo sem PDF anexo:", err)
		pdf = nil
	}

	_ = utils.SendOrderConfirmedEmail(order, email, pdf)
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

func fetchCustomerName(ctx context.Context, userID string) string {
	var name string
	err := database.Scylla.Query(`SELECT full_name FROM profiles WHERE user_id = ?`, userID).
		WithContext(ctx).Scan(&name)
	if err != nil {
		return ""
	}
	return name
}

func fetchCustomerEmail(ctx context.Context, userID string) string {
	var email string
	err := database.Scylla.Query(`SELECT email FROM users WHERE user_id = ?`, userID).
		WithContext(ctx).Scan(&email)
	if err != nil {
		log.Println("⚠️ E-mail do cliente não encontrado:", err)
		return ""
	}
	return email
}
