package user

import (
	"context"
	"log"
	"net/http"
	"time"

	"castanhas_back_end/internal/cart"
	"castanhas_back_end/internal/catalog"
	"castanhas_back_end/internal/checkout"
	"castanhas_back_end/internal/database"
	"castanhas_back_end/internal/models"
	"castanhas_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

//
// 🟢 POST /api/checkout
//
// Fecha o pedido: grava no banco (melhor esforço), monta a mensagem do
// WhatsApp e devolve o deep link com QR. A gravação falhar NÃO impede o
// checkout — o handoff para o WhatsApp é o produto, o registro é apoio
// administrativo. Sem chave de deduplicação: cada chamada cria um pedido.
//
func Checkout(c *gin.Context) {
	key, ok := cartKey(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificação do carrinho ausente"})
		return
	}

	ctx := c.Request.Context()
	ct := loadCart(ctx, key)
	if len(ct.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Carrinho vazio"})
		return
	}

	subtotal := cart.Subtotal(ct)
	total := cart.Total(ct)

	order := models.Order{
		ID:          gocql.UUID(uuid.New()),
		UserID:      c.GetString("user_id"), // vazio = pedido anônimo
		TotalAmount: total,
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Now(),
	}
	for _, item := range ct.Items {
		order.Items = append(order.Items, models.OrderItem{
			OrderID:     order.ID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Size:        item.SelectedSize,
			Price:       item.Price,
		})
	}

	orderID := persistOrder(ctx, order)
	go utils.SendNewOrderAlert(order)

	msg := checkout.ComposeMessage(ct.Items, subtotal, cart.ShippingCost, total)
	link := checkout.WhatsAppLink(catalog.WhatsAppNumber, msg)

	qr, err := checkout.LinkQR(link)
	if err != nil {
		log.Println("⚠️ Erro gerando QR do pedido:", err)
	}

	resp := gin.H{
		"message":      msg,
		"whatsapp_url": link,
		"qr":           qr,
		"subtotal":     subtotal,
		"shipping":     cart.ShippingCost,
		"total":        total,
	}
	if orderID != "" {
		resp["order_id"] = orderID
	}
	c.JSON(http.StatusOK, resp)
}

// persistOrder grava pedido e itens. Retorna "" em caso de falha — o
// chamador segue para o WhatsApp de qualquer jeito.
func persistOrder(ctx context.Context, order models.Order) string {
	err := database.Scylla.Query(`INSERT INTO orders (order_id, user_id, total_amount, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		order.ID, order.UserID, order.TotalAmount, order.Status, order.CreatedAt).
		WithContext(ctx).Exec()
	if err != nil {
		log.Println("❌ Erro ao salvar pedido:", err)
		return ""
	}

	for _, item := range order.Items {
		err := database.Scylla.Query(`INSERT INTO order_items (order_id, product_name, size, quantity, price) VALUES (?, ?, ?, ?, ?)`,
			item.OrderID, item.ProductName, item.Size, item.Quantity, item.Price).
			WithContext(ctx).Exec()
		if err != nil {
			log.Println("❌ Erro ao salvar itens do pedido:", err)
			break
		}
	}

	return order.ID.String()
}
