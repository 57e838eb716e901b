package models

import (
	"time"

	"github.com/gocql/gocql"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)

type Order struct {
	ID           gocql.UUID  `json:"id"`
	UserID       string      `json:"user_id,omitempty"`
	TotalAmount  float64     `json:"total_amount"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"order_items,omitempty"`
	CustomerName string      `json:"customer_name,omitempty"`
}

// CanConfirm diz se o pedido ainda aceita a confirmação administrativa.
// A transição é uma só: pending → confirmed. Reconfirmar um pedido já
// confirmado recreditaria os pontos do cliente.
func (o Order) CanConfirm() bool {
	return o.Status == OrderStatusPending
}

type OrderItem struct {
	OrderID     gocql.UUID `json:"order_id"`
	ProductName string     `json:"product_name"`
	Quantity    int        `json:"quantity"`
	Size        string     `json:"size"`
	Price       float64    `json:"price"`
}
