package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanConfirmOnlyPendingOrders(t *testing.T) {
	assert.True(t, Order{Status: OrderStatusPending}.CanConfirm())

	// Confirmação é uma ação única por pedido — repetir não pode
	// recreditar pontos.
	assert.False(t, Order{Status: OrderStatusConfirmed}.CanConfirm())
	assert.False(t, Order{}.CanConfirm())
}
