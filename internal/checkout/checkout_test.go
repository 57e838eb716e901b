package checkout

import (
	"net/url"
	"strings"
	"testing"

	"castanhas_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 25,00", FormatBRL(25.00))
	assert.Equal(t, "R$ 15,50", FormatBRL(15.5))
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(1000000))
	assert.Equal(t, "-R$ 3,00", FormatBRL(-3))
}

func TestComposeMessage(t *testing.T) {
	items := []models.CartItem{
		{Name: "Castanha-do-Pará descascada", Quantity: 2, SelectedSize: "500g", Price: 25.00},
		{Name: "Castanha-do-Pará com casca", Quantity: 1, SelectedSize: "1kg", Price: 47.50},
	}

	msg := ComposeMessage(items, 97.50, 15.00, 112.50)

	assert.Equal(t,
		"Olá! Gostaria de finalizar meu pedido:\n\n"+
			"*2x Castanha-do-Pará descascada* (500g)\n"+
			"*1x Castanha-do-Pará com casca* (1kg)\n\n"+
			"Subtotal: R$ 97,50\n"+
			"Frete: R$ 15,00\n"+
			"*Total: R$ 112,50*",
		msg)
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("5569984416841", "Olá! Pedido:\n*2x Castanha* (500g)")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5569984416841?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Olá! Pedido:\n*2x Castanha* (500g)", u.Query().Get("text"))
}

func TestLinkQR(t *testing.T) {
	qr, err := LinkQR("https://wa.me/5569984416841?text=oi")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
}
