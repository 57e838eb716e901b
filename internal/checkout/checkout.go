package checkout

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"castanhas_back_end/internal/models"

	"github.com/skip2/go-qrcode"
)

// FormatBRL formata um valor em reais no padrão pt-BR ("R$ 1.234,56").
func FormatBRL(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	// separador de milhar
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, b.String(), decPart)
}

// ComposeMessage monta o resumo do pedido enviado pelo WhatsApp:
// uma linha "*Nx produto* (peso)" por item, depois subtotal, frete e total.
func ComposeMessage(items []models.CartItem, subtotal, shipping, total float64) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("*%dx %s* (%s)", item.Quantity, item.Name, item.SelectedSize))
	}

	return fmt.Sprintf(
		"Olá! Gostaria de finalizar meu pedido:\n\n%s\n\nSubtotal: %s\nFrete: %s\n*Total: %s*",
		strings.Join(lines, "\n"),
		FormatBRL(subtotal),
		FormatBRL(shipping),
		FormatBRL(total),
	)
}

// WhatsAppLink monta o deep link wa.me com a mensagem já codificada.
func WhatsAppLink(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// LinkQR gera o QR do deep link em base64, pronto para <img src="...">.
func LinkQR(link string) (string, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
