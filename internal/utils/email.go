package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"castanhas_back_end/internal/checkout"
	"castanhas_back_end/internal/config"
	"castanhas_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

func SendMail(to, subject, htmlBody string, pdfAttachment []byte) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "pedidos@nscastanhas.com.br"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if pdfAttachment != nil {
		msg.AttachReader("recibo_ns_castanhas.pdf", bytes.NewReader(pdfAttachment))
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Enviando e-mail para", to)
	return client.DialAndSend(msg)
}

// SendNewOrderAlert avisa o dono da loja que chegou pedido novo.
// Melhor esforço: falha é só logada, o checkout nunca espera por isso.
func SendNewOrderAlert(order models.Order) {
	html := generateOrderHTML(order, "Pedido novo aguardando confirmação")
	subject := fmt.Sprintf("🥜 Novo pedido #%s - NS Castanhas", shortID(order))

	if err := SendMail(config.AdminEmail(), subject, html, nil); err != nil {
		log.Printf("❌ Erro ao enviar alerta de pedido novo: %v", err)
	}
}

// SendOrderConfirmedEmail envia o recibo ao cliente após a confirmação
// administrativa, com o PDF anexado quando disponível.
func SendOrderConfirmedEmail(order models.Order, userEmail string, pdf []byte) error {
	html := generateOrderHTML(order, "Pagamento confirmado! Seus pontos já foram creditados.")
	subject := fmt.Sprintf("✅ Pedido #%s confirmado - NS Castanhas", shortID(order))

	if err := SendMail(userEmail, subject, html, pdf); err != nil {
		log.Printf("❌ Erro ao enviar e-mail de confirmação: %v", err)
		return err
	}
	log.Printf("📧 E-mail de confirmação enviado para %s", userEmail)
	return nil
}

func shortID(order models.Order) string {
	id := order.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}

func generateOrderHTML(order models.Order, headline string) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%dx %s</td>
				<td>%s</td>
				<td>%s</td>
			</tr>`, item.Quantity, item.ProductName, item.Size,
			checkout.FormatBRL(item.Price*float64(item.Quantity)))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="pt-BR">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>NS Castanhas</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #064e3b;">NS Castanhas</h2>
		<p>%s</p>
		<p>Pedido <strong>#%s</strong></p>
		<table style="width: 100%%; border-collapse: collapse;">
			%s
		</table>
		<p style="margin-top: 16px; font-size: 18px;"><strong>Total: %s</strong></p>
	</div>
</body>
</html>`, headline, shortID(order), itemsHTML, checkout.FormatBRL(order.TotalAmount))
}
