package cart

import (
	"castanhas_back_end/internal/models"
	"castanhas_back_end/internal/pricing"
)

// Frete fixo — não depende de peso nem de distância.
const ShippingCost = 15.00

// Add insere uma linha no carrinho ou, se o par (produto, peso) já
// existir, soma a quantidade na linha existente. O preço unitário é
// resolvido aqui, com o multiplicador do peso, e fica congelado na linha.
func Add(c models.Cart, p models.Product, quantity int, size string) models.Cart {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID && c.Items[i].SelectedSize == size {
			c.Items[i].Quantity += quantity
			return c
		}
	}
	c.Items = append(c.Items, models.CartItem{
		ProductID:    p.ID,
		Name:         p.Name,
		Image:        p.Image,
		Price:        pricing.PriceFor(p.Price, size),
		Quantity:     quantity,
		SelectedSize: size,
	})
	return c
}

// UpdateQuantity soma delta na quantidade da linha (produto, peso),
// travando em 1 — zerar não remove, remoção é uma ação separada.
// Sem linha correspondente é no-op.
//
// A versão antiga casava só pelo id do produto e atualizava a linha
// errada quando o mesmo produto estava no carrinho em dois pesos.
func UpdateQuantity(c models.Cart, productID, size string, delta int) models.Cart {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].SelectedSize == size {
			q := c.Items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.Items[i].Quantity = q
			return c
		}
	}
	return c
}

// Remove apaga a linha que casa exatamente com (produto, peso).
func Remove(c models.Cart, productID, size string) models.Cart {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID == productID && item.SelectedSize == size {
			continue
		}
		items = append(items, item)
	}
	c.Items = items
	return c
}

// Subtotal soma preço congelado × quantidade de todas as linhas.
func Subtotal(c models.Cart) float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Total é o subtotal mais o frete fixo.
func Total(c models.Cart) float64 {
	return Subtotal(c) + ShippingCost
}

// Count retorna o total de unidades, usado no badge do carrinho.
func Count(c models.Cart) int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
