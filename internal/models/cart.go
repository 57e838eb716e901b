package models

// CartItem é uma linha do carrinho. O preço unitário é congelado no
// momento da adição (já com o multiplicador do peso aplicado) e não é
// recalculado se o catálogo mudar depois.
type CartItem struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Image        string  `json:"image,omitempty"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	SelectedSize string  `json:"selectedSize"`
}

// Cart preserva a ordem de inserção das linhas.
// Invariante: no máximo uma linha por par (productId, selectedSize).
type Cart struct {
	Items []CartItem `json:"items"`
}
