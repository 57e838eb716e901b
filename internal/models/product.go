package models

// Product é o snapshot de catálogo usado pelo app.
// O preço base corresponde ao pacote de referência (500g).
type Product struct {
	ID             string   `json:"id" db:"product_id"`
	Name           string   `json:"name" db:"name"`
	Price          float64  `json:"price" db:"price"`
	Image          string   `json:"image" db:"image_url"`
	Description    string   `json:"description,omitempty" db:"description"`
	AvailableSizes []string `json:"availableSizes,omitempty" db:"available_sizes"`
	Benefits       []string `json:"benefits,omitempty" db:"benefits"`
}
