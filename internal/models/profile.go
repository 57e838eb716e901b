package models

// Profile guarda os pontos de fidelidade. Os pontos só mudam na
// confirmação administrativa do pedido — o app apenas lê e exibe.
type Profile struct {
	UserID   string `json:"id"`
	FullName string `json:"full_name,omitempty"`
	Points   int    `json:"points"`
}
