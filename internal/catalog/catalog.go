package catalog

import "castanhas_back_end/internal/models"

const (
	WhatsAppNumber  = "5569984416841"
	InstagramHandle = "ns_castanhas"

	// Imagem padrão para produtos cadastrados sem foto.
	DefaultProductImage = "https://images.unsplash.com/photo-1623428187969-5da2dcea5ebf?auto=format&fit=crop&q=80&w=800"
)

// Sizes são os pesos selecionáveis por linha do carrinho.
var Sizes = []string{"250g", "500g", "1kg", "2kg", "3kg"}

// SizeImages mapeia pesos para as fotos de destaque da home.
var SizeImages = map[string]string{
	"250g": "https://images.unsplash.com/photo-1623428187969-5da2dcea5ebf?auto=format&fit=crop&q=80&w=800",
	"500g": "https://images.unsplash.com/photo-1596506306797-400db32e6a14?auto=format&fit=crop&q=80&w=800",
	"1kg":  "https://images.unsplash.com/photo-1536620948425-6393349c87ed?auto=format&fit=crop&q=80&w=800",
}

// fallbackProducts garante que o app sempre tenha catálogo para exibir,
// mesmo quando o banco não retorna produtos.
var fallbackProducts = []models.Product{
	{
		ID:             "1",
		Name:           "Castanha-do-Pará descascada",
		Price:          25.00,
		Image:          "https://djctljpxkvmfogvttdle.supabase.co/storage/v1/object/public/foto%20ns/1kg%20castanha.png",
		Description:    "Castanhas inteiras, descascadas e crocantes, prontas para o consumo.",
		AvailableSizes: []string{"250g", "500g", "1kg"},
		Benefits: []string{
			"Rica em Selênio, poderoso antioxidante.",
			"Fonte de gorduras boas para o coração.",
			"Auxilia na redução do colesterol ruim.",
		},
	},
	{
		ID:             "2",
		Name:           "Castanha-do-Pará granulada",
		Price:          15.00,
		Image:          "/pote_granulado.webp",
		Description:    "Castanha granulada em pote, ideal para acompanhamentos e receitas.",
		AvailableSizes: []string{"Pote 150g"},
		Benefits: []string{
			"Praticidade para o dia a dia.",
			"Ideal para iogurtes e saladas.",
			"Mantém todas as propriedades nutricionais.",
		},
	},
	{
		ID:             "3",
		Name:           "Castanha-do-Pará com casca",
		Price:          25.00,
		Image:          "/em casca.png",
		Description:    "Castanhas in natura com casca, preservando o frescor original.",
		AvailableSizes: []string{"1kg", "2kg", "3kg"},
		Benefits: []string{
			"Máximo frescor preservado pela casca.",
			"Atividade prazerosa de descascar.",
			"Fonte natural de energia.",
		},
	},
}

// FallbackProducts retorna uma cópia da lista embutida, já com a imagem
// padrão aplicada onde faltar foto. Os slices internos também são
// copiados — quem chamar pode mexer à vontade sem corromper a lista.
func FallbackProducts() []models.Product {
	products := make([]models.Product, len(fallbackProducts))
	for i, p := range fallbackProducts {
		p.AvailableSizes = append([]string(nil), p.AvailableSizes...)
		p.Benefits = append([]string(nil), p.Benefits...)
		products[i] = p
	}
	return Normalize(products)
}

// Normalize aplica a imagem padrão a todo produto sem foto.
func Normalize(products []models.Product) []models.Product {
	for i := range products {
		if products[i].Image == "" {
			products[i].Image = DefaultProductImage
		}
	}
	return products
}

// Find procura um produto por id em uma lista.
func Find(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
