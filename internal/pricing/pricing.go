package pricing

// Multiplier retorna o multiplicador de preço do peso escolhido.
// O preço base cadastrado no produto corresponde ao pacote de 500g;
// pesos não reconhecidos valem o preço base (multiplicador 1).
func Multiplier(size string) float64 {
	switch size {
	case "250g":
		return 0.6
	case "1kg":
		return 1.9
	}
	return 1.0
}

// PriceFor resolve o preço unitário de um peso a partir do preço base.
// Nenhum arredondamento aqui — formatação de moeda é papel da exibição.
func PriceFor(base float64, size string) float64 {
	return base * Multiplier(size)
}
