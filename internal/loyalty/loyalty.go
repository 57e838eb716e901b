package loyalty

// Níveis de fidelidade. Os pontos são creditados pelo backend quando o
// pedido é confirmado; aqui só derivamos o nível a partir do total.
const (
	TierBronze = "Bronze"
	TierPrata  = "Prata"
	TierOuro   = "Ouro"

	PrataFloor = 300
	OuroFloor  = 600
)

// Tier descreve o nível atual e, se houver, o próximo.
type Tier struct {
	Name      string `json:"name"`
	Floor     int    `json:"floor"`
	Next      string `json:"next,omitempty"`
	NextFloor int    `json:"nextFloor,omitempty"`
}

// TierFor resolve o nível para qualquer quantidade de pontos.
// Limites exatos: 299→Bronze, 300→Prata, 599→Prata, 600→Ouro.
func TierFor(points int) Tier {
	if points >= OuroFloor {
		return Tier{Name: TierOuro, Floor: OuroFloor}
	}
	if points >= PrataFloor {
		return Tier{Name: TierPrata, Floor: PrataFloor, Next: TierOuro, NextFloor: OuroFloor}
	}
	return Tier{Name: TierBronze, Floor: 0, Next: TierPrata, NextFloor: PrataFloor}
}

// Progress retorna o percentual até o próximo nível, com piso visual de
// 5% para a barra nunca ficar invisível. Ouro é terminal e reporta 100.
func (t Tier) Progress(points int) float64 {
	if t.Next == "" {
		return 100
	}
	p := float64(points-t.Floor) / float64(t.NextFloor-t.Floor) * 100
	if p < 5 {
		return 5
	}
	return p
}

// Remaining retorna quantos pontos faltam para o próximo nível (0 no Ouro).
func (t Tier) Remaining(points int) int {
	if t.Next == "" {
		return 0
	}
	return t.NextFloor - points
}
