package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceFor(t *testing.T) {
	assert.InDelta(t, 15.00, PriceFor(25.00, "250g"), 1e-9)
	assert.InDelta(t, 47.50, PriceFor(25.00, "1kg"), 1e-9)
	assert.InDelta(t, 25.00, PriceFor(25.00, "500g"), 1e-9)
	assert.InDelta(t, 25.00, PriceFor(25.00, "2kg"), 1e-9)
	assert.InDelta(t, 25.00, PriceFor(25.00, "3kg"), 1e-9)
}

func TestPriceForUnknownSizeFallsBackToBase(t *testing.T) {
	assert.InDelta(t, 15.00, PriceFor(15.00, "Pote 150g"), 1e-9)
	assert.InDelta(t, 15.00, PriceFor(15.00, ""), 1e-9)
}
