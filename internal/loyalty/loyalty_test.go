package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierBoundaries(t *testing.T) {
	assert.Equal(t, TierBronze, TierFor(0).Name)
	assert.Equal(t, TierBronze, TierFor(299).Name)
	assert.Equal(t, TierPrata, TierFor(300).Name)
	assert.Equal(t, TierPrata, TierFor(599).Name)
	assert.Equal(t, TierOuro, TierFor(600).Name)
	assert.Equal(t, TierOuro, TierFor(10000).Name)
}

func TestTierRankIsMonotonic(t *testing.T) {
	rank := map[string]int{TierBronze: 0, TierPrata: 1, TierOuro: 2}
	prev := 0
	for points := 0; points <= 700; points++ {
		r := rank[TierFor(points).Name]
		assert.GreaterOrEqual(t, r, prev, "pontos=%d", points)
		prev = r
	}
}

func TestProgressPrata450(t *testing.T) {
	tier := TierFor(450)
	assert.Equal(t, TierPrata, tier.Name)
	assert.InDelta(t, 50.0, tier.Progress(450), 1e-9)
	assert.Equal(t, 150, tier.Remaining(450))
}

func TestProgressHasVisualFloor(t *testing.T) {
	tier := TierFor(0)
	assert.InDelta(t, 5.0, tier.Progress(0), 1e-9)

	tier = TierFor(301)
	assert.InDelta(t, 5.0, tier.Progress(301), 1e-9)
}

func TestOuroIsTerminal(t *testing.T) {
	tier := TierFor(600)
	assert.Empty(t, tier.Next)
	assert.InDelta(t, 100.0, tier.Progress(600), 1e-9)
	assert.Equal(t, 0, tier.Remaining(600))
}
