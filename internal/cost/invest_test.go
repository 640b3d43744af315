package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/wedgesim/internal/city"
)

func TestInvestmentZeroVector(t *testing.T) {
	cfg := city.DefaultConfig()
	assert.Zero(t, Investment(cfg, city.DefenseVector{}))
}

func TestWithdrawalCost(t *testing.T) {
	cfg := city.DefaultConfig()

	assert.Zero(t, Withdrawal(cfg, 0))

	got := Withdrawal(cfg, 5)
	want := cfg.TotalValue * 5 / (17 - 5) * cfg.WithdrawalCostFactor
	assert.InEpsilon(t, want, got, 1e-12)
}

func TestBarrierCostPositiveAndIncreasing(t *testing.T) {
	cfg := city.DefaultConfig()

	assert.Zero(t, Barrier(cfg, 0))

	prev := 0.0
	for d := 0.5; d <= 10; d += 0.5 {
		c := Barrier(cfg, d)
		require.Greater(t, c, prev, "crest %g", d)
		prev = c
	}
}

func TestBarrierCostScale(t *testing.T) {
	cfg := city.DefaultConfig()

	// A 5 m barrier along a 43 km shoreline: front prism alone is
	// width × cost-height × (top width + cost-height/slope²) × unit cost.
	c := Barrier(cfg, 5)
	ch := 5 + cfg.BarrierStartupHeight
	front := cfg.CityWidth * ch * (cfg.BarrierTopWidth + ch/(cfg.BarrierSideSlope*cfg.BarrierSideSlope)) * cfg.BarrierUnitCost
	assert.Greater(t, c, front*0.99)
	// Side volumes on a 21.5 slope are small against the front prism.
	assert.Less(t, c, front*1.5)
}

func TestProofingBranchesContinuousAtRB(t *testing.T) {
	cfg := city.DefaultConfig()
	const eps = 1e-9

	base := city.DefenseVector{P: 0.6, B: 3}
	below, at, above := base, base, base
	below.R = 3 - eps
	at.R = 3
	above.R = 3 + eps

	cBelow := Proofing(cfg, below)
	cAt := Proofing(cfg, at)
	cAbove := Proofing(cfg, above)

	require.Greater(t, cAt, 0.0)
	assert.InEpsilon(t, cAt, cBelow, 1e-6)
	assert.InEpsilon(t, cAt, cAbove, 1e-6)
}

func TestProofingZeroCases(t *testing.T) {
	cfg := city.DefaultConfig()

	assert.Zero(t, Proofing(cfg, city.DefenseVector{P: 0.5, B: 2}))         // R = 0
	assert.Zero(t, Proofing(cfg, city.DefenseVector{R: 2, B: 2}))           // P = 0
	assert.Zero(t, Proofing(cfg, city.DefenseVector{R: 2, P: 0.5, B: 0}))   // no barrier, empty band
	assert.Zero(t, Proofing(cfg, city.DefenseVector{W: 17, R: 2, P: 0.5})) // fully withdrawn
}

func TestInvestmentMonotonicPerLever(t *testing.T) {
	cfg := city.DefaultConfig()
	base := city.DefenseVector{W: 1, R: 2, P: 0.3, D: 3, B: 2}

	bump := []struct {
		name  string
		apply func(city.DefenseVector, float64) city.DefenseVector
		max   float64
	}{
		{"W", func(v city.DefenseVector, x float64) city.DefenseVector { v.W = x; return v }, 8},
		{"R", func(v city.DefenseVector, x float64) city.DefenseVector { v.R = x; return v }, 8},
		{"P", func(v city.DefenseVector, x float64) city.DefenseVector { v.P = x; return v }, 0.95},
		{"D", func(v city.DefenseVector, x float64) city.DefenseVector { v.D = x; return v }, 8},
		{"B", func(v city.DefenseVector, x float64) city.DefenseVector { v.B = x; return v }, 8},
	}
	for _, lever := range bump {
		t.Run(lever.name, func(t *testing.T) {
			prev := -1.0
			for i := 0; i <= 20; i++ {
				x := lever.max * float64(i) / 20
				c := Investment(cfg, lever.apply(base, x))
				assert.GreaterOrEqual(t, c, prev-1e-6, "%s = %g", lever.name, x)
				prev = c
			}
		})
	}
}

func TestProofingSurchargeNearFullCoverage(t *testing.T) {
	cfg := city.DefaultConfig()
	v := city.DefenseVector{R: 3, B: 3}

	v.P = 0.5
	mid := Proofing(cfg, v)
	v.P = 0.99
	high := Proofing(cfg, v)

	// The 1/(1-P) surcharge dominates as coverage approaches 1.
	require.Greater(t, mid, 0.0)
	assert.Greater(t, high, mid*5)
}
