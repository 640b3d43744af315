package surge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGumbelQuantileDensityConsistency(t *testing.T) {
	d := Gumbel{Loc: 1.5, Scale: 0.5}

	// Median sits above the mode for a Gumbel.
	median := d.Quantile(0.5)
	assert.Greater(t, median, d.Loc)

	// Quantile is strictly increasing.
	prev := d.Quantile(0.01)
	for p := 0.05; p < 1; p += 0.05 {
		q := d.Quantile(p)
		assert.Greater(t, q, prev)
		prev = q
	}

	// Density integrates to ~1 over a wide truncation (trapezoid check).
	lo, hi := d.Quantile(1e-6), d.Quantile(1-1e-6)
	n := 10000
	h := (hi - lo) / float64(n)
	mass := 0.0
	for i := 0; i <= n; i++ {
		w := 1.0
		if i == 0 || i == n {
			w = 0.5
		}
		mass += w * d.Density(lo+float64(i)*h)
	}
	mass *= h
	assert.InDelta(t, 1.0, mass, 1e-3)
}

func TestGumbelSampleMean(t *testing.T) {
	d := Gumbel{Loc: 2, Scale: 0.4}
	rng := rand.New(rand.NewSource(7))

	n := 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += d.Sample(rng)
	}
	assert.InDelta(t, d.Mean(), sum/float64(n), 0.01)
}

func TestGumbelSampleReproducible(t *testing.T) {
	d := Gumbel{Loc: 1, Scale: 0.3}

	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		require.Equal(t, d.Sample(a), d.Sample(b))
	}
}

func TestNormalQuantile(t *testing.T) {
	d := Normal{Mu: 3, Sigma: 1}
	assert.InDelta(t, 3.0, d.Quantile(0.5), 1e-12)
	assert.InDelta(t, 3+1.6448536269514722, d.Quantile(0.95), 1e-9)
}

func TestPointMass(t *testing.T) {
	d := PointMass{Height: 2.5}
	assert.Equal(t, 2.5, d.Sample(nil))
	assert.Equal(t, 2.5, d.Quantile(0.123))
	assert.Panics(t, func() { d.Density(2.5) })
}
