package surge

import (
	"math"
	"math/rand"
)

// Distribution is an annual raw-surge distribution. Sample consumes exactly
// one uniform draw from the supplied source so a replayed source reproduces
// the sequence bit for bit.
type Distribution interface {
	Sample(rng *rand.Rand) float64
	Quantile(p float64) float64
	Density(x float64) float64
}

// PointMass is a degenerate distribution concentrated at a single surge
// height. Its density is undefined; consumers must special-case it rather
// than integrate over it.
type PointMass struct {
	Height float64
}

func (d PointMass) Sample(_ *rand.Rand) float64 { return d.Height }
func (d PointMass) Quantile(_ float64) float64  { return d.Height }

// Density panics: a point mass has no density to integrate. Callers dispatch
// on the concrete type before quadrature.
func (d PointMass) Density(_ float64) float64 {
	panic("surge: point-mass distribution has no density")
}

// Gumbel is the extreme-value distribution conventionally fit to annual
// maximum surge heights. Heavy right tail.
type Gumbel struct {
	Loc   float64 // Mode (m)
	Scale float64 // Spread (m), > 0
}

func (d Gumbel) Sample(rng *rand.Rand) float64 {
	return d.Quantile(uniformOpen(rng))
}

func (d Gumbel) Quantile(p float64) float64 {
	return d.Loc - d.Scale*math.Log(-math.Log(p))
}

func (d Gumbel) Density(x float64) float64 {
	z := (x - d.Loc) / d.Scale
	return math.Exp(-z-math.Exp(-z)) / d.Scale
}

// Mean returns the analytic mean Loc + γ·Scale.
func (d Gumbel) Mean() float64 {
	const eulerGamma = 0.5772156649015329
	return d.Loc + eulerGamma*d.Scale
}

// Normal is a Gaussian surge distribution, mostly useful for sensitivity
// studies against the Gumbel fit.
type Normal struct {
	Mu    float64
	Sigma float64
}

func (d Normal) Sample(rng *rand.Rand) float64 {
	return d.Quantile(uniformOpen(rng))
}

// uniformOpen draws one uniform in the open interval (0,1); the quantile
// functions diverge at exactly 0.
func uniformOpen(rng *rand.Rand) float64 {
	u := rng.Float64()
	if u == 0 {
		return math.SmallestNonzeroFloat64
	}
	return u
}

func (d Normal) Quantile(p float64) float64 {
	return d.Mu + d.Sigma*math.Sqrt2*math.Erfinv(2*p-1)
}

func (d Normal) Density(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return math.Exp(-z*z/2) / (d.Sigma * math.Sqrt(2*math.Pi))
}
