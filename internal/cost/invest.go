// Package cost prices the five mitigation levers: relocation, flood-proofing,
// and barrier construction. Costs are functions of the full defense vector and
// are monotonically non-decreasing in every lever.
package cost

import (
	"math"

	"github.com/talgya/wedgesim/internal/city"
)

// Investment returns the total capital cost of standing up the given defense
// vector from nothing. The engine charges only positive deltas between
// successive vectors, so the absolute level here prices cumulative build-out.
func Investment(cfg city.Config, v city.DefenseVector) float64 {
	return Withdrawal(cfg, v.W) + Barrier(cfg, v.D) + Proofing(cfg, v)
}

// Withdrawal prices relocating the city up to elevation w. The cost diverges
// as w approaches the city top: the last slice of the wedge holds value that
// has nowhere to go.
func Withdrawal(cfg city.Config, w float64) float64 {
	if w == 0 {
		return 0
	}
	return cfg.TotalValue * w / (cfg.MaxElevation - w) * cfg.WithdrawalCostFactor
}

// Barrier prices a barrier of crest height d by its construction volume:
// front prism plus the straight and tetrahedral portions of the two sides
// climbing the wedge. The startup height folds fixed mobilization cost into
// the volume term. Zero height means no barrier and no cost.
func Barrier(cfg city.Config, d float64) float64 {
	if d == 0 {
		return 0
	}
	s := cfg.Slope()
	sd := cfg.BarrierSideSlope
	wdt := cfg.BarrierTopWidth

	ch := d + cfg.BarrierStartupHeight
	ch2 := ch * ch

	t := -math.Pow(ch, 4)*math.Pow(ch+1/sd, 2)/(sd*sd) -
		2*math.Pow(ch, 5)*(ch+1/sd)/math.Pow(s, 4) -
		4*math.Pow(ch, 6)/(sd*sd*math.Pow(s, 4)) +
		4*math.Pow(ch, 4)*(2*ch*(ch+1/sd)-3*ch2/(sd*sd))/(sd*sd*s*s) +
		2*math.Pow(ch, 3)*(ch+1/sd)/(s*s)

	// The radical term can go slightly negative from cancellation; treat it
	// as a vanished side volume rather than a NaN.
	sqrtT := 0.0
	if t > 0 {
		sqrtT = math.Sqrt(t)
	}

	volume := cfg.CityWidth*ch*(wdt+ch/(sd*sd)) + sqrtT/6 + wdt*ch2/(s*s)
	return volume * cfg.BarrierUnitCost
}

// Proofing prices flood-proofing a fraction P of the resistant band to height
// R. The coverage factor grows linearly in P with a steep surcharge as P
// approaches full coverage (the 1−P divisor is why P must stay below 1).
// Two geometric branches, continuous at R = B: below the barrier base the
// whole proofed band is exposed; at or above it only the portion under the
// base matters.
func Proofing(cfg city.Config, v city.DefenseVector) float64 {
	span := cfg.MaxElevation - v.W
	if span <= 0 || v.R == 0 || v.P == 0 {
		return 0
	}

	factor := cfg.ResistanceAdjustment *
		(cfg.ResistanceExpFactor*math.Max(0, v.P-cfg.ResistanceExpThreshold)/(1-v.P) +
			v.P*cfg.ResistanceLinearFactor)

	remaining := city.RemainingValue(cfg, v.W)
	denom := cfg.BuildingHeight * span

	if v.R < v.B {
		return remaining * factor * v.R * (v.R/2 + cfg.BasementDepth) / denom
	}
	return remaining * factor * v.B * (v.R - v.B/2 + cfg.BasementDepth) / denom
}
