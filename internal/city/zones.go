package city

import "fmt"

// ZoneRole tags the behavioral variant of an elevation band. The damage model
// switches on the role; the geometric record is otherwise uniform.
type ZoneRole uint8

const (
	RoleWithdrawn ZoneRole = iota // below W, no value remains
	RoleResistant                 // flood-proofed band above W
	RoleGap                       // unprotected band between proofing and barrier base
	RoleProtected                 // behind the barrier
	RoleAbove                     // above the barrier crest
)

// NumZones is the fixed size of every partition.
const NumZones = 5

// Zone is one contiguous elevation band of the wedge with its assigned value.
type Zone struct {
	Role  ZoneRole
	Low   float64 // Absolute lower boundary (m)
	High  float64 // Absolute upper boundary (m)
	Value float64 // Infrastructure value in the band ($)
}

// Height returns the band width in meters.
func (z Zone) Height() float64 {
	return z.High - z.Low
}

// ZoneSet is the complete partition, ordered by increasing elevation.
// A fixed array keeps the hot path allocation-free; empty bands stay in place
// with zero width and zero value rather than being dropped.
type ZoneSet [NumZones]Zone

// RemainingValue returns the city value left after withdrawal to elevation W:
// the total value reduced by the withdrawal-loss fraction per unit withdrawn.
func RemainingValue(cfg Config, w float64) float64 {
	return cfg.TotalValue * (1 - cfg.WithdrawalLossFraction*w/cfg.MaxElevation)
}

// Partition splits the wedge into the five bands induced by a defense vector.
// The band boundaries stack bottom-up: withdrawal to W, proofing to W+min(R,B),
// the unprotected gap to W+B, the protected band to W+B+D, and the remainder
// of the wedge above. Values scale the post-withdrawal city value by band
// height over remaining height, with the protected/unprotected ratios applied;
// the set therefore does not sum exactly to the remaining value.
//
// Partition panics on a non-monotonic or negative result: with a feasible
// vector and a valid config that indicates a logic defect, not a runtime
// condition.
func Partition(cfg Config, v DefenseVector) ZoneSet {
	h := cfg.MaxElevation
	remaining := RemainingValue(cfg, v.W)
	span := h - v.W

	// Fully withdrawn city: every band above W is empty.
	perUnit := 0.0
	if span > 0 {
		perUnit = remaining / span
	}

	proofTop := v.W + min(v.R, v.B)
	baseTop := v.W + v.B
	crestTop := v.W + v.B + v.D

	zs := ZoneSet{
		{Role: RoleWithdrawn, Low: 0, High: v.W, Value: 0},
		{
			Role:  RoleResistant,
			Low:   v.W,
			High:  proofTop,
			Value: perUnit * cfg.UnprotectedValueRatio * min(v.R, v.B),
		},
		{
			Role:  RoleGap,
			Low:   proofTop,
			High:  baseTop,
			Value: perUnit * cfg.UnprotectedValueRatio * max(0, v.B-v.R),
		},
		{
			Role:  RoleProtected,
			Low:   baseTop,
			High:  crestTop,
			Value: perUnit * cfg.ProtectedValueRatio * v.D,
		},
		{
			Role:  RoleAbove,
			Low:   crestTop,
			High:  h,
			Value: perUnit * (h - crestTop),
		},
	}

	for i, z := range zs {
		if z.High < z.Low || z.Value < 0 {
			panic(fmt.Sprintf("city: malformed zone %d [%g,%g) value %g for vector %+v", i, z.Low, z.High, z.Value, v))
		}
		if i > 0 && zs[i-1].High != z.Low {
			panic(fmt.Sprintf("city: discontiguous zones %d/%d for vector %+v", i-1, i, v))
		}
	}
	return zs
}
