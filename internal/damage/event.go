package damage

import (
	"math"

	"github.com/talgya/wedgesim/internal/city"
)

// EventDamage totals flood damage across the zone partition for one realized
// event at the given effective surge elevation. proofFraction is the P lever
// discounting the resistant band; failed selects the protected band's
// breach-vs-intact multiplier. Sums above the catastrophic threshold pick up
// the configured penalty on the excess.
func EventDamage(cfg city.Config, zones city.ZoneSet, effSurge, proofFraction float64, failed bool) float64 {
	total := 0.0
	for _, z := range zones {
		d := zoneDamage(cfg, z, effSurge)
		if d == 0 {
			continue
		}
		switch z.Role {
		case city.RoleWithdrawn:
			d = 0
		case city.RoleResistant:
			d *= 1 - proofFraction
		case city.RoleProtected:
			if failed {
				d *= cfg.FailedBarrierFactor
			} else {
				d *= cfg.IntactBarrierFactor
			}
		}
		total += d
	}

	if total > cfg.ThresholdValue {
		excess := total - cfg.ThresholdValue
		total += math.Pow(cfg.ThresholdFraction*excess, cfg.ThresholdExponent)
	}
	return total
}

// zoneDamage is the base depth-damage formula for one band, before any
// role modifier. Wash-over is the surge depth above the band's lower
// boundary; a dry, empty, or valueless band contributes nothing.
func zoneDamage(cfg city.Config, z city.Zone, effSurge float64) float64 {
	wash := effSurge - z.Low
	height := z.Height()
	if wash <= 0 || height <= 0 || z.Value <= 0 {
		return 0
	}
	if wash < height {
		// Partial flood: triangular depth profile plus flooded basements.
		return z.Value * cfg.DamageFraction * wash * (wash/2 + cfg.BasementDepth) /
			(cfg.BuildingHeight * height)
	}
	// Full flood of the band.
	return z.Value * cfg.DamageFraction * (cfg.BasementDepth + height/2) / cfg.BuildingHeight
}
