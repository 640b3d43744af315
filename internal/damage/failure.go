// Package damage implements the flood damage model: barrier failure
// probability, realized per-event damage over the zone partition, and the
// dual-mode damage expectation (sampled events vs expected annual damage).
package damage

import "github.com/talgya/wedgesim/internal/city"

// FailureProbability returns the chance the barrier fails for a given surge
// height above its base. Piecewise in the surge: a floor probability below
// the onset fraction of the crest, a linear ramp to certainty at the crest,
// and certain failure once overtopped. A zero-height barrier fails under any
// positive surge.
func FailureProbability(cfg city.Config, surgeAboveBase, crest float64) float64 {
	if crest <= 0 {
		if surgeAboveBase > 0 {
			return 1
		}
		return cfg.FailureFloorProb
	}
	if surgeAboveBase >= crest {
		return 1
	}
	onset := cfg.FailureOnsetFraction * crest
	if surgeAboveBase < onset {
		return cfg.FailureFloorProb
	}
	floor := cfg.FailureFloorProb
	return floor + (1-floor)*(surgeAboveBase-onset)/(crest-onset)
}
