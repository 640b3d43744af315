// Package surge provides storm-surge inputs to the risk engine: the
// effective-surge transform, annual surge distributions, and reproducible
// synthetic multi-year surge sequences.
package surge

import "github.com/talgya/wedgesim/internal/city"

// Effective converts a raw surge height into the effective flood elevation
// seen by the city: zero while the existing sea barrier holds, otherwise the
// raw surge amplified by wave run-up less the sea barrier height.
func Effective(cfg city.Config, raw float64) float64 {
	if raw <= cfg.SeaBarrierHeight {
		return 0
	}
	return raw*cfg.RunUpFactor - cfg.SeaBarrierHeight
}
