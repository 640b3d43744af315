package city

// DefenseVector is one five-lever mitigation decision.
//
//	W — relocation (withdrawal) elevation, absolute (m)
//	R — flood-proofing height above W (m)
//	P — flood-proofed fraction of the resistant band, in [0,1)
//	D — barrier crest height above its base (m)
//	B — barrier base elevation above W (m)
//
// Vectors are value types and never mutated after construction; the engine
// replaces its state vector wholesale on each merge.
type DefenseVector struct {
	W float64
	R float64
	P float64
	D float64
	B float64
}

// Merge combines v with a target vector element-wise by maximum. Investments
// are irreversible: no lever ever decreases across epochs.
func (v DefenseVector) Merge(target DefenseVector) DefenseVector {
	return DefenseVector{
		W: max(v.W, target.W),
		R: max(v.R, target.R),
		P: max(v.P, target.P),
		D: max(v.D, target.D),
		B: max(v.B, target.B),
	}
}

// Feasible reports whether the vector satisfies the structural invariants:
// non-negative levers, P strictly below 1, and the stack W+B+D fitting under
// the city's maximum elevation.
func (v DefenseVector) Feasible(cfg Config) bool {
	if v.W < 0 || v.R < 0 || v.D < 0 || v.B < 0 {
		return false
	}
	if v.P < 0 || v.P >= 1 {
		return false
	}
	return v.W+v.B+v.D <= cfg.MaxElevation
}

// BarrierBase returns the absolute elevation of the barrier base.
func (v DefenseVector) BarrierBase() float64 {
	return v.W + v.B
}
