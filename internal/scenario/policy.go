package scenario

import "github.com/talgya/wedgesim/internal/city"

// Policy produces the target defense vector for an epoch. Implementations
// must be pure functions of their inputs: the engine owns all state and
// merges targets irreversibly, so a policy can freely propose lower levers
// without ever un-building anything.
type Policy interface {
	Target(current city.DefenseVector, sc Scenario, epoch int) city.DefenseVector
}

// Static proposes the same vector every epoch; with the engine's marginal
// costing the investment lands entirely in epoch zero.
type Static struct {
	Vector city.DefenseVector
}

func (p Static) Target(_ city.DefenseVector, _ Scenario, _ int) city.DefenseVector {
	return p.Vector
}

// Step switches from an initial vector to a final one at a fixed epoch,
// modeling a deferred construction decision.
type Step struct {
	Before  city.DefenseVector
	After   city.DefenseVector
	AtEpoch int
}

func (p Step) Target(_ city.DefenseVector, _ Scenario, epoch int) city.DefenseVector {
	if epoch >= p.AtEpoch {
		return p.After
	}
	return p.Before
}

// Schedule proposes per-epoch targets from an explicit list, holding the last
// entry once the list runs out. Empty schedules propose the zero vector.
type Schedule struct {
	Targets []city.DefenseVector
}

func (p Schedule) Target(_ city.DefenseVector, _ Scenario, epoch int) city.DefenseVector {
	if len(p.Targets) == 0 {
		return city.DefenseVector{}
	}
	if epoch >= len(p.Targets) {
		return p.Targets[len(p.Targets)-1]
	}
	return p.Targets[epoch]
}
