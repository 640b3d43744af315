package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeElementwiseMax(t *testing.T) {
	a := DefenseVector{W: 1, R: 2, P: 0.3, D: 4, B: 0}
	b := DefenseVector{W: 0, R: 3, P: 0.1, D: 4, B: 2}

	m := a.Merge(b)
	assert.Equal(t, DefenseVector{W: 1, R: 3, P: 0.3, D: 4, B: 2}, m)

	// Merge never lowers a lever, whatever the target proposes.
	down := m.Merge(DefenseVector{})
	assert.Equal(t, m, down)
}

func TestFeasible(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name string
		v    DefenseVector
		want bool
	}{
		{"zero", DefenseVector{}, true},
		{"typical", DefenseVector{W: 2, R: 3, P: 0.8, D: 5, B: 1}, true},
		{"stack at limit", DefenseVector{W: 7, D: 5, B: 5}, true},
		{"stack over limit", DefenseVector{W: 8, D: 5, B: 5}, false},
		{"negative lever", DefenseVector{D: -1}, false},
		{"full coverage", DefenseVector{P: 1}, false},
		{"negative coverage", DefenseVector{P: -0.1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Feasible(cfg))
		})
	}
}

func TestBarrierBase(t *testing.T) {
	v := DefenseVector{W: 2, B: 3}
	assert.Equal(t, 5.0, v.BarrierBase())
}
