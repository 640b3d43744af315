package surge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSequenceReproducible(t *testing.T) {
	cfg := DefaultSequenceConfig()
	a := GenerateSequence(cfg)
	b := GenerateSequence(cfg)
	require.Equal(t, a, b)

	cfg.Seed++
	c := GenerateSequence(cfg)
	assert.NotEqual(t, a, c)
}

func TestGenerateSequenceShape(t *testing.T) {
	cfg := DefaultSequenceConfig()
	cfg.Years = 250
	seq := GenerateSequence(cfg)

	require.Len(t, seq, 250)
	sum := 0.0
	for _, s := range seq {
		assert.GreaterOrEqual(t, s, 0.0)
		sum += s
	}
	// The record should hover around the annual mean, modulation or not.
	mean := sum / float64(len(seq))
	assert.InDelta(t, cfg.Annual.Mean(), mean, 0.5)
}

func TestGenerateSequenceStationary(t *testing.T) {
	cfg := DefaultSequenceConfig()
	cfg.ModAmplitude = 0
	seq := GenerateSequence(cfg)
	require.Len(t, seq, cfg.Years)
}
