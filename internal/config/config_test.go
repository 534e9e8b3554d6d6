package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, 1, Settings.Search.MinDepth)
	assert.Equal(t, 2, Settings.Search.MinTranspositionDepth)
	assert.Equal(t, 3, Settings.Search.MaxAgeDiff)
	assert.Equal(t, 0.7, Settings.Eval.EarlyPhase)
	assert.Equal(t, 0.3, Settings.Eval.EndPhase)
}

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	first := Settings
	Setup()
	assert.Equal(t, first, Settings)
}
