package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(name)
		require.NoError(t, err)
		assert.Equal(t, DifficultyPreset(name), p)
	}

	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestEffectiveTiming(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		wantBase   int
		wantFactor float64
	}{
		{DifficultyEasy, 1500, 0.5},
		{DifficultyNormal, 1000, 0.5},
		{DifficultyHard, 600, 0.5},
		{DifficultyFixed, 1000, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			cfg.Difficulty = tc.preset

			got := cfg.EffectiveTiming()

			assert.Equal(t, tc.wantBase, got.BaseIntervalMs)
			assert.InDelta(t, tc.wantFactor, got.LevelFactor, 1e-9)
			assert.Equal(t, 50, got.MinIntervalMs)
			assert.Equal(t, 1000, cfg.Timing.BaseIntervalMs, "config must not be modified")
		})
	}
}
