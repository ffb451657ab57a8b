package config

import "fmt"

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// BaseIntervalForPreset scales the level 0 drop interval for a preset.
func BaseIntervalForPreset(preset DifficultyPreset, baseMs int) int {
	switch preset {
	case DifficultyEasy:
		return baseMs * 3 / 2
	case DifficultyHard:
		return baseMs * 3 / 5
	default:
		return baseMs
	}
}

// IsFixedPreset returns true if the preset disables speed-ups between levels.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// EffectiveTiming returns the timing with the difficulty preset applied.
func (c TetrisConfig) EffectiveTiming() TimingConfig {
	t := c.Timing
	t.BaseIntervalMs = BaseIntervalForPreset(c.Difficulty, t.BaseIntervalMs)
	if IsFixedPreset(c.Difficulty) {
		t.LevelFactor = 0
	}
	return t
}
