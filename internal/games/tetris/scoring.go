package tetris

// MaxLevel is the highest level a session can reach.
const MaxLevel = 10

// pointsPerLevel is the score needed for each level step.
const pointsPerLevel = 600

// ScoreForLines returns the points awarded for clearing n lines at once.
// Counts outside 1..4 cannot happen in play and score nothing.
func ScoreForLines(n int) int {
	switch n {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 700
	case 4:
		return 1500
	default:
		return 0
	}
}

// LevelForScore derives the level from the score, capped at MaxLevel.
func LevelForScore(score int) int {
	if score <= 0 {
		return 0
	}
	return min(MaxLevel, score/pointsPerLevel)
}

// UpdateHighScore returns the new high score after score was reached.
func UpdateHighScore(score, high int) int {
	return max(score, high)
}
