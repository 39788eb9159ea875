package domain

import "strings"

// Difficulty selects how many cells are removed from a solved grid.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty. Unrecognized labels fall
// back to Medium rather than erroring.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

// SessionState tracks a game from creation to its outcome.
type SessionState int

const (
	NotStarted SessionState = iota
	InProgress
	Won
	Lost
)

func (s SessionState) String() string {
	switch s {
	case InProgress:
		return "inProgress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "notStarted"
	}
}
