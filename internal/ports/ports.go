package ports

import (
	"time"

	"svw.info/sudokuplay/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Generator produces a (puzzle, solution) pair with the given number of
// cells removed. A seed of equal value must yield an identical pair.
type Generator interface {
	Generate(seed int64, removed int) (puzzle, solution domain.Grid, st Stats, err error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(g domain.Grid) (ok bool, conflicts []domain.CellCoord)
}

// Hinter proposes a sketch value for an empty, unlocked cell.
type Hinter interface {
	Suggest(working, original domain.Grid) (domain.CellSuggestion, bool)
}
