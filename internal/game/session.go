package game

import "svw.info/sudokuplay/internal/domain"

// Session tracks one puzzle in progress. It holds the immutable original
// puzzle (whose nonzero cells are locked givens), the mutable working grid
// the player edits, the known solution, and per-cell sketch annotations.
// All four are created together and discarded together.
type Session struct {
	difficulty domain.Difficulty
	original   domain.Grid
	working    domain.Grid
	solution   domain.Grid
	sketches   domain.Grid
}

// NewSession copies the puzzle into the original and working grids. The
// caller hands over the solution; the session never recomputes it.
func NewSession(difficulty domain.Difficulty, puzzle, solution domain.Grid) *Session {
	return &Session{
		difficulty: difficulty,
		original:   puzzle.Clone(),
		working:    puzzle.Clone(),
		solution:   solution.Clone(),
		sketches:   domain.NewGrid(puzzle.Size()),
	}
}

func (s *Session) Difficulty() domain.Difficulty { return s.difficulty }
func (s *Session) Size() int                     { return s.working.Size() }

// Locked reports whether the cell was a given in the original puzzle.
// Out-of-bounds cells count as locked so every edit path ignores them.
func (s *Session) Locked(row, col int) bool {
	if !s.original.InBounds(row, col) {
		return true
	}
	return s.original[row][col] != 0
}

// SetValue commits a value to an unlocked cell and drops any pending sketch
// there. Edits to locked cells and out-of-range values are silent no-ops.
func (s *Session) SetValue(row, col, value int) {
	if s.Locked(row, col) || value < 0 || value > s.Size() {
		return
	}
	s.working[row][col] = value
	if value != 0 {
		s.sketches[row][col] = 0
	}
}

// ClearValue empties an unlocked cell, sketch included.
func (s *Session) ClearValue(row, col int) {
	if s.Locked(row, col) {
		return
	}
	s.working[row][col] = 0
	s.sketches[row][col] = 0
}

// Sketch stores a tentative value on an unlocked cell without touching the
// working grid.
func (s *Session) Sketch(row, col, value int) {
	if s.Locked(row, col) || value < 0 || value > s.Size() {
		return
	}
	s.sketches[row][col] = value
}

// SketchAt returns the pending sketch for a cell, 0 if none.
func (s *Session) SketchAt(row, col int) int {
	if !s.sketches.InBounds(row, col) {
		return 0
	}
	return s.sketches[row][col]
}

// CommitSketch promotes a nonzero sketch into a committed value.
func (s *Session) CommitSketch(row, col int) {
	if s.Locked(row, col) {
		return
	}
	if v := s.sketches[row][col]; v != 0 {
		s.SetValue(row, col, v)
	}
}

// IsComplete reports whether every working cell is filled.
func (s *Session) IsComplete() bool { return s.working.Full() }

// CheckSolution reports whether the working grid matches the solution.
// Safe on an incomplete grid: it simply returns false.
func (s *Session) CheckSolution() bool { return s.working.Equal(s.solution) }

// ResetToOriginal restores the working grid to the original puzzle and
// clears every sketch.
func (s *Session) ResetToOriginal() {
	s.working = s.original.Clone()
	s.sketches = domain.NewGrid(s.Size())
}

// State reports the session outcome: InProgress until the board is full,
// then Won or Lost depending on whether it matches the solution.
func (s *Session) State() domain.SessionState {
	if !s.IsComplete() {
		return domain.InProgress
	}
	if s.CheckSolution() {
		return domain.Won
	}
	return domain.Lost
}

// Original returns a copy of the original puzzle grid.
func (s *Session) Original() domain.Grid { return s.original.Clone() }

// Working returns a copy of the player's current grid.
func (s *Session) Working() domain.Grid { return s.working.Clone() }

// Solution returns a copy of the solved grid.
func (s *Session) Solution() domain.Grid { return s.solution.Clone() }

// Sketches returns a copy of the sketch annotations.
func (s *Session) Sketches() domain.Grid { return s.sketches.Clone() }
