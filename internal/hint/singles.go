package hint

import "svw.info/sudokuplay/internal/domain"

// Singles proposes naked singles: an empty, unlocked cell with exactly one
// legal candidate against the working grid. Meant to feed the sketch flow,
// so it suggests rather than commits.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Suggest returns the first naked single found in row-major order.
func (h *Singles) Suggest(working, original domain.Grid) (domain.CellSuggestion, bool) {
	size := working.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if working[r][c] != 0 || original[r][c] != 0 {
				continue
			}
			if v, ok := soleCandidate(working, r, c); ok {
				return domain.CellSuggestion{Row: r, Col: c, Value: v}, true
			}
		}
	}
	return domain.CellSuggestion{}, false
}

func soleCandidate(g domain.Grid, row, col int) (int, bool) {
	last, count := 0, 0
	for v := 1; v <= g.Size(); v++ {
		if allowed(g, row, col, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}

func allowed(g domain.Grid, row, col, v int) bool {
	size := g.Size()
	box := g.BoxSize()
	for i := 0; i < size; i++ {
		if g[row][i] == v || g[i][col] == v {
			return false
		}
	}
	br, bc := (row/box)*box, (col/box)*box
	for dr := 0; dr < box; dr++ {
		for dc := 0; dc < box; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
