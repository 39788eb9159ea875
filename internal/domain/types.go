package domain

import "math"

// Grid is an N×N sudoku matrix; 0 marks an empty cell.
// N must be a perfect square so the grid partitions into sqrt(N)-sized boxes.
type Grid [][]int

// NewGrid allocates an empty size×size grid.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]int, size)
	}
	return g
}

// Size returns the board dimension N.
func (g Grid) Size() int { return len(g) }

// BoxSize returns sqrt(N), the dimension of one box.
func (g Grid) BoxSize() int {
	return int(math.Sqrt(float64(len(g))))
}

// Clone returns a deep copy; mutations on the copy never reach the original.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]int, len(g[r]))
		copy(out[r], g[r])
	}
	return out
}

// Equal reports cell-by-cell equality.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Full reports whether every cell is nonzero.
func (g Grid) Full() bool {
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// CountEmpty returns the number of zero cells.
func (g Grid) CountEmpty() int {
	n := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g) && col >= 0 && col < len(g)
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellSuggestion is a proposed value for a single cell.
type CellSuggestion struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}
