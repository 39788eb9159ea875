package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"svw.info/sudokuplay/internal/domain"
)

var (
	// ErrUnfillable means the backtracking fill failed at the root. With the
	// diagonal pre-fill a 9x9 grid always admits a completion, so this
	// signals a broken implementation rather than bad input.
	ErrUnfillable = errors.New("generator: grid cannot be completed")

	// ErrNoSolution means the solution was requested before FillValues ran.
	ErrNoSolution = errors.New("generator: solution requested before fill")

	ErrInvalidSize    = errors.New("generator: size must be a positive perfect square")
	ErrInvalidRemoved = errors.New("generator: removed count out of range")
)

// Generator produces one (solution, puzzle) pair: a solved grid via
// diagonal-box seeding plus randomized backtracking, then a puzzle derived
// by zeroing a fixed number of cells. Randomness is injected so runs are
// seedable; each Generator is single-use, local state only.
type Generator struct {
	size    int
	box     int
	removed int
	rng     *rand.Rand

	board    domain.Grid
	solution domain.Grid
	nodes    int
}

// New builds a generator for a size×size grid that will remove the given
// number of cells. size must be a perfect square; removed must fit the board.
func New(size, removed int, rng *rand.Rand) (*Generator, error) {
	box := 0
	for box*box < size {
		box++
	}
	if size <= 0 || box*box != size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if removed < 0 || removed > size*size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRemoved, removed)
	}
	return &Generator{
		size:    size,
		box:     box,
		removed: removed,
		rng:     rng,
		board:   domain.NewGrid(size),
	}, nil
}

// Board returns a copy of the current grid (the puzzle, after RemoveCells).
func (g *Generator) Board() domain.Grid { return g.board.Clone() }

// Solution returns a copy of the solved grid. It is an error to ask before
// FillValues has produced one.
func (g *Generator) Solution() (domain.Grid, error) {
	if g.solution == nil {
		return nil, ErrNoSolution
	}
	return g.solution.Clone(), nil
}

// Nodes reports how many candidate placements the fill attempted.
func (g *Generator) Nodes() int { return g.nodes }

// FillValues populates the whole grid: diagonal boxes first, then the rest
// via backtracking. The finished grid is recorded as the solution before any
// cell removal can touch the working board.
func (g *Generator) FillValues() error {
	g.fillDiagonal()
	if !g.fillRemaining(0, 0) {
		return ErrUnfillable
	}
	g.solution = g.board.Clone()
	return nil
}

// fillDiagonal seeds the boxes along the main diagonal. They share no row or
// column with each other, so each is an independent permutation of 1..N.
func (g *Generator) fillDiagonal() {
	for start := 0; start < g.size; start += g.box {
		g.fillBox(start, start)
	}
}

func (g *Generator) fillBox(rowStart, colStart int) {
	perm := g.rng.Perm(g.size)
	i := 0
	for r := 0; r < g.box; r++ {
		for c := 0; c < g.box; c++ {
			g.board[rowStart+r][colStart+c] = perm[i] + 1
			i++
		}
	}
}

// fillRemaining fills every empty cell from (row, col) onward in row-major
// order. Candidates are tried in a fresh random permutation per cell so the
// solved grid varies between seeds, with an explicit reset on backtrack.
func (g *Generator) fillRemaining(row, col int) bool {
	row, col, done := g.nextEmpty(row, col)
	if done {
		return true
	}
	for _, p := range g.rng.Perm(g.size) {
		num := p + 1
		g.nodes++
		if !g.isValid(row, col, num) {
			continue
		}
		g.board[row][col] = num
		if g.fillRemaining(row, col+1) {
			return true
		}
		g.board[row][col] = 0
	}
	return false
}

// nextEmpty scans row-major from (row, col) for the next zero cell,
// skipping over the pre-filled diagonal boxes.
func (g *Generator) nextEmpty(row, col int) (int, int, bool) {
	for ; row < g.size; row++ {
		for ; col < g.size; col++ {
			if g.board[row][col] == 0 {
				return row, col, false
			}
		}
		col = 0
	}
	return 0, 0, true
}

// RemoveCells zeroes exactly the configured number of distinct cells, chosen
// uniformly at random; hitting an already-empty cell just picks again. The
// resulting puzzle is not checked for solution uniqueness — removal is
// deliberately uninformed by solvability, matching the game's difficulty
// model.
func (g *Generator) RemoveCells() error {
	if g.solution == nil {
		return ErrNoSolution
	}
	removed := 0
	for removed < g.removed {
		row := g.rng.Intn(g.size)
		col := g.rng.Intn(g.size)
		if g.board[row][col] == 0 {
			continue
		}
		g.board[row][col] = 0
		removed++
	}
	return nil
}

func (g *Generator) validInRow(row, num int) bool {
	for c := 0; c < g.size; c++ {
		if g.board[row][c] == num {
			return false
		}
	}
	return true
}

func (g *Generator) validInCol(col, num int) bool {
	for r := 0; r < g.size; r++ {
		if g.board[r][col] == num {
			return false
		}
	}
	return true
}

func (g *Generator) validInBox(rowStart, colStart, num int) bool {
	for r := 0; r < g.box; r++ {
		for c := 0; c < g.box; c++ {
			if g.board[rowStart+r][colStart+c] == num {
				return false
			}
		}
	}
	return true
}

func (g *Generator) isValid(row, col, num int) bool {
	return g.validInRow(row, num) &&
		g.validInCol(col, num) &&
		g.validInBox(row-row%g.box, col-col%g.box, num)
}
