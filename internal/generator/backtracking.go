package generator

import (
	"math/rand"
	"time"

	"svw.info/sudokuplay/internal/domain"
	"svw.info/sudokuplay/internal/ports"
)

// Backtracking implements ports.Generator. Each Generate call uses only
// locally-scoped random state and grid buffers, so calls are independent and
// safe to run in parallel.
type Backtracking struct {
	Size int
}

// NewBacktracking returns a generator for size×size boards.
func NewBacktracking(size int) *Backtracking {
	return &Backtracking{Size: size}
}

// Generate produces a (puzzle, solution) pair with exactly removed cells
// zeroed, deterministically for a given seed.
func (b *Backtracking) Generate(seed int64, removed int) (domain.Grid, domain.Grid, ports.Stats, error) {
	start := time.Now()
	g, err := New(b.Size, removed, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, nil, ports.Stats{}, err
	}
	if err := g.FillValues(); err != nil {
		return nil, nil, ports.Stats{Nodes: g.Nodes(), Duration: time.Since(start)}, err
	}
	solution, err := g.Solution()
	if err != nil {
		return nil, nil, ports.Stats{}, err
	}
	if err := g.RemoveCells(); err != nil {
		return nil, nil, ports.Stats{}, err
	}
	st := ports.Stats{Nodes: g.Nodes(), Duration: time.Since(start)}
	return g.Board(), solution, st, nil
}
