package validator

import "svw.info/sudokuplay/internal/domain"

// FastValidator scans a grid with per-unit bitmasks, collecting the
// coordinates of duplicated values. Empty cells never conflict.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(g domain.Grid) (bool, []domain.CellCoord) {
	size := g.Size()
	box := g.BoxSize()
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < size; r++ {
		m := uint64(0)
		for c := 0; c < size; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := uint64(1) << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < size; c++ {
		m := uint64(0)
		for r := 0; r < size; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := uint64(1) << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < box; br++ {
		for bc := 0; bc < box; bc++ {
			m := uint64(0)
			for dr := 0; dr < box; dr++ {
				for dc := 0; dc < box; dc++ {
					r := br*box + dr
					c := bc*box + dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					bit := uint64(1) << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf
}

// Solved reports whether the grid is completely filled and conflict-free.
func (v *FastValidator) Solved(g domain.Grid) bool {
	if !g.Full() {
		return false
	}
	ok, _ := v.Validate(g)
	return ok
}
