package usecase

import (
	"errors"
	"sync"
	"time"

	"svw.info/sudokuplay/internal/config"
	"svw.info/sudokuplay/internal/domain"
	"svw.info/sudokuplay/internal/game"
	"svw.info/sudokuplay/internal/ports"
)

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrNoGame is returned for any query or edit before a puzzle exists.
	ErrNoGame = errors.New("no active game")
)

// Service owns the single active session and mediates every player action.
// The game core is synchronous, but the HTTP adapter calls in concurrently,
// so the session is guarded by a mutex.
type Service struct {
	mu        sync.Mutex
	generator ports.Generator
	validator ports.Validator
	hinter    ports.Hinter
	cfg       *config.Config
	session   *game.Session
}

func NewService(g ports.Generator, v ports.Validator, h ports.Hinter, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Service{generator: g, validator: v, hinter: h, cfg: cfg}
}

// Snapshot is the presentation view of the active session. The solution is
// deliberately absent: the client only ever learns won/lost.
type Snapshot struct {
	Difficulty string      `json:"difficulty"`
	State      string      `json:"state"`
	Board      domain.Grid `json:"board"`
	Locked     [][]bool    `json:"locked"`
	Sketches   domain.Grid `json:"sketches"`
	Empty      int         `json:"empty"`
}

func snapshotOf(s *game.Session) Snapshot {
	original := s.Original()
	locked := make([][]bool, s.Size())
	for r := range locked {
		locked[r] = make([]bool, s.Size())
		for c := range locked[r] {
			locked[r][c] = original[r][c] != 0
		}
	}
	working := s.Working()
	return Snapshot{
		Difficulty: s.Difficulty().String(),
		State:      s.State().String(),
		Board:      working,
		Locked:     locked,
		Sketches:   s.Sketches(),
		Empty:      working.CountEmpty(),
	}
}

// NewGame generates a fresh puzzle at the difficulty's removal count and
// replaces any session in progress. A zero seed picks one from the clock.
func (u *Service) NewGame(label string, seed int64) (Snapshot, ports.Stats, error) {
	if u.generator == nil {
		return Snapshot{}, ports.Stats{}, errNotConfigured
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(label)
	puzzle, solution, st, err := u.generator.Generate(seed, u.cfg.RemovedFor(diff))
	if err != nil {
		return Snapshot{}, st, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.session = game.NewSession(diff, puzzle, solution)
	return snapshotOf(u.session), st, nil
}

// Snapshot returns the current session view.
func (u *Service) Snapshot() (Snapshot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.session == nil {
		return Snapshot{}, ErrNoGame
	}
	return snapshotOf(u.session), nil
}

// State reports NotStarted before any game, otherwise the session state.
func (u *Service) State() domain.SessionState {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.session == nil {
		return domain.NotStarted
	}
	return u.session.State()
}

func (u *Service) withSession(fn func(*game.Session)) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.session == nil {
		return ErrNoGame
	}
	fn(u.session)
	return nil
}

// SetValue commits a value; edits on locked cells are silent no-ops.
func (u *Service) SetValue(row, col, value int) error {
	return u.withSession(func(s *game.Session) { s.SetValue(row, col, value) })
}

func (u *Service) ClearValue(row, col int) error {
	return u.withSession(func(s *game.Session) { s.ClearValue(row, col) })
}

func (u *Service) Sketch(row, col, value int) error {
	return u.withSession(func(s *game.Session) { s.Sketch(row, col, value) })
}

func (u *Service) CommitSketch(row, col int) error {
	return u.withSession(func(s *game.Session) { s.CommitSketch(row, col) })
}

func (u *Service) Reset() error {
	return u.withSession(func(s *game.Session) { s.ResetToOriginal() })
}

// Check reports completeness and outcome in one call. Checking an incomplete
// board is safe and leaves the session InProgress.
func (u *Service) Check() (complete bool, state domain.SessionState, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.session == nil {
		return false, domain.NotStarted, ErrNoGame
	}
	return u.session.IsComplete(), u.session.State(), nil
}

// Validate scans the working grid for row/col/box conflicts.
func (u *Service) Validate() (bool, []domain.CellCoord, error) {
	if u.validator == nil {
		return false, nil, errNotConfigured
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.session == nil {
		return false, nil, ErrNoGame
	}
	ok, conflicts := u.validator.Validate(u.session.Working())
	return ok, conflicts, nil
}

// Hint proposes a sketch for an empty unlocked cell, if one can be deduced.
func (u *Service) Hint() (domain.CellSuggestion, bool, error) {
	if u.hinter == nil {
		return domain.CellSuggestion{}, false, errNotConfigured
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.session == nil {
		return domain.CellSuggestion{}, false, ErrNoGame
	}
	sug, ok := u.hinter.Suggest(u.session.Working(), u.session.Original())
	return sug, ok, nil
}
