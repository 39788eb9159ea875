package httpadapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"svw.info/sudokuplay/internal/config"
	"svw.info/sudokuplay/internal/generator"
	"svw.info/sudokuplay/internal/hint"
	"svw.info/sudokuplay/internal/usecase"
	"svw.info/sudokuplay/internal/validator"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecase.NewService(
		generator.NewBacktracking(9),
		validator.New(),
		hint.NewSingles(),
		config.Default(),
	)
	e := gin.New()
	New(uc, zerolog.Nop()).Register(e)
	return e
}

func doJSON(t *testing.T, e *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestQueriesWithoutGameReturn404(t *testing.T) {
	e := newTestEngine()
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/games/current"},
		{http.MethodPost, "/api/v1/games/current/check"},
		{http.MethodGet, "/api/v1/games/current/hint"},
		{http.MethodPost, "/api/v1/games/current/reset"},
	} {
		w := doJSON(t, e, tc.method, tc.path, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s = %d, want 404", tc.method, tc.path, w.Code)
		}
	}
}

func TestNewGameDefaultsAndCounts(t *testing.T) {
	e := newTestEngine()
	w := doJSON(t, e, http.MethodPost, "/api/v1/games", map[string]any{"difficulty": "medium", "seed": 7})
	if w.Code != http.StatusOK {
		t.Fatalf("new game = %d: %s", w.Code, w.Body.String())
	}
	resp := decode[newGameResp](t, w)
	if resp.Empty != 40 {
		t.Fatalf("medium puzzle empty cells = %d, want 40", resp.Empty)
	}
	if resp.State != "inProgress" {
		t.Fatalf("state = %q, want inProgress", resp.State)
	}

	// bare POST with no body uses the default difficulty
	req := httptest.NewRequest(http.MethodPost, "/api/v1/games", nil)
	w2 := httptest.NewRecorder()
	e.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("bare new game = %d: %s", w2.Code, w2.Body.String())
	}
	resp2 := decode[newGameResp](t, w2)
	if resp2.Difficulty != "medium" {
		t.Fatalf("default difficulty = %q, want medium", resp2.Difficulty)
	}
}

func TestLockedCellEditIsNoOp(t *testing.T) {
	e := newTestEngine()
	w := doJSON(t, e, http.MethodPost, "/api/v1/games", map[string]any{"seed": 9})
	start := decode[newGameResp](t, w)

	// find a given and try to overwrite it
	row, col := -1, -1
	for r := range start.Board {
		for c := range start.Board[r] {
			if start.Board[r][c] != 0 {
				row, col = r, c
				break
			}
		}
		if row >= 0 {
			break
		}
	}
	was := start.Board[row][col]
	w = doJSON(t, e, http.MethodPost, "/api/v1/games/current/cells",
		map[string]any{"row": row, "col": col, "value": was%9 + 1})
	if w.Code != http.StatusOK {
		t.Fatalf("set cell = %d", w.Code)
	}
	after := decode[usecase.Snapshot](t, w)
	if after.Board[row][col] != was {
		t.Fatalf("locked cell changed from %d to %d", was, after.Board[row][col])
	}
}

func TestSketchFlowOverHTTP(t *testing.T) {
	e := newTestEngine()
	w := doJSON(t, e, http.MethodPost, "/api/v1/games", map[string]any{"seed": 5})
	start := decode[newGameResp](t, w)

	row, col := -1, -1
	for r := range start.Board {
		for c := range start.Board[r] {
			if start.Board[r][c] == 0 {
				row, col = r, c
				break
			}
		}
		if row >= 0 {
			break
		}
	}

	w = doJSON(t, e, http.MethodPost, "/api/v1/games/current/sketches",
		map[string]any{"row": row, "col": col, "value": 3})
	snap := decode[usecase.Snapshot](t, w)
	if snap.Sketches[row][col] != 3 || snap.Board[row][col] != 0 {
		t.Fatalf("sketch state wrong: sketch=%d board=%d", snap.Sketches[row][col], snap.Board[row][col])
	}

	w = doJSON(t, e, http.MethodPost, "/api/v1/games/current/sketches/commit",
		map[string]any{"row": row, "col": col})
	snap = decode[usecase.Snapshot](t, w)
	if snap.Board[row][col] != 3 || snap.Sketches[row][col] != 0 {
		t.Fatalf("commit state wrong: sketch=%d board=%d", snap.Sketches[row][col], snap.Board[row][col])
	}

	w = doJSON(t, e, http.MethodPost, "/api/v1/games/current/reset", nil)
	snap = decode[usecase.Snapshot](t, w)
	if snap.Board[row][col] != 0 {
		t.Fatalf("reset did not clear the cell: %d", snap.Board[row][col])
	}
}

func TestFullGameToWin(t *testing.T) {
	e := newTestEngine()
	const seed = 1234
	w := doJSON(t, e, http.MethodPost, "/api/v1/games", map[string]any{"difficulty": "easy", "seed": seed})
	start := decode[newGameResp](t, w)

	// recover the solution with the same deterministic generator
	_, solution, _, err := generator.NewBacktracking(9).Generate(seed, 30)
	if err != nil {
		t.Fatalf("reference Generate failed: %v", err)
	}

	for r := range start.Board {
		for c := range start.Board[r] {
			if start.Board[r][c] != 0 {
				continue
			}
			w := doJSON(t, e, http.MethodPost, "/api/v1/games/current/cells",
				map[string]any{"row": r, "col": c, "value": solution[r][c]})
			if w.Code != http.StatusOK {
				t.Fatalf("set cell (%d,%d) = %d", r, c, w.Code)
			}
		}
	}

	w = doJSON(t, e, http.MethodPost, "/api/v1/games/current/check", nil)
	res := decode[checkResp](t, w)
	if !res.Complete || res.State != "won" {
		t.Fatalf("check = %+v, want complete won", res)
	}

	// the filled board must also be conflict-free
	w = doJSON(t, e, http.MethodPost, "/api/v1/games/current/validate", nil)
	val := decode[validateResp](t, w)
	if !val.OK {
		t.Fatalf("validate reported conflicts on a won board: %+v", val.Conflicts)
	}
}

func TestHintSuggestsOnNearlyDoneBoard(t *testing.T) {
	e := newTestEngine()
	const seed = 4242
	w := doJSON(t, e, http.MethodPost, "/api/v1/games", map[string]any{"difficulty": "medium", "seed": seed})
	start := decode[newGameResp](t, w)

	_, solution, _, err := generator.NewBacktracking(9).Generate(seed, 40)
	if err != nil {
		t.Fatalf("reference Generate failed: %v", err)
	}

	// fill every blank but one; the leftover is a naked single
	skipped := false
	var lastR, lastC int
	for r := range start.Board {
		for c := range start.Board[r] {
			if start.Board[r][c] != 0 {
				continue
			}
			if !skipped {
				skipped = true
				lastR, lastC = r, c
				continue
			}
			doJSON(t, e, http.MethodPost, "/api/v1/games/current/cells",
				map[string]any{"row": r, "col": c, "value": solution[r][c]})
		}
	}

	w = doJSON(t, e, http.MethodGet, "/api/v1/games/current/hint", nil)
	res := decode[hintResp](t, w)
	if !res.Found || res.Suggestion == nil {
		t.Fatalf("no hint on a board with one blank: %s", fmt.Sprint(res))
	}
	if res.Suggestion.Row != lastR || res.Suggestion.Col != lastC ||
		res.Suggestion.Value != solution[lastR][lastC] {
		t.Fatalf("hint = %+v, want (%d,%d)=%d", res.Suggestion, lastR, lastC, solution[lastR][lastC])
	}
}
