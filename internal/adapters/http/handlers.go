package httpadapter

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"svw.info/sudokuplay/internal/domain"
	"svw.info/sudokuplay/internal/generator"
	"svw.info/sudokuplay/internal/usecase"
)

// Handler exposes the game service as a JSON API. It is the whole
// presentation boundary: difficulty labels in, (row, col, value) triples in,
// board snapshots out.
type Handler struct {
	UC  *usecase.Service
	Log zerolog.Logger
}

func New(uc *usecase.Service, log zerolog.Logger) *Handler {
	return &Handler{UC: uc, Log: log}
}

func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api").Group("/v1")
	v1.POST("/games", h.newGame)
	v1.GET("/games/current", h.current)
	v1.POST("/games/current/cells", h.setCell)
	v1.POST("/games/current/cells/clear", h.clearCell)
	v1.POST("/games/current/sketches", h.sketch)
	v1.POST("/games/current/sketches/commit", h.commitSketch)
	v1.POST("/games/current/reset", h.reset)
	v1.POST("/games/current/check", h.check)
	v1.POST("/games/current/validate", h.validate)
	v1.GET("/games/current/hint", h.hint)
}

// fail maps service errors onto status codes: a missing game is the caller's
// mistake, an unfillable grid is ours.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNoGame):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, generator.ErrUnfillable):
		h.Log.Error().Err(err).Msg("generation invariant violated")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ---- New game ----

type newGameReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type newGameResp struct {
	usecase.Snapshot
	Seed       int64 `json:"seed,omitempty"`
	DurationMs int64 `json:"durationMs"`
	Nodes      int   `json:"nodes"`
}

func (h *Handler) newGame(c *gin.Context) {
	var req newGameReq
	// A bare POST falls through to the default difficulty.
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	snap, st, err := h.UC.NewGame(req.Difficulty, req.Seed)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Log.Info().
		Str("difficulty", snap.Difficulty).
		Int("empty", snap.Empty).
		Int("nodes", st.Nodes).
		Dur("dur", st.Duration).
		Msg("new game")
	c.JSON(http.StatusOK, newGameResp{
		Snapshot:   snap,
		Seed:       req.Seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Current state ----

func (h *Handler) current(c *gin.Context) {
	snap, err := h.UC.Snapshot()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ---- Cell edits ----

type cellReq struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value,omitempty"`
}

func (h *Handler) bindCell(c *gin.Context) (cellReq, bool) {
	var req cellReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return cellReq{}, false
	}
	return req, true
}

func (h *Handler) afterEdit(c *gin.Context, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	snap, err := h.UC.Snapshot()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) setCell(c *gin.Context) {
	req, ok := h.bindCell(c)
	if !ok {
		return
	}
	h.afterEdit(c, h.UC.SetValue(req.Row, req.Col, req.Value))
}

func (h *Handler) clearCell(c *gin.Context) {
	req, ok := h.bindCell(c)
	if !ok {
		return
	}
	h.afterEdit(c, h.UC.ClearValue(req.Row, req.Col))
}

func (h *Handler) sketch(c *gin.Context) {
	req, ok := h.bindCell(c)
	if !ok {
		return
	}
	h.afterEdit(c, h.UC.Sketch(req.Row, req.Col, req.Value))
}

func (h *Handler) commitSketch(c *gin.Context) {
	req, ok := h.bindCell(c)
	if !ok {
		return
	}
	h.afterEdit(c, h.UC.CommitSketch(req.Row, req.Col))
}

func (h *Handler) reset(c *gin.Context) {
	h.afterEdit(c, h.UC.Reset())
}

// ---- Check / validate / hint ----

type checkResp struct {
	Complete bool   `json:"complete"`
	State    string `json:"state"`
}

func (h *Handler) check(c *gin.Context) {
	complete, state, err := h.UC.Check()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, checkResp{Complete: complete, State: state.String()})
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) validate(c *gin.Context) {
	ok, conflicts, err := h.UC.Validate()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

type hintResp struct {
	Found      bool                   `json:"found"`
	Suggestion *domain.CellSuggestion `json:"suggestion,omitempty"`
}

func (h *Handler) hint(c *gin.Context) {
	sug, found, err := h.UC.Hint()
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := hintResp{Found: found}
	if found {
		resp.Suggestion = &sug
	}
	c.JSON(http.StatusOK, resp)
}
