package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// GameResponse describes one registered variant.
type GameResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ScoreResponse is one ranked entry.
type ScoreResponse struct {
	Rank     int       `json:"rank"`
	Score    int       `json:"score"`
	PlayedAt time.Time `json:"played_at"`
}

// TopResponse is the body of GET /api/v1/scores/{game}.
type TopResponse struct {
	Game   string          `json:"game"`
	Scores []ScoreResponse `json:"scores"`
}

type scoreHandler struct {
	store  storage.Store
	limit  int
	logger *log.Logger
}

// Games handles GET /api/v1/games
func (h *scoreHandler) Games(w http.ResponseWriter, _ *http.Request) {
	games := registry.List()
	resp := make([]GameResponse, 0, len(games))
	for _, g := range games {
		resp = append(resp, GameResponse{ID: g.ID, Title: g.Title})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Top handles GET /api/v1/scores/{game}?limit=N
func (h *scoreHandler) Top(w http.ResponseWriter, r *http.Request) {
	game := mux.Vars(r)["game"]
	if !registry.Exists(game) {
		writeError(w, http.StatusNotFound, codeGameNotFound, "unknown game "+strconv.Quote(game))
		return
	}

	limit := h.limit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, codeInvalidRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, h.limit)
	}

	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, codeUnavailable, "no score store configured")
		return
	}

	scores, err := h.store.Top(r.Context(), game, limit)
	if err != nil && !errors.Is(err, storage.ErrCorrupt) {
		h.logger.Error("cannot load scores", "game", game, "err", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "cannot load scores")
		return
	}
	if err != nil {
		h.logger.Warn("high scores unreadable", "game", game, "err", err)
	}

	resp := TopResponse{Game: game, Scores: make([]ScoreResponse, 0, len(scores))}
	for i, s := range scores {
		resp.Scores = append(resp.Scores, ScoreResponse{Rank: i + 1, Score: s.Score, PlayedAt: s.At})
	}
	writeJSON(w, http.StatusOK, resp)
}
