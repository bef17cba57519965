// Package api serves a read-only JSON view of the high-score tables.
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *log.Logger
	Store  storage.Store
	Limit  int // Largest accepted ?limit, and the default
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Limit <= 0 {
		cfg.Limit = storage.DefaultLimit
	}

	r := mux.NewRouter()
	h := &scoreHandler{store: cfg.Store, limit: cfg.Limit, logger: cfg.Logger}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(Recovery(cfg.Logger))
	api.Use(Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/games", h.Games).Methods(http.MethodGet)
	api.HandleFunc("/scores/{game}", h.Top).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "no such endpoint")
	})
	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
