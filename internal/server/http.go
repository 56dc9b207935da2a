package server

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
	"github.com/cosmo-mac/cosmos-dungeon/internal/engine"
	"github.com/cosmo-mac/cosmos-dungeon/internal/version"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/logger"
)

// Server runs the websocket game endpoint. Each /ws connection gets its
// own private single-player session.
type Server struct {
	cfg      engine.Config
	catalog  *domain.Catalog
	registry *Registry
	port     string

	// nextSession derives per-session seeds from the master seed so a
	// fixed -seed still gives distinct (but reproducible) dungeons.
	nextSession atomic.Int64
}

func New(cfg engine.Config, cat *domain.Catalog, port string) *Server {
	return &Server{
		cfg:      cfg,
		catalog:  cat,
		registry: NewRegistry(),
		port:     port,
	}
}

// Run blocks serving HTTP on the configured port.
func (s *Server) Run() error {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ws", s.handleWS)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/debug/sessions", s.handleSessions)

	logger.Log.Infof("cosmos-dungeon server listening on :%s", s.port)
	return http.ListenAndServe(":"+s.port, r)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("websocket upgrade failed")
		return
	}

	cfg := s.cfg
	cfg.Seed = s.cfg.Seed + s.nextSession.Add(1)

	session := engine.NewSession(cfg, s.catalog)
	s.registry.Add(SessionInfo{
		ID:        session.ID.String(),
		Remote:    conn.RemoteAddr().String(),
		Seed:      cfg.Seed,
		StartedAt: time.Now(),
	})

	client := NewClient(conn, session)
	go client.writePump()
	go client.readPump(func() {
		s.registry.Remove(session.ID.String())
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, version.Get())
}

func (s *Server) handleSessions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, map[string]any{
		"count":    s.registry.Len(),
		"sessions": s.registry.List(),
	})
}

func respondJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Warn("json encode failed")
	}
}
