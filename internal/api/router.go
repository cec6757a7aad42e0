// Package api exposes the read-only match surface: JSON state, scoreboard,
// health, Prometheus metrics and a websocket event stream.
package api

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mrDIMAS/rusty-shooter/internal/game"
)

// Server bundles the HTTP handlers around a runner.
type Server struct {
	runner *game.Runner
	hub    *Hub
}

// NewServer builds the server; the hub should already be registered as an
// event sink on the runner.
func NewServer(runner *game.Runner, hub *Hub) *Server {
	return &Server{runner: runner, hub: hub}
}

// Router assembles the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/state", s.handleState)
	r.Get("/scoreboard", s.handleScoreboard)
	r.Get("/events", s.hub.ServeWS)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleState returns the latest published snapshot. Reads are lock-free:
// the runner publishes a fresh snapshot pointer every tick.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.runner.Snapshot())
}

type scoreboardEntry struct {
	ActorID string `json:"actorId"`
	Name    string `json:"name"`
	Frags   int    `json:"frags"`
	Deaths  int    `json:"deaths"`
}

func (s *Server) handleScoreboard(w http.ResponseWriter, r *http.Request) {
	snap := s.runner.Snapshot()
	entries := make([]scoreboardEntry, 0, len(snap.Actors))
	for i := range snap.Actors {
		a := &snap.Actors[i]
		entries = append(entries, scoreboardEntry{
			ActorID: a.ID,
			Name:    a.Name,
			Frags:   a.Frags,
			Deaths:  a.Deaths,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Frags != entries[j].Frags {
			return entries[i].Frags > entries[j].Frags
		}
		if entries[i].Deaths != entries[j].Deaths {
			return entries[i].Deaths < entries[j].Deaths
		}
		return entries[i].ActorID < entries[j].ActorID
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"phase":   snap.Match.Phase,
		"winner":  snap.Match.Winner,
		"elapsed": snap.Time,
		"entries": entries,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
