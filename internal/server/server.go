package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/ironlog/internal/analytics"
	"github.com/meltforce/ironlog/internal/storage"
	"tailscale.com/client/local"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	engine *analytics.Engine
	log    *slog.Logger
	apiKey string
	ts     *local.Client
	router chi.Router
}

// New creates a Server with all routes configured.
func New(db *storage.DB, engine *analytics.Engine, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		engine: engine,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Caller identity (tailnet whois)
	s.router.Get("/api/v1/me", s.handleWhoAmI)

	// Exercise catalog and user-independent standards ladders
	s.router.Get("/api/v1/exercises", s.handleExerciseCatalog)
	s.router.Get("/api/v1/exercises/{exerciseID}/standards", s.handleStandardsLadder)

	// Per-user analytics reads
	s.router.Route("/api/v1/users/{userID}", func(r chi.Router) {
		r.Get("/exercises/{exerciseID}/records", s.handleExerciseRecords)
		r.Get("/exercises/{exerciseID}/bests", s.handlePersonalBests)
		r.Get("/exercises/{exerciseID}/progress", s.handleProgress)
		r.Get("/exercises/{exerciseID}/standard", s.handleStandard)
		r.Get("/exercises/{exerciseID}/percentile", s.handlePercentile)
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/leaderboard/friends", s.handleFriendsLeaderboard)
		r.Get("/stats", s.handleDataStats)
		r.Get("/imports", s.handleImportLogs)

		// Session logging requires the API key; reads are gated upstream
		// (tsnet on the tailnet, gateway elsewhere).
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/sessions", s.handleLogSession)
			r.Put("/profile", s.handleUpsertProfile)
			r.Post("/follows", s.handleAddFollow)
		})
	})
}
