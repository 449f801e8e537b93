package http

import (
	"net/http"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/interfaces"
	"github.com/carewell-lab/saheli/pkg/usecase"
	"github.com/carewell-lab/saheli/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	router *chi.Mux
	repo   interfaces.Repository
	uc     *usecase.UseCases
}

func New(repo interfaces.Repository, uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		repo:   repo,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/interactions", s.handlePostInteraction)
		r.Post("/interactions/annotations", s.handlePostAnnotation)
		r.Get("/interactions/{id}", s.handleGetInteraction)
		r.Get("/summaries/daily", s.handleDailySummary)
		r.Get("/summaries/weekly", s.handleWeeklySummary)
		r.Get("/schedule/prompt", s.handleSchedulePrompt)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
