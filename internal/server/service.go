// Package server provides the HTTP service for the concierge chat backend.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/meridianpress/concierge/internal/chat"
	"github.com/meridianpress/concierge/internal/config"
	"github.com/meridianpress/concierge/internal/db"
	"github.com/meridianpress/concierge/internal/llm"
	"github.com/meridianpress/concierge/internal/tools"
)

// DefaultHTTPTimeout bounds every request, including streaming responses.
const DefaultHTTPTimeout = 30 * time.Second

// Service is the HTTP service: two chat orchestrators over one store.
type Service struct {
	config *config.Config
	store  *db.Store

	research *chat.Orchestrator
	sales    *chat.Orchestrator

	router *chi.Mux
	server *http.Server
	wg     sync.WaitGroup
}

// NewService wires the store, the tool registries and the chat orchestrators
// into an HTTP service.
func NewService(cfg *config.Config) (*Service, error) {
	store, err := db.NewStore(db.Config{
		DSN:      cfg.DatabaseURL,
		MaxConns: cfg.MaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	client := llm.NewClient(cfg.OpenRouterAPIKey, cfg.Model)
	streamer := chat.NewStreamer(client)

	s := &Service{
		config: cfg,
		store:  store,
		research: chat.NewOrchestrator(streamer,
			tools.NewResearchRegistry(db.NewCatalogStore(store)),
			chat.ResearchSystemPrompt),
		sales: chat.NewOrchestrator(streamer,
			tools.NewSalesRegistry(db.NewAnalyticsStore(store)),
			chat.SalesSystemPrompt),
		router: chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// newServiceForTest wires orchestrators over an existing store without
// opening a PostgreSQL connection.
func newServiceForTest(store *db.Store, streamer chat.Streamer) *Service {
	s := &Service{
		config: &config.Config{Port: 0},
		store:  store,
		research: chat.NewOrchestrator(streamer,
			tools.NewResearchRegistry(db.NewCatalogStore(store)),
			chat.ResearchSystemPrompt),
		sales: chat.NewOrchestrator(streamer,
			tools.NewSalesRegistry(db.NewAnalyticsStore(store)),
			chat.SalesSystemPrompt),
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Service) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(DefaultHTTPTimeout))
}

// setupRoutes configures HTTP routes.
func (s *Service) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/api/ready", s.handleReady)

	s.router.Post("/api/chat/research", s.handleResearchChat)
	s.router.Post("/api/chat/sales", s.handleSalesChat)
}

// Start begins serving HTTP in the background.
func (s *Service) Start() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	log.Info().Int("port", s.config.Port).Msg("Concierge HTTP server started")
	return nil
}

// Shutdown stops the HTTP server and closes the store.
func (s *Service) Shutdown(ctx context.Context) error {
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}
	}

	if err := s.store.Close(); err != nil {
		log.Error().Err(err).Msg("Database close error")
	}

	s.wg.Wait()

	log.Info().Msg("Concierge shutdown complete")
	return nil
}
