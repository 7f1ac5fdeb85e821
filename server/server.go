package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsproof/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/checker.go -pkg mocks -skip-ensure -fmt goimports . Checker
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/trust.go -pkg mocks -skip-ensure -fmt goimports . TrustAdjuster
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/index_info.go -pkg mocks -skip-ensure -fmt goimports . IndexInfo

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	checker   Checker
	store     Store
	trust     TrustAdjuster
	scheduler Scheduler
	index     IndexInfo
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Checker verifies claims against the indexed corpus
type Checker interface {
	Verify(ctx context.Context, claimText string) (*domain.Verdict, error)
}

// Store is the persistence surface for server operations
type Store interface {
	Get(ctx context.Context, id string) (*domain.Article, error)
	ListArticles(ctx context.Context, limit int) ([]domain.Article, error)
	QueryByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.Article, error)
	RecordVote(ctx context.Context, event domain.VoteEvent) error
	UpdateTrustWeight(ctx context.Context, id string, weight float64) error
}

// TrustAdjuster applies votes and reports current trust weights
type TrustAdjuster interface {
	ApplyVote(event domain.VoteEvent) error
	Weight(articleID string) float64
}

// Scheduler triggers on-demand ingestion passes
type Scheduler interface {
	RunNow(ctx context.Context) int
}

// IndexInfo exposes index stats for the status endpoint
type IndexInfo interface {
	Size() int
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params holds dependencies for New
type Params struct {
	Config    ConfigProvider
	Checker   Checker
	Store     Store
	Trust     TrustAdjuster
	Scheduler Scheduler
	Index     IndexInfo
	Version   string
	Debug     bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:    p.Config,
		checker:   p.Checker,
		store:     p.Store,
		trust:     p.Trust,
		scheduler: p.Scheduler,
		index:     p.Index,
		version:   p.Version,
		debug:     p.Debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler exposes the routed handler, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsproof", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("POST /verify", s.verifyHandler)
		r.HandleFunc("POST /ingest", s.ingestHandler)
		r.HandleFunc("POST /articles/{id}/vote", s.voteHandler)
		r.HandleFunc("GET /articles", s.articlesHandler)
		r.HandleFunc("GET /status", s.statusHandler)
	})
}
