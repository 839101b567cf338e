// FilePath: server/readings/internal/server/server.go
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/itsatony/w4b_v3/server/readings/api"
	"github.com/itsatony/w4b_v3/server/readings/internal/cache"
	"github.com/itsatony/w4b_v3/server/readings/internal/config"
	"github.com/itsatony/w4b_v3/server/readings/internal/database"
	"github.com/itsatony/w4b_v3/server/readings/internal/monitoring"
	"github.com/itsatony/w4b_v3/server/readings/internal/repository/sqlstore"
	"github.com/itsatony/w4b_v3/server/readings/internal/service"
	nuts "github.com/vaudience/go-nuts"
	"golang.org/x/sync/errgroup"
)

// Server represents our HTTP server
type Server struct {
	config  *config.Config
	srv     *http.Server
	db      database.DB
	cache   cache.StatisticCache
	service *service.Service
}

// New creates a new server instance with its database and service wired up
func New(cfg *config.Config) (*Server, error) {
	db, err := initDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	statCache, err := initCache(cfg.Redis)
	if err != nil {
		db.Close()
		return nil, err
	}

	svc, err := initService(db, statCache)
	if err != nil {
		statCache.Close()
		db.Close()
		return nil, err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(svc, cfg.Server),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		config:  cfg,
		srv:     srv,
		db:      db,
		cache:   statCache,
		service: svc,
	}, nil
}

// Handler exposes the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Start begins listening for requests and blocks until SIGINT/SIGTERM
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	defer s.close()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return s.shutdown()
	})

	return g.Wait()
}

func (s *Server) shutdown() error {
	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) close() {
	if err := s.cache.Close(); err != nil {
		nuts.L.Errorf("[Server] Error closing cache: %v", err)
	}
	if err := s.db.Close(); err != nil {
		nuts.L.Errorf("[Server] Error closing database: %v", err)
	}
}

func initDatabase(cfg config.DatabaseConfig) (database.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func initCache(cfg config.RedisConfig) (cache.StatisticCache, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return cache.New(ctx, cfg)
}

func initService(db database.DB, statCache cache.StatisticCache) (*service.Service, error) {
	readings, err := sqlstore.NewReadingRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readings repository: %w", err)
	}

	svc := service.New(readings, monitoring.NewService()).WithCache(statCache)
	if err := svc.Validate(); err != nil {
		return nil, err
	}
	return svc, nil
}
