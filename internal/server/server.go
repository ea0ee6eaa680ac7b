package server

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutriia/backend/config"
	"github.com/nutriia/backend/internal/database"
	"github.com/nutriia/backend/internal/router"
	"github.com/nutriia/backend/internal/service"
)

// Server wires the database, services and HTTP layer together.
type Server struct {
	cfg  *config.Config
	http *http.Server
	db   *gorm.DB
}

// New builds the full application: database connection, migrations,
// services and router. Redis and the LLM provider are optional; the
// server starts without them and degrades gracefully.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(db); err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if client, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: Redis unavailable, rate limiting disabled: %v", err)
	} else {
		redisClient = client
	}

	var llm service.LLMClient
	if llmService, err := service.NewLLMService(cfg); err != nil {
		log.Printf("Warning: LLM provider not configured: %v", err)
	} else {
		llm = llmService
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)

	engine := router.SetupRouter(db, authService, llm, redisClient)

	return &Server{
		cfg: cfg,
		db:  db,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}, nil
}

// Start begins serving requests. It blocks until the listener stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the database.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
