package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/config"
	"github.com/stewartjane/packet-core/internal/database"
	"github.com/stewartjane/packet-core/internal/middleware"
	"github.com/stewartjane/packet-core/internal/modules/view"
	"github.com/stewartjane/packet-core/internal/pkg/jwt"
	"github.com/stewartjane/packet-core/internal/pkg/redisq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	rc     *redisq.Client
	logger *zap.Logger
	cancel context.CancelFunc
}

// New initializes the application: DB → migrations → Redis → routes.
// Redis is optional; without it views insert directly and login rate
// limiting is disabled.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	jwt.SetSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var rc *redisq.Client
	if cfg.RedisURL != "" {
		rc, err = redisq.Connect(cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, continuing without queue", zap.Error(err))
			rc = nil
		}
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	ctx, cancel := context.WithCancel(context.Background())

	var queue *redisq.Queue
	if rc != nil {
		queue = redisq.NewQueue(rc, view.QueueKey)
		go view.NewWorker(db, queue, logger).Run(ctx)
	}

	app := &App{cfg: cfg, router: router, db: db, rc: rc, logger: logger, cancel: cancel}
	app.registerRoutes(queue)

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown stops background goroutines and closes connections.
func (a *App) Shutdown() {
	a.cancel()
	if a.rc != nil {
		if err := a.rc.Close(); err != nil {
			a.logger.Warn("redis close", zap.Error(err))
		}
	}
	if err := database.Close(a.db); err != nil {
		a.logger.Warn("database close", zap.Error(err))
	}
}
