package app

import (
	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/middleware"
	"github.com/stewartjane/packet-core/internal/modules/agent"
	"github.com/stewartjane/packet-core/internal/modules/auth"
	"github.com/stewartjane/packet-core/internal/modules/dashboard"
	"github.com/stewartjane/packet-core/internal/modules/feedback"
	"github.com/stewartjane/packet-core/internal/modules/packet"
	"github.com/stewartjane/packet-core/internal/modules/render"
	"github.com/stewartjane/packet-core/internal/modules/upload"
	"github.com/stewartjane/packet-core/internal/modules/view"
	"github.com/stewartjane/packet-core/internal/pkg/redisq"
	"github.com/stewartjane/packet-core/internal/pkg/response"
)

func (a *App) registerRoutes(queue *redisq.Queue) {
	r := a.router
	db := a.db
	authMW := middleware.AdminAuth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Shared services
	packetSvc := packet.NewService(db)
	recorder := view.NewRecorder(db, queue, a.cfg.ViewSalt, a.logger)

	var loginLimit gin.HandlerFunc
	if a.rc != nil {
		loginLimit = middleware.LoginRateLimit(a.rc.Raw())
	}

	// Root-level pages
	root := r.Group("")
	render.NewHandler(packetSvc, recorder).RegisterRoutes(root)
	dashboard.NewHandler(packetSvc).RegisterRoutes(root, authMW)

	// API
	api := r.Group("/api")
	auth.NewHandler(a.cfg.AdminPassword, a.cfg.IsProd(), loginLimit).RegisterRoutes(api)
	agent.NewHandler(agent.NewService(db)).RegisterRoutes(api, authMW)
	packet.NewHandler(packetSvc).RegisterRoutes(api, authMW)
	feedback.NewHandler(feedback.NewService(db)).RegisterRoutes(api, authMW)

	store := upload.NewS3Store(a.cfg.S3)
	if !store.Configured() {
		a.logger.Warn("blob storage not configured, uploads will fail")
	}
	upload.NewHandler(store).RegisterRoutes(api, authMW)
}
