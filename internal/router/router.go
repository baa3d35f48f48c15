// Router: assembles gin with the global middleware chain, the three views and /api/v1.
package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/admin"
	"github.com/connectvan/backend/internal/auth"
	"github.com/connectvan/backend/internal/config"
	"github.com/connectvan/backend/internal/docs"
	"github.com/connectvan/backend/internal/handlers"
	"github.com/connectvan/backend/internal/middleware"
	"github.com/connectvan/backend/internal/realtime"
	"github.com/connectvan/backend/internal/store"
)

// Dependencies are the wired services the router mounts.
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger
	Redis  *redis.Client
	Store  *store.CatalogStore
	Gate   *auth.Gate
	Hub    *realtime.Hub
	Admin  *admin.Service
	Images *admin.ImageEncoder
}

// New builds the engine. Order: recovery, request id, security headers, CORS, logger, language, rate limit.
func New(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	if cfg.IsLocal() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = cfg.Storage.UploadMaxBytes

	r.Use(middleware.RecoveryMiddleware(deps.Logger))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(cors.New(corsConfig(cfg.Security.AllowedOrigins)))
	r.Use(middleware.RequestLoggerMiddleware(deps.Logger))
	r.Use(middleware.LanguageMiddleware())
	r.Use(middleware.RateLimitMiddleware(deps.Logger, deps.Redis, cfg.Security.RateLimitRPS))

	listingH := handlers.NewListingHandler(deps.Logger, deps.Store, deps.Hub, cfg.Listing.HeroRotateInterval, cfg.Security.AllowedOrigins)
	authH := handlers.NewAuthHandler(deps.Logger, deps.Gate, cfg.Security.CookieSecure)
	adminH := handlers.NewAdminHandler(deps.Logger, deps.Admin, deps.Images)
	viewsH := handlers.NewViewsHandler(deps.Logger, listingH, deps.Admin, deps.Gate)

	RegisterSystem(r)
	RegisterViews(r, viewsH)
	docs.Register(r)

	v1 := r.Group("/api/v1")
	{
		RegisterSystem(v1)
		RegisterListing(v1.Group("/listing"), listingH)
		RegisterAuth(v1.Group("/auth"), authH)
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.RequireAdmin(deps.Gate))
		RegisterAdmin(adminGroup, adminH)
	}

	return r
}

// corsConfig allows any origin for "*"; credentials (the session cookie) only travel to listed origins.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept-Language", "Authorization", middleware.HeaderXRequestID},
		ExposeHeaders: []string{middleware.HeaderXRequestID, "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
