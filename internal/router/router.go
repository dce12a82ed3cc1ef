package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/somgarh/campaign-backend/internal/config"
	"github.com/somgarh/campaign-backend/internal/handler"
	"github.com/somgarh/campaign-backend/internal/middleware"
	"github.com/somgarh/campaign-backend/internal/response"
	"github.com/somgarh/campaign-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Contact     *handler.ContactHandler
	Team        *handler.TeamHandler
	Beneficiary *handler.BeneficiaryHandler
	Gallery     *handler.GalleryHandler
	Hero        *handler.HeroHandler
	Health      *handler.HealthHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	adminService *service.AdminService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Prometheus per-route metrics.
	router.Use(middleware.Metrics())

	// Brotli, skipping the card downloads and uploaded media: PNG and PDF
	// payloads are already compressed.
	router.Use(middleware.BrotliWithConfig(middleware.BrotliConfig{
		Quality:   middleware.DefaultBrotliConfig.Quality,
		MinLength: middleware.DefaultBrotliConfig.MinLength,
		Skipper: func(c *gin.Context) bool {
			p := c.Request.URL.Path
			return strings.HasPrefix(p, "/uploads") ||
				strings.HasPrefix(p, "/api/uploads") ||
				strings.Contains(p, "/card/")
		},
	}))

	// Serve uploaded media statically with aggressive caching (1 year).
	// /api/uploads mirrors /uploads for clients that prefix everything.
	for _, prefix := range []string{"/uploads", "/api/uploads"} {
		uploadsGroup := router.Group(prefix)
		uploadsGroup.Use(middleware.CacheControl(31536000))
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check and Prometheus scrape endpoint.
	router.GET("/api/health", handlers.Health.Health)
	router.GET("/metrics", gin.WrapH(middleware.PrometheusHandler()))

	// Rate limiter for the public write endpoints (10 requests per minute
	// per IP): contact form, card registration and verification.
	publicLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := router.Group("/api")

	// ─── Admin Auth ────────────────────────────────────────────────────
	admin := api.Group("/admin")
	{
		admin.POST("/login", publicLimiter.Middleware(), handlers.Auth.Login)
		admin.POST("/init", publicLimiter.Middleware(), handlers.Auth.InitAdmin)
		admin.GET("/profile", middleware.RequireAdmin(authService, adminService), handlers.Auth.GetProfile)
	}

	// ─── Contact ───────────────────────────────────────────────────────
	contact := api.Group("/contact")
	{
		contact.POST("", publicLimiter.Middleware(), handlers.Contact.Create)

		authed := contact.Group("", middleware.RequireAdmin(authService, adminService))
		authed.GET("", handlers.Contact.List)
		authed.PUT("/:id/read", handlers.Contact.MarkRead)
		authed.DELETE("/:id", handlers.Contact.Delete)
	}

	// ─── Team ──────────────────────────────────────────────────────────
	team := api.Group("/team")
	{
		team.GET("", handlers.Team.List)

		authed := team.Group("", middleware.RequireAdmin(authService, adminService))
		authed.POST("", handlers.Team.Create)
		authed.PUT("/:id", handlers.Team.Update)
		authed.DELETE("/:id", handlers.Team.Delete)
	}

	// ─── Beneficiary Cards ─────────────────────────────────────────────
	beneficiary := api.Group("/beneficiary")
	{
		beneficiary.POST("", publicLimiter.Middleware(), handlers.Beneficiary.Create)
		beneficiary.POST("/verify", publicLimiter.Middleware(), handlers.Beneficiary.Verify)
		beneficiary.GET("/card/:unique_id/image", handlers.Beneficiary.DownloadImage)
		beneficiary.GET("/card/:unique_id/pdf", handlers.Beneficiary.DownloadPDF)

		authed := beneficiary.Group("", middleware.RequireAdmin(authService, adminService))
		authed.GET("", handlers.Beneficiary.List)
		authed.DELETE("/:id", handlers.Beneficiary.Delete)
	}

	// ─── Gallery ───────────────────────────────────────────────────────
	gallery := api.Group("/gallery")
	{
		gallery.GET("", handlers.Gallery.List)
		gallery.GET("/:id", handlers.Gallery.Get)

		authed := gallery.Group("", middleware.RequireAdmin(authService, adminService))
		authed.POST("", handlers.Gallery.Create)
		authed.PUT("/:id", handlers.Gallery.Update)
		authed.DELETE("/:id", handlers.Gallery.Delete)
	}

	// ─── Hero ──────────────────────────────────────────────────────────
	hero := api.Group("/hero")
	{
		hero.GET("", handlers.Hero.Get)
		hero.PUT("", middleware.RequireAdmin(authService, adminService), handlers.Hero.Update)
	}

	// Unknown routes get the JSON envelope instead of Gin's default 404.
	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrRouteNotFound)
	})

	return router
}
