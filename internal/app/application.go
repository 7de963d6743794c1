package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ukhamba-backend/internal/config"
	"ukhamba-backend/internal/handlers"
	"ukhamba-backend/internal/middleware"
	"ukhamba-backend/internal/provider"
	"ukhamba-backend/internal/service"
	"ukhamba-backend/pkg/cache"
	"ukhamba-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	cache            *cache.Cache
	rateLimitManager *middleware.RateLimitManager

	services serviceContainer
	handlers handlerContainer

	router *gin.Engine
	server *http.Server
}

type serviceContainer struct {
	Gallery      *service.GalleryService
	Notification *service.NotificationService
}

type handlerContainer struct {
	Gallery *handlers.GalleryHandler
	Notify  *handlers.NotifyHandler
	Content *handlers.ContentHandler
}

func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{
		cfg:              cfg,
		rateLimitManager: middleware.NewRateLimitManager(ctx),
	}

	app.initCache()

	if err := app.initServices(); err != nil {
		return nil, err
	}

	app.initHandlers()
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
		"provider":    a.cfg.GalleryProvider,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimitManager != nil {
		if err := a.rateLimitManager.Shutdown(); err != nil {
			logger.Error(err, "Failed to stop rate limit manager", nil)
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initCache() {
	if !a.cfg.EnableCache {
		a.cache, _ = cache.NewCache("", false)
		return
	}

	c, err := cache.NewCache(a.cfg.RedisURL, true)
	if err != nil {
		// The gallery service keeps its own in-memory copy, so a missing
		// Redis only costs cross-instance sharing.
		logger.Warn("Redis unavailable, running without shared cache", map[string]interface{}{
			"error": err.Error(),
		})
		c, _ = cache.NewCache("", false)
	}
	a.cache = c
}

func (a *Application) initServices() error {
	mediaProvider, err := provider.FromConfig(a.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize media provider: %w", err)
	}

	a.services = serviceContainer{
		Gallery: service.NewGalleryService(
			mediaProvider,
			a.cache,
			a.cfg.GalleryCacheTTL,
			a.cfg.PlaceholderImageURL,
		),
		Notification: service.NewNotificationService(
			service.NewResendSender(a.cfg.ResendAPIKey),
			a.cfg,
		),
	}
	return nil
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Gallery: handlers.NewGalleryHandler(a.services.Gallery, a.cfg.GalleryItemsPerPage),
		Notify:  handlers.NewNotifyHandler(a.services.Notification),
		Content: handlers.NewContentHandler(),
	}
}

func (a *Application) initRouter() {
	if a.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(func(c *gin.Context) {
		c.Set("rateLimitManager", a.rateLimitManager)
		c.Next()
	})
	router.Use(middleware.RateLimitMiddleware(a.cfg))

	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  a.cfg.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		galleryGroup := v1.Group("/gallery")
		{
			galleryGroup.GET("", a.handlers.Gallery.GetPage)
			galleryGroup.GET("/images", a.handlers.Gallery.ListImages)
			galleryGroup.GET("/categories", a.handlers.Gallery.GetCategories)
			galleryGroup.POST("/invalidate", a.handlers.Gallery.InvalidateCache)
		}

		notifyGroup := v1.Group("/notify")
		notifyGroup.Use(middleware.NotifyRateLimitMiddleware(a.cfg))
		{
			notifyGroup.POST("/contact", a.handlers.Notify.Contact)
			notifyGroup.POST("/donation", a.handlers.Notify.Donation)
			notifyGroup.POST("/volunteer", a.handlers.Notify.Volunteer)
			notifyGroup.POST("/newsletter", a.handlers.Notify.Newsletter)
		}

		v1.GET("/programs", a.handlers.Content.GetPrograms)
		v1.GET("/programs/:id", a.handlers.Content.GetProgramByID)
		v1.GET("/pages", a.handlers.Content.GetPages)
	}

	a.router = router
}
