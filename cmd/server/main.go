package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-gallery-service/internal/adapters/primary/http/handlers"
	"portfolio-gallery-service/internal/adapters/primary/http/middleware"
	"portfolio-gallery-service/internal/adapters/secondary/i18n"
	"portfolio-gallery-service/internal/adapters/secondary/imageprobe"
	"portfolio-gallery-service/internal/catalogsource"
	"portfolio-gallery-service/internal/config"
	"portfolio-gallery-service/internal/core/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports)
	source, closeSource, err := catalogsource.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("open catalog source: %v", err)
	}
	defer closeSource()
	log.WithField("source", source.Name()).Info("catalog source initialized")

	prober := imageprobe.NewProber(&cfg.Probe, &cfg.Media)

	translator, err := i18n.NewTranslator(cfg.I18n.DefaultLang)
	if err != nil {
		log.Fatalf("load translations: %v", err)
	}

	// Core Services (Application Layer)
	hydrator := services.NewHydrator(prober,
		services.WithConcurrency(cfg.Probe.Concurrency),
		services.WithProbeTimeout(cfg.Probe.Timeout),
	)
	defer hydrator.Close()

	catalogSvc := services.NewCatalogService(source, hydrator)
	if _, err := catalogSvc.Load(context.Background()); err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	sessionSvc := services.NewSessionService(catalogSvc, cfg.Session.TTL)
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessionSvc.Run(sweepCtx, cfg.Session.SweepInterval)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(catalogSvc, sessionSvc, translator)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging("/healthz", cfg.Media.URLPrefix), gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	router.Static(cfg.Media.URLPrefix, cfg.Media.Root)

	api := router.Group("/api/v1/portfolio")
	h.RegisterRoutes(api)

	// Health check reports ok while the first validation pass is running;
	// the catalog status endpoint tells the two apart.
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "validating": catalogSvc.IsValidating()})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}
	stopSweep()

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept-Language", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
