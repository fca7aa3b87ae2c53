package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"solarsite/internal/cache"
	"solarsite/internal/config"
	"solarsite/internal/database"
	"solarsite/internal/middleware"
	"solarsite/internal/modules/calc"
	"solarsite/internal/modules/lead"
	"solarsite/internal/modules/pages"
	"solarsite/internal/monitoring"
	"solarsite/internal/notify"
	"solarsite/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate:", err)
	}

	var store cache.Client
	if cfg.RedisAddr != "" {
		redis, err := cache.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			// Degraded but functional: the rate limiter falls back to
			// in-memory buckets.
			log.Printf("warning: redis unavailable, using in-memory rate limiting: %v", err)
		} else {
			defer redis.Close()
			store = redis
		}
	}

	leadRepo := repository.NewLeadRepository(db)

	notifier := notify.New(
		notify.NewEmailChannel(cfg.SMTP),
		notify.NewWhatsAppChannel(cfg.WhatsApp),
	)

	leadService := lead.NewService(leadRepo, notifier, cfg.LeadSource)
	leadHandler := lead.NewHandler(leadService)
	calcHandler := calc.NewHandler()
	pagesHandler := pages.NewHandler(cfg.BaseURL)

	monitoring.Init()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.ErrorLogger(), middleware.PrometheusMetrics())

	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/static", cfg.StaticDir)

	pagesHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	api := r.Group("/api")
	api.Use(middleware.CORS(cfg.CORSOrigins))
	api.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, store)))
	{
		leadHandler.RegisterRoutes(api)
		calcHandler.RegisterRoutes(api)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
