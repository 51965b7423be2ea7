package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/BarbeariaNavalha/booking-engine/internal/cache"
	"github.com/BarbeariaNavalha/booking-engine/internal/config"
	dbpkg "github.com/BarbeariaNavalha/booking-engine/internal/db"
	"github.com/BarbeariaNavalha/booking-engine/internal/metrics"
	"github.com/BarbeariaNavalha/booking-engine/internal/middleware"
	"github.com/BarbeariaNavalha/booking-engine/internal/routes"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := config.Load()

	// Expediente malformado é fatal aqui, nunca erro por chamada.
	if err := cfg.WorkingHours.Validate(); err != nil {
		log.Fatalf("invalid working hours config: %v", err)
	}

	db := dbpkg.NewDB(cfg)

	var availCache *cache.AvailabilityCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		availCache = cache.NewAvailabilityCache(rdb, cfg.AvailabilityCacheTTL)
		log.Printf("availability cache enabled (redis %s)", cfg.RedisAddr)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", metrics.Handler())

	routes.RegisterRoutes(r, db, cfg, availCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
