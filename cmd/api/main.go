package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/yasseriouss/yasser-portfolio-new/internal/cache"
	"github.com/yasseriouss/yasser-portfolio-new/internal/config"
	"github.com/yasseriouss/yasser-portfolio-new/internal/db"
	"github.com/yasseriouss/yasser-portfolio-new/internal/handlers"
	"github.com/yasseriouss/yasser-portfolio-new/internal/store"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "portfolio-api").Logger()

	cfg := config.Load()

	// No DSN is a valid deployment: public reads serve empty content and
	// the client falls back to built-in defaults. Connection failure is
	// treated the same way and never retried per request.
	var gdb *gorm.DB
	if cfg.DBDSN != "" {
		var err error
		gdb, err = db.Connect(cfg.DBDSN)
		if err != nil {
			log.Warn().Err(err).Msg("database unavailable, running degraded")
			gdb = nil
		}
	} else {
		log.Warn().Msg("DB_DSN not set, running without a database")
	}

	st := store.New(gdb, cfg.OwnerOpenID, log)
	if st.Available() {
		if err := st.AutoMigrate(); err != nil {
			log.Fatal().Err(err).Msg("auto migrate failed")
		}
	}

	ch := cache.New(cfg.RedisAddr, cfg.RedisPassword, time.Duration(cfg.CacheTTLSec)*time.Second, log)
	if ch != nil {
		if err := ch.Ping(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, serving without cache")
			ch = nil
		} else {
			log.Info().Msg("redis cache enabled")
		}
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendBaseURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	handlers.Register(app, handlers.RouterDeps{
		Store:           st,
		Cache:           ch,
		JWTSecret:       cfg.JWTSecret,
		JWTExpiresMin:   cfg.JWTExpiresMin,
		OAuthClientID:   cfg.OAuthClientID,
		OAuthSecret:     cfg.OAuthSecret,
		OAuthRedirect:   cfg.OAuthRedirect,
		FrontendBaseURL: cfg.FrontendBaseURL,
	})

	log.Info().Str("port", cfg.AppPort).Msg("listening")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
