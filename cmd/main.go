package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/adarsh0128/Mailgic-AI/config"
	"github.com/adarsh0128/Mailgic-AI/db"
	authhandler "github.com/adarsh0128/Mailgic-AI/internal/auth/handler"
	authrepo "github.com/adarsh0128/Mailgic-AI/internal/auth/repository/postgres"
	authservice "github.com/adarsh0128/Mailgic-AI/internal/auth/service"
	emailhandler "github.com/adarsh0128/Mailgic-AI/internal/email/handler"
	emailrepo "github.com/adarsh0128/Mailgic-AI/internal/email/repository/postgres"
	emailservice "github.com/adarsh0128/Mailgic-AI/internal/email/service"
	"github.com/adarsh0128/Mailgic-AI/internal/logger"
)

func main() {
	log := logger.New("mailgic-api")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := db.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	userRepo := authrepo.NewPostgresRepository(pool)
	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)
	userService := authservice.NewUserService(userRepo, tokenService, log)
	authHandler := authhandler.NewAuthHandler(userService, tokenService, cfg.IsProduction(), log)

	emailRepo := emailrepo.NewPostgresRepository(pool)
	completer := emailservice.NewOpenAIClient(emailservice.OpenAIConfig{
		BaseURL: cfg.OpenAIBaseURL,
		APIKey:  cfg.OpenAIKey,
		Model:   cfg.OpenAIModel,
	})
	emailService := emailservice.NewEmailService(emailRepo, completer, log)
	emailHandler := emailhandler.NewEmailHandler(emailService, log)

	app := fiber.New()
	app.Use(authhandler.SessionGate(cfg.ProtectedPrefixes))
	authhandler.RegisterRoutes(app, authHandler)
	emailhandler.RegisterRoutes(app, emailHandler, authHandler.RequireAuth())

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info().Msg("shutting down")
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
