package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/db"
	"github.com/creator-marketplace/backend/internal/events"
	apphttp "github.com/creator-marketplace/backend/internal/http"
	"github.com/creator-marketplace/backend/internal/http/handlers"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/creator-marketplace/backend/migrations"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, migrations.FS, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	brandRepo := repositories.NewBrandRepo(pool)
	creatorRepo := repositories.NewCreatorRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	proposalRepo := repositories.NewProposalRepo(pool)
	paymentRepo := repositories.NewPaymentRepo(pool)
	notificationRepo := repositories.NewNotificationRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	scorer := services.NewScoringClient(cfg.ScoringBaseURL, cfg.ScoringAPIKey, cfg.ScoringTimeout, log)
	userService := services.NewUserService(userRepo, brandRepo, creatorRepo, notificationRepo, cfg, log)
	campaignService := services.NewCampaignService(brandRepo, campaignRepo, auditRepo, publisher, log)
	proposalService := services.NewProposalService(creatorRepo, brandRepo, campaignRepo, proposalRepo, paymentRepo, notificationRepo, auditRepo, scorer, publisher, cfg, log)
	paymentService := services.NewPaymentService(paymentRepo, proposalRepo, creatorRepo, notificationRepo, auditRepo, publisher, cfg.PaystackSecretKey, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, log)
	userHandler := handlers.NewUserHandler(userService, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, proposalService, log)
	proposalHandler := handlers.NewProposalHandler(proposalService, log)
	creatorHandler := handlers.NewCreatorHandler(userService, log)
	webhookHandler := handlers.NewWebhookHandler(paymentService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, userHandler, campaignHandler, proposalHandler, creatorHandler, webhookHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
