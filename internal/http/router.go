package http

import (
	"time"

	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/http/handlers"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/rbac"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	campaignHandler *handlers.CampaignHandler,
	proposalHandler *handlers.ProposalHandler,
	creatorHandler *handlers.CreatorHandler,
	webhookHandler *handlers.WebhookHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Provider webhook. Authenticated by signature, not by session, so it
	// stays outside the JWT group and the rate limiter.
	api.Post("/webhooks/paystack", webhookHandler.HandlePaystack)

	// Auth (public)
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)

	// Rate-limited public endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, 100, time.Minute))

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/niches", metaHandler.GetNiches)
	api.Get("/meta/platforms", metaHandler.GetPlatforms)

	// Open discovery
	api.Get("/campaigns", campaignHandler.ListCampaigns)
	api.Get("/campaigns/:id", campaignHandler.GetCampaign)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// User
	protected.Get("/me", userHandler.GetMe)
	protected.Get("/me/notifications", userHandler.ListNotifications)
	protected.Post("/me/notifications/:id/read", userHandler.MarkNotificationRead)

	// Creators (brand-side discovery)
	protected.Get("/creators", creatorHandler.ListCreators)

	// Campaigns
	protected.Post("/campaigns", middleware.RequirePermission(rbac.PermCreateCampaign), campaignHandler.CreateCampaign)
	protected.Patch("/campaigns/:id/status", middleware.RequirePermission(rbac.PermManageCampaign), campaignHandler.UpdateCampaignStatus)
	protected.Get("/campaigns/:id/proposals", middleware.RequirePermission(rbac.PermReviewProposals), campaignHandler.ListCampaignProposals)

	// Proposals
	protected.Post("/campaigns/:id/proposals", middleware.RequirePermission(rbac.PermSubmitProposal), proposalHandler.SubmitProposal)
	protected.Post("/proposals/:id/accept", middleware.RequirePermission(rbac.PermDecideProposal), proposalHandler.AcceptProposal)
	protected.Post("/proposals/:id/reject", middleware.RequirePermission(rbac.PermDecideProposal), proposalHandler.RejectProposal)
	protected.Post("/proposals/:id/review", middleware.RequirePermission(rbac.PermDecideProposal), proposalHandler.ReviewProposal)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
