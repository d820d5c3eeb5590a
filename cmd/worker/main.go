package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/db"
	"github.com/creator-marketplace/backend/internal/events"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repos
	brandRepo := repositories.NewBrandRepo(pool)
	creatorRepo := repositories.NewCreatorRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	proposalRepo := repositories.NewProposalRepo(pool)
	paymentRepo := repositories.NewPaymentRepo(pool)
	notificationRepo := repositories.NewNotificationRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Services
	publisher := events.NewRedisPublisher(rdb, log)
	scorer := services.NewScoringClient(cfg.ScoringBaseURL, cfg.ScoringAPIKey, cfg.ScoringTimeout, log)
	proposalService := services.NewProposalService(creatorRepo, brandRepo, campaignRepo, proposalRepo, paymentRepo, notificationRepo, auditRepo, scorer, publisher, cfg, log)

	log.Info("worker started", zap.Duration("rescore_interval", cfg.ScoringRetryInterval))

	rescoreTicker := time.NewTicker(cfg.ScoringRetryInterval)
	defer rescoreTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-rescoreTicker.C:
			runRescore(ctx, proposalService, cfg, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

func runRescore(ctx context.Context, proposalService *services.ProposalService, cfg *config.Config, log *zap.Logger) {
	scored, err := proposalService.RescoreUnscored(ctx, cfg.ScoringRetryBatch)
	if err != nil {
		log.Error("rescore pass failed", zap.Error(err))
		return
	}
	if scored > 0 {
		log.Info("rescore pass completed", zap.Int("scored", scored))
	}
}
