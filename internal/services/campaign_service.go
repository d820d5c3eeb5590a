package services

import (
	"context"
	"fmt"
	"time"

	"github.com/creator-marketplace/backend/internal/events"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CampaignService struct {
	brandRepo    BrandStore
	campaignRepo CampaignStore
	auditRepo    AuditStore
	publisher    events.Publisher
	log          *zap.Logger
}

func NewCampaignService(
	brandRepo BrandStore,
	campaignRepo CampaignStore,
	auditRepo AuditStore,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		brandRepo:    brandRepo,
		campaignRepo: campaignRepo,
		auditRepo:    auditRepo,
		publisher:    publisher,
		log:          log,
	}
}

type CreateCampaignInput struct {
	Title        string
	Description  string
	Budget       decimal.Decimal
	Deadline     time.Time
	Niche        []string
	Platforms    []string
	Requirements *string
}

func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, input CreateCampaignInput) (*models.Campaign, error) {
	brand, err := s.brandRepo.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: brand profile", ErrNotFound)
		}
		return nil, err
	}

	if input.Title == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrValidation)
	}
	if !input.Budget.IsPositive() {
		return nil, fmt.Errorf("%w: budget must be greater than zero", ErrValidation)
	}
	if !input.Deadline.After(time.Now()) {
		return nil, fmt.Errorf("%w: deadline must be in the future", ErrValidation)
	}

	campaign := &models.Campaign{
		BrandID:      brand.ID,
		Title:        input.Title,
		Description:  input.Description,
		Budget:       input.Budget,
		Deadline:     input.Deadline,
		Niche:        input.Niche,
		Platforms:    input.Platforms,
		Requirements: input.Requirements,
		Status:       models.CampaignStatusActive,
	}
	if campaign.Niche == nil {
		campaign.Niche = []string{}
	}
	if campaign.Platforms == nil {
		campaign.Platforms = []string{}
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &campaign.ID,
	})

	return campaign, nil
}

// ListActive is the open discovery query: only ACTIVE campaigns, optionally
// narrowed to a single niche tag, newest first.
func (s *CampaignService) ListActive(ctx context.Context, niche *string, limit, offset int) ([]models.Campaign, error) {
	status := models.CampaignStatusActive
	return s.campaignRepo.List(ctx, repositories.CampaignFilter{
		Status: &status,
		Niche:  niche,
		Limit:  limit,
		Offset: offset,
	})
}

func (s *CampaignService) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: campaign", ErrNotFound)
		}
		return nil, err
	}
	return campaign, nil
}

// UpdateStatus applies a brand-driven campaign transition.
func (s *CampaignService) UpdateStatus(ctx context.Context, userID, campaignID uuid.UUID, newStatus string) (*models.Campaign, error) {
	brand, err := s.brandRepo.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: brand profile", ErrNotFound)
		}
		return nil, err
	}

	campaign, err := s.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != brand.ID {
		return nil, fmt.Errorf("%w: campaign", ErrNotFound)
	}

	if !models.IsValidCampaignTransition(campaign.Status, newStatus) {
		return nil, fmt.Errorf("%w: campaign %s to %s", ErrInvalidTransition, campaign.Status, newStatus)
	}

	oldStatus := campaign.Status
	if err := s.campaignRepo.UpdateStatus(ctx, campaignID, newStatus); err != nil {
		return nil, err
	}
	campaign.Status = newStatus

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      fmt.Sprintf("campaign_status_%s_to_%s", oldStatus, newStatus),
		EntityType:  "campaign",
		EntityID:    &campaign.ID,
		Meta:        map[string]any{"old_status": oldStatus, "new_status": newStatus},
	})

	_ = s.publisher.Publish(ctx, events.StreamPipeline, events.Event{
		Type: events.EventCampaignStatusChanged,
		Payload: map[string]any{
			"campaign_id": campaign.ID.String(),
			"old_status":  oldStatus,
			"new_status":  newStatus,
		},
	})

	return campaign, nil
}
