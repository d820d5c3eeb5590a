package services

import (
	"context"
	"fmt"

	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/events"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProposalService struct {
	creatorRepo      CreatorStore
	brandRepo        BrandStore
	campaignRepo     CampaignStore
	proposalRepo     ProposalStore
	paymentRepo      PaymentStore
	notificationRepo NotificationStore
	auditRepo        AuditStore
	scorer           Scorer
	publisher        events.Publisher
	cfg              *config.Config
	log              *zap.Logger
}

func NewProposalService(
	creatorRepo CreatorStore,
	brandRepo BrandStore,
	campaignRepo CampaignStore,
	proposalRepo ProposalStore,
	paymentRepo PaymentStore,
	notificationRepo NotificationStore,
	auditRepo AuditStore,
	scorer Scorer,
	publisher events.Publisher,
	cfg *config.Config,
	log *zap.Logger,
) *ProposalService {
	return &ProposalService{
		creatorRepo:      creatorRepo,
		brandRepo:        brandRepo,
		campaignRepo:     campaignRepo,
		proposalRepo:     proposalRepo,
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
		auditRepo:        auditRepo,
		scorer:           scorer,
		publisher:        publisher,
		cfg:              cfg,
		log:              log,
	}
}

type SubmitProposalInput struct {
	Pitch string
	Rate  decimal.Decimal
}

// Submit validates and creates a proposal, orchestrating the scoring call.
// Scoring is best effort: any failure leaves the score and feedback unset and
// never blocks creation.
func (s *ProposalService) Submit(ctx context.Context, userID, campaignID uuid.UUID, input SubmitProposalInput) (*models.Proposal, error) {
	creator, err := s.creatorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: creator profile", ErrNotFound)
		}
		return nil, err
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: campaign", ErrNotFound)
		}
		return nil, err
	}

	if input.Pitch == "" {
		return nil, fmt.Errorf("%w: pitch is required", ErrValidation)
	}
	if !input.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: rate must be greater than zero", ErrValidation)
	}

	if s.cfg.RequireActiveCampaign && campaign.Status != models.CampaignStatusActive {
		return nil, fmt.Errorf("%w: campaign status is %s", ErrCampaignNotOpen, campaign.Status)
	}
	if s.cfg.OneProposalPerCreator {
		exists, err := s.proposalRepo.ExistsForCampaignAndCreator(ctx, campaignID, creator.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateProposal
		}
	}

	proposal := &models.Proposal{
		CampaignID: campaignID,
		CreatorID:  creator.ID,
		Pitch:      input.Pitch,
		Rate:       input.Rate,
		Status:     models.ProposalStatusPending,
	}

	scoreCtx, cancel := context.WithTimeout(ctx, s.cfg.ScoringTimeout)
	result, scoreErr := s.scorer.Evaluate(scoreCtx, input.Pitch, campaign, creator)
	cancel()
	if scoreErr != nil {
		s.log.Warn("proposal scoring failed, creating without score",
			zap.String("campaign_id", campaignID.String()),
			zap.Error(scoreErr),
		)
	} else {
		proposal.AIScore = &result.Score
		proposal.AIFeedback = &result.Feedback
	}

	// The insert must not be torn down by a caller disconnect mid-request:
	// either the whole proposal is written or nothing is.
	writeCtx := context.WithoutCancel(ctx)
	if err := s.proposalRepo.Create(writeCtx, proposal); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(writeCtx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "proposal_submitted",
		EntityType:  "proposal",
		EntityID:    &proposal.ID,
		Meta:        map[string]any{"campaign_id": campaignID.String(), "scored": proposal.Scored()},
	})

	_ = s.publisher.Publish(writeCtx, events.StreamPipeline, events.Event{
		Type: events.EventProposalSubmitted,
		Payload: map[string]any{
			"proposal_id": proposal.ID.String(),
			"campaign_id": campaignID.String(),
		},
	})

	if proposal.Scored() {
		s.notifyScored(writeCtx, creator.UserID, *proposal.AIScore)
	}

	return proposal, nil
}

// ListForCampaign returns a campaign's proposals joined with creator public
// profiles, ordered by score descending with unscored proposals last.
func (s *ProposalService) ListForCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.ProposalWithCreator, error) {
	return s.proposalRepo.ListByCampaignWithCreator(ctx, campaignID)
}

// Decide applies a brand's decision on a proposal. Accepting creates a
// PENDING payment carrying the provider-facing reference later matched by
// the webhook processor.
func (s *ProposalService) Decide(ctx context.Context, userID, proposalID uuid.UUID, newStatus string) (*models.Proposal, error) {
	brand, err := s.brandRepo.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: brand profile", ErrNotFound)
		}
		return nil, err
	}

	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: proposal", ErrNotFound)
		}
		return nil, err
	}

	campaign, err := s.campaignRepo.GetByID(ctx, proposal.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != brand.ID {
		return nil, fmt.Errorf("%w: proposal", ErrNotFound)
	}

	if !models.IsValidProposalTransition(proposal.Status, newStatus) {
		return nil, fmt.Errorf("%w: proposal %s to %s", ErrInvalidTransition, proposal.Status, newStatus)
	}

	oldStatus := proposal.Status
	if err := s.proposalRepo.UpdateStatus(ctx, proposalID, newStatus); err != nil {
		return nil, err
	}
	proposal.Status = newStatus

	if newStatus == models.ProposalStatusAccepted {
		payment := &models.Payment{
			ProposalID: proposalID,
			Amount:     proposal.Rate,
			Currency:   s.cfg.PaymentCurrency,
			Reference:  "pay_" + uuid.NewString(),
			Status:     models.PaymentStatusPending,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return nil, err
		}
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      fmt.Sprintf("proposal_status_%s_to_%s", oldStatus, newStatus),
		EntityType:  "proposal",
		EntityID:    &proposalID,
		Meta:        map[string]any{"old_status": oldStatus, "new_status": newStatus},
	})

	_ = s.publisher.Publish(ctx, events.StreamPipeline, events.Event{
		Type: events.EventProposalStatusChanged,
		Payload: map[string]any{
			"proposal_id": proposalID.String(),
			"old_status":  oldStatus,
			"new_status":  newStatus,
		},
	})

	if creator, err := s.creatorRepo.GetByID(ctx, proposal.CreatorID); err == nil {
		_ = s.notificationRepo.Create(ctx, &models.Notification{
			UserID:  creator.UserID,
			Type:    models.NotificationProposalDecided,
			Title:   "Proposal " + newStatus,
			Message: fmt.Sprintf("Your proposal for %q is now %s.", campaign.Title, newStatus),
		})
	}

	return proposal, nil
}

// RescoreUnscored retries scoring for proposals created while the scoring
// service was unavailable. Called from the background worker, never inline.
func (s *ProposalService) RescoreUnscored(ctx context.Context, batch int) (int, error) {
	proposals, err := s.proposalRepo.ListUnscored(ctx, batch)
	if err != nil {
		return 0, err
	}

	scored := 0
	for _, p := range proposals {
		campaign, err := s.campaignRepo.GetByID(ctx, p.CampaignID)
		if err != nil {
			continue
		}
		creator, err := s.creatorRepo.GetByID(ctx, p.CreatorID)
		if err != nil {
			continue
		}

		scoreCtx, cancel := context.WithTimeout(ctx, s.cfg.ScoringTimeout)
		result, err := s.scorer.Evaluate(scoreCtx, p.Pitch, campaign, creator)
		cancel()
		if err != nil {
			s.log.Warn("rescore attempt failed", zap.String("proposal_id", p.ID.String()), zap.Error(err))
			continue
		}

		applied, err := s.proposalRepo.SetScore(ctx, p.ID, result.Score, result.Feedback)
		if err != nil {
			s.log.Error("failed to persist score", zap.String("proposal_id", p.ID.String()), zap.Error(err))
			continue
		}
		if !applied {
			continue
		}
		scored++

		s.notifyScored(ctx, creator.UserID, result.Score)
		_ = s.publisher.Publish(ctx, events.StreamPipeline, events.Event{
			Type: events.EventProposalScored,
			Payload: map[string]any{
				"proposal_id": p.ID.String(),
				"score":       result.Score,
			},
		})
	}
	return scored, nil
}

func (s *ProposalService) notifyScored(ctx context.Context, userID uuid.UUID, score float64) {
	_ = s.notificationRepo.Create(ctx, &models.Notification{
		UserID:  userID,
		Type:    models.NotificationProposalScored,
		Title:   "Proposal reviewed",
		Message: fmt.Sprintf("Your proposal scored %.0f/100.", score),
	})
}
