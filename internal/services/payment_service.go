package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/creator-marketplace/backend/internal/auth"
	"github.com/creator-marketplace/backend/internal/events"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService struct {
	paymentRepo      PaymentStore
	proposalRepo     ProposalStore
	creatorRepo      CreatorStore
	notificationRepo NotificationStore
	auditRepo        AuditStore
	publisher        events.Publisher
	secretKey        string
	log              *zap.Logger
}

func NewPaymentService(
	paymentRepo PaymentStore,
	proposalRepo ProposalStore,
	creatorRepo CreatorStore,
	notificationRepo NotificationStore,
	auditRepo AuditStore,
	publisher events.Publisher,
	secretKey string,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:      paymentRepo,
		proposalRepo:     proposalRepo,
		creatorRepo:      creatorRepo,
		notificationRepo: notificationRepo,
		auditRepo:        auditRepo,
		publisher:        publisher,
		secretKey:        secretKey,
		log:              log,
	}
}

// providerEvent mirrors the subset of the Paystack webhook payload we act on.
// data.id arrives as a number and is stored as its decimal string form.
type providerEvent struct {
	Event string `json:"event"`
	Data  struct {
		ID        json.Number `json:"id"`
		Reference string      `json:"reference"`
		Status    string      `json:"status"`
	} `json:"data"`
}

// ProcessWebhook handles a raw webhook delivery. The signature is verified
// over the exact bytes received, before any parsing. Settlement is an atomic
// conditional update on the payment row, so replayed or concurrent deliveries
// of the same event settle exactly once.
func (s *PaymentService) ProcessWebhook(ctx context.Context, body []byte, signature string) error {
	if err := auth.VerifyPaystackSignature(s.secretKey, body, signature); err != nil {
		s.log.Warn("webhook signature verification failed", zap.Error(err))
		return ErrUnauthorized
	}

	var event providerEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	if event.Event != "charge.success" || event.Data.Status != "success" {
		s.log.Debug("ignoring webhook event",
			zap.String("event", event.Event),
			zap.String("status", event.Data.Status),
		)
		return nil
	}
	if event.Data.Reference == "" {
		return fmt.Errorf("%w: missing reference", ErrMalformedEvent)
	}

	providerRef := event.Data.ID.String()
	proposalID, applied, err := s.paymentRepo.MarkSuccess(ctx, event.Data.Reference, providerRef)
	if err != nil {
		return err
	}
	if !applied {
		// Either an unknown reference or a payment no longer PENDING. Both
		// are acknowledged without side effects.
		if existing, err := s.paymentRepo.GetByReference(ctx, event.Data.Reference); err == nil {
			s.log.Info("webhook delivery for already settled payment",
				zap.String("reference", event.Data.Reference),
				zap.String("status", existing.Status),
			)
		} else {
			s.log.Warn("webhook delivery for unknown payment reference",
				zap.String("reference", event.Data.Reference),
			)
		}
		return nil
	}

	if err := s.proposalRepo.UpdateStatus(ctx, proposalID, models.ProposalStatusCompleted); err != nil {
		s.log.Error("payment settled but proposal completion failed",
			zap.String("reference", event.Data.Reference),
			zap.String("proposal_id", proposalID.String()),
			zap.Error(err),
		)
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorType:  "webhook",
		Action:     "payment_settled",
		EntityType: "payment",
		Meta: map[string]any{
			"reference":    event.Data.Reference,
			"paystack_ref": providerRef,
			"proposal_id":  proposalID.String(),
		},
	})

	s.notifyPaid(ctx, proposalID, event.Data.Reference)

	s.log.Info("payment settled",
		zap.String("reference", event.Data.Reference),
		zap.String("proposal_id", proposalID.String()),
	)
	return nil
}

func (s *PaymentService) notifyPaid(ctx context.Context, proposalID uuid.UUID, reference string) {
	proposal, err := s.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return
	}
	creator, err := s.creatorRepo.GetByID(ctx, proposal.CreatorID)
	if err != nil {
		return
	}
	_ = s.notificationRepo.Create(ctx, &models.Notification{
		UserID:  creator.UserID,
		Type:    models.NotificationPaymentReceived,
		Title:   "Payment received",
		Message: "A payment for your accepted proposal has been confirmed.",
	})
	_ = s.publisher.Publish(ctx, events.StreamPipeline, events.Event{
		Type: events.EventPaymentReceived,
		Payload: map[string]any{
			"user_id":     creator.UserID.String(),
			"proposal_id": proposalID.String(),
			"reference":   reference,
		},
	})
}
