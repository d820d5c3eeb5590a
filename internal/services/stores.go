package services

import (
	"context"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
)

// Store interfaces consumed by the services. The pgx repositories satisfy
// them; tests substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type BrandStore interface {
	Create(ctx context.Context, b *models.Brand) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Brand, error)
}

type CreatorStore interface {
	Create(ctx context.Context, c *models.Creator) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Creator, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Creator, error)
	ListPublic(ctx context.Context, f repositories.CreatorFilter) ([]models.CreatorPublic, error)
}

type CampaignStore interface {
	Create(ctx context.Context, c *models.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	List(ctx context.Context, f repositories.CampaignFilter) ([]models.Campaign, error)
}

type ProposalStore interface {
	Create(ctx context.Context, p *models.Proposal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Proposal, error)
	ExistsForCampaignAndCreator(ctx context.Context, campaignID, creatorID uuid.UUID) (bool, error)
	ListByCampaignWithCreator(ctx context.Context, campaignID uuid.UUID) ([]models.ProposalWithCreator, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	SetScore(ctx context.Context, id uuid.UUID, score float64, feedback string) (bool, error)
	ListUnscored(ctx context.Context, limit int) ([]models.Proposal, error)
}

type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByReference(ctx context.Context, reference string) (*models.Payment, error)
	MarkSuccess(ctx context.Context, reference, providerRef string) (uuid.UUID, bool, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

type AuditStore interface {
	Log(ctx context.Context, entry models.AuditLog) error
}
