package repositories

import (
	"context"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProposalRepo struct {
	pool *pgxpool.Pool
}

func NewProposalRepo(pool *pgxpool.Pool) *ProposalRepo {
	return &ProposalRepo{pool: pool}
}

func (r *ProposalRepo) Create(ctx context.Context, p *models.Proposal) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO proposals (campaign_id, creator_id, pitch, rate, ai_score, ai_feedback, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, p.CampaignID, p.CreatorID, p.Pitch, p.Rate, p.AIScore, p.AIFeedback, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProposalRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Proposal, error) {
	var p models.Proposal
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, creator_id, pitch, rate, ai_score, ai_feedback, status, created_at, updated_at
		FROM proposals WHERE id = $1
	`, id).Scan(&p.ID, &p.CampaignID, &p.CreatorID, &p.Pitch, &p.Rate,
		&p.AIScore, &p.AIFeedback, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProposalRepo) ExistsForCampaignAndCreator(ctx context.Context, campaignID, creatorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM proposals WHERE campaign_id = $1 AND creator_id = $2)
	`, campaignID, creatorID).Scan(&exists)
	return exists, err
}

// ListByCampaignWithCreator returns a campaign's proposals joined with each
// submitting creator's public profile, best scores first. Unscored proposals
// sort after every scored one.
func (r *ProposalRepo) ListByCampaignWithCreator(ctx context.Context, campaignID uuid.UUID) ([]models.ProposalWithCreator, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.campaign_id, p.creator_id, p.pitch, p.rate, p.ai_score, p.ai_feedback,
		       p.status, p.created_at, p.updated_at,
		       c.id, u.name, u.email, c.niches, c.platforms, c.ai_score
		FROM proposals p
		JOIN creators c ON c.id = p.creator_id
		JOIN users u ON u.id = c.user_id
		WHERE p.campaign_id = $1
		ORDER BY p.ai_score DESC NULLS LAST, p.created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []models.ProposalWithCreator
	for rows.Next() {
		var p models.ProposalWithCreator
		if err := rows.Scan(&p.ID, &p.CampaignID, &p.CreatorID, &p.Pitch, &p.Rate,
			&p.AIScore, &p.AIFeedback, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.Creator.ID, &p.Creator.Name, &p.Creator.Email,
			&p.Creator.Niches, &p.Creator.Platforms, &p.Creator.AIScore); err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, nil
}

func (r *ProposalRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE proposals SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

// SetScore records the scoring result. The ai_score IS NULL guard keeps a
// background retry from overwriting a result written at intake.
func (r *ProposalRepo) SetScore(ctx context.Context, id uuid.UUID, score float64, feedback string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE proposals SET ai_score = $1, ai_feedback = $2, updated_at = now()
		WHERE id = $3 AND ai_score IS NULL
	`, score, feedback, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListUnscored returns pending proposals whose scoring never completed, oldest
// first, for the background retry worker.
func (r *ProposalRepo) ListUnscored(ctx context.Context, limit int) ([]models.Proposal, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, creator_id, pitch, rate, ai_score, ai_feedback, status, created_at, updated_at
		FROM proposals
		WHERE ai_score IS NULL AND status = $1
		ORDER BY created_at ASC LIMIT $2
	`, models.ProposalStatusPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []models.Proposal
	for rows.Next() {
		var p models.Proposal
		if err := rows.Scan(&p.ID, &p.CampaignID, &p.CreatorID, &p.Pitch, &p.Rate,
			&p.AIScore, &p.AIFeedback, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, nil
}
