package repositories

import (
	"context"
	"errors"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
}

func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

func (r *PaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO payments (proposal_id, amount, currency, reference, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.ProposalID, p.Amount, p.Currency, p.Reference, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PaymentRepo) GetByReference(ctx context.Context, reference string) (*models.Payment, error) {
	var p models.Payment
	err := r.pool.QueryRow(ctx, `
		SELECT id, proposal_id, amount, currency, reference, paystack_ref, status, created_at, updated_at
		FROM payments WHERE reference = $1
	`, reference).Scan(&p.ID, &p.ProposalID, &p.Amount, &p.Currency, &p.Reference,
		&p.PaystackRef, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) GetByProposalID(ctx context.Context, proposalID uuid.UUID) (*models.Payment, error) {
	var p models.Payment
	err := r.pool.QueryRow(ctx, `
		SELECT id, proposal_id, amount, currency, reference, paystack_ref, status, created_at, updated_at
		FROM payments WHERE proposal_id = $1
		ORDER BY created_at DESC LIMIT 1
	`, proposalID).Scan(&p.ID, &p.ProposalID, &p.Amount, &p.Currency, &p.Reference,
		&p.PaystackRef, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkSuccess performs the settlement transition as a single conditional
// write keyed on the current status: two concurrent deliveries of the same
// provider event race on one atomic UPDATE and exactly one of them observes
// applied=true. Unknown references and rows no longer PENDING report
// applied=false.
func (r *PaymentRepo) MarkSuccess(ctx context.Context, reference, providerRef string) (uuid.UUID, bool, error) {
	var proposalID uuid.UUID
	err := r.pool.QueryRow(ctx, `
		UPDATE payments SET status = $1, paystack_ref = $2, updated_at = now()
		WHERE reference = $3 AND status = $4
		RETURNING proposal_id
	`, models.PaymentStatusSuccess, providerRef, reference, models.PaymentStatusPending).Scan(&proposalID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return proposalID, true, nil
}
