package repositories

import (
	"context"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BrandRepo struct {
	pool *pgxpool.Pool
}

func NewBrandRepo(pool *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{pool: pool}
}

func (r *BrandRepo) Create(ctx context.Context, b *models.Brand) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO brands (user_id, company_name, website)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, b.UserID, b.CompanyName, b.Website).Scan(&b.ID, &b.CreatedAt)
}

func (r *BrandRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, company_name, website, created_at
		FROM brands WHERE id = $1
	`, id).Scan(&b.ID, &b.UserID, &b.CompanyName, &b.Website, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, company_name, website, created_at
		FROM brands WHERE user_id = $1
	`, userID).Scan(&b.ID, &b.UserID, &b.CompanyName, &b.Website, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
