package repositories

import (
	"context"
	"fmt"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreatorRepo struct {
	pool *pgxpool.Pool
}

func NewCreatorRepo(pool *pgxpool.Pool) *CreatorRepo {
	return &CreatorRepo{pool: pool}
}

func (r *CreatorRepo) Create(ctx context.Context, c *models.Creator) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO creators (user_id, bio, niches, platforms, base_rate)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, ai_score, created_at
	`, c.UserID, c.Bio, c.Niches, c.Platforms, c.BaseRate).Scan(&c.ID, &c.AIScore, &c.CreatedAt)
}

func (r *CreatorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Creator, error) {
	var c models.Creator
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, bio, niches, platforms, base_rate, ai_score, created_at
		FROM creators WHERE id = $1
	`, id).Scan(&c.ID, &c.UserID, &c.Bio, &c.Niches, &c.Platforms, &c.BaseRate, &c.AIScore, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CreatorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Creator, error) {
	var c models.Creator
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, bio, niches, platforms, base_rate, ai_score, created_at
		FROM creators WHERE user_id = $1
	`, userID).Scan(&c.ID, &c.UserID, &c.Bio, &c.Niches, &c.Platforms, &c.BaseRate, &c.AIScore, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

type CreatorFilter struct {
	Niche    *string
	Platform *string
	Limit    int
	Offset   int
}

// ListPublic returns creator discovery cards joined with user identity.
func (r *CreatorRepo) ListPublic(ctx context.Context, f CreatorFilter) ([]models.CreatorPublic, error) {
	query := `
		SELECT c.id, u.name, u.email, c.niches, c.platforms, c.ai_score
		FROM creators c
		JOIN users u ON u.id = c.user_id
	`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.Niche != nil {
		where = append(where, fmt.Sprintf("$%d = ANY(c.niches)", argIdx))
		args = append(args, *f.Niche)
		argIdx++
	}
	if f.Platform != nil {
		where = append(where, fmt.Sprintf("$%d = ANY(c.platforms)", argIdx))
		args = append(args, *f.Platform)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE "
		for i, w := range where {
			if i > 0 {
				query += " AND "
			}
			query += w
		}
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY c.ai_score DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creators []models.CreatorPublic
	for rows.Next() {
		var c models.CreatorPublic
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Niches, &c.Platforms, &c.AIScore); err != nil {
			return nil, err
		}
		creators = append(creators, c)
	}
	return creators, nil
}
