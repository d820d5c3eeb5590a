package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Creator struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Bio       *string         `json:"bio,omitempty"`
	Niches    []string        `json:"niches"`
	Platforms []string        `json:"platforms"`
	BaseRate  decimal.Decimal `json:"base_rate"`
	AIScore   float64         `json:"ai_score"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreatorPublic is the slice of a creator profile exposed to other
// principals (brand-facing listings, proposal joins).
type CreatorPublic struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Niches    []string  `json:"niches"`
	Platforms []string  `json:"platforms"`
	AIScore   float64   `json:"ai_score"`
}
