package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "DRAFT"
	CampaignStatusActive    = "ACTIVE"
	CampaignStatusPaused    = "PAUSED"
	CampaignStatusCompleted = "COMPLETED"
	CampaignStatusCancelled = "CANCELLED"
)

// Valid campaign transitions: from -> []to
var ValidCampaignTransitions = map[string][]string{
	CampaignStatusDraft:     {CampaignStatusActive, CampaignStatusCancelled},
	CampaignStatusActive:    {CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusCancelled},
	CampaignStatusPaused:    {CampaignStatusActive, CampaignStatusCancelled},
	CampaignStatusCompleted: {},
	CampaignStatusCancelled: {},
}

func IsValidCampaignTransition(from, to string) bool {
	return isValidTransition(ValidCampaignTransitions, from, to)
}

func isValidTransition(table map[string][]string, from, to string) bool {
	allowed, ok := table[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

type Campaign struct {
	ID           uuid.UUID       `json:"id"`
	BrandID      uuid.UUID       `json:"brand_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Budget       decimal.Decimal `json:"budget"`
	Deadline     time.Time       `json:"deadline"`
	Niche        []string        `json:"niche"`
	Platforms    []string        `json:"platforms"`
	Requirements *string         `json:"requirements,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
