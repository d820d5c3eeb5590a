package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types
const (
	NotificationProposalScored  = "PROPOSAL_SCORED"
	NotificationProposalDecided = "PROPOSAL_DECIDED"
	NotificationPaymentReceived = "PAYMENT_RECEIVED"
)

type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
