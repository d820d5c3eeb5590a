package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Proposal statuses
const (
	ProposalStatusPending   = "PENDING"
	ProposalStatusReviewing = "REVIEWING"
	ProposalStatusAccepted  = "ACCEPTED"
	ProposalStatusRejected  = "REJECTED"
	ProposalStatusCompleted = "COMPLETED"
)

// Valid proposal transitions: from -> []to.
// COMPLETED is reached only through a confirmed payment.
var ValidProposalTransitions = map[string][]string{
	ProposalStatusPending:   {ProposalStatusReviewing, ProposalStatusAccepted, ProposalStatusRejected},
	ProposalStatusReviewing: {ProposalStatusAccepted, ProposalStatusRejected},
	ProposalStatusAccepted:  {ProposalStatusCompleted},
	ProposalStatusRejected:  {},
	ProposalStatusCompleted: {},
}

func IsValidProposalTransition(from, to string) bool {
	return isValidTransition(ValidProposalTransitions, from, to)
}

type Proposal struct {
	ID         uuid.UUID       `json:"id"`
	CampaignID uuid.UUID       `json:"campaign_id"`
	CreatorID  uuid.UUID       `json:"creator_id"`
	Pitch      string          `json:"pitch"`
	Rate       decimal.Decimal `json:"rate"`
	AIScore    *float64        `json:"ai_score"`
	AIFeedback *string         `json:"ai_feedback"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Scored reports whether the scoring service produced a result for this
// proposal. Score and feedback are written together or not at all.
func (p *Proposal) Scored() bool {
	return p.AIScore != nil && p.AIFeedback != nil
}

// ProposalWithCreator embeds Proposal and adds the submitting creator's
// public profile to avoid N+1 queries in campaign listings.
type ProposalWithCreator struct {
	Proposal
	Creator CreatorPublic `json:"creator"`
}
