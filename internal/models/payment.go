package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment statuses
const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusSuccess  = "SUCCESS"
	PaymentStatusFailed   = "FAILED"
	PaymentStatusRefunded = "REFUNDED"
)

// Valid payment transitions: from -> []to.
// PENDING -> SUCCESS happens only through a verified provider webhook.
// There is no path out of SUCCESS back to PENDING.
var ValidPaymentTransitions = map[string][]string{
	PaymentStatusPending:  {PaymentStatusSuccess, PaymentStatusFailed},
	PaymentStatusSuccess:  {PaymentStatusRefunded},
	PaymentStatusFailed:   {},
	PaymentStatusRefunded: {},
}

func IsValidPaymentTransition(from, to string) bool {
	return isValidTransition(ValidPaymentTransitions, from, to)
}

type Payment struct {
	ID          uuid.UUID       `json:"id"`
	ProposalID  uuid.UUID       `json:"proposal_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Reference   string          `json:"reference"`
	PaystackRef *string         `json:"paystack_ref,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
