package services

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// Error taxonomy shared by the HTTP layer. Handlers map these to status
// codes; anything unwrapped is a persistence or internal failure.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrDuplicateProposal = errors.New("proposal already submitted for this campaign")
	ErrCampaignNotOpen   = errors.New("campaign is not accepting proposals")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMalformedEvent    = errors.New("malformed provider event")
)

// isNotFound treats a missing row and an explicit ErrNotFound alike, so
// in-memory stores in tests do not have to produce pgx errors.
func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrNotFound)
}
