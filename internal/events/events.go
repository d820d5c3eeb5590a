package events

import "context"

// Stream carrying all pipeline lifecycle events.
const StreamPipeline = "events:pipeline"

// Event types
const (
	EventProposalSubmitted     = "proposal_submitted"
	EventProposalScored        = "proposal_scored"
	EventProposalStatusChanged = "proposal_status_changed"
	EventCampaignStatusChanged = "campaign_status_changed"
	EventPaymentReceived       = "payment_received"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
