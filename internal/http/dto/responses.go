package dto

type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

// WebhookAckResponse is the acknowledgement the payment provider expects on
// every accepted delivery, including replays.
type WebhookAckResponse struct {
	Received bool `json:"received"`
}
