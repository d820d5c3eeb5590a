package dto

import "time"

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"` // BRAND / CREATOR

	// Brand profile
	CompanyName string  `json:"company_name,omitempty"`
	Website     *string `json:"website,omitempty"`

	// Creator profile
	Bio       *string  `json:"bio,omitempty"`
	Niches    []string `json:"niches,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
	BaseRate  string   `json:"base_rate,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateCampaignRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Budget       string    `json:"budget"`
	Deadline     time.Time `json:"deadline"`
	Niche        []string  `json:"niche,omitempty"`
	Platforms    []string  `json:"platforms,omitempty"`
	Requirements *string   `json:"requirements,omitempty"`
}

type UpdateCampaignStatusRequest struct {
	Status string `json:"status"`
}

type SubmitProposalRequest struct {
	Pitch string `json:"pitch"`
	Rate  string `json:"rate"`
}

type DecideProposalRequest struct {
	Status string `json:"status"` // REVIEWING / ACCEPTED / REJECTED
}
