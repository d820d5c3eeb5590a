package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/creator-marketplace/backend/internal/models"
	"go.uber.org/zap"
)

// Scorer evaluates a proposal pitch against a campaign and the submitting
// creator's profile. Implementations are best effort: every error is treated
// by callers as "proceed without a score", never as a fatal failure.
type Scorer interface {
	Evaluate(ctx context.Context, pitch string, campaign *models.Campaign, creator *models.Creator) (*ScoreResult, error)
}

type ScoreResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// ScoringClient talks to the external AI scoring service.
type ScoringClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

func NewScoringClient(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *ScoringClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ScoringClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type scoreRequest struct {
	Pitch    string `json:"pitch"`
	Campaign struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Requirements string   `json:"requirements,omitempty"`
		Niche        []string `json:"niche"`
	} `json:"campaign"`
	Creator struct {
		Niches  []string `json:"niches"`
		AIScore float64  `json:"ai_score"`
	} `json:"creator"`
}

func (c *ScoringClient) Evaluate(ctx context.Context, pitch string, campaign *models.Campaign, creator *models.Creator) (*ScoreResult, error) {
	var req scoreRequest
	req.Pitch = pitch
	req.Campaign.Title = campaign.Title
	req.Campaign.Description = campaign.Description
	if campaign.Requirements != nil {
		req.Campaign.Requirements = *campaign.Requirements
	}
	req.Campaign.Niche = campaign.Niche
	req.Creator.Niches = creator.Niches
	req.Creator.AIScore = creator.AIScore

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/score", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("scoring service unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("scoring service returned %d: %s", resp.StatusCode, string(b))
	}

	var result ScoreResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("scoring service returned malformed response: %w", err)
	}

	// The service promises 0-100 but is not trusted.
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}
	return &result, nil
}
