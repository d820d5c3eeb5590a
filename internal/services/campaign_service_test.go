package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/creator-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type campaignFixture struct {
	svc       *fakeCampaignStore
	brands    *fakeBrandStore
	publisher *fakePublisher
	service   *CampaignService

	brandUserID uuid.UUID
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	t.Helper()

	f := &campaignFixture{
		svc:         newFakeCampaignStore(),
		brands:      newFakeBrandStore(),
		publisher:   newFakePublisher(),
		brandUserID: uuid.New(),
	}
	f.brands.put(&models.Brand{ID: uuid.New(), UserID: f.brandUserID, CompanyName: "Acme"})
	f.service = NewCampaignService(f.brands, f.svc, newFakeAuditStore(), f.publisher, zap.NewNop())
	return f
}

func validCampaignInput() CreateCampaignInput {
	return CreateCampaignInput{
		Title:       "Spring launch",
		Description: "Short video push for the new line",
		Budget:      decimal.NewFromInt(5000),
		Deadline:    time.Now().Add(30 * 24 * time.Hour),
		Niche:       []string{"fashion"},
	}
}

func TestCreateCampaign(t *testing.T) {
	f := newCampaignFixture(t)

	c, err := f.service.Create(context.Background(), f.brandUserID, validCampaignInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Status != models.CampaignStatusActive {
		t.Errorf("status = %s, want %s", c.Status, models.CampaignStatusActive)
	}
	if c.ID == uuid.Nil {
		t.Error("campaign id was not assigned")
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	f := newCampaignFixture(t)

	cases := []struct {
		name   string
		mutate func(*CreateCampaignInput)
	}{
		{"empty title", func(in *CreateCampaignInput) { in.Title = "" }},
		{"empty description", func(in *CreateCampaignInput) { in.Description = "" }},
		{"zero budget", func(in *CreateCampaignInput) { in.Budget = decimal.Zero }},
		{"negative budget", func(in *CreateCampaignInput) { in.Budget = decimal.NewFromInt(-10) }},
		{"past deadline", func(in *CreateCampaignInput) { in.Deadline = time.Now().Add(-time.Hour) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCampaignInput()
			tc.mutate(&in)
			if _, err := f.service.Create(context.Background(), f.brandUserID, in); !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateCampaignWithoutBrandProfile(t *testing.T) {
	f := newCampaignFixture(t)

	if _, err := f.service.Create(context.Background(), uuid.New(), validCampaignInput()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListActiveFiltersStatusAndNiche(t *testing.T) {
	f := newCampaignFixture(t)

	active, err := f.service.Create(context.Background(), f.brandUserID, validCampaignInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	other := validCampaignInput()
	other.Niche = []string{"gaming"}
	paused, err := f.service.Create(context.Background(), f.brandUserID, other)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := f.service.UpdateStatus(context.Background(), f.brandUserID, paused.ID, models.CampaignStatusPaused); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	list, err := f.service.ListActive(context.Background(), nil, 20, 0)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(list) != 1 || list[0].ID != active.ID {
		t.Fatalf("ListActive returned %d campaigns, want only the active one", len(list))
	}

	niche := "gaming"
	list, err = f.service.ListActive(context.Background(), &niche, 20, 0)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("ListActive(gaming) = %d campaigns, want 0 since it is paused", len(list))
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newCampaignFixture(t)

	c, err := f.service.Create(context.Background(), f.brandUserID, validCampaignInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := f.service.UpdateStatus(context.Background(), f.brandUserID, c.ID, models.CampaignStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if _, err := f.service.UpdateStatus(context.Background(), f.brandUserID, c.ID, models.CampaignStatusActive); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateStatusForeignBrand(t *testing.T) {
	f := newCampaignFixture(t)

	c, err := f.service.Create(context.Background(), f.brandUserID, validCampaignInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	otherUser := uuid.New()
	f.brands.put(&models.Brand{ID: uuid.New(), UserID: otherUser, CompanyName: "Rival"})
	if _, err := f.service.UpdateStatus(context.Background(), otherUser, c.ID, models.CampaignStatusPaused); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
