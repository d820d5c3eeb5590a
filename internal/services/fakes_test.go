package services

import (
	"context"
	"sync"

	"github.com/creator-marketplace/backend/internal/events"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
)

// In-memory stores backing the service tests. All of them are safe for
// concurrent use so tests can hammer them from multiple goroutines.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

type fakeBrandStore struct {
	mu     sync.Mutex
	brands map[uuid.UUID]*models.Brand // keyed by user id
}

func newFakeBrandStore() *fakeBrandStore {
	return &fakeBrandStore{brands: make(map[uuid.UUID]*models.Brand)}
}

func (f *fakeBrandStore) Create(ctx context.Context, b *models.Brand) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	f.put(b)
	return nil
}

func (f *fakeBrandStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Brand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.brands[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBrandStore) put(b *models.Brand) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.brands[b.UserID] = b
}

type fakeCreatorStore struct {
	mu       sync.Mutex
	creators map[uuid.UUID]*models.Creator
}

func newFakeCreatorStore() *fakeCreatorStore {
	return &fakeCreatorStore{creators: make(map[uuid.UUID]*models.Creator)}
}

func (f *fakeCreatorStore) Create(ctx context.Context, c *models.Creator) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.put(c)
	return nil
}

func (f *fakeCreatorStore) ListPublic(ctx context.Context, filter repositories.CreatorFilter) ([]models.CreatorPublic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.CreatorPublic
	for _, c := range f.creators {
		out = append(out, models.CreatorPublic{
			ID:        c.ID,
			Niches:    c.Niches,
			Platforms: c.Platforms,
			AIScore:   c.AIScore,
		})
	}
	return out, nil
}

func (f *fakeCreatorStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Creator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.creators[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCreatorStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Creator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.creators {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCreatorStore) put(c *models.Creator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[c.ID] = c
}

type fakeCampaignStore struct {
	mu        sync.Mutex
	campaigns map[uuid.UUID]*models.Campaign
}

func newFakeCampaignStore() *fakeCampaignStore {
	return &fakeCampaignStore{campaigns: make(map[uuid.UUID]*models.Campaign)}
}

func (f *fakeCampaignStore) Create(ctx context.Context, c *models.Campaign) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	f.campaigns[c.ID] = &cp
	return nil
}

func (f *fakeCampaignStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCampaignStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return ErrNotFound
	}
	c.Status = status
	return nil
}

func (f *fakeCampaignStore) List(ctx context.Context, filter repositories.CampaignFilter) ([]models.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Campaign
	for _, c := range f.campaigns {
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.BrandID != nil && c.BrandID != *filter.BrandID {
			continue
		}
		if filter.Niche != nil {
			found := false
			for _, n := range c.Niche {
				if n == *filter.Niche {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, *c)
	}
	return out, nil
}

type fakeProposalStore struct {
	mu        sync.Mutex
	proposals map[uuid.UUID]*models.Proposal
}

func newFakeProposalStore() *fakeProposalStore {
	return &fakeProposalStore{proposals: make(map[uuid.UUID]*models.Proposal)}
}

func (f *fakeProposalStore) Create(ctx context.Context, p *models.Proposal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	f.proposals[p.ID] = &cp
	return nil
}

func (f *fakeProposalStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Proposal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.proposals[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProposalStore) ExistsForCampaignAndCreator(ctx context.Context, campaignID, creatorID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.proposals {
		if p.CampaignID == campaignID && p.CreatorID == creatorID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProposalStore) ListByCampaignWithCreator(ctx context.Context, campaignID uuid.UUID) ([]models.ProposalWithCreator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ProposalWithCreator
	for _, p := range f.proposals {
		if p.CampaignID == campaignID {
			out = append(out, models.ProposalWithCreator{Proposal: *p})
		}
	}
	return out, nil
}

func (f *fakeProposalStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.proposals[id]
	if !ok {
		return ErrNotFound
	}
	p.Status = status
	return nil
}

func (f *fakeProposalStore) SetScore(ctx context.Context, id uuid.UUID, score float64, feedback string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.proposals[id]
	if !ok {
		return false, ErrNotFound
	}
	if p.AIScore != nil {
		return false, nil
	}
	p.AIScore = &score
	p.AIFeedback = &feedback
	return true, nil
}

func (f *fakeProposalStore) ListUnscored(ctx context.Context, limit int) ([]models.Proposal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Proposal
	for _, p := range f.proposals {
		if p.AIScore == nil && p.Status == models.ProposalStatusPending {
			out = append(out, *p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakePaymentStore struct {
	mu       sync.Mutex
	payments map[string]*models.Payment // keyed by reference
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: make(map[string]*models.Payment)}
}

func (f *fakePaymentStore) Create(ctx context.Context, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	f.payments[p.Reference] = &cp
	return nil
}

func (f *fakePaymentStore) GetByReference(ctx context.Context, reference string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[reference]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// MarkSuccess mirrors the conditional UPDATE in the pgx repository: the
// transition applies only while the payment is still PENDING.
func (f *fakePaymentStore) MarkSuccess(ctx context.Context, reference, providerRef string) (uuid.UUID, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[reference]
	if !ok {
		return uuid.Nil, false, nil
	}
	if p.Status != models.PaymentStatusPending {
		return uuid.Nil, false, nil
	}
	p.Status = models.PaymentStatusSuccess
	ref := providerRef
	p.PaystackRef = &ref
	return p.ProposalID, true, nil
}

type fakeNotificationStore struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{}
}

func (f *fakeNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	f.notifications = append(f.notifications, *n)
	return nil
}

func (f *fakeNotificationStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notifications {
		if f.notifications[i].ID == id && f.notifications[i].UserID == userID {
			f.notifications[i].Read = true
		}
	}
	return nil
}

func (f *fakeNotificationStore) byType(t string) []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.notifications {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

type fakeAuditStore struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func newFakeAuditStore() *fakeAuditStore {
	return &fakeAuditStore{}
}

func (f *fakeAuditStore) Log(ctx context.Context, entry models.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []events.Event
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{}
}

func (f *fakePublisher) Publish(ctx context.Context, stream string, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, event)
	return nil
}

func (f *fakePublisher) byType(t string) []events.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []events.Event
	for _, e := range f.published {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type fakeScorer struct {
	result *ScoreResult
	err    error
}

func (f *fakeScorer) Evaluate(ctx context.Context, pitch string, campaign *models.Campaign, creator *models.Creator) (*ScoreResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
