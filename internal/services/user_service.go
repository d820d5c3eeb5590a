package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/creator-marketplace/backend/internal/auth"
	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo    UserStore
	brandRepo   BrandStore
	creatorRepo CreatorStore
	notifRepo   NotificationStore
	cfg         *config.Config
	log         *zap.Logger
}

func NewUserService(
	userRepo UserStore,
	brandRepo BrandStore,
	creatorRepo CreatorStore,
	notifRepo NotificationStore,
	cfg *config.Config,
	log *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		brandRepo:   brandRepo,
		creatorRepo: creatorRepo,
		notifRepo:   notifRepo,
		cfg:         cfg,
		log:         log,
	}
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string

	// Brand profile
	CompanyName string
	Website     *string

	// Creator profile
	Bio       *string
	Niches    []string
	Platforms []string
	BaseRate  decimal.Decimal
}

type AuthResult struct {
	User  *models.User
	Token string
}

// Signup registers a user together with their role profile and returns a
// signed token.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Role != models.RoleBrand && input.Role != models.RoleCreator {
		return nil, fmt.Errorf("%w: role must be %s or %s", ErrValidation, models.RoleBrand, models.RoleCreator)
	}
	if input.Role == models.RoleBrand && input.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name is required for brands", ErrValidation)
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrValidation)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Role:         input.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	switch input.Role {
	case models.RoleBrand:
		if err := s.brandRepo.Create(ctx, &models.Brand{
			UserID:      user.ID,
			CompanyName: input.CompanyName,
			Website:     input.Website,
		}); err != nil {
			return nil, err
		}
	case models.RoleCreator:
		if err := s.creatorRepo.Create(ctx, &models.Creator{
			UserID:    user.ID,
			Bio:       input.Bio,
			Niches:    input.Niches,
			Platforms: input.Platforms,
			BaseRate:  input.BaseRate,
		}); err != nil {
			return nil, err
		}
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Email, user.Role, s.cfg.JWTExpiration)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.String()), zap.String("role", user.Role))
	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrUnauthorized
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Email, user.Role, s.cfg.JWTExpiration)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Profile bundles the user row with whichever role profile exists.
type Profile struct {
	User    *models.User    `json:"user"`
	Brand   *models.Brand   `json:"brand,omitempty"`
	Creator *models.Creator `json:"creator,omitempty"`
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}

	profile := &Profile{User: user}
	switch user.Role {
	case models.RoleBrand:
		if brand, err := s.brandRepo.GetByUserID(ctx, userID); err == nil {
			profile.Brand = brand
		}
	case models.RoleCreator:
		if creator, err := s.creatorRepo.GetByUserID(ctx, userID); err == nil {
			profile.Creator = creator
		}
	}
	return profile, nil
}

func (s *UserService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	return s.notifRepo.ListByUser(ctx, userID, limit, offset)
}

func (s *UserService) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifRepo.MarkRead(ctx, id, userID)
}

// DiscoverCreators lists public creator profiles for brand-side browsing.
func (s *UserService) DiscoverCreators(ctx context.Context, f repositories.CreatorFilter) ([]models.CreatorPublic, error) {
	return s.creatorRepo.ListPublic(ctx, f)
}
