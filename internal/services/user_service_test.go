package services

import (
	"context"
	"errors"
	"testing"

	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/models"
	"go.uber.org/zap"
)

func newUserService(t *testing.T) (*UserService, *fakeUserStore) {
	t.Helper()
	users := newFakeUserStore()
	cfg := config.Load()
	svc := NewUserService(users, newFakeBrandStore(), newFakeCreatorStore(), newFakeNotificationStore(), cfg, zap.NewNop())
	return svc, users
}

func brandSignup() SignupInput {
	return SignupInput{
		Email:       "Brand@Example.com",
		Password:    "password123",
		Name:        "Acme",
		Role:        models.RoleBrand,
		CompanyName: "Acme Inc",
	}
}

func TestSignupBrand(t *testing.T) {
	svc, _ := newUserService(t)

	result, err := svc.Signup(context.Background(), brandSignup())
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if result.Token == "" {
		t.Error("token is empty")
	}
	if result.User.Email != "brand@example.com" {
		t.Errorf("email = %s, want lowercased", result.User.Email)
	}
	if result.User.PasswordHash == "password123" {
		t.Error("password stored in plain text")
	}
}

func TestSignupCreatorProfile(t *testing.T) {
	svc, _ := newUserService(t)

	result, err := svc.Signup(context.Background(), SignupInput{
		Email:    "c@example.com",
		Password: "password123",
		Name:     "Casey",
		Role:     models.RoleCreator,
		Niches:   []string{"tech"},
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	profile, err := svc.GetProfile(context.Background(), result.User.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Creator == nil {
		t.Fatal("creator profile missing")
	}
	if profile.Brand != nil {
		t.Error("unexpected brand profile")
	}
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newUserService(t)

	cases := []struct {
		name   string
		mutate func(*SignupInput)
	}{
		{"bad email", func(in *SignupInput) { in.Email = "nope" }},
		{"short password", func(in *SignupInput) { in.Password = "short" }},
		{"empty name", func(in *SignupInput) { in.Name = "" }},
		{"bad role", func(in *SignupInput) { in.Role = "ADMIN" }},
		{"brand without company", func(in *SignupInput) { in.CompanyName = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := brandSignup()
			tc.mutate(&in)
			if _, err := svc.Signup(context.Background(), in); !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)

	if _, err := svc.Signup(context.Background(), brandSignup()); err != nil {
		t.Fatalf("first Signup: %v", err)
	}
	if _, err := svc.Signup(context.Background(), brandSignup()); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newUserService(t)

	if _, err := svc.Signup(context.Background(), brandSignup()); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	result, err := svc.Login(context.Background(), "brand@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Error("token is empty")
	}

	if _, err := svc.Login(context.Background(), "brand@example.com", "wrong-password"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("wrong password err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "password123"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("unknown email err = %v, want ErrUnauthorized", err)
	}
}
