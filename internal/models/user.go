package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleBrand   = "BRAND"
	RoleCreator = "CREATOR"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Brand struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Website     *string   `json:"website,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
