package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with authentication material.
type User struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Role           Role       `json:"role"`
	InternshipRole *string    `json:"internshipRole,omitempty"`
	Department     *string    `json:"department,omitempty"`
	Duration       *string    `json:"duration,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// RegisterParams contains the fields accepted on registration.
type RegisterParams struct {
	Name           string
	Email          string
	Password       string
	Role           Role
	InternshipRole *string
	Department     *string
	Duration       *string
	StartDate      *time.Time
}

// Session is the result of a successful registration or login.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
