package ports

import (
	"context"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

// RegisterInput carries the public registration form fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Profile, error)
	Register(ctx context.Context, input RegisterInput) (*domain.Profile, error)
	Refresh(ctx context.Context, raw string) (string, error)
	// Logout reports whether a token was actually revoked; it never fails
	// from the caller's perspective.
	Logout(ctx context.Context, raw string) bool
	ForgotPassword(ctx context.Context, email string) string
}
