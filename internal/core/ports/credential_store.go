package ports

import (
	"context"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

// CredentialStore is the persistence seam for identities and their
// credentials. Any backing store (document DB, in-memory test double)
// satisfying lookup-by-email and create fulfils the auth core's needs.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
