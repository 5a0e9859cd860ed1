package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/ports"
)

// demoPassword is shared by every seeded account. Demo environments only.
const demoPassword = "password123"

var demoUsers = []domain.User{
	{
		Name:  "John Smith",
		Email: "admin@saas.com",
		Role:  domain.RoleSaasAdmin,
	},
	{
		Name:   "Sarah Johnson",
		Email:  "superadmin@tenant1.com",
		Role:   domain.RoleSuperAdmin,
		Tenant: "QuickMart",
	},
	{
		Name:  "Mike Davis",
		Email: "manager@store1.com",
		Role:  domain.RoleStoreManager,
		Store: "Downtown QuickMart",
	},
	{
		Name:     "Lisa Chen",
		Email:    "vendor@foodie.com",
		Role:     domain.RoleVendor,
		Business: "Foodie Express",
	},
	{
		Name:  "Carlos Rodriguez",
		Email: "delivery@fast.com",
		Role:  domain.RoleDeliveryPartner,
	},
	{
		Name:  "Emma Wilson",
		Email: "customer@email.com",
		Role:  domain.RoleCustomer,
	},
	{
		Name:  "David Kim",
		Email: "support@help.com",
		Role:  domain.RoleSupportStaff,
	},
}

// SeedDemoUsers inserts the demo identity table, one account per role,
// skipping accounts that already exist.
func SeedDemoUsers(ctx context.Context, repo *CredentialRepository, hasher ports.PasswordHasher, log zerolog.Logger) error {
	hash, err := hasher.Hash(demoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	now := time.Now().UTC()
	for _, u := range demoUsers {
		if _, err := repo.FindByEmail(ctx, u.Email); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("seed lookup %s: %w", u.Email, err)
		}

		u.ID = uuid.NewString()
		u.PasswordHash = hash
		u.CreatedAt = now

		if _, err := repo.Create(ctx, &u); err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				continue
			}
			return fmt.Errorf("seed %s: %w", u.Email, err)
		}
		log.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("seeded demo user")
	}
	return nil
}
