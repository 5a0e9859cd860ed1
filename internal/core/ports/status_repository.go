package ports

import (
	"context"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

// StatusRepository persists client status checks.
type StatusRepository interface {
	Insert(ctx context.Context, check *domain.StatusCheck) error
	List(ctx context.Context, limit int64) ([]domain.StatusCheck, error)
}
