package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/ports"
)

const statusListLimit = 1000

// StatusService records and lists client status checks.
type StatusService struct {
	repo ports.StatusRepository
	now  func() time.Time
}

func NewStatusService(repo ports.StatusRepository) *StatusService {
	return &StatusService{repo: repo, now: time.Now}
}

func (s *StatusService) Create(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]domain.StatusCheck, error) {
	return s.repo.List(ctx, statusListLimit)
}
