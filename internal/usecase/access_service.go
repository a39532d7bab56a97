package usecase

import (
	"context"
	"fmt"

	"github.com/bidround/sports-auction/internal/domain/event"
)

// AccessService gates admin controls behind the active event's PIN.
type AccessService struct {
	eventRepo event.Repository
}

func NewAccessService(eventRepo event.Repository) *AccessService {
	return &AccessService{eventRepo: eventRepo}
}

// VerifyPIN checks a submitted PIN against the active event. The
// comparison runs in constant time over the stored hash.
func (s *AccessService) VerifyPIN(ctx context.Context, pin string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccessService.VerifyPIN")
	defer span.End()

	active, exists, err := s.eventRepo.Active(ctx)
	if err != nil {
		return fmt.Errorf("get active event: %w", err)
	}
	if !exists {
		return ErrNoActiveEvent
	}

	if !active.PINMatches(pin) {
		return fmt.Errorf("%w: incorrect PIN", ErrUnauthorized)
	}

	return nil
}
