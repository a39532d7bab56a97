package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/bidround/sports-auction/internal/domain/event"
	eventmock "github.com/bidround/sports-auction/internal/mocks/domain/event"
)

func TestAccessService_VerifyPIN_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	eventRepo := eventmock.NewRepository(t)
	service := NewAccessService(eventRepo)

	active := event.Event{ID: "evt-1", Name: "Spring Cup", PINHash: event.HashPIN("4321")}
	eventRepo.
		On("Active", mock.MatchedBy(func(context.Context) bool { return true })).
		Return(active, true, nil).
		Once()

	if err := service.VerifyPIN(ctx, "4321"); err != nil {
		t.Fatalf("verify pin: %v", err)
	}
}

func TestAccessService_VerifyPIN_WrongPINUsingMockery(t *testing.T) {
	t.Parallel()

	eventRepo := eventmock.NewRepository(t)
	service := NewAccessService(eventRepo)

	active := event.Event{ID: "evt-1", Name: "Spring Cup", PINHash: event.HashPIN("4321")}
	eventRepo.
		On("Active", mock.MatchedBy(func(context.Context) bool { return true })).
		Return(active, true, nil).
		Once()

	err := service.VerifyPIN(context.Background(), "0000")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAccessService_VerifyPIN_NoActiveEventUsingMockery(t *testing.T) {
	t.Parallel()

	eventRepo := eventmock.NewRepository(t)
	service := NewAccessService(eventRepo)

	eventRepo.
		On("Active", mock.MatchedBy(func(context.Context) bool { return true })).
		Return(event.Event{}, false, nil).
		Once()

	err := service.VerifyPIN(context.Background(), "4321")
	if !errors.Is(err, ErrNoActiveEvent) {
		t.Fatalf("expected ErrNoActiveEvent, got %v", err)
	}
}

func TestAccessService_VerifyPIN_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	eventRepo := eventmock.NewRepository(t)
	service := NewAccessService(eventRepo)

	repoErr := errors.New("connection refused")
	eventRepo.
		On("Active", mock.MatchedBy(func(context.Context) bool { return true })).
		Return(event.Event{}, false, repoErr).
		Once()

	err := service.VerifyPIN(context.Background(), "4321")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error to propagate, got %v", err)
	}
}
