package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/bidround/sports-auction/internal/domain/auction"
	"github.com/bidround/sports-auction/internal/domain/event"
	"github.com/bidround/sports-auction/internal/infrastructure/repository/memory"
	auctionmock "github.com/bidround/sports-auction/internal/mocks/domain/auction"
	eventmock "github.com/bidround/sports-auction/internal/mocks/domain/event"
)

func TestAuctionService_Bid_StorageErrorUsingMockery(t *testing.T) {
	t.Parallel()

	eventRepo := eventmock.NewRepository(t)
	auctionRepo := auctionmock.NewRepository(t)

	teams := memory.NewTeamRepository()
	players := memory.NewPlayerRepository(teams)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAuctionService(eventRepo, players, auctionRepo, logger)

	active := event.Event{ID: "evt-1", Name: "Spring Cup"}
	eventRepo.
		On("Active", mock.MatchedBy(func(context.Context) bool { return true })).
		Return(active, true, nil).
		Once()

	storageErr := errors.New("deadlock detected")
	auctionRepo.
		On("PlaceBid", mock.MatchedBy(func(context.Context) bool { return true }), "evt-1", 250).
		Return(auction.State{}, storageErr).
		Once()

	_, err := service.Do(context.Background(), ActionInput{Action: "BID", Amount: 250})
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
}
