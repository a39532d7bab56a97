package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/bidround/sports-auction/internal/domain/auction"
	"github.com/bidround/sports-auction/internal/domain/event"
	"github.com/bidround/sports-auction/internal/domain/player"
)

// Auction actions accepted by Do. Anything else is ErrUnknownAction.
const (
	ActionSpin   = "SPIN"
	ActionBid    = "BID"
	ActionSell   = "SELL"
	ActionUnsold = "UNSOLD"
)

// ActionInput is one admin command against the active event.
type ActionInput struct {
	Action string
	Amount int
	TeamID string
}

// ActionResult reports the state after a successful action. Sale is
// set only for SELL. EmptyPool marks a SPIN that found no remaining
// players and therefore changed nothing.
type ActionResult struct {
	State     auction.State
	Sale      *auction.Sale
	EmptyPool bool
}

// AuctionService is the action dispatcher for the four-step bidding
// loop. All storage mutations happen inside single transactions owned
// by the auction repository; this layer validates input, resolves the
// active event, and picks SPIN candidates.
type AuctionService struct {
	eventRepo   event.Repository
	playerRepo  player.Repository
	auctionRepo auction.Repository
	logger      *slog.Logger
	pick        func(n int) int
}

func NewAuctionService(
	eventRepo event.Repository,
	playerRepo player.Repository,
	auctionRepo auction.Repository,
	logger *slog.Logger,
) *AuctionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuctionService{
		eventRepo:   eventRepo,
		playerRepo:  playerRepo,
		auctionRepo: auctionRepo,
		logger:      logger,
		pick:        rand.IntN,
	}
}

func (s *AuctionService) Do(ctx context.Context, input ActionInput) (ActionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Do")
	defer span.End()

	active, exists, err := s.eventRepo.Active(ctx)
	if err != nil {
		return ActionResult{}, fmt.Errorf("get active event: %w", err)
	}
	if !exists {
		return ActionResult{}, ErrNoActiveEvent
	}

	action := strings.ToUpper(strings.TrimSpace(input.Action))
	switch action {
	case ActionSpin:
		return s.spin(ctx, active.ID)
	case ActionBid:
		return s.bid(ctx, active.ID, input.Amount)
	case ActionSell:
		return s.sell(ctx, active.ID, input.TeamID)
	case ActionUnsold:
		return s.unsold(ctx, active.ID)
	default:
		return ActionResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, input.Action)
	}
}

// spin picks uniformly among players that are neither sold nor unsold
// and opens bidding at the player's base price. An empty pool is a
// successful no-op.
func (s *AuctionService) spin(ctx context.Context, eventID string) (ActionResult, error) {
	candidates, err := s.playerRepo.ListByStatus(ctx, eventID, player.StatusAvailable)
	if err != nil {
		return ActionResult{}, fmt.Errorf("list spin candidates: %w", err)
	}
	if len(candidates) == 0 {
		state, err := s.auctionRepo.GetState(ctx, eventID)
		if err != nil {
			return ActionResult{}, fmt.Errorf("get auction state: %w", err)
		}
		return ActionResult{State: state, EmptyPool: true}, nil
	}

	chosen := candidates[s.pick(len(candidates))]
	state, err := s.auctionRepo.StartBid(ctx, eventID, chosen.ID, chosen.BasePrice)
	if err != nil {
		return ActionResult{}, fmt.Errorf("start bid for player %s: %w", chosen.ID, err)
	}

	s.logger.InfoContext(ctx, "player spun",
		"event_id", eventID,
		"player_id", chosen.ID,
		"opening_bid", chosen.BasePrice,
	)

	return ActionResult{State: state}, nil
}

func (s *AuctionService) bid(ctx context.Context, eventID string, amount int) (ActionResult, error) {
	if amount < 0 {
		return ActionResult{}, fmt.Errorf("%w: bid amount cannot be negative", ErrInvalidInput)
	}

	state, err := s.auctionRepo.PlaceBid(ctx, eventID, amount)
	if err != nil {
		return ActionResult{}, fmt.Errorf("place bid: %w", err)
	}

	return ActionResult{State: state}, nil
}

func (s *AuctionService) sell(ctx context.Context, eventID, teamID string) (ActionResult, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return ActionResult{}, fmt.Errorf("%w: team id is required for SELL", ErrInvalidInput)
	}

	sale, err := s.auctionRepo.Sell(ctx, eventID, teamID)
	if err != nil {
		return ActionResult{}, fmt.Errorf("sell current player: %w", err)
	}

	s.logger.InfoContext(ctx, "player sold",
		"event_id", eventID,
		"player", sale.PlayerName,
		"team", sale.TeamName,
		"amount", sale.Amount,
	)

	return ActionResult{
		State: auction.State{EventID: eventID, Phase: auction.PhaseIdle},
		Sale:  &sale,
	}, nil
}

func (s *AuctionService) unsold(ctx context.Context, eventID string) (ActionResult, error) {
	state, err := s.auctionRepo.MarkUnsold(ctx, eventID)
	if err != nil {
		return ActionResult{}, fmt.Errorf("mark current player unsold: %w", err)
	}

	return ActionResult{State: state}, nil
}
