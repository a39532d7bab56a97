package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bidround/sports-auction/internal/domain/auction"
	"github.com/bidround/sports-auction/internal/domain/player"
)

// AuctionRepository serialises all auction mutations behind a single
// mutex, which stands in for the row locks the postgres repository
// takes.
type AuctionRepository struct {
	mu      sync.Mutex
	states  map[string]auction.State
	logs    map[string][]auction.LogEntry
	teams   *TeamRepository
	players *PlayerRepository
	now     func() time.Time
}

func NewAuctionRepository(teams *TeamRepository, players *PlayerRepository) *AuctionRepository {
	return &AuctionRepository{
		states:  make(map[string]auction.State),
		logs:    make(map[string][]auction.LogEntry),
		teams:   teams,
		players: players,
		now:     time.Now,
	}
}

func (r *AuctionRepository) CreateState(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[eventID] = auction.State{EventID: eventID, Phase: auction.PhaseIdle}

	return nil
}

func (r *AuctionRepository) GetState(_ context.Context, eventID string) (auction.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[eventID]
	if !ok {
		return auction.State{}, fmt.Errorf("auction state not found for event %s", eventID)
	}
	return state, nil
}

func (r *AuctionRepository) StartBid(ctx context.Context, eventID, playerID string, openingBid int) (auction.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidate, ok, err := r.players.GetByID(ctx, eventID, playerID)
	if err != nil {
		return auction.State{}, err
	}
	if !ok || candidate.Status != player.StatusAvailable {
		return auction.State{}, auction.ErrPlayerUnavailable
	}

	state := r.states[eventID]
	state.EventID = eventID
	state.Phase = auction.PhaseBidding
	state.CurrentPlayerID = playerID
	state.CurrentBid = openingBid
	r.states[eventID] = state

	return state, nil
}

func (r *AuctionRepository) PlaceBid(_ context.Context, eventID string, amount int) (auction.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[eventID]
	if !ok || state.Phase != auction.PhaseBidding {
		return auction.State{}, auction.ErrNoCurrentPlayer
	}

	state.CurrentBid = amount
	r.states[eventID] = state

	return state, nil
}

func (r *AuctionRepository) Sell(ctx context.Context, eventID, teamID string) (auction.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[eventID]
	if !ok || state.Phase != auction.PhaseBidding {
		return auction.Sale{}, auction.ErrNoCurrentPlayer
	}

	buyer, ok, err := r.teams.GetByID(ctx, eventID, teamID)
	if err != nil {
		return auction.Sale{}, err
	}
	if !ok {
		return auction.Sale{}, auction.ErrTeamNotFound
	}
	if buyer.Budget-buyer.Spent < state.CurrentBid {
		return auction.Sale{}, auction.ErrInsufficientBudget
	}

	sold, ok, err := r.players.GetByID(ctx, eventID, state.CurrentPlayerID)
	if err != nil {
		return auction.Sale{}, err
	}
	if !ok || sold.Status != player.StatusAvailable {
		return auction.Sale{}, auction.ErrPlayerUnavailable
	}

	buyer.Spent += state.CurrentBid
	buyer.PlayersCount++
	r.teams.update(buyer)

	sold.Status = player.StatusSold
	sold.SoldTo = buyer.ID
	sold.SoldPrice = state.CurrentBid
	r.players.update(sold)

	sale := auction.Sale{
		EventID:    eventID,
		PlayerID:   sold.ID,
		PlayerName: sold.Name,
		TeamID:     buyer.ID,
		TeamName:   buyer.Name,
		Amount:     state.CurrentBid,
		SoldAt:     r.now(),
	}
	r.logs[eventID] = append(r.logs[eventID], auction.LogEntry{
		EventID:    eventID,
		PlayerName: sale.PlayerName,
		TeamName:   sale.TeamName,
		Amount:     sale.Amount,
		CreatedAt:  sale.SoldAt,
	})

	state.Phase = auction.PhaseIdle
	state.CurrentPlayerID = ""
	state.CurrentBid = 0
	r.states[eventID] = state

	return sale, nil
}

func (r *AuctionRepository) MarkUnsold(ctx context.Context, eventID string) (auction.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[eventID]
	if !ok || state.Phase != auction.PhaseBidding {
		return auction.State{}, auction.ErrNoCurrentPlayer
	}

	passed, ok, err := r.players.GetByID(ctx, eventID, state.CurrentPlayerID)
	if err != nil {
		return auction.State{}, err
	}
	if ok {
		passed.Status = player.StatusUnsold
		r.players.update(passed)
	}

	state.Phase = auction.PhaseIdle
	state.CurrentPlayerID = ""
	state.CurrentBid = 0
	r.states[eventID] = state

	return state, nil
}

func (r *AuctionRepository) History(_ context.Context, eventID string) ([]auction.LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.logs[eventID]
	out := make([]auction.LogEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}

	return out, nil
}
