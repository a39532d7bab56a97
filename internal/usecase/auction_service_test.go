package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/bidround/sports-auction/internal/domain/auction"
	"github.com/bidround/sports-auction/internal/domain/player"
)

// seedAuction creates an active event with two teams of budget 1000
// and the three-player test roster.
func seedAuction(t *testing.T, h *harness) CreateEventResult {
	t.Helper()

	result, err := h.setup.CreateEvent(t.Context(), CreateEventInput{
		Name:           "Spring Cup",
		AdminPIN:       "9876",
		TeamCount:      2,
		Budget:         1000,
		RosterFilename: "roster.csv",
		Roster:         strings.NewReader(testRosterCSV),
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}

	return result
}

func TestAuctionService_SpinBidSell(t *testing.T) {
	h := newHarness()
	seeded := seedAuction(t, h)

	// Candidates come back sorted by name, so pick 0 puts Alpha on
	// the block.
	h.auction.pick = func(int) int { return 0 }

	spun, err := h.auction.Do(t.Context(), ActionInput{Action: "spin"})
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if spun.State.Phase != auction.PhaseBidding {
		t.Fatalf("spin should open bidding, got phase %q", spun.State.Phase)
	}
	if spun.State.CurrentBid != 100 {
		t.Fatalf("opening bid should be the base price: got=%d want=100", spun.State.CurrentBid)
	}

	bid, err := h.auction.Do(t.Context(), ActionInput{Action: "BID", Amount: 500})
	if err != nil {
		t.Fatalf("bid: %v", err)
	}
	if bid.State.CurrentBid != 500 {
		t.Fatalf("unexpected bid amount: got=%d want=500", bid.State.CurrentBid)
	}

	buyer := seeded.Teams[0]
	sold, err := h.auction.Do(t.Context(), ActionInput{Action: "SELL", TeamID: buyer.ID})
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if sold.Sale == nil {
		t.Fatalf("sell should report a sale")
	}
	if sold.Sale.PlayerName != "Alpha" || sold.Sale.TeamName != "Team 1" || sold.Sale.Amount != 500 {
		t.Fatalf("unexpected sale: %+v", sold.Sale)
	}
	if sold.State.Phase != auction.PhaseIdle {
		t.Fatalf("sell should reset to idle, got %q", sold.State.Phase)
	}

	teams, err := h.teams.ListByEvent(t.Context(), seeded.Event.ID)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if teams[0].Spent != 500 || teams[0].PlayersCount != 1 {
		t.Fatalf("buyer not charged: spent=%d players=%d", teams[0].Spent, teams[0].PlayersCount)
	}
	if teams[1].Spent != 0 {
		t.Fatalf("other team should be untouched, spent=%d", teams[1].Spent)
	}

	history, err := h.states.History(t.Context(), seeded.Event.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected one log entry, got %d", len(history))
	}
	if history[0].PlayerName != "Alpha" || history[0].Amount != 500 {
		t.Fatalf("unexpected log entry: %+v", history[0])
	}

	counts, err := h.players.CountByStatus(t.Context(), seeded.Event.ID)
	if err != nil {
		t.Fatalf("count players: %v", err)
	}
	if counts.Sold != 1 || counts.Remaining != 2 {
		t.Fatalf("unexpected counters: %+v", counts)
	}
}

func TestAuctionService_Sell_InsufficientBudget(t *testing.T) {
	h := newHarness()
	seeded := seedAuction(t, h)
	h.auction.pick = func(int) int { return 0 }

	if _, err := h.auction.Do(t.Context(), ActionInput{Action: "SPIN"}); err != nil {
		t.Fatalf("spin: %v", err)
	}
	if _, err := h.auction.Do(t.Context(), ActionInput{Action: "BID", Amount: 1500}); err != nil {
		t.Fatalf("bid: %v", err)
	}

	_, err := h.auction.Do(t.Context(), ActionInput{Action: "SELL", TeamID: seeded.Teams[0].ID})
	if !errors.Is(err, auction.ErrInsufficientBudget) {
		t.Fatalf("expected ErrInsufficientBudget, got %v", err)
	}

	// The round stays open so the admin can retry with another team
	// or lower the bid.
	state, err := h.states.GetState(t.Context(), seeded.Event.ID)
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.Phase != auction.PhaseBidding || state.CurrentBid != 1500 {
		t.Fatalf("failed sell must not change state: %+v", state)
	}

	teams, err := h.teams.ListByEvent(t.Context(), seeded.Event.ID)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if teams[0].Spent != 0 || teams[0].PlayersCount != 0 {
		t.Fatalf("failed sell must not charge the team: %+v", teams[0])
	}
}

func TestAuctionService_Spin_EmptyPool(t *testing.T) {
	h := newHarness()

	// No roster: the available pool starts empty.
	if _, err := h.setup.CreateEvent(t.Context(), CreateEventInput{TeamCount: 2, Budget: 1000}); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	result, err := h.auction.Do(t.Context(), ActionInput{Action: "SPIN"})
	if err != nil {
		t.Fatalf("spin on empty pool should be a no-op, got %v", err)
	}
	if !result.EmptyPool {
		t.Fatalf("expected EmptyPool to be set")
	}
	if result.State.Phase != auction.PhaseIdle {
		t.Fatalf("empty spin must stay idle, got %q", result.State.Phase)
	}
}

func TestAuctionService_UnknownAction(t *testing.T) {
	h := newHarness()
	seedAuction(t, h)

	_, err := h.auction.Do(t.Context(), ActionInput{Action: "RESET"})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestAuctionService_Bid_NegativeAmount(t *testing.T) {
	h := newHarness()
	seedAuction(t, h)

	_, err := h.auction.Do(t.Context(), ActionInput{Action: "BID", Amount: -1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuctionService_ActionsRequireCurrentPlayer(t *testing.T) {
	h := newHarness()
	seeded := seedAuction(t, h)

	for _, input := range []ActionInput{
		{Action: "BID", Amount: 100},
		{Action: "SELL", TeamID: seeded.Teams[0].ID},
		{Action: "UNSOLD"},
	} {
		_, err := h.auction.Do(t.Context(), input)
		if !errors.Is(err, auction.ErrNoCurrentPlayer) {
			t.Fatalf("action %s while idle: expected ErrNoCurrentPlayer, got %v", input.Action, err)
		}
	}
}

func TestAuctionService_Sell_RequiresTeam(t *testing.T) {
	h := newHarness()
	seedAuction(t, h)
	h.auction.pick = func(int) int { return 0 }

	if _, err := h.auction.Do(t.Context(), ActionInput{Action: "SPIN"}); err != nil {
		t.Fatalf("spin: %v", err)
	}

	_, err := h.auction.Do(t.Context(), ActionInput{Action: "SELL"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing team, got %v", err)
	}

	_, err = h.auction.Do(t.Context(), ActionInput{Action: "SELL", TeamID: "no-such-team"})
	if !errors.Is(err, auction.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestAuctionService_Unsold_MovesPlayerOut(t *testing.T) {
	h := newHarness()
	seeded := seedAuction(t, h)
	h.auction.pick = func(int) int { return 0 }

	if _, err := h.auction.Do(t.Context(), ActionInput{Action: "SPIN"}); err != nil {
		t.Fatalf("spin: %v", err)
	}

	result, err := h.auction.Do(t.Context(), ActionInput{Action: "UNSOLD"})
	if err != nil {
		t.Fatalf("unsold: %v", err)
	}
	if result.State.Phase != auction.PhaseIdle {
		t.Fatalf("unsold should reset to idle, got %q", result.State.Phase)
	}

	unsold, err := h.players.ListByStatus(t.Context(), seeded.Event.ID, player.StatusUnsold)
	if err != nil {
		t.Fatalf("list unsold: %v", err)
	}
	if len(unsold) != 1 || unsold[0].Name != "Alpha" {
		t.Fatalf("unexpected unsold pool: %+v", unsold)
	}

	available, err := h.players.ListByStatus(t.Context(), seeded.Event.ID, player.StatusAvailable)
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(available) != 2 {
		t.Fatalf("unsold player must leave the spin pool, %d left", len(available))
	}
}

func TestAuctionService_NoActiveEvent(t *testing.T) {
	h := newHarness()

	_, err := h.auction.Do(t.Context(), ActionInput{Action: "SPIN"})
	if !errors.Is(err, ErrNoActiveEvent) {
		t.Fatalf("expected ErrNoActiveEvent, got %v", err)
	}
}
