package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/bidround/sports-auction/internal/domain/auction"
	"github.com/bidround/sports-auction/internal/domain/event"
	"github.com/bidround/sports-auction/internal/domain/player"
	"github.com/bidround/sports-auction/internal/domain/team"
)

// Snapshot is the dashboard view of the active auction: who is on the
// block, what every team has left, the sale history, and roster
// counters.
type Snapshot struct {
	Event         event.Event
	State         auction.State
	CurrentPlayer *player.Player
	Teams         []team.Team
	History       []auction.LogEntry
	Stats         player.Counts
}

type StateService struct {
	eventRepo   event.Repository
	teamRepo    team.Repository
	playerRepo  player.Repository
	auctionRepo auction.Repository
}

func NewStateService(
	eventRepo event.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	auctionRepo auction.Repository,
) *StateService {
	return &StateService{
		eventRepo:   eventRepo,
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		auctionRepo: auctionRepo,
	}
}

// Snapshot assembles the dashboard payload. The independent reads
// (teams, history, counters) fan out concurrently; the state row and
// the current player resolve afterwards so the player lookup can use
// the freshly read pointer.
func (s *StateService) Snapshot(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StateService.Snapshot")
	defer span.End()

	active, exists, err := s.eventRepo.Active(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get active event: %w", err)
	}
	if !exists {
		return Snapshot{}, ErrNoActiveEvent
	}

	out := Snapshot{Event: active}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		teams, err := s.teamRepo.ListByEvent(ctx, active.ID)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		out.Teams = teams
		return nil
	})
	p.Go(func(ctx context.Context) error {
		history, err := s.auctionRepo.History(ctx, active.ID)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		out.History = history
		return nil
	})
	p.Go(func(ctx context.Context) error {
		counts, err := s.playerRepo.CountByStatus(ctx, active.ID)
		if err != nil {
			return fmt.Errorf("count players: %w", err)
		}
		out.Stats = counts
		return nil
	})
	if err := p.Wait(); err != nil {
		return Snapshot{}, err
	}

	state, err := s.auctionRepo.GetState(ctx, active.ID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get auction state: %w", err)
	}
	out.State = state

	if state.Phase == auction.PhaseBidding {
		current, found, err := s.playerRepo.GetByID(ctx, active.ID, state.CurrentPlayerID)
		if err != nil {
			return Snapshot{}, fmt.Errorf("get current player: %w", err)
		}
		if found {
			out.CurrentPlayer = &current
		}
	}

	return out, nil
}
