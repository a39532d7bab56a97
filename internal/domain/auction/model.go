package auction

import (
	"errors"
	"fmt"
	"time"
)

// Phase is the explicit auction state: either nothing is on the block
// (idle) or one player is under bid (bidding).
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseBidding Phase = "bidding"
)

// State is the single mutable auction pointer for an event.
// CurrentPlayerID and CurrentBid are meaningful only while bidding.
type State struct {
	EventID         string
	Phase           Phase
	CurrentPlayerID string
	CurrentBid      int
}

func (s State) Validate() error {
	if s.EventID == "" {
		return fmt.Errorf("state event id is required")
	}
	switch s.Phase {
	case PhaseIdle:
		if s.CurrentPlayerID != "" {
			return fmt.Errorf("idle state cannot hold a current player")
		}
	case PhaseBidding:
		if s.CurrentPlayerID == "" {
			return fmt.Errorf("bidding state requires a current player")
		}
	default:
		return fmt.Errorf("state phase %q is not valid", s.Phase)
	}

	return nil
}

// Sale is the completed outcome of a SELL action.
type Sale struct {
	EventID    string
	PlayerID   string
	PlayerName string
	TeamID     string
	TeamName   string
	Amount     int
	SoldAt     time.Time
}

// LogEntry is one append-only audit record of a completed sale.
// Entries are denormalized by name so the history survives later
// roster edits, and they are never updated or deleted.
type LogEntry struct {
	EventID    string
	PlayerName string
	TeamName   string
	Amount     int
	CreatedAt  time.Time
}

var (
	// ErrNoCurrentPlayer is returned by actions that need a player on
	// the block while the state is idle.
	ErrNoCurrentPlayer = errors.New("no player is currently up for bid")
	// ErrInsufficientBudget is returned when a SELL would push the
	// team budget below zero.
	ErrInsufficientBudget = errors.New("team budget is below the current bid")
	// ErrPlayerUnavailable is returned when the spun player was sold
	// or marked unsold between candidate selection and the state lock.
	ErrPlayerUnavailable = errors.New("player is no longer available")
	// ErrTeamNotFound is returned by Sell when the target team does
	// not belong to the event.
	ErrTeamNotFound = errors.New("team not found for sale")
)
