package auction

import "context"

// Repository owns the per-event auction state row and the sale log.
//
// Every mutation runs as one transaction holding an exclusive lock on
// the state row (Sell also locks the target team row) so that two
// concurrent admin requests cannot race on the same bid. A failed
// mutation rolls back completely; callers never observe partial
// writes.
type Repository interface {
	CreateState(ctx context.Context, eventID string) error
	GetState(ctx context.Context, eventID string) (State, error)

	// StartBid puts playerID on the block at openingBid. It fails with
	// ErrPlayerUnavailable if the player is not available anymore.
	StartBid(ctx context.Context, eventID, playerID string, openingBid int) (State, error)
	// PlaceBid replaces the current bid amount. Requires bidding phase.
	PlaceBid(ctx context.Context, eventID string, amount int) (State, error)
	// Sell closes the round: debits the team, marks the player sold,
	// appends a log entry, and resets the state to idle, atomically.
	// Fails with ErrInsufficientBudget when budget < current bid and
	// ErrNoCurrentPlayer when idle.
	Sell(ctx context.Context, eventID, teamID string) (Sale, error)
	// MarkUnsold sends the current player to the unsold pool and
	// resets the state to idle. Requires bidding phase.
	MarkUnsold(ctx context.Context, eventID string) (State, error)

	History(ctx context.Context, eventID string) ([]LogEntry, error)
}
