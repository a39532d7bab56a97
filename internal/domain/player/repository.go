package player

import "context"

// Counts partitions an event's roster by auction outcome.
type Counts struct {
	Remaining int
	Sold      int
	Unsold    int
}

// SoldRow is a sold player joined with the buying team's name, used by
// reporting reads.
type SoldRow struct {
	Player
	TeamName string
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	CreateBatch(ctx context.Context, items []Player) error
	GetByID(ctx context.Context, eventID, playerID string) (Player, bool, error)
	ListByStatus(ctx context.Context, eventID string, status Status) ([]Player, error)
	// ListSold returns sold players joined with team names, ordered by
	// team name then player name.
	ListSold(ctx context.Context, eventID string) ([]SoldRow, error)
	CountByStatus(ctx context.Context, eventID string) (Counts, error)
}
