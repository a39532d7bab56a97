package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	CreateBatch(ctx context.Context, items []Team) error
	ListByEvent(ctx context.Context, eventID string) ([]Team, error)
	GetByID(ctx context.Context, eventID, teamID string) (Team, bool, error)
}
