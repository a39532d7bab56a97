package event

import "context"

// Repository stores events and the singleton active-event pointer.
// SetActive repoints the singleton; it never deletes older events.
type Repository interface {
	Create(ctx context.Context, item Event) error
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
	// List returns every event, newest first.
	List(ctx context.Context) ([]Event, error)
	// Active returns the event the active pointer references, if any.
	Active(ctx context.Context) (Event, bool, error)
	SetActive(ctx context.Context, eventID string) error
}
