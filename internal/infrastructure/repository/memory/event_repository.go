package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/bidround/sports-auction/internal/domain/event"
)

type EventRepository struct {
	mu       sync.RWMutex
	events   map[string]event.Event
	order    []string
	activeID string
}

func NewEventRepository() *EventRepository {
	return &EventRepository{events: make(map[string]event.Event)}
}

func (r *EventRepository) Create(_ context.Context, item event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.events[item.ID] = item

	return nil
}

func (r *EventRepository) GetByID(_ context.Context, eventID string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.events[eventID]
	return item, ok, nil
}

func (r *EventRepository) List(_ context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first; reverse insertion order breaks creation-time ties.
	out := make([]event.Event, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.events[r.order[i]])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *EventRepository) Active(_ context.Context) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.activeID == "" {
		return event.Event{}, false, nil
	}
	item, ok := r.events[r.activeID]

	return item, ok, nil
}

func (r *EventRepository) SetActive(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activeID = eventID

	return nil
}
