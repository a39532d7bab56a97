package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bidround/sports-auction/internal/domain/event"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, item event.Event) error {
	const query = `
INSERT INTO auction_events (id, name, pin_hash, created_at)
VALUES (:id, :name, :pin_hash, :created_at)`

	insertSQL, args, err := sqlx.Named(query, map[string]any{
		"id":         item.ID,
		"name":       item.Name,
		"pin_hash":   item.PINHash,
		"created_at": item.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("bind insert auction event query: %w", err)
	}
	insertSQL = r.db.Rebind(insertSQL)
	if _, err := r.db.ExecContext(ctx, insertSQL, args...); err != nil {
		return fmt.Errorf("insert auction event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	const query = `
SELECT id, name, pin_hash, created_at
FROM auction_events
WHERE id = $1`

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, eventID); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get auction event: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	const query = `
SELECT id, name, pin_hash, created_at
FROM auction_events
ORDER BY created_at DESC`

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list auction events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *EventRepository) Active(ctx context.Context) (event.Event, bool, error) {
	const query = `
SELECT e.id, e.name, e.pin_hash, e.created_at
FROM active_event a
JOIN auction_events e ON e.id = a.event_id
WHERE a.id = 1`

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get active auction event: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *EventRepository) SetActive(ctx context.Context, eventID string) error {
	const query = `
INSERT INTO active_event (id, event_id)
VALUES (1, $1)
ON CONFLICT (id) DO UPDATE SET event_id = EXCLUDED.event_id`

	if _, err := r.db.ExecContext(ctx, query, eventID); err != nil {
		return fmt.Errorf("set active auction event: %w", err)
	}

	return nil
}
