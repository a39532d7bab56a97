package postgres

import (
	"time"

	"github.com/bidround/sports-auction/internal/domain/event"
)

type eventTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	PINHash   string    `db:"pin_hash"`
	CreatedAt time.Time `db:"created_at"`
}

func (m eventTableModel) toDomain() event.Event {
	return event.Event{
		ID:        m.ID,
		Name:      m.Name,
		PINHash:   m.PINHash,
		CreatedAt: m.CreatedAt,
	}
}
