package postgres

import (
	"database/sql"
	"time"

	"github.com/bidround/sports-auction/internal/domain/player"
)

type playerTableModel struct {
	ID         string         `db:"id"`
	EventID    string         `db:"event_id"`
	Name       string         `db:"name"`
	Email      string         `db:"email"`
	Department string         `db:"department"`
	Category   string         `db:"category"`
	Position   string         `db:"position"`
	BasePrice  int            `db:"base_price"`
	ImageURL   string         `db:"image_url"`
	Status     string         `db:"status"`
	SoldTo     sql.NullString `db:"sold_to"`
	SoldPrice  int            `db:"sold_price"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:         m.ID,
		EventID:    m.EventID,
		Name:       m.Name,
		Email:      m.Email,
		Department: m.Department,
		Category:   m.Category,
		Position:   m.Position,
		BasePrice:  m.BasePrice,
		ImageURL:   m.ImageURL,
		Status:     player.Status(m.Status),
		SoldTo:     m.SoldTo.String,
		SoldPrice:  m.SoldPrice,
	}
}
