package postgres

import (
	"database/sql"
	"time"

	"github.com/bidround/sports-auction/internal/domain/auction"
)

type stateTableModel struct {
	EventID         string         `db:"event_id"`
	Phase           string         `db:"phase"`
	CurrentPlayerID sql.NullString `db:"current_player_id"`
	CurrentBid      int            `db:"current_bid"`
}

func (m stateTableModel) toDomain() auction.State {
	return auction.State{
		EventID:         m.EventID,
		Phase:           auction.Phase(m.Phase),
		CurrentPlayerID: m.CurrentPlayerID.String,
		CurrentBid:      m.CurrentBid,
	}
}

type logTableModel struct {
	ID         int64     `db:"id"`
	EventID    string    `db:"event_id"`
	PlayerName string    `db:"player_name"`
	TeamName   string    `db:"team_name"`
	Amount     int       `db:"amount"`
	CreatedAt  time.Time `db:"created_at"`
}

func (m logTableModel) toDomain() auction.LogEntry {
	return auction.LogEntry{
		EventID:    m.EventID,
		PlayerName: m.PlayerName,
		TeamName:   m.TeamName,
		Amount:     m.Amount,
		CreatedAt:  m.CreatedAt,
	}
}
