package postgres

import (
	"time"

	"github.com/bidround/sports-auction/internal/domain/team"
)

type teamTableModel struct {
	ID           string    `db:"id"`
	EventID      string    `db:"event_id"`
	Name         string    `db:"name"`
	Budget       int       `db:"budget"`
	Spent        int       `db:"spent"`
	PlayersCount int       `db:"players_count"`
	CreatedAt    time.Time `db:"created_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:           m.ID,
		EventID:      m.EventID,
		Name:         m.Name,
		Budget:       m.Budget,
		Spent:        m.Spent,
		PlayersCount: m.PlayersCount,
	}
}
