package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bidround/sports-auction/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) CreateBatch(ctx context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}

	const query = `
INSERT INTO teams (id, event_id, name, budget, spent, players_count)
VALUES (:id, :event_id, :name, :budget, :spent, :players_count)`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for team batch: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertSQL, args, err := sqlx.Named(query, map[string]any{
			"id":            item.ID,
			"event_id":      item.EventID,
			"name":          item.Name,
			"budget":        item.Budget,
			"spent":         item.Spent,
			"players_count": item.PlayersCount,
		})
		if err != nil {
			return fmt.Errorf("bind insert team %s query: %w", item.Name, err)
		}
		insertSQL = tx.Rebind(insertSQL)
		if _, err := tx.ExecContext(ctx, insertSQL, args...); err != nil {
			return fmt.Errorf("insert team %s: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team batch tx: %w", err)
	}

	return nil
}

func (r *TeamRepository) ListByEvent(ctx context.Context, eventID string) ([]team.Team, error) {
	const query = `
SELECT id, event_id, name, budget, spent, players_count, created_at
FROM teams
WHERE event_id = $1
ORDER BY created_at, id`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, fmt.Errorf("select teams by event: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, eventID, teamID string) (team.Team, bool, error) {
	const query = `
SELECT id, event_id, name, budget, spent, players_count, created_at
FROM teams
WHERE event_id = $1
  AND id = $2`

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, eventID, teamID); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return row.toDomain(), true, nil
}
