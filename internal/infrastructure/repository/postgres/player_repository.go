package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bidround/sports-auction/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) CreateBatch(ctx context.Context, items []player.Player) error {
	if len(items) == 0 {
		return nil
	}

	const query = `
INSERT INTO players (
    id,
    event_id,
    name,
    email,
    department,
    category,
    position,
    base_price,
    image_url,
    status
) VALUES (:id, :event_id, :name, :email, :department, :category, :position, :base_price, :image_url, :status)`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for player batch: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertSQL, args, err := sqlx.Named(query, map[string]any{
			"id":         item.ID,
			"event_id":   item.EventID,
			"name":       item.Name,
			"email":      item.Email,
			"department": item.Department,
			"category":   item.Category,
			"position":   item.Position,
			"base_price": item.BasePrice,
			"image_url":  item.ImageURL,
			"status":     string(item.Status),
		})
		if err != nil {
			return fmt.Errorf("bind insert player %s query: %w", item.Name, err)
		}
		insertSQL = tx.Rebind(insertSQL)
		if _, err := tx.ExecContext(ctx, insertSQL, args...); err != nil {
			return fmt.Errorf("insert player %s: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit player batch tx: %w", err)
	}

	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, eventID, playerID string) (player.Player, bool, error) {
	const query = `
SELECT id, event_id, name, email, department, category, position,
       base_price, image_url, status, sold_to, sold_price, created_at
FROM players
WHERE event_id = $1
  AND id = $2`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, eventID, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) ListByStatus(ctx context.Context, eventID string, status player.Status) ([]player.Player, error) {
	const query = `
SELECT id, event_id, name, email, department, category, position,
       base_price, image_url, status, sold_to, sold_price, created_at
FROM players
WHERE event_id = $1
  AND status = $2
ORDER BY name, id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, eventID, string(status)); err != nil {
		return nil, fmt.Errorf("select players by status: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) ListSold(ctx context.Context, eventID string) ([]player.SoldRow, error) {
	const query = `
SELECT p.id, p.event_id, p.name, p.email, p.department, p.category, p.position,
       p.base_price, p.image_url, p.status, p.sold_to, p.sold_price, p.created_at,
       t.name AS team_name
FROM players p
JOIN teams t ON t.id = p.sold_to
WHERE p.event_id = $1
  AND p.status = $2
ORDER BY t.name, p.name`

	var rows []struct {
		playerTableModel
		TeamName string `db:"team_name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, eventID, string(player.StatusSold)); err != nil {
		return nil, fmt.Errorf("select sold players: %w", err)
	}

	out := make([]player.SoldRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.SoldRow{
			Player:   row.toDomain(),
			TeamName: row.TeamName,
		})
	}

	return out, nil
}

func (r *PlayerRepository) CountByStatus(ctx context.Context, eventID string) (player.Counts, error) {
	const query = `
SELECT
    COUNT(*) FILTER (WHERE status = $2) AS remaining,
    COUNT(*) FILTER (WHERE status = $3) AS sold,
    COUNT(*) FILTER (WHERE status = $4) AS unsold
FROM players
WHERE event_id = $1`

	var row struct {
		Remaining int `db:"remaining"`
		Sold      int `db:"sold"`
		Unsold    int `db:"unsold"`
	}
	err := r.db.GetContext(ctx, &row, query, eventID,
		string(player.StatusAvailable), string(player.StatusSold), string(player.StatusUnsold))
	if err != nil {
		return player.Counts{}, fmt.Errorf("count players by status: %w", err)
	}

	return player.Counts{
		Remaining: row.Remaining,
		Sold:      row.Sold,
		Unsold:    row.Unsold,
	}, nil
}
