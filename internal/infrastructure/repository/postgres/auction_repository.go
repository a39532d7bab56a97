package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bidround/sports-auction/internal/domain/auction"
	"github.com/bidround/sports-auction/internal/domain/player"
)

// AuctionRepository performs every auction mutation inside a single
// transaction, locking the state row first so concurrent operator
// actions serialise instead of racing.
type AuctionRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewAuctionRepository(db *sqlx.DB) *AuctionRepository {
	return &AuctionRepository{db: db, now: time.Now}
}

func (r *AuctionRepository) CreateState(ctx context.Context, eventID string) error {
	const query = `
INSERT INTO auction_states (event_id, phase, current_player_id, current_bid)
VALUES ($1, $2, NULL, 0)`

	if _, err := r.db.ExecContext(ctx, query, eventID, string(auction.PhaseIdle)); err != nil {
		return fmt.Errorf("insert auction state: %w", err)
	}

	return nil
}

func (r *AuctionRepository) GetState(ctx context.Context, eventID string) (auction.State, error) {
	const query = `
SELECT event_id, phase, current_player_id, current_bid
FROM auction_states
WHERE event_id = $1`

	var row stateTableModel
	if err := r.db.GetContext(ctx, &row, query, eventID); err != nil {
		return auction.State{}, fmt.Errorf("get auction state: %w", err)
	}

	return row.toDomain(), nil
}

const lockStateQuery = `
SELECT event_id, phase, current_player_id, current_bid
FROM auction_states
WHERE event_id = $1
FOR UPDATE`

func (r *AuctionRepository) StartBid(ctx context.Context, eventID, playerID string, openingBid int) (auction.State, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return auction.State{}, fmt.Errorf("begin tx for start bid: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var stateRow stateTableModel
	if err := tx.GetContext(ctx, &stateRow, lockStateQuery, eventID); err != nil {
		return auction.State{}, fmt.Errorf("lock auction state: %w", err)
	}

	const claimQuery = `
SELECT id
FROM players
WHERE event_id = $1
  AND id = $2
  AND status = $3
FOR UPDATE`

	var claimedID string
	err = tx.GetContext(ctx, &claimedID, claimQuery, eventID, playerID, string(player.StatusAvailable))
	if err != nil {
		if isNotFound(err) {
			return auction.State{}, auction.ErrPlayerUnavailable
		}
		return auction.State{}, fmt.Errorf("claim player for bidding: %w", err)
	}

	const updateQuery = `
UPDATE auction_states
SET phase = $1, current_player_id = $2, current_bid = $3
WHERE event_id = $4`

	if _, err := tx.ExecContext(ctx, updateQuery,
		string(auction.PhaseBidding), playerID, openingBid, eventID); err != nil {
		return auction.State{}, fmt.Errorf("update auction state for start bid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return auction.State{}, fmt.Errorf("commit start bid tx: %w", err)
	}

	return auction.State{
		EventID:         eventID,
		Phase:           auction.PhaseBidding,
		CurrentPlayerID: playerID,
		CurrentBid:      openingBid,
	}, nil
}

func (r *AuctionRepository) PlaceBid(ctx context.Context, eventID string, amount int) (auction.State, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return auction.State{}, fmt.Errorf("begin tx for place bid: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var stateRow stateTableModel
	if err := tx.GetContext(ctx, &stateRow, lockStateQuery, eventID); err != nil {
		return auction.State{}, fmt.Errorf("lock auction state: %w", err)
	}
	if stateRow.Phase != string(auction.PhaseBidding) {
		return auction.State{}, auction.ErrNoCurrentPlayer
	}

	const updateQuery = `
UPDATE auction_states
SET current_bid = $1
WHERE event_id = $2`

	if _, err := tx.ExecContext(ctx, updateQuery, amount, eventID); err != nil {
		return auction.State{}, fmt.Errorf("update current bid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return auction.State{}, fmt.Errorf("commit place bid tx: %w", err)
	}

	state := stateRow.toDomain()
	state.CurrentBid = amount

	return state, nil
}

func (r *AuctionRepository) Sell(ctx context.Context, eventID, teamID string) (auction.Sale, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return auction.Sale{}, fmt.Errorf("begin tx for sell: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var stateRow stateTableModel
	if err := tx.GetContext(ctx, &stateRow, lockStateQuery, eventID); err != nil {
		return auction.Sale{}, fmt.Errorf("lock auction state: %w", err)
	}
	if stateRow.Phase != string(auction.PhaseBidding) || !stateRow.CurrentPlayerID.Valid {
		return auction.Sale{}, auction.ErrNoCurrentPlayer
	}

	const lockTeamQuery = `
SELECT id, event_id, name, budget, spent, players_count, created_at
FROM teams
WHERE event_id = $1
  AND id = $2
FOR UPDATE`

	var teamRow teamTableModel
	if err := tx.GetContext(ctx, &teamRow, lockTeamQuery, eventID, teamID); err != nil {
		if isNotFound(err) {
			return auction.Sale{}, auction.ErrTeamNotFound
		}
		return auction.Sale{}, fmt.Errorf("lock team for sale: %w", err)
	}
	if teamRow.Budget-teamRow.Spent < stateRow.CurrentBid {
		return auction.Sale{}, auction.ErrInsufficientBudget
	}

	const sellPlayerQuery = `
UPDATE players
SET status = $1, sold_to = $2, sold_price = $3
WHERE event_id = $4
  AND id = $5
  AND status = $6
RETURNING name`

	var playerName string
	err = tx.GetContext(ctx, &playerName, sellPlayerQuery,
		string(player.StatusSold), teamID, stateRow.CurrentBid,
		eventID, stateRow.CurrentPlayerID.String, string(player.StatusAvailable))
	if err != nil {
		if isNotFound(err) {
			return auction.Sale{}, auction.ErrPlayerUnavailable
		}
		return auction.Sale{}, fmt.Errorf("mark player sold: %w", err)
	}

	const chargeTeamQuery = `
UPDATE teams
SET spent = spent + $1, players_count = players_count + 1
WHERE event_id = $2
  AND id = $3`

	if _, err := tx.ExecContext(ctx, chargeTeamQuery, stateRow.CurrentBid, eventID, teamID); err != nil {
		return auction.Sale{}, fmt.Errorf("charge team for sale: %w", err)
	}

	soldAt := r.now()

	const logQuery = `
INSERT INTO transaction_logs (event_id, player_name, team_name, amount, created_at)
VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.ExecContext(ctx, logQuery, eventID, playerName, teamRow.Name, stateRow.CurrentBid, soldAt); err != nil {
		return auction.Sale{}, fmt.Errorf("insert transaction log: %w", err)
	}

	const resetQuery = `
UPDATE auction_states
SET phase = $1, current_player_id = NULL, current_bid = 0
WHERE event_id = $2`

	if _, err := tx.ExecContext(ctx, resetQuery, string(auction.PhaseIdle), eventID); err != nil {
		return auction.Sale{}, fmt.Errorf("reset auction state after sale: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return auction.Sale{}, fmt.Errorf("commit sell tx: %w", err)
	}

	return auction.Sale{
		EventID:    eventID,
		PlayerID:   stateRow.CurrentPlayerID.String,
		PlayerName: playerName,
		TeamID:     teamID,
		TeamName:   teamRow.Name,
		Amount:     stateRow.CurrentBid,
		SoldAt:     soldAt,
	}, nil
}

func (r *AuctionRepository) MarkUnsold(ctx context.Context, eventID string) (auction.State, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return auction.State{}, fmt.Errorf("begin tx for mark unsold: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var stateRow stateTableModel
	if err := tx.GetContext(ctx, &stateRow, lockStateQuery, eventID); err != nil {
		return auction.State{}, fmt.Errorf("lock auction state: %w", err)
	}
	if stateRow.Phase != string(auction.PhaseBidding) || !stateRow.CurrentPlayerID.Valid {
		return auction.State{}, auction.ErrNoCurrentPlayer
	}

	const passQuery = `
UPDATE players
SET status = $1
WHERE event_id = $2
  AND id = $3
  AND status = $4`

	if _, err := tx.ExecContext(ctx, passQuery,
		string(player.StatusUnsold), eventID, stateRow.CurrentPlayerID.String,
		string(player.StatusAvailable)); err != nil {
		return auction.State{}, fmt.Errorf("mark player unsold: %w", err)
	}

	const resetQuery = `
UPDATE auction_states
SET phase = $1, current_player_id = NULL, current_bid = 0
WHERE event_id = $2`

	if _, err := tx.ExecContext(ctx, resetQuery, string(auction.PhaseIdle), eventID); err != nil {
		return auction.State{}, fmt.Errorf("reset auction state after pass: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return auction.State{}, fmt.Errorf("commit mark unsold tx: %w", err)
	}

	return auction.State{
		EventID: eventID,
		Phase:   auction.PhaseIdle,
	}, nil
}

func (r *AuctionRepository) History(ctx context.Context, eventID string) ([]auction.LogEntry, error) {
	const query = `
SELECT id, event_id, player_name, team_name, amount, created_at
FROM transaction_logs
WHERE event_id = $1
ORDER BY created_at DESC, id DESC`

	var rows []logTableModel
	if err := r.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, fmt.Errorf("select transaction logs: %w", err)
	}

	out := make([]auction.LogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
