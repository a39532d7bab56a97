package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/bidround/sports-auction/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string][]player.Player
	teams   *TeamRepository
}

// NewPlayerRepository joins sold rows against teams, so it shares the
// team store.
func NewPlayerRepository(teams *TeamRepository) *PlayerRepository {
	return &PlayerRepository{
		players: make(map[string][]player.Player),
		teams:   teams,
	}
}

func (r *PlayerRepository) CreateBatch(_ context.Context, items []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.players[item.EventID] = append(r.players[item.EventID], item)
	}

	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, eventID, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.players[eventID] {
		if item.ID == playerID {
			return item, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) ListByStatus(_ context.Context, eventID string, status player.Status) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []player.Player
	for _, item := range r.players[eventID] {
		if item.Status == status {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *PlayerRepository) ListSold(ctx context.Context, eventID string) ([]player.SoldRow, error) {
	teams, err := r.teams.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []player.SoldRow
	for _, item := range r.players[eventID] {
		if item.Status != player.StatusSold {
			continue
		}
		out = append(out, player.SoldRow{Player: item, TeamName: names[item.SoldTo]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TeamName != out[j].TeamName {
			return out[i].TeamName < out[j].TeamName
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *PlayerRepository) CountByStatus(_ context.Context, eventID string) (player.Counts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var counts player.Counts
	for _, item := range r.players[eventID] {
		switch item.Status {
		case player.StatusSold:
			counts.Sold++
		case player.StatusUnsold:
			counts.Unsold++
		default:
			counts.Remaining++
		}
	}

	return counts, nil
}

// update replaces the stored player in place. Callers hold no lock.
func (r *PlayerRepository) update(item player.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.players[item.EventID]
	for i := range list {
		if list[i].ID == item.ID {
			list[i] = item
			return
		}
	}
}
