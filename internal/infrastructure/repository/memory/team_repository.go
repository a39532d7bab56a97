package memory

import (
	"context"
	"sync"

	"github.com/bidround/sports-auction/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[string][]team.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{teams: make(map[string][]team.Team)}
}

func (r *TeamRepository) CreateBatch(_ context.Context, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.teams[item.EventID] = append(r.teams[item.EventID], item)
	}

	return nil
}

func (r *TeamRepository) ListByEvent(_ context.Context, eventID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, len(r.teams[eventID]))
	copy(out, r.teams[eventID])

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, eventID, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams[eventID] {
		if item.ID == teamID {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

// update replaces the stored team in place. Callers hold no lock.
func (r *TeamRepository) update(item team.Team) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.teams[item.EventID]
	for i := range list {
		if list[i].ID == item.ID {
			list[i] = item
			return
		}
	}
}
