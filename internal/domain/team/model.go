package team

import "fmt"

// Team is one bidding franchise inside an auction event. Budget is the
// starting allowance; spent and players_count only grow, and
// budget - spent is what the team can still pay.
type Team struct {
	ID           string
	EventID      string
	Name         string
	Budget       int
	Spent        int
	PlayersCount int
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.EventID == "" {
		return fmt.Errorf("team event id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Budget < 0 {
		return fmt.Errorf("team budget cannot be negative")
	}

	return nil
}
