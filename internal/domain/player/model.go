package player

import "fmt"

// Status is the auction outcome for a player. A player is exactly one
// of available, sold, or unsold; the two terminal outcomes can never
// hold at the same time.
type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusUnsold    Status = "unsold"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusSold, StatusUnsold:
		return true
	default:
		return false
	}
}

// Player is one roster entry up for auction inside an event.
// SoldTo and SoldPrice are meaningful only when Status is sold.
type Player struct {
	ID         string
	EventID    string
	Name       string
	Email      string
	Department string
	Category   string
	Position   string
	BasePrice  int
	ImageURL   string
	Status     Status
	SoldTo     string
	SoldPrice  int
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.EventID == "" {
		return fmt.Errorf("player event id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.BasePrice < 0 {
		return fmt.Errorf("player base price cannot be negative")
	}
	if !p.Status.Valid() {
		return fmt.Errorf("player status %q is not valid", p.Status)
	}
	if p.Status == StatusSold && p.SoldTo == "" {
		return fmt.Errorf("sold player must reference a team")
	}
	if p.Status != StatusSold && p.SoldTo != "" {
		return fmt.Errorf("only sold players may reference a team")
	}

	return nil
}
