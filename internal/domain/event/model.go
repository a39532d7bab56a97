// Package event defines auction events and the active-event pointer.
package event

import (
	"fmt"
	"time"
)

// Event is one auction night. At most one event is active at a time;
// past events stay readable as archives.
type Event struct {
	ID        string
	Name      string
	PINHash   string
	CreatedAt time.Time
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.Name == "" {
		return fmt.Errorf("event name is required")
	}
	if e.PINHash == "" {
		return fmt.Errorf("event pin hash is required")
	}

	return nil
}
