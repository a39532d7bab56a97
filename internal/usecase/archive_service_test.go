package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestArchiveService_ListAndDetail(t *testing.T) {
	h := newHarness()

	h.setup.now = func() time.Time { return time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC) }
	first, err := h.setup.CreateEvent(t.Context(), CreateEventInput{
		Name:           "Spring Cup",
		TeamCount:      2,
		Budget:         1000,
		RosterFilename: "roster.csv",
		Roster:         strings.NewReader(testRosterCSV),
	})
	if err != nil {
		t.Fatalf("create first event: %v", err)
	}

	// Sell one player so the archive has content, then start a new
	// event, which repoints the active pointer away from the first.
	h.auction.pick = func(int) int { return 0 }
	if _, err := h.auction.Do(t.Context(), ActionInput{Action: "SPIN"}); err != nil {
		t.Fatalf("spin: %v", err)
	}
	if _, err := h.auction.Do(t.Context(), ActionInput{Action: "SELL", TeamID: first.Teams[0].ID}); err != nil {
		t.Fatalf("sell: %v", err)
	}

	h.setup.now = func() time.Time { return time.Date(2026, 3, 8, 18, 0, 0, 0, time.UTC) }
	second, err := h.setup.CreateEvent(t.Context(), CreateEventInput{Name: "Summer Cup"})
	if err != nil {
		t.Fatalf("create second event: %v", err)
	}

	events, err := h.archive.List(t.Context())
	if err != nil {
		t.Fatalf("list archives: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("unexpected archive count: got=%d want=2", len(events))
	}
	if events[0].ID != second.Event.ID || events[1].ID != first.Event.ID {
		t.Fatalf("archives must be newest first: %v", []string{events[0].Name, events[1].Name})
	}

	detail, err := h.archive.Detail(t.Context(), first.Event.ID)
	if err != nil {
		t.Fatalf("archive detail: %v", err)
	}
	if detail.Event.Name != "Spring Cup" {
		t.Fatalf("unexpected event: %+v", detail.Event)
	}
	if len(detail.Teams) != 2 {
		t.Fatalf("unexpected team count: %d", len(detail.Teams))
	}
	if len(detail.Sold) != 1 || detail.Sold[0].Name != "Alpha" || detail.Sold[0].TeamName != "Team 1" {
		t.Fatalf("unexpected sold list: %+v", detail.Sold)
	}
	if len(detail.Unsold) != 0 {
		t.Fatalf("unexpected unsold list: %+v", detail.Unsold)
	}
}

func TestArchiveService_Detail_Validation(t *testing.T) {
	h := newHarness()

	if _, err := h.archive.Detail(t.Context(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
	if _, err := h.archive.Detail(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
