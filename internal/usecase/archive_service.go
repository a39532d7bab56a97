package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bidround/sports-auction/internal/domain/event"
	"github.com/bidround/sports-auction/internal/domain/player"
	"github.com/bidround/sports-auction/internal/domain/team"
)

// ArchiveDetail is the read-only view of one historical event.
type ArchiveDetail struct {
	Event  event.Event
	Teams  []team.Team
	Sold   []player.SoldRow
	Unsold []player.Player
}

type ArchiveService struct {
	eventRepo  event.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewArchiveService(
	eventRepo event.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
) *ArchiveService {
	return &ArchiveService{
		eventRepo:  eventRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

// List returns every event, newest first.
func (s *ArchiveService) List(ctx context.Context) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.List")
	defer span.End()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

func (s *ArchiveService) Detail(ctx context.Context, eventID string) (ArchiveDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ArchiveService.Detail")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return ArchiveDetail{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	item, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return ArchiveDetail{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return ArchiveDetail{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	teams, err := s.teamRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return ArchiveDetail{}, fmt.Errorf("list teams: %w", err)
	}
	sold, err := s.playerRepo.ListSold(ctx, eventID)
	if err != nil {
		return ArchiveDetail{}, fmt.Errorf("list sold players: %w", err)
	}
	unsold, err := s.playerRepo.ListByStatus(ctx, eventID, player.StatusUnsold)
	if err != nil {
		return ArchiveDetail{}, fmt.Errorf("list unsold players: %w", err)
	}

	return ArchiveDetail{
		Event:  item,
		Teams:  teams,
		Sold:   sold,
		Unsold: unsold,
	}, nil
}
