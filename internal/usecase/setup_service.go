package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/bidround/sports-auction/internal/domain/auction"
	"github.com/bidround/sports-auction/internal/domain/event"
	"github.com/bidround/sports-auction/internal/domain/player"
	"github.com/bidround/sports-auction/internal/domain/team"
	"github.com/bidround/sports-auction/internal/importer"
	idgen "github.com/bidround/sports-auction/internal/platform/id"
)

const (
	defaultEventName  = "New Auction"
	defaultAdminPIN   = "1234"
	defaultTeamCount  = 4
	defaultTeamBudget = 5000
	maxTeamCount      = 64
)

// CreateEventInput carries the setup form: event basics plus an
// optional roster upload.
type CreateEventInput struct {
	Name      string
	AdminPIN  string
	TeamCount int
	Budget    int
	// RosterFilename and Roster describe the optional spreadsheet;
	// both empty means no import.
	RosterFilename string
	Roster         io.Reader
}

// CreateEventResult reports what setup produced. ImportWarning is set
// when the roster could not be imported; the event and teams still
// exist in that case, just with zero players.
type CreateEventResult struct {
	Event         event.Event
	Teams         []team.Team
	PlayerCount   int
	ImportWarning string
}

// SetupDefaults are the fallbacks applied when the setup form leaves
// team count or budget empty. Zero fields fall back to the package
// defaults.
type SetupDefaults struct {
	TeamCount int
	Budget    int
}

type SetupService struct {
	eventRepo   event.Repository
	teamRepo    team.Repository
	playerRepo  player.Repository
	auctionRepo auction.Repository
	idGen       idgen.Generator
	defaults    SetupDefaults
	logger      *slog.Logger
	now         func() time.Time
}

func NewSetupService(
	eventRepo event.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	auctionRepo auction.Repository,
	idGen idgen.Generator,
	defaults SetupDefaults,
	logger *slog.Logger,
) *SetupService {
	if logger == nil {
		logger = slog.Default()
	}
	if defaults.TeamCount <= 0 {
		defaults.TeamCount = defaultTeamCount
	}
	if defaults.Budget <= 0 {
		defaults.Budget = defaultTeamBudget
	}

	return &SetupService{
		eventRepo:   eventRepo,
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		auctionRepo: auctionRepo,
		idGen:       idGen,
		defaults:    defaults,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateEvent creates a fresh auction event, its teams, and an idle
// auction state, then repoints the active-event singleton at it. A
// failed roster import never fails the setup; it is surfaced as a
// warning on the result.
func (s *SetupService) CreateEvent(ctx context.Context, input CreateEventInput) (CreateEventResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SetupService.CreateEvent")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		input.Name = defaultEventName
	}
	if strings.TrimSpace(input.AdminPIN) == "" {
		input.AdminPIN = defaultAdminPIN
	}
	if input.TeamCount <= 0 {
		input.TeamCount = s.defaults.TeamCount
	}
	if input.TeamCount > maxTeamCount {
		return CreateEventResult{}, fmt.Errorf("%w: team count %d exceeds limit %d", ErrInvalidInput, input.TeamCount, maxTeamCount)
	}
	if input.Budget < 0 {
		return CreateEventResult{}, fmt.Errorf("%w: budget cannot be negative", ErrInvalidInput)
	}
	if input.Budget == 0 {
		input.Budget = s.defaults.Budget
	}

	// Parse the roster before touching storage so a malformed upload
	// cannot leave a half-built event behind.
	var (
		rows          []importer.Row
		importWarning string
	)
	if input.Roster != nil {
		parsed, err := importer.Parse(input.RosterFilename, input.Roster)
		if err != nil {
			importWarning = err.Error()
			s.logger.WarnContext(ctx, "roster import skipped", "file", input.RosterFilename, "error", err)
		} else {
			rows = parsed
		}
	}

	eventID, err := s.idGen.NewID()
	if err != nil {
		return CreateEventResult{}, fmt.Errorf("generate event id: %w", err)
	}

	item := event.Event{
		ID:        eventID,
		Name:      input.Name,
		PINHash:   event.HashPIN(input.AdminPIN),
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return CreateEventResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.eventRepo.Create(ctx, item); err != nil {
		return CreateEventResult{}, fmt.Errorf("create event: %w", err)
	}

	teams := make([]team.Team, 0, input.TeamCount)
	for i := 0; i < input.TeamCount; i++ {
		teamID, err := s.idGen.NewID()
		if err != nil {
			return CreateEventResult{}, fmt.Errorf("generate team id: %w", err)
		}
		teams = append(teams, team.Team{
			ID:      teamID,
			EventID: item.ID,
			Name:    fmt.Sprintf("Team %d", i+1),
			Budget:  input.Budget,
		})
	}
	if err := s.teamRepo.CreateBatch(ctx, teams); err != nil {
		return CreateEventResult{}, fmt.Errorf("create teams: %w", err)
	}

	players := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		playerID, err := s.idGen.NewID()
		if err != nil {
			return CreateEventResult{}, fmt.Errorf("generate player id: %w", err)
		}
		players = append(players, player.Player{
			ID:         playerID,
			EventID:    item.ID,
			Name:       row.Name,
			Email:      row.Email,
			Department: row.Department,
			Category:   row.Category,
			Position:   row.Position,
			BasePrice:  row.BasePrice,
			ImageURL:   row.ImageURL,
			Status:     player.StatusAvailable,
		})
	}
	if len(players) > 0 {
		if err := s.playerRepo.CreateBatch(ctx, players); err != nil {
			return CreateEventResult{}, fmt.Errorf("import players: %w", err)
		}
	}

	if err := s.auctionRepo.CreateState(ctx, item.ID); err != nil {
		return CreateEventResult{}, fmt.Errorf("create auction state: %w", err)
	}
	if err := s.eventRepo.SetActive(ctx, item.ID); err != nil {
		return CreateEventResult{}, fmt.Errorf("activate event: %w", err)
	}

	s.logger.InfoContext(ctx, "auction event created",
		"event_id", item.ID,
		"event_name", item.Name,
		"team_count", len(teams),
		"player_count", len(players),
		"import_warning", importWarning,
	)

	return CreateEventResult{
		Event:         item,
		Teams:         teams,
		PlayerCount:   len(players),
		ImportWarning: importWarning,
	}, nil
}

// ActiveEvent returns the event the dashboard should resume.
func (s *SetupService) ActiveEvent(ctx context.Context) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SetupService.ActiveEvent")
	defer span.End()

	item, exists, err := s.eventRepo.Active(ctx)
	if err != nil {
		return event.Event{}, fmt.Errorf("get active event: %w", err)
	}
	if !exists {
		return event.Event{}, ErrNoActiveEvent
	}

	return item, nil
}
