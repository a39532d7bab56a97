package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/bidround/sports-auction/internal/domain/event"
	"github.com/bidround/sports-auction/internal/domain/team"
	"github.com/bidround/sports-auction/internal/usecase"
)

// Roster uploads are spreadsheets; anything past this is suspicious.
const maxRosterUploadBytes = 16 << 20

const (
	setupActionNew      = "new"
	setupActionContinue = "continue"
)

type setupAuctionRequest struct {
	Action    string `json:"action" validate:"required,oneof=new continue"`
	EventName string `json:"event_name" validate:"omitempty,max=120"`
	AdminPIN  string `json:"admin_pin" validate:"omitempty,min=4,max=32"`
	TeamCount int    `json:"team_count" validate:"gte=0,lte=64"`
	Budget    int    `json:"budget" validate:"gte=0"`
}

type eventDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CreatedAtUTC string `json:"created_at_utc"`
}

type teamDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Budget       int    `json:"budget"`
	Spent        int    `json:"spent"`
	Remaining    int    `json:"remaining"`
	PlayersCount int    `json:"players_count"`
}

type setupResultDTO struct {
	Event         eventDTO  `json:"event"`
	Teams         []teamDTO `json:"teams,omitempty"`
	PlayerCount   int       `json:"player_count"`
	ImportWarning string    `json:"import_warning,omitempty"`
}

// SetupAuction creates a new event or resumes the active one. New
// events arrive as multipart form data so the roster spreadsheet can
// ride along; a plain JSON body works for "continue".
func (h *Handler) SetupAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetupAuction")
	defer span.End()

	req, rosterFilename, roster, err := h.decodeSetupRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if roster != nil {
		defer roster.Close()
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if req.Action == setupActionContinue {
		active, err := h.setupService.ActiveEvent(ctx)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, setupResultDTO{Event: eventToDTO(active)})
		return
	}

	input := usecase.CreateEventInput{
		Name:      req.EventName,
		AdminPIN:  req.AdminPIN,
		TeamCount: req.TeamCount,
		Budget:    req.Budget,
	}
	if roster != nil {
		input.RosterFilename = rosterFilename
		input.Roster = roster
	}

	result, err := h.setupService.CreateEvent(ctx, input)
	if err != nil {
		h.logger.ErrorContext(ctx, "create auction event failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	teams := make([]teamDTO, 0, len(result.Teams))
	for _, t := range result.Teams {
		teams = append(teams, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusCreated, setupResultDTO{
		Event:         eventToDTO(result.Event),
		Teams:         teams,
		PlayerCount:   result.PlayerCount,
		ImportWarning: result.ImportWarning,
	})
}

func (h *Handler) decodeSetupRequest(r *http.Request) (setupAuctionRequest, string, io.ReadCloser, error) {
	contentType := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Type")))
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req setupAuctionRequest
		decoder := jsoniter.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			return setupAuctionRequest{}, "", nil, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
		}
		return req, "", nil, nil
	}

	if err := r.ParseMultipartForm(maxRosterUploadBytes); err != nil {
		return setupAuctionRequest{}, "", nil, fmt.Errorf("%w: invalid multipart payload: %v", usecase.ErrInvalidInput, err)
	}

	req := setupAuctionRequest{
		Action:    strings.TrimSpace(r.FormValue("action")),
		EventName: strings.TrimSpace(r.FormValue("event_name")),
		AdminPIN:  strings.TrimSpace(r.FormValue("admin_pin")),
	}
	var err error
	if req.TeamCount, err = formInt(r, "team_count"); err != nil {
		return setupAuctionRequest{}, "", nil, err
	}
	if req.Budget, err = formInt(r, "budget"); err != nil {
		return setupAuctionRequest{}, "", nil, err
	}

	file, header, err := r.FormFile("roster")
	if err == http.ErrMissingFile {
		return req, "", nil, nil
	}
	if err != nil {
		return setupAuctionRequest{}, "", nil, fmt.Errorf("%w: read roster file: %v", usecase.ErrInvalidInput, err)
	}

	return req, header.Filename, file, nil
}

func formInt(r *http.Request, field string) (int, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, field)
	}
	return value, nil
}

func eventToDTO(v event.Event) eventDTO {
	return eventDTO{
		ID:           v.ID,
		Name:         v.Name,
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:           v.ID,
		Name:         v.Name,
		Budget:       v.Budget,
		Spent:        v.Spent,
		Remaining:    v.Budget - v.Spent,
		PlayersCount: v.PlayersCount,
	}
}
