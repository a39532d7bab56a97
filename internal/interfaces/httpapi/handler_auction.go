package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/bidround/sports-auction/internal/domain/auction"
	"github.com/bidround/sports-auction/internal/domain/player"
	"github.com/bidround/sports-auction/internal/usecase"
)

type performActionRequest struct {
	Action string `json:"action" validate:"required,max=16"`
	Amount int    `json:"amount" validate:"gte=0"`
	TeamID string `json:"team_id" validate:"omitempty,max=64"`
}

type playerDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department,omitempty"`
	Category   string `json:"category"`
	Position   string `json:"position"`
	BasePrice  int    `json:"base_price"`
	ImageURL   string `json:"image_url,omitempty"`
	Status     string `json:"status"`
	SoldTo     string `json:"sold_to,omitempty"`
	SoldPrice  int    `json:"sold_price,omitempty"`
}

type historyEntryDTO struct {
	PlayerName   string `json:"player_name"`
	TeamName     string `json:"team_name"`
	Amount       int    `json:"amount"`
	CreatedAtUTC string `json:"created_at_utc"`
}

type statsDTO struct {
	Remaining int `json:"remaining"`
	Sold      int `json:"sold"`
	Unsold    int `json:"unsold"`
}

type stateDTO struct {
	AuctionName   string            `json:"auction_name"`
	Phase         string            `json:"phase"`
	CurrentPlayer *playerDTO        `json:"current_player,omitempty"`
	CurrentBid    int               `json:"current_bid"`
	Teams         []teamDTO         `json:"teams"`
	History       []historyEntryDTO `json:"history"`
	Stats         statsDTO          `json:"stats"`
	HostURL       string            `json:"host_url"`
}

type actionResultDTO struct {
	Phase         string     `json:"phase"`
	CurrentPlayer *playerDTO `json:"current_player,omitempty"`
	CurrentBid    int        `json:"current_bid"`
	EmptyPool     bool       `json:"empty_pool,omitempty"`
	Sale          *saleDTO   `json:"sale,omitempty"`
}

type saleDTO struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	Amount     int    `json:"amount"`
	SoldAtUTC  string `json:"sold_at_utc"`
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetState")
	defer span.End()

	snapshot, err := h.stateService.Snapshot(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "state snapshot failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	teams := make([]teamDTO, 0, len(snapshot.Teams))
	for _, t := range snapshot.Teams {
		teams = append(teams, teamToDTO(t))
	}
	history := make([]historyEntryDTO, 0, len(snapshot.History))
	for _, entry := range snapshot.History {
		history = append(history, historyEntryToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, stateDTO{
		AuctionName:   snapshot.Event.Name,
		Phase:         string(snapshot.State.Phase),
		CurrentPlayer: playerToDTOPtr(snapshot.CurrentPlayer),
		CurrentBid:    snapshot.State.CurrentBid,
		Teams:         teams,
		History:       history,
		Stats: statsDTO{
			Remaining: snapshot.Stats.Remaining,
			Sold:      snapshot.Stats.Sold,
			Unsold:    snapshot.Stats.Unsold,
		},
		HostURL: hostURL(r),
	})
}

func (h *Handler) PerformAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PerformAction")
	defer span.End()

	var req performActionRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.auctionService.Do(ctx, usecase.ActionInput{
		Action: req.Action,
		Amount: req.Amount,
		TeamID: req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "auction action failed", "action", req.Action, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, actionResultToDTO(result))
}

// The action result carries only the state row; dashboards refresh the
// full current player via GET /v1/state.
func actionResultToDTO(result usecase.ActionResult) actionResultDTO {
	dto := actionResultDTO{
		Phase:      string(result.State.Phase),
		CurrentBid: result.State.CurrentBid,
		EmptyPool:  result.EmptyPool,
	}
	if result.State.CurrentPlayerID != "" {
		dto.CurrentPlayer = &playerDTO{ID: result.State.CurrentPlayerID}
	}
	if result.Sale != nil {
		dto.Sale = &saleDTO{
			PlayerID:   result.Sale.PlayerID,
			PlayerName: result.Sale.PlayerName,
			TeamID:     result.Sale.TeamID,
			TeamName:   result.Sale.TeamName,
			Amount:     result.Sale.Amount,
			SoldAtUTC:  result.Sale.SoldAt.UTC().Format(time.RFC3339),
		}
	}
	return dto
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:         v.ID,
		Name:       v.Name,
		Email:      v.Email,
		Department: v.Department,
		Category:   v.Category,
		Position:   v.Position,
		BasePrice:  v.BasePrice,
		ImageURL:   v.ImageURL,
		Status:     string(v.Status),
		SoldTo:     v.SoldTo,
		SoldPrice:  v.SoldPrice,
	}
}

func playerToDTOPtr(v *player.Player) *playerDTO {
	if v == nil {
		return nil
	}
	dto := playerToDTO(*v)
	return &dto
}

func historyEntryToDTO(v auction.LogEntry) historyEntryDTO {
	return historyEntryDTO{
		PlayerName:   v.PlayerName,
		TeamName:     v.TeamName,
		Amount:       v.Amount,
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func hostURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
