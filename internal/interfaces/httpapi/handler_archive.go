package httpapi

import (
	"net/http"
	"strings"
)

type soldPlayerDTO struct {
	playerDTO
	TeamName string `json:"team_name"`
}

type archiveDetailDTO struct {
	Event  eventDTO        `json:"event"`
	Teams  []teamDTO       `json:"teams"`
	Sold   []soldPlayerDTO `json:"sold"`
	Unsold []playerDTO     `json:"unsold"`
}

func (h *Handler) ListArchives(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListArchives")
	defer span.End()

	events, err := h.archiveService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list archives failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, item := range events {
		items = append(items, eventToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetArchive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetArchive")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	detail, err := h.archiveService.Detail(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get archive failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	teams := make([]teamDTO, 0, len(detail.Teams))
	for _, t := range detail.Teams {
		teams = append(teams, teamToDTO(t))
	}
	sold := make([]soldPlayerDTO, 0, len(detail.Sold))
	for _, row := range detail.Sold {
		sold = append(sold, soldPlayerDTO{
			playerDTO: playerToDTO(row.Player),
			TeamName:  row.TeamName,
		})
	}
	unsold := make([]playerDTO, 0, len(detail.Unsold))
	for _, p := range detail.Unsold {
		unsold = append(unsold, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, archiveDetailDTO{
		Event:  eventToDTO(detail.Event),
		Teams:  teams,
		Sold:   sold,
		Unsold: unsold,
	})
}
