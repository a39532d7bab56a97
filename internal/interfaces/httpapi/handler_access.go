package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/bidround/sports-auction/internal/usecase"
)

type verifyPINRequest struct {
	PIN string `json:"pin" validate:"required,min=4,max=32"`
}

type verifyPINResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) VerifyPIN(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.VerifyPIN")
	defer span.End()

	var req verifyPINRequest
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

	if err := h.accessService.VerifyPIN(ctx, req.PIN); err != nil {
		h.logger.WarnContext(ctx, "pin verification failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, verifyPINResponse{Success: true})
}
