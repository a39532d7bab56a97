package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bidround/sports-auction/internal/usecase"
)

type Handler struct {
	setupService   *usecase.SetupService
	auctionService *usecase.AuctionService
	stateService   *usecase.StateService
	exportService  *usecase.ExportService
	archiveService *usecase.ArchiveService
	accessService  *usecase.AccessService
	logger         *slog.Logger
	validator      *validator.Validate
}

func NewHandler(
	setupService *usecase.SetupService,
	auctionService *usecase.AuctionService,
	stateService *usecase.StateService,
	exportService *usecase.ExportService,
	archiveService *usecase.ArchiveService,
	accessService *usecase.AccessService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		setupService:   setupService,
		auctionService: auctionService,
		stateService:   stateService,
		exportService:  exportService,
		archiveService: archiveService,
		accessService:  accessService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
