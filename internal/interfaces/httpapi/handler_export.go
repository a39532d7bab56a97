package httpapi

import (
	"net/http"
	"strconv"
)

func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportReport")
	defer span.End()

	report, err := h.exportService.Report(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "export report failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(report.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report.Data)
}
