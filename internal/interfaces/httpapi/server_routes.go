package httpapi

import "net/http"

func registerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)

	mux.HandleFunc("POST /v1/auctions", handler.SetupAuction)
	mux.HandleFunc("GET /v1/state", handler.GetState)
	mux.HandleFunc("POST /v1/actions", handler.PerformAction)
	mux.HandleFunc("POST /v1/verify-pin", handler.VerifyPIN)
	mux.HandleFunc("GET /v1/export", handler.ExportReport)
	mux.HandleFunc("GET /v1/archives", handler.ListArchives)
	mux.HandleFunc("GET /v1/archives/{eventID}", handler.GetArchive)
}
