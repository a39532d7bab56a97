package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/bidround/sports-auction/internal/config"
	"github.com/bidround/sports-auction/internal/infrastructure/repository/postgres"
	"github.com/bidround/sports-auction/internal/interfaces/httpapi"
	idgen "github.com/bidround/sports-auction/internal/platform/id"
	"github.com/bidround/sports-auction/internal/usecase"
)

// NewHTTPServer wires repositories, services, and the router into a
// ready-to-run server. The returned DB handle is owned by the caller
// and must be closed on shutdown.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, *sqlx.DB, error) {
	opts := []otelsql.Option{otelsql.WithAttributes(semconv.DBSystemPostgreSQL)}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}
	db, err := otelsqlx.Connect("postgres", cfg.DBURL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	eventRepo := postgres.NewEventRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	auctionRepo := postgres.NewAuctionRepository(db)

	setupSvc := usecase.NewSetupService(
		eventRepo,
		teamRepo,
		playerRepo,
		auctionRepo,
		idgen.NewUUIDGenerator(),
		usecase.SetupDefaults{
			TeamCount: cfg.DefaultTeamCount,
			Budget:    cfg.DefaultTeamBudget,
		},
		logger,
	)
	auctionSvc := usecase.NewAuctionService(eventRepo, playerRepo, auctionRepo, logger)
	stateSvc := usecase.NewStateService(eventRepo, teamRepo, playerRepo, auctionRepo)
	exportSvc := usecase.NewExportService(eventRepo, playerRepo)
	archiveSvc := usecase.NewArchiveService(eventRepo, teamRepo, playerRepo)
	accessSvc := usecase.NewAccessService(eventRepo)

	handler := httpapi.NewHandler(setupSvc, auctionSvc, stateSvc, exportSvc, archiveSvc, accessSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, db, nil
}
