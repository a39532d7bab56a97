package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/bidround/sports-auction/internal/domain/event"
	"github.com/bidround/sports-auction/internal/domain/player"
)

// Report is the downloadable final artifact for an event: one flat
// CSV with sold, unsold, and pending sections concatenated in that
// order under a fixed column set.
type Report struct {
	Filename string
	Data     []byte
}

var reportColumns = []string{
	"Team", "Player", "Price", "Status",
	"Position", "Category", "Department", "Base_Price", "Email",
}

const (
	reportStatusSold    = "SOLD"
	reportStatusUnsold  = "UNSOLD"
	reportStatusPending = "PENDING"

	reportTeamUnsoldPool  = "UNSOLD POOL"
	reportTeamWaitingList = "WAITING LIST"
)

type ExportService struct {
	eventRepo  event.Repository
	playerRepo player.Repository
}

func NewExportService(eventRepo event.Repository, playerRepo player.Repository) *ExportService {
	return &ExportService{eventRepo: eventRepo, playerRepo: playerRepo}
}

// Report builds the final CSV for the active event.
func (s *ExportService) Report(ctx context.Context) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.Report")
	defer span.End()

	active, exists, err := s.eventRepo.Active(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("get active event: %w", err)
	}
	if !exists {
		return Report{}, ErrNoActiveEvent
	}

	return s.ReportForEvent(ctx, active)
}

// ReportForEvent builds the report for a specific event; archives use
// this directly.
func (s *ExportService) ReportForEvent(ctx context.Context, item event.Event) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.ReportForEvent")
	defer span.End()

	sold, err := s.playerRepo.ListSold(ctx, item.ID)
	if err != nil {
		return Report{}, fmt.Errorf("list sold players: %w", err)
	}
	unsold, err := s.playerRepo.ListByStatus(ctx, item.ID, player.StatusUnsold)
	if err != nil {
		return Report{}, fmt.Errorf("list unsold players: %w", err)
	}
	remaining, err := s.playerRepo.ListByStatus(ctx, item.ID, player.StatusAvailable)
	if err != nil {
		return Report{}, fmt.Errorf("list remaining players: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)
	if err := writer.Write(reportColumns); err != nil {
		return Report{}, fmt.Errorf("write report header: %w", err)
	}

	for _, row := range sold {
		record := []string{
			row.TeamName,
			row.Name,
			strconv.Itoa(row.SoldPrice),
			reportStatusSold,
			row.Position,
			row.Category,
			row.Department,
			strconv.Itoa(row.BasePrice),
			row.Email,
		}
		if err := writer.Write(record); err != nil {
			return Report{}, fmt.Errorf("write sold row: %w", err)
		}
	}

	for _, row := range unsold {
		record := []string{
			reportTeamUnsoldPool,
			row.Name,
			"0",
			reportStatusUnsold,
			row.Position,
			row.Category,
			row.Department,
			strconv.Itoa(row.BasePrice),
			row.Email,
		}
		if err := writer.Write(record); err != nil {
			return Report{}, fmt.Errorf("write unsold row: %w", err)
		}
	}

	// Pending rows carry only the fields the waiting list needs; the
	// rest render as empty cells.
	for _, row := range remaining {
		record := []string{
			reportTeamWaitingList,
			row.Name,
			"0",
			reportStatusPending,
			row.Position,
			"",
			"",
			strconv.Itoa(row.BasePrice),
			"",
		}
		if err := writer.Write(record); err != nil {
			return Report{}, fmt.Errorf("write pending row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return Report{}, fmt.Errorf("flush report: %w", err)
	}

	return Report{
		Filename: reportFilename(item.Name),
		Data:     append([]byte(nil), buf.B...),
	}, nil
}

func reportFilename(eventName string) string {
	name := strings.TrimSpace(eventName)
	if name == "" {
		name = "auction"
	}
	name = strings.ReplaceAll(name, " ", "_")

	return name + "_Final_Report.csv"
}
