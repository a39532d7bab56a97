package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/bidround/sports-auction/internal/domain/auction"
	"github.com/bidround/sports-auction/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantReason string
		wantStatus string
	}{
		{name: "unknown action", err: usecase.ErrUnknownAction, wantCode: http.StatusBadRequest, wantReason: "invalidInput", wantStatus: "INVALID_ARGUMENT"},
		{name: "not found", err: usecase.ErrNotFound, wantCode: http.StatusNotFound, wantReason: "notFound", wantStatus: "NOT_FOUND"},
		{name: "team not found", err: auction.ErrTeamNotFound, wantCode: http.StatusNotFound, wantReason: "notFound", wantStatus: "NOT_FOUND"},
		{name: "bad pin", err: usecase.ErrUnauthorized, wantCode: http.StatusUnauthorized, wantReason: "unauthorized", wantStatus: "UNAUTHENTICATED"},
		{name: "no active event", err: usecase.ErrNoActiveEvent, wantCode: http.StatusConflict, wantReason: "noActiveEvent", wantStatus: "FAILED_PRECONDITION"},
		{name: "insufficient budget", err: auction.ErrInsufficientBudget, wantCode: http.StatusConflict, wantReason: "insufficientBudget", wantStatus: "FAILED_PRECONDITION"},
		{name: "no current player", err: auction.ErrNoCurrentPlayer, wantCode: http.StatusConflict, wantReason: "invalidAuctionPhase", wantStatus: "FAILED_PRECONDITION"},
		{name: "unmapped", err: fmt.Errorf("boom"), wantCode: http.StatusInternalServerError, wantReason: "internalError", wantStatus: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(context.Background(), tt.err)
			if got.HTTPStatus != tt.wantCode || got.Reason != tt.wantReason || got.Status != tt.wantStatus {
				t.Fatalf("mapError(%v)=%+v", tt.err, got)
			}
		})
	}
}
