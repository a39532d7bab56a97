package httpapi

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/bidround/sports-auction/internal/infrastructure/repository/memory"
	idgen "github.com/bidround/sports-auction/internal/platform/id"
	"github.com/bidround/sports-auction/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	events := memory.NewEventRepository()
	teams := memory.NewTeamRepository()
	players := memory.NewPlayerRepository(teams)
	states := memory.NewAuctionRepository(teams, players)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewHandler(
		usecase.NewSetupService(events, teams, players, states, idgen.NewUUIDGenerator(), usecase.SetupDefaults{}, logger),
		usecase.NewAuctionService(events, players, states, logger),
		usecase.NewStateService(events, teams, players, states),
		usecase.NewExportService(events, players),
		usecase.NewArchiveService(events, teams, players),
		usecase.NewAccessService(events),
		logger,
	)

	return NewRouter(handler, logger, []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal %s %s response: %v", method, path, err)
		}
	}

	return rec, envelope
}

// newAuctionRequest builds the multipart setup request the admin form
// sends, with a single-player roster so SPIN is deterministic.
func newAuctionRequest(t *testing.T) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	fields := map[string]string{
		"action":     "new",
		"event_name": "Spring Cup",
		"admin_pin":  "9876",
		"team_count": "2",
		"budget":     "1000",
	}
	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			t.Fatalf("write form field %s: %v", key, err)
		}
	}
	file, err := form.CreateFormFile("roster", "roster.csv")
	if err != nil {
		t.Fatalf("create roster part: %v", err)
	}
	if _, err := file.Write([]byte("Player Name,Email,Base Price\nAlpha,alpha@example.com,100\n")); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/auctions", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())

	return req
}

func TestHandler_AuctionFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newAuctionRequest(t))
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var setupEnvelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &setupEnvelope); err != nil {
		t.Fatalf("unmarshal setup response: %v", err)
	}
	setupData := setupEnvelope["data"].(map[string]any)
	if got := setupData["player_count"].(float64); got != 1 {
		t.Fatalf("expected one imported player, got %v", got)
	}
	setupTeams := setupData["teams"].([]any)
	if len(setupTeams) != 2 {
		t.Fatalf("expected two teams, got %d", len(setupTeams))
	}
	teamID := setupTeams[0].(map[string]any)["id"].(string)
	eventID := setupData["event"].(map[string]any)["id"].(string)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/actions", `{"action":"SPIN"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("spin: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	spinData := envelope["data"].(map[string]any)
	if spinData["phase"].(string) != "bidding" || spinData["current_bid"].(float64) != 100 {
		t.Fatalf("unexpected spin result: %v", spinData)
	}

	rec, envelope = doJSON(t, router, http.MethodPost, "/v1/actions", `{"action":"BID","amount":500}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("bid: expected 200, got %d", rec.Code)
	}
	if envelope["data"].(map[string]any)["current_bid"].(float64) != 500 {
		t.Fatalf("unexpected bid result: %v", envelope["data"])
	}

	rec, envelope = doJSON(t, router, http.MethodPost, "/v1/actions", `{"action":"SELL","team_id":"`+teamID+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("sell: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	sellData := envelope["data"].(map[string]any)
	sale := sellData["sale"].(map[string]any)
	if sale["team_name"].(string) != "Team 1" || sale["amount"].(float64) != 500 {
		t.Fatalf("unexpected sale: %v", sale)
	}
	if sellData["phase"].(string) != "idle" {
		t.Fatalf("expected idle after sell, got %v", sellData["phase"])
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/state", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("state: expected 200, got %d", rec.Code)
	}
	stateData := envelope["data"].(map[string]any)
	if stateData["auction_name"].(string) != "Spring Cup" {
		t.Fatalf("unexpected auction name: %v", stateData["auction_name"])
	}
	if stateData["stats"].(map[string]any)["sold"].(float64) != 1 {
		t.Fatalf("unexpected stats: %v", stateData["stats"])
	}
	if len(stateData["history"].([]any)) != 1 {
		t.Fatalf("expected one history entry: %v", stateData["history"])
	}

	rec, _ = doJSON(t, router, http.MethodGet, "/v1/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "Spring_Cup_Final_Report.csv") {
		t.Fatalf("unexpected Content-Disposition: %q", got)
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv") {
		t.Fatalf("unexpected Content-Type: %q", rec.Header().Get("Content-Type"))
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/archives/"+eventID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("archive detail: expected 200, got %d", rec.Code)
	}
	archiveSold := envelope["data"].(map[string]any)["sold"].([]any)
	if len(archiveSold) != 1 {
		t.Fatalf("expected one sold player in archive, got %d", len(archiveSold))
	}
}

func TestHandler_SetupContinue(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/auctions", `{"action":"continue"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("continue without event: expected 409, got %d", rec.Code)
	}

	setup := httptest.NewRecorder()
	router.ServeHTTP(setup, newAuctionRequest(t))
	if setup.Code != http.StatusCreated {
		t.Fatalf("setup: expected 201, got %d", setup.Code)
	}

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/auctions", `{"action":"continue"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("continue: expected 200, got %d", rec.Code)
	}
	eventName := envelope["data"].(map[string]any)["event"].(map[string]any)["name"].(string)
	if eventName != "Spring Cup" {
		t.Fatalf("unexpected resumed event: %q", eventName)
	}
}

func TestHandler_VerifyPIN(t *testing.T) {
	router := newTestRouter(t)

	setup := httptest.NewRecorder()
	router.ServeHTTP(setup, newAuctionRequest(t))
	if setup.Code != http.StatusCreated {
		t.Fatalf("setup: expected 201, got %d", setup.Code)
	}

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/verify-pin", `{"pin":"9876"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("verify pin: expected 200, got %d", rec.Code)
	}
	if envelope["data"].(map[string]any)["success"].(bool) != true {
		t.Fatalf("expected success=true: %v", envelope["data"])
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/v1/verify-pin", `{"pin":"0000"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong pin: expected 401, got %d", rec.Code)
	}
}

func TestHandler_PerformAction_Errors(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/actions", `{"action":"SPIN"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("spin without event: expected 409, got %d", rec.Code)
	}

	setup := httptest.NewRecorder()
	router.ServeHTTP(setup, newAuctionRequest(t))
	if setup.Code != http.StatusCreated {
		t.Fatalf("setup: expected 201, got %d", setup.Code)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/v1/actions", `{"action":"RESET"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown action: expected 400, got %d", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/v1/actions", `{"action":"BID","bonus":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field: expected 400, got %d", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/v1/actions", `{"action":"BID","amount":10}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("bid while idle: expected 409, got %d", rec.Code)
	}
}

func TestHandler_GetArchive_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodGet, "/v1/archives/no-such-event", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if envelope["data"].(map[string]any)["status"].(string) != "ok" {
		t.Fatalf("unexpected health payload: %v", envelope["data"])
	}
}
