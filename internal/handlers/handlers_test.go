package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fantasygrid/trade-api/internal/logic"
	"github.com/fantasygrid/trade-api/internal/models"
)

func newTestHandler(cfg Config) *Handler {
	if cfg.League == nil {
		cfg.League = &MockLeagueProvider{}
	}
	if cfg.Trade == nil {
		cfg.Trade = &MockTradeService{}
	}
	if cfg.Roster == nil {
		cfg.Roster = &MockRosterService{}
	}
	cfg.Logger = zap.NewNop()
	return New(cfg)
}

func TestAnalyzeTrade(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		trade          *MockTradeService
		league         *MockLeagueProvider
		expectedStatus int
	}{
		{
			name: "Happy path",
			body: `{"fromTeamId": "t1", "toTeamId": "t2", "offerFromIds": ["p1"], "offerToIds": ["p2"]}`,
			trade: &MockTradeService{
				AnalyzeTradeFunc: func(_ context.Context, _ *models.League, req models.TradeAnalysisRequest) (*models.TradeResult, error) {
					if req.FromTeamID != "t1" || req.ToTeamID != "t2" {
						return nil, fmt.Errorf("request not forwarded: %+v", req)
					}
					return &models.TradeResult{Verdict: models.VerdictFair}, nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			body:           `{nope`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing team ids",
			body:           `{"offerFromIds": ["p1"]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Same team on both sides",
			body:           `{"fromTeamId": "t1", "toTeamId": "t1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown team",
			body: `{"fromTeamId": "t1", "toTeamId": "t9"}`,
			trade: &MockTradeService{
				AnalyzeTradeFunc: func(context.Context, *models.League, models.TradeAnalysisRequest) (*models.TradeResult, error) {
					return nil, fmt.Errorf("to team t9: %w", logic.ErrTeamNotFound)
				},
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "League unavailable",
			body: `{"fromTeamId": "t1", "toTeamId": "t2"}`,
			league: &MockLeagueProvider{
				LeagueFunc: func(context.Context) (*models.League, error) {
					return nil, errors.New("boom")
				},
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "Analysis failure",
			body: `{"fromTeamId": "t1", "toTeamId": "t2"}`,
			trade: &MockTradeService{
				AnalyzeTradeFunc: func(context.Context, *models.League, models.TradeAnalysisRequest) (*models.TradeResult, error) {
					return nil, errors.New("boom")
				},
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}
			if tt.league != nil {
				cfg.League = tt.league
			}
			if tt.trade != nil {
				cfg.Trade = tt.trade
			}
			h := newTestHandler(cfg)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/trades/analyze", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.AnalyzeTrade(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.expectedStatus, rec.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				var payload map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil || payload["error"] == "" {
					t.Errorf("expected error payload, got %s", rec.Body.String())
				}
			}
		})
	}
}

func TestAnalyzeTrade_ResponseBody(t *testing.T) {
	result := &models.TradeResult{
		ValueDelta: 12,
		Verdict:    models.VerdictFair,
		Rationale:  []string{"Raw value is close to even (delta +12 against a fairness band of 20)."},
	}
	h := newTestHandler(Config{Trade: &MockTradeService{
		AnalyzeTradeFunc: func(context.Context, *models.League, models.TradeAnalysisRequest) (*models.TradeResult, error) {
			return result, nil
		},
	}})

	body := `{"fromTeamId": "t1", "toTeamId": "t2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trades/analyze", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.AnalyzeTrade(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var decoded models.TradeResult
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if decoded.ValueDelta != 12 || decoded.Verdict != models.VerdictFair {
		t.Errorf("unexpected response %+v", decoded)
	}
}

func TestGetTeamInsight(t *testing.T) {
	tests := []struct {
		name           string
		teamID         string
		roster         *MockRosterService
		league         *MockLeagueProvider
		expectedStatus int
	}{
		{
			name:   "Happy path",
			teamID: "t1",
			roster: &MockRosterService{
				TeamInsightFunc: func(_ context.Context, _ *models.League, teamID string) (*models.RosterEvaluation, error) {
					if teamID != "t1" {
						return nil, fmt.Errorf("wrong team id %s", teamID)
					}
					return &models.RosterEvaluation{TotalValue: 640}, nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Unknown team",
			teamID: "t9",
			roster: &MockRosterService{
				TeamInsightFunc: func(context.Context, *models.League, string) (*models.RosterEvaluation, error) {
					return nil, fmt.Errorf("team t9: %w", logic.ErrTeamNotFound)
				},
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "League unavailable",
			teamID: "t1",
			league: &MockLeagueProvider{
				LeagueFunc: func(context.Context) (*models.League, error) {
					return nil, errors.New("boom")
				},
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}
			if tt.league != nil {
				cfg.League = tt.league
			}
			if tt.roster != nil {
				cfg.Roster = tt.roster
			}
			h := newTestHandler(cfg)

			r := chi.NewRouter()
			r.Get("/api/v1/teams/{teamId}/insight", h.GetTeamInsight)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/"+tt.teamID+"/insight", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.expectedStatus, rec.Body.String())
			}
		})
	}
}

func TestGetLeague(t *testing.T) {
	t.Run("Happy path", func(t *testing.T) {
		h := newTestHandler(Config{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/league", nil)
		rec := httptest.NewRecorder()
		h.GetLeague(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var l models.League
		if err := json.Unmarshal(rec.Body.Bytes(), &l); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(l.Teams) != 1 || l.Teams[0].ID != "t1" {
			t.Errorf("unexpected league %+v", l)
		}
	})

	t.Run("League unavailable", func(t *testing.T) {
		h := newTestHandler(Config{League: &MockLeagueProvider{
			LeagueFunc: func(context.Context) (*models.League, error) {
				return nil, errors.New("boom")
			},
		}})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/league", nil)
		rec := httptest.NewRecorder()
		h.GetLeague(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
	})
}

func TestHealth(t *testing.T) {
	h := newTestHandler(Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["status"] != "ok" {
		t.Errorf("status field = %v", payload["status"])
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name           string
		league         *MockLeagueProvider
		expectedStatus int
		expectedReady  bool
	}{
		{
			name:           "League reachable",
			expectedStatus: http.StatusOK,
			expectedReady:  true,
		},
		{
			name: "League unavailable",
			league: &MockLeagueProvider{
				LeagueFunc: func(context.Context) (*models.League, error) {
					return nil, errors.New("boom")
				},
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedReady:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}
			if tt.league != nil {
				cfg.League = tt.league
			}
			h := newTestHandler(cfg)

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			rec := httptest.NewRecorder()
			h.Ready(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.expectedStatus)
			}
			var payload struct {
				Ready  bool            `json:"ready"`
				Checks map[string]bool `json:"checks"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if payload.Ready != tt.expectedReady {
				t.Errorf("ready = %v, want %v", payload.Ready, tt.expectedReady)
			}
			if _, ok := payload.Checks["league"]; !ok {
				t.Error("league check missing from payload")
			}
		})
	}
}
