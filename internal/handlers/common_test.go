package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newTestHandler(svc *MockLeaderboardService, pinger *MockPinger) *Handler {
	if svc == nil {
		svc = &MockLeaderboardService{}
	}
	if pinger == nil {
		pinger = &MockPinger{}
	}
	return New(Config{
		Store:          pinger,
		Logger:         zap.NewNop(),
		AllowedOrigins: []string{"http://localhost:3000"},
		Leaderboard:    svc,
	})
}

func TestHealth(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("StatusCode = %d, want %d", w.Code, http.StatusOK)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantReady  bool
	}{
		{"store up", nil, http.StatusOK, true},
		{"store down", errors.New("connection refused"), http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil, &MockPinger{
				PingFunc: func(ctx context.Context) error { return tt.pingErr },
			})

			req := httptest.NewRequest("GET", "/ready", nil)
			w := httptest.NewRecorder()
			h.Ready(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", w.Code, tt.wantStatus)
			}
			var body struct {
				Ready  bool            `json:"ready"`
				Checks map[string]bool `json:"checks"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body.Ready != tt.wantReady || body.Checks["store"] != tt.wantReady {
				t.Errorf("body = %+v, want ready=%v", body, tt.wantReady)
			}
		})
	}
}
