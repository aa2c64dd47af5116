package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/vestberry/aoc-leaderboard/internal/logic"
	"github.com/vestberry/aoc-leaderboard/internal/store"
	"github.com/vestberry/aoc-leaderboard/internal/upstream"
)

const upstreamBody = `{"event":"2023","owner_id":1,"members":{"1":{"id":1,"name":"Ada","global_score":0,"local_score":12,"stars":2,"last_star_ts":1701412345,"completion_day_level":{"1":{"1":{"star_index":1,"get_star_ts":1701410001},"2":{"star_index":2,"get_star_ts":1701412345}}}},"2":{"id":2,"name":"Tom & Jerry <3>","global_score":0,"local_score":0,"stars":0,"completion_day_level":{}}}}`

func newTestServer(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()

	var calls int32
	aoc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Header.Get("Cookie") != "session=tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		io.WriteString(w, upstreamBody) //nolint:errcheck
	}))
	t.Cleanup(aoc.Close)

	mem := store.NewMemoryStore()
	svc := logic.NewFetcherService(logic.FetcherConfig{
		Store:    mem,
		Upstream: upstream.New(aoc.URL, "tok", 0),
		Timeout:  15 * time.Minute,
		Logger:   zap.NewNop(),
	})
	h := New(Config{
		Store:          mem,
		Logger:         zap.NewNop(),
		AllowedOrigins: []string{"http://localhost:3000"},
		Leaderboard:    svc,
	})

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv, &calls
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestRoutes_CacheAside(t *testing.T) {
	srv, calls := newTestServer(t)

	resp, first := get(t, srv.URL+"/api")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d, body %s", resp.StatusCode, first)
	}
	if atomic.LoadInt32(calls) != 1 {
		t.Fatalf("upstream calls = %d, want 1", *calls)
	}
	if resp.Header.Get("X-Refresh-ID") == "" {
		t.Error("refresh must expose X-Refresh-ID")
	}

	var body struct {
		OK        bool            `json:"ok"`
		FetchedAt int64           `json:"fetchedAt"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(first, &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !body.OK || body.FetchedAt == 0 {
		t.Errorf("body = %s", first)
	}
	if !bytes.Equal(body.Data, []byte(upstreamBody)) {
		t.Errorf("data = %s, want upstream body verbatim", body.Data)
	}
	if !bytes.Contains(first, []byte(`"name":"Tom & Jerry <3>"`)) {
		t.Errorf("HTML characters must not be escaped: %s", first)
	}

	resp, second := get(t, srv.URL+"/api")
	if atomic.LoadInt32(calls) != 1 {
		t.Errorf("upstream calls = %d after cached request, want 1", *calls)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("cached response differs:\n%s\n%s", first, second)
	}
	if resp.Header.Get("X-Refresh-ID") != "" {
		t.Error("cache hit must not carry a refresh id")
	}

	get(t, srv.URL+"/api?fresh")
	if atomic.LoadInt32(calls) != 2 {
		t.Errorf("upstream calls = %d after fresh request, want 2", *calls)
	}
}

func TestRoutes_View(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := get(t, srv.URL+"/api/leaderboard?day=1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %d, body %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), `"sortDay":1`) || !strings.Contains(string(body), `"name":"Ada"`) {
		t.Errorf("unexpected view: %s", body)
	}
}

func TestRoutes_Ambient(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		path     string
		wantCode int
		contains string
	}{
		{"/health", http.StatusOK, `"status":"ok"`},
		{"/ready", http.StatusOK, `"ready":true`},
		{"/metrics", http.StatusOK, "go_goroutines"},
		{"/swagger/doc.json", http.StatusOK, `"/api/leaderboard"`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.wantCode {
				t.Errorf("StatusCode = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if !strings.Contains(string(body), tt.contains) {
				t.Errorf("body does not contain %q", tt.contains)
			}
		})
	}
}

func TestRoutes_CORS(t *testing.T) {
	srv, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
