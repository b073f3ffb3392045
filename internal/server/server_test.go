package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/HerbHall/distrofinder/internal/testutil"
)

type stubRoutes struct{}

func (stubRoutes) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/stub", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func newTestServer(t *testing.T, opts Options) http.Handler {
	t.Helper()
	return New(opts, testutil.Logger(), stubRoutes{}).Handler()
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, Options{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Header().Get("X-DistroFinder-Version") == "" {
		t.Error("missing X-DistroFinder-Version header")
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("missing request ID header")
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["service"] != "distrofinder" {
		t.Errorf("body = %v", body)
	}
}

func TestRegistrarRoutesMounted(t *testing.T) {
	h := newTestServer(t, Options{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stub", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_hits_total", Help: "hits"})
	reg.MustRegister(c)
	c.Inc()

	h := newTestServer(t, Options{Gatherer: reg})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "test_hits_total 1") {
		t.Errorf("metrics body missing counter:\n%s", w.Body.String())
	}
}

func TestMetricsEndpoint_DisabledWithoutGatherer(t *testing.T) {
	h := newTestServer(t, Options{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestSwaggerDoc(t *testing.T) {
	h := newTestServer(t, Options{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/catalog/match") {
		t.Error("swagger doc should describe /catalog/match")
	}
}

func TestRateLimitApplied(t *testing.T) {
	h := newTestServer(t, Options{RateLimit: 0.001, RateBurst: 1})

	codes := make([]int, 2)
	for i := range codes {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
		codes[i] = w.Code
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 429]", codes)
	}
}
