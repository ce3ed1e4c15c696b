package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "timebanner/internal/platform/net"
	"timebanner/internal/platform/testkit"
)

func TestRequestID_MintsWhenMissing(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newRequestID, func() string { return "fixed-id" })

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if seen != "fixed-id" {
		t.Fatalf("context request id = %q", seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Fatalf("response header = %q", got)
	}
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "upstream-7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen != "upstream-7" {
		t.Fatalf("context request id = %q", seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "upstream-7" {
		t.Fatalf("response header = %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS(CORSOptions{AllowedOrigins: []string{"*"}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodOptions, "/banner", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET" {
		t.Fatalf("allow methods = %q", got)
	}
}

func TestHeartbeat(t *testing.T) {
	h := Heartbeat("/health")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("heartbeat => %d", rec.Code)
	}

	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/other", nil))
	if rec2.Code != http.StatusTeapot {
		t.Fatalf("passthrough => %d", rec2.Code)
	}
}

func TestDefaults_NotEmpty(t *testing.T) {
	if len(Defaults()) == 0 {
		t.Fatalf("expected default middleware chain")
	}
}
