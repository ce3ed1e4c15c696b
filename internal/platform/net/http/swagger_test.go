package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"timebanner/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestMountSwagger_Disabled(t *testing.T) {
	r := AdaptChi(chi.NewRouter())
	MountSwagger(r, false)

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/docs/doc.json", nil)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	if rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("expected 404 when disabled, got %d", rr.Code)
	}
}

func TestMountSwagger_DocJSONAndRedirect(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &docReader, func() string {
		return `{"openapi":"3.0.3","info":{"title":"test","version":"1"},"paths":{}}`
	})

	r := AdaptChi(chi.NewRouter())
	MountSwagger(r, true)

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/docs/doc.json", nil)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("doc.json => %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), `"openapi":"3.0.3"`)

	// bare /api/docs redirects to the trailing slash form
	req2 := httptest.NewRequest(stdhttp.MethodGet, "/api/docs", nil)
	rr2 := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr2, req2)
	if rr2.Code != stdhttp.StatusPermanentRedirect {
		t.Fatalf("/api/docs => %d", rr2.Code)
	}
	if loc := rr2.Header().Get("Location"); loc != "/api/docs/" {
		t.Fatalf("redirect location = %q", loc)
	}
}
