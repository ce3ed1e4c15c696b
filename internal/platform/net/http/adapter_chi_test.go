package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestAdaptChi_RootGroupRouteAndMux(t *testing.T) {
	t.Parallel()

	m := chi.NewRouter()
	r := AdaptChi(m)

	// root middleware
	r.Use(func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set("X-Root", "1")
			next.ServeHTTP(w, req)
		})
	})

	// root route
	r.Get("/root", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("root"))
	})

	// group route + group middleware
	r.Group(func(gr Router) {
		gr.Use(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.Header().Set("X-Group", "1")
				next.ServeHTTP(w, req)
			})
		})
		if gr.Mux() == nil {
			t.Fatalf("group Mux() returned nil")
		}
		gr.Get("/g/ping", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.WriteHeader(200)
			_, _ = w.Write([]byte("g"))
		})
	})

	// route (subrouter) + subrouter middleware
	r.Route("/banner", func(sr Router) {
		sr.Use(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.Header().Set("X-Route", "1")
				next.ServeHTTP(w, req)
			})
		})
		if sr.Mux() == nil {
			t.Fatalf("route Mux() returned nil")
		}
		sr.Get("/ping", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.WriteHeader(200)
			_, _ = w.Write([]byte("pong"))
		})
	})

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(stdhttp.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, req)
		return rr
	}

	rr := get("/root")
	if rr.Code != 200 || rr.Body.String() != "root" {
		t.Fatalf("GET /root => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Root") != "1" {
		t.Fatalf("root middleware header missing")
	}

	rr = get("/g/ping")
	if rr.Code != 200 || rr.Body.String() != "g" {
		t.Fatalf("GET /g/ping => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Group") != "1" {
		t.Fatalf("group middleware header missing")
	}

	rr = get("/banner/ping")
	if rr.Code != 200 || rr.Body.String() != "pong" {
		t.Fatalf("GET /banner/ping => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Route") != "1" {
		t.Fatalf("route middleware header missing")
	}
}

func TestAdaptChi_HeadHandleAndNesting(t *testing.T) {
	t.Parallel()

	m := chi.NewRouter()
	r := AdaptChi(m)

	r.Head("/root/h", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.Header().Set("X-Head", "1")
	})
	r.Handle("/root/std", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("std"))
	}))

	r.Group(func(gr Router) {
		gr.Head("/g/h", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.Header().Set("X-G-Head", "1") })
		gr.Handle("/g/std", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.WriteHeader(200)
			_, _ = w.Write([]byte("gstd"))
		}))

		// nested group
		gr.Group(func(ngr Router) {
			ngr.Get("/g/nested", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.WriteHeader(200)
				_, _ = w.Write([]byte("nested"))
			})
		})
	})

	r.Route("/api", func(sr Router) {
		sr.Route("/v1", func(nr Router) {
			nr.Get("/ok", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.WriteHeader(200)
				_, _ = w.Write([]byte("v1ok"))
			})
		})
	})

	do := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, req)
		return rr
	}

	rr := do(stdhttp.MethodHead, "/root/h")
	if rr.Code != 200 || rr.Body.Len() != 0 || rr.Header().Get("X-Head") != "1" {
		t.Fatalf("HEAD /root/h => code=%d head=%q body_len=%d", rr.Code, rr.Header().Get("X-Head"), rr.Body.Len())
	}
	rr = do(stdhttp.MethodGet, "/root/std")
	if rr.Code != 200 || rr.Body.String() != "std" {
		t.Fatalf("GET /root/std => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr = do(stdhttp.MethodHead, "/g/h"); rr.Code != 200 || rr.Header().Get("X-G-Head") != "1" {
		t.Fatalf("HEAD /g/h => code=%d X-G-Head=%q", rr.Code, rr.Header().Get("X-G-Head"))
	}
	rr = do(stdhttp.MethodGet, "/g/std")
	if rr.Code != 200 || rr.Body.String() != "gstd" {
		t.Fatalf("GET /g/std => code=%d body=%q", rr.Code, rr.Body.String())
	}
	rr = do(stdhttp.MethodGet, "/g/nested")
	if rr.Code != 200 || rr.Body.String() != "nested" {
		t.Fatalf("GET /g/nested => code=%d body=%q", rr.Code, rr.Body.String())
	}
	rr = do(stdhttp.MethodGet, "/api/v1/ok")
	if rr.Code != 200 || rr.Body.String() != "v1ok" {
		t.Fatalf("GET /api/v1/ok => code=%d body=%q", rr.Code, rr.Body.String())
	}
}
