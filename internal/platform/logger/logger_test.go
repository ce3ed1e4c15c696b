package logger

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// the root logger is build-once, so every test shares one sink
var (
	sink   bytes.Buffer
	sinkMu sync.Mutex
)

func TestMain(m *testing.M) {
	Init(Options{
		Level:        "debug",
		Format:       "json",
		Service:      "timebanner",
		Component:    "test",
		Writer:       &sink,
		StaticFields: map[string]string{"zone": "utc"},
	})
	os.Exit(m.Run())
}

func capture(fn func()) string {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	sink.Reset()
	fn()
	return sink.String()
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"  INFO ", zerolog.InfoLevel},
		{"bogus", zerolog.DebugLevel},
		{"", zerolog.DebugLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestInitOnceAndFields(t *testing.T) {
	out := capture(func() { Get().Info().Msg("hello") })
	for _, want := range []string{`"service":"timebanner"`, `"component":"test"`, `"zone":"utc"`, `"message":"hello"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %s: %s", want, out)
		}
	}

	// second Init is a no-op; logger keeps writing to the same sink
	Init(Options{Level: "error", Format: "json"})
	out = capture(func() { Get().Info().Msg("again") })
	if !strings.Contains(out, "again") {
		t.Fatalf("second Init should not have replaced the root logger")
	}
}

func TestRequestScopedChild(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-123")
	out := capture(func() { C(ctx).Info().Msg("scoped") })
	if !strings.Contains(out, `"request_id":"req-123"`) {
		t.Fatalf("child logger missing request_id: %s", out)
	}

	// no request id on context means no field
	out = capture(func() { C(context.Background()).Info().Msg("bare") })
	if strings.Contains(out, "request_id") {
		t.Fatalf("unexpected request_id on bare context: %s", out)
	}
}

func TestNamed(t *testing.T) {
	out := capture(func() { Named("resolver").Info().Msg("n") })
	if !strings.Contains(out, `"component":"resolver"`) {
		t.Fatalf("Named missing component field: %s", out)
	}
	if Named("") != Get() {
		t.Fatalf("Named(\"\") should return the root logger")
	}
}
