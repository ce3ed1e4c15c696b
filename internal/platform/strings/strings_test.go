package strings

import (
	"testing"

	"timebanner/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"GET"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "GET" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	in := []string{"HEAD"}
	if got := IfEmpty(in, def); len(got) != 1 || got[0] != "HEAD" {
		t.Fatalf("IfEmpty(in) = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("svg", "format"); got != "svg" {
		t.Fatalf("MustString = %q", got)
	}
	testkit.MustPanic(t, func() { MustString("   ", "format") })
}

func TestMustPrefix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"relative", "/relative"},
		{"/relative/", "/relative"},
		{"  absolute  ", "/absolute"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	testkit.MustPanic(t, func() { MustPrefix("  / ") })
}

func TestEmptyToNil(t *testing.T) {
	if got := EmptyToNil("  "); got != "" {
		t.Fatalf("EmptyToNil whitespace = %q", got)
	}
	if got := EmptyToNil("x"); got != "x" {
		t.Fatalf("EmptyToNil = %q", got)
	}
}
