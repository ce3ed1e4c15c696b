package raw

import "testing"

func TestGetWithPrefix(t *testing.T) {
	t.Setenv("TB_TEST_NAME", "  banner  ")
	c := New().Prefix("TB_TEST_")
	if got := c.Get("NAME", "def"); got != "banner" {
		t.Fatalf("Get = %q, want banner", got)
	}
	if got := c.Get("MISSING", "def"); got != "def" {
		t.Fatalf("Get default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"yes", false, true},
		{"TRUE", false, true},
		{"no", true, false},
		{"0", true, false},
		{"", true, true},
		{"", false, false},
	}
	for _, c := range cases {
		t.Setenv("TB_TEST_FLAG", c.val)
		if got := New().Prefix("TB_TEST_").GetBool("FLAG", c.def); got != c.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", c.val, c.def, got, c.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("TB_TEST_PORT", "8380")
	c := New().Prefix("TB_TEST_")
	if got := c.GetInt("PORT", 1); got != 8380 {
		t.Fatalf("GetInt = %d", got)
	}
	t.Setenv("TB_TEST_PORT", "-3")
	if got := c.GetInt("PORT", 7); got != 7 {
		t.Fatalf("GetInt negative should fall back, got %d", got)
	}
	t.Setenv("TB_TEST_PORT", "12x")
	if got := c.GetInt("PORT", 7); got != 7 {
		t.Fatalf("GetInt non-numeric should fall back, got %d", got)
	}
}
