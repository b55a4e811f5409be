package slug

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"CS Study Group", "cs-study-group"},
		{"  Algo & DS 2026  ", "algo-ds-2026"},
		{"---hello---", "hello"},
		{"Café Club", "café-club"},
	}
	for _, c := range cases {
		if got := Make(c.name); got != c.want {
			t.Errorf("Make(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestMakeEmptyFallsBackToRandom(t *testing.T) {
	got := Make("!!!")
	if !strings.HasPrefix(got, "group-") {
		t.Fatalf("Make on symbol-only name = %q, want group- prefix", got)
	}
}

func TestDedupeSuffixesKeepBase(t *testing.T) {
	base := Make("Study Group")
	if got := WithTimestamp(base); !strings.HasPrefix(got, base+"-") {
		t.Errorf("WithTimestamp = %q, want %q prefix", got, base)
	}
	if got := WithRandomSuffix(base); !strings.HasPrefix(got, base+"-") {
		t.Errorf("WithRandomSuffix = %q, want %q prefix", got, base)
	}
	if a, b := WithRandomSuffix(base), WithRandomSuffix(base); a == b {
		t.Errorf("two random suffixes collided: %q", a)
	}
}
