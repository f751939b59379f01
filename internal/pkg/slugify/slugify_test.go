package slugify

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Sarah Lee Makeup":    "sarah-lee-makeup",
		"  Glow & Co.  ":      "glow-co",
		"KL Bridal Studio #1": "kl-bridal-studio-1",
		"---":                 "",
	}
	for in, want := range cases {
		if got := Make(in); got != want {
			t.Errorf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWithSuffixAppendsNumber(t *testing.T) {
	s := WithSuffix("Sarah Lee")
	if !strings.HasPrefix(s, "sarah-lee-") {
		t.Fatalf("unexpected slug %q", s)
	}
	suffix := strings.TrimPrefix(s, "sarah-lee-")
	if suffix == "" {
		t.Fatalf("expected numeric suffix, got %q", s)
	}
}

func TestWithSuffixEmptyName(t *testing.T) {
	if s := WithSuffix("!!!"); !strings.HasPrefix(s, "profile-") {
		t.Fatalf("expected fallback slug, got %q", s)
	}
}
