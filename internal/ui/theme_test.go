package ui

import (
	"testing"

	"github.com/five82/memoix/internal/model"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Gruvbox"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
	names[0] = "mutated"
	if ThemeNames()[0] != "Nightfox" {
		t.Fatal("ThemeNames must return a copy")
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Gruvbox",
		"Gruvbox":  "Nightfox",
		"Unknown":  "Nightfox",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetThemeFallback(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox", got)
	}
}

func TestEveryThemeColorsEveryKind(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, k := range model.Kinds() {
			if th.KindColors[k] == "" {
				t.Fatalf("theme %s has no color for %s", name, k)
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"Korean Fried Chicken", 10, "Korean ..."},
		{"Pho", 10, "Pho"},
		{"  Pho  ", 0, "Pho"},
		{"abcdef", 3, "abc"},
	}
	for _, c := range cases {
		if got := truncate(c.in, c.limit); got != c.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", c.in, c.limit, got, c.want)
		}
	}
	if got := truncateMiddle("memoix://recipe/abcdefghij", 11); got != "memoi…fghij" {
		t.Fatalf("truncateMiddle = %q", got)
	}
}
