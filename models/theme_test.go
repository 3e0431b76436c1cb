package models

import "testing"

func TestValidTheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"bench light", ThemeBenchLight, true},
		{"bench dark", ThemeBenchDark, true},
		{"amber glass", ThemeAmberGlass, true},
		{"unknown", "galaxy", false},
		{"empty", "", false},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidTheme(tt.value); got != tt.want {
				t.Fatalf("ValidTheme(%q) = %t, want %t", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeTheme(t *testing.T) {
	t.Parallel()

	if got := NormalizeTheme(ThemeBenchDark); got != ThemeBenchDark {
		t.Fatalf("NormalizeTheme returned %q, want %q", got, ThemeBenchDark)
	}

	if got := NormalizeTheme("  invalid  "); got != DefaultTheme {
		t.Fatalf("NormalizeTheme returned %q, want %q", got, DefaultTheme)
	}

	if got := NormalizeTheme("  Bench_Dark "); got != ThemeBenchDark {
		t.Fatalf("NormalizeTheme should trim and lowercase, got %q", got)
	}
}
