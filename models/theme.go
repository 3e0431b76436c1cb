package models

import "strings"

// Workspace theme identifiers persisted on the user record.
const (
	ThemeBenchLight = "bench_light"
	ThemeBenchDark  = "bench_dark"
	ThemeAmberGlass = "amber_glass"

	DefaultTheme = ThemeBenchLight
)

// ValidTheme reports whether value names a registered workspace theme.
func ValidTheme(value string) bool {
	switch value {
	case ThemeBenchLight, ThemeBenchDark, ThemeAmberGlass:
		return true
	default:
		return false
	}
}

// NormalizeTheme returns the theme identifier when valid, falling back to the default.
func NormalizeTheme(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if ValidTheme(value) {
		return value
	}
	return DefaultTheme
}
