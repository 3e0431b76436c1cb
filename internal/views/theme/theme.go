package theme

import (
	"strings"

	"magistral/models"
)

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value       string
	Label       string
	Description string
}

// WorkspaceTheme contains resolved styling primitives for the application shell.
type WorkspaceTheme struct {
	Key               string
	BodyClass         string
	ShellClass        string
	PanelSurfaceClass string
	BorderClass       string
	AccentTextClass   string
	MutedTextClass    string
	WarningTextClass  string
	DangerTextClass   string
}

var catalogue = map[string]WorkspaceTheme{
	models.ThemeBenchLight: {
		Key:               models.ThemeBenchLight,
		BodyClass:         "min-h-screen bg-stone-50 text-stone-900",
		ShellClass:        "bench-shell light",
		PanelSurfaceClass: "bench-surface",
		BorderClass:       "bench-border",
		AccentTextClass:   "bench-accent",
		MutedTextClass:    "bench-muted",
		WarningTextClass:  "bench-warning",
		DangerTextClass:   "bench-danger",
	},
	models.ThemeBenchDark: {
		Key:               models.ThemeBenchDark,
		BodyClass:         "min-h-screen bg-slate-950 text-slate-100",
		ShellClass:        "bench-shell dark",
		PanelSurfaceClass: "bench-surface",
		BorderClass:       "bench-border",
		AccentTextClass:   "bench-accent",
		MutedTextClass:    "bench-muted",
		WarningTextClass:  "bench-warning",
		DangerTextClass:   "bench-danger",
	},
	models.ThemeAmberGlass: {
		Key:               models.ThemeAmberGlass,
		BodyClass:         "min-h-screen bg-amber-950 text-amber-50",
		ShellClass:        "bench-shell amber",
		PanelSurfaceClass: "bench-surface",
		BorderClass:       "bench-border",
		AccentTextClass:   "bench-accent",
		MutedTextClass:    "bench-muted",
		WarningTextClass:  "bench-warning",
		DangerTextClass:   "bench-danger",
	},
}

var options = []Option{
	{Value: models.ThemeBenchLight, Label: "Bench Light", Description: "Bright bench surface with charcoal typography."},
	{Value: models.ThemeBenchDark, Label: "Bench Dark", Description: "Dark mode with soft contrast for evening sessions."},
	{Value: models.ThemeAmberGlass, Label: "Amber Glass", Description: "Warm amber tones inspired by light-safe vials."},
}

// Resolve returns the registered theme configuration for the provided key.
func Resolve(key string) WorkspaceTheme {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if value, ok := catalogue[normalized]; ok {
		return value
	}
	return catalogue[models.DefaultTheme]
}

// Options exposes the available theme selections for rendering in a form control.
func Options() []Option {
	return options
}
