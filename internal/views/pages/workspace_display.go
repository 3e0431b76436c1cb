package pages

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDash returns an em dash when the provided value is empty or whitespace.
func DefaultDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

// FormatVolume renders a volume in millilitres with two decimal places.
func FormatVolume(value float64) string {
	return fmt.Sprintf("%.2f mL", value)
}

// FormatMass renders a mass for analytical balance work. Values below one
// gram carry an extra decimal so small excipient weights stay readable.
func FormatMass(value float64) string {
	if value < 1 {
		return fmt.Sprintf("%.3f g", value)
	}
	return fmt.Sprintf("%.2f g", value)
}

// FormatConcentration renders a mg/mL concentration.
func FormatConcentration(value float64) string {
	return fmt.Sprintf("%.2f mg/mL", value)
}

// FormatPercent renders a percentage with at most one decimal place.
func FormatPercent(value float64) string {
	if value == float64(int(value)) {
		return fmt.Sprintf("%.0f%%", value)
	}
	return fmt.Sprintf("%.1f%%", value)
}

// FormatDose renders a milligram dose, dropping the fraction for whole values.
func FormatDose(value float64) string {
	if value == float64(int(value)) {
		return fmt.Sprintf("%.0f mg", value)
	}
	return fmt.Sprintf("%.2f mg", value)
}

// FormatBenchDate renders the supplied time using a worksheet-friendly layout.
func FormatBenchDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.Format("02 Jan 2006")
}

// PreferenceStatusMessage normalises the text displayed in the preferences status banner.
func PreferenceStatusMessage(message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "Pick a theme and save to update your bench."
	}
	return trimmed
}
