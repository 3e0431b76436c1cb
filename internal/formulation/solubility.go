package formulation

import "fmt"

// SolubilityFlag is an ordered risk classification of dissolved ester
// concentration against the estimated saturation limit.
type SolubilityFlag int

const (
	SolubilitySafe SolubilityFlag = iota
	SolubilityCaution
	SolubilityUnsafe
)

func (f SolubilityFlag) String() string {
	switch f {
	case SolubilitySafe:
		return "safe"
	case SolubilityCaution:
		return "caution"
	case SolubilityUnsafe:
		return "unsafe"
	default:
		return "unknown"
	}
}

// ParseSolubilityFlag maps a stored flag string back to its ordered value.
func ParseSolubilityFlag(value string) (SolubilityFlag, bool) {
	switch value {
	case "safe":
		return SolubilitySafe, true
	case "caution":
		return SolubilityCaution, true
	case "unsafe":
		return SolubilityUnsafe, true
	default:
		return SolubilityUnsafe, false
	}
}

// bbSolubilityBoost is the empirical enhancement slope for benzyl benzoate:
// each percent of BB raises the saturation limit by 2.5% of itself.
const bbSolubilityBoost = 2.5

// SolubilityLimit estimates the saturation limit in mg/mL for an ester
// dissolved in the given oil with the given benzyl benzoate fraction, along
// with a human-readable derivation.
func SolubilityLimit(ester EsterSpec, oil CarrierOilSpec, bbPercent float64) (float64, string) {
	base, ok := ester.BaseSolubility[oil.Key]
	if !ok || base <= 0 {
		return 0, "no solubility data for this ester and oil"
	}

	limit := base * oil.SolubilityFactor
	if bbPercent > 0 {
		multiplier := 1 + bbPercent/100*bbSolubilityBoost
		limit *= multiplier
		return limit, fmt.Sprintf("base %.0f mg/mL x oil factor %.2f x BB %.2f = %.0f mg/mL",
			base, oil.SolubilityFactor, multiplier, limit)
	}
	return limit, fmt.Sprintf("base %.0f mg/mL x oil factor %.2f = %.0f mg/mL (no BB)",
		base, oil.SolubilityFactor, limit)
}

// AssessSolubility classifies a dissolved concentration against the limit
// using the configured band cut points.
func AssessSolubility(concentration, limit float64, limits Limits) SolubilityFlag {
	if limit <= 0 {
		return SolubilityUnsafe
	}
	ratio := concentration / limit
	switch {
	case ratio <= limits.SafeBand:
		return SolubilitySafe
	case ratio <= limits.CautionBand:
		return SolubilityCaution
	default:
		return SolubilityUnsafe
	}
}

// OilSolubilityOption summarises an ester's saturation outlook in one oil,
// with and without a reference 15% benzyl benzoate fraction.
type OilSolubilityOption struct {
	Oil           CarrierOilSpec
	LimitNoBB     float64
	FlagNoBB      SolubilityFlag
	LimitWith15BB float64
	FlagWith15BB  SolubilityFlag
}

// ExploreSolubility computes per-oil saturation options for the given ester
// and target ester concentration across every non-custom carrier oil.
func ExploreSolubility(ester EsterSpec, concentration float64) []OilSolubilityOption {
	limits := DefaultLimits()
	options := make([]OilSolubilityOption, 0, len(carrierOils))
	for _, oil := range CarrierOils() {
		if oil.Key == "custom" {
			continue
		}
		plain, _ := SolubilityLimit(ester, oil, 0)
		boosted, _ := SolubilityLimit(ester, oil, 15)
		options = append(options, OilSolubilityOption{
			Oil:           oil,
			LimitNoBB:     plain,
			FlagNoBB:      AssessSolubility(concentration, plain, limits),
			LimitWith15BB: boosted,
			FlagWith15BB:  AssessSolubility(concentration, boosted, limits),
		})
	}
	return options
}
