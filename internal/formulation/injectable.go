package formulation

import "fmt"

// Limits carries the maintainer-supplied bounds and solubility bands applied
// during validation. They are asserted domain constants, not derived values.
type Limits struct {
	MaxBatchVolumeML      float64
	MaxLossPercent        float64
	MaxBenzylAlcoholPct   float64
	WarnBenzylAlcoholPct  float64
	MinBenzylBenzoatePct  float64
	MaxBenzylBenzoatePct  float64
	WarnBenzylBenzoatePct float64
	SafeBand              float64 // solubility ratio at or below which the mix is Safe
	CautionBand           float64 // ratio at or below which the mix is Caution; above is Unsafe
}

// DefaultLimits returns the standard bounds used by the calculator.
func DefaultLimits() Limits {
	return Limits{
		MaxBatchVolumeML:      1000,
		MaxLossPercent:        25,
		MaxBenzylAlcoholPct:   5,
		WarnBenzylAlcoholPct:  3,
		MinBenzylBenzoatePct:  5,
		MaxBenzylBenzoatePct:  25,
		WarnBenzylBenzoatePct: 20,
		SafeBand:              0.70,
		CautionBand:           1.00,
	}
}

// InjectableRequest captures the target formulation for an injectable batch.
// Concentration is the active-moiety (base compound) dose in mg/mL; the
// calculator scales it up to ester mass via the base-compound fraction.
type InjectableRequest struct {
	Concentration     float64 // mg/mL of active moiety
	BatchVolumeML     float64
	LossPercent       float64 // compounding loss allowance, scales the working volume
	EsterKey          string
	OilKey            string
	BenzylAlcoholPct  float64
	BenzylBenzoatePct float64
}

// InjectableResult holds the derived component quantities for a batch.
// The API is reported as mass in grams for analytical balance weighing;
// liquid excipients are reported as volumes in mL.
type InjectableResult struct {
	AdjustedVolumeML    float64
	APIMassG            float64
	APIVolumeML         float64
	BenzylAlcoholML     float64
	BenzylAlcoholMassG  float64
	BenzylBenzoateML    float64
	BenzylBenzoateMassG float64
	CarrierOilML        float64
	CarrierOilMassG     float64
	EsterConcentration  float64 // mg/mL of dissolved ester in the finished batch
	SolubilityLimit     float64
	Solubility          SolubilityFlag
	SolubilityDetail    string
	Warnings            []string
}

// ComputeInjectable derives component masses and volumes for the requested
// injectable formulation using DefaultLimits. The computation is pure and
// idempotent; identical requests yield bit-identical results.
func ComputeInjectable(req InjectableRequest) (InjectableResult, error) {
	return ComputeInjectableWithLimits(req, DefaultLimits())
}

// ComputeInjectableWithLimits is ComputeInjectable with caller-supplied bounds.
func ComputeInjectableWithLimits(req InjectableRequest, limits Limits) (InjectableResult, error) {
	ester, oil, err := validateInjectable(req, limits)
	if err != nil {
		return InjectableResult{}, err
	}

	adjusted := req.BatchVolumeML * (1 + req.LossPercent/100)

	baseMassG := req.Concentration * adjusted / 1000
	apiMassG := baseMassG / ester.BaseFraction
	apiVolume := apiMassG / ester.Density

	baVolume := req.BenzylAlcoholPct / 100 * adjusted
	bbVolume := req.BenzylBenzoatePct / 100 * adjusted

	oilVolume := adjusted - apiVolume - baVolume - bbVolume
	if oilVolume <= 0 {
		return InjectableResult{}, &NegativeVolumeError{DeficitML: -oilVolume}
	}

	esterConcentration := apiMassG * 1000 / adjusted
	limit, detail := SolubilityLimit(ester, oil, req.BenzylBenzoatePct)

	result := InjectableResult{
		AdjustedVolumeML:    adjusted,
		APIMassG:            apiMassG,
		APIVolumeML:         apiVolume,
		BenzylAlcoholML:     baVolume,
		BenzylAlcoholMassG:  baVolume * benzylAlcoholDensity,
		BenzylBenzoateML:    bbVolume,
		BenzylBenzoateMassG: bbVolume * benzylBenzoateDensity,
		CarrierOilML:        oilVolume,
		CarrierOilMassG:     oilVolume * oil.Density,
		EsterConcentration:  esterConcentration,
		SolubilityLimit:     limit,
		Solubility:          AssessSolubility(esterConcentration, limit, limits),
		SolubilityDetail:    detail,
	}

	if req.BenzylAlcoholPct > limits.WarnBenzylAlcoholPct {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("benzyl alcohol %.1f%% is high; monitor for injection site irritation", req.BenzylAlcoholPct))
	}
	if req.BenzylAlcoholPct == 0 {
		result.Warnings = append(result.Warnings,
			"no benzyl alcohol: unpreserved batches are single-use only")
	}
	if req.BenzylBenzoatePct > limits.WarnBenzylBenzoatePct {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("benzyl benzoate %.1f%% is high; may cause irritation", req.BenzylBenzoatePct))
	}

	return result, nil
}

func validateInjectable(req InjectableRequest, limits Limits) (EsterSpec, CarrierOilSpec, error) {
	ester, ok := EsterByKey(req.EsterKey)
	if !ok {
		return EsterSpec{}, CarrierOilSpec{}, validationErr("ester", "unknown ester %q", req.EsterKey)
	}
	if ester.Route != RouteInjectable {
		return EsterSpec{}, CarrierOilSpec{}, validationErr("ester", "%s is not an injectable compound", ester.Name)
	}

	oil, ok := OilByKey(req.OilKey)
	if !ok {
		return EsterSpec{}, CarrierOilSpec{}, validationErr("oil", "unknown carrier oil %q", req.OilKey)
	}

	if req.Concentration <= 0 {
		return EsterSpec{}, CarrierOilSpec{}, validationErr("concentration", "must be positive, got %.3f", req.Concentration)
	}
	if ester.MaxSafeConcentration > 0 && req.Concentration > ester.MaxSafeConcentration {
		return EsterSpec{}, CarrierOilSpec{}, validationErr("concentration",
			"%.1f mg/mL exceeds the %s limit of %.0f mg/mL", req.Concentration, ester.Name, ester.MaxSafeConcentration)
	}
	if req.BatchVolumeML <= 0 || req.BatchVolumeML > limits.MaxBatchVolumeML {
		return EsterSpec{}, CarrierOilSpec{}, validationErr("batch volume",
			"must be within (0, %.0f] mL, got %.3f", limits.MaxBatchVolumeML, req.BatchVolumeML)
	}
	if req.LossPercent < 0 || req.LossPercent > limits.MaxLossPercent {
		return EsterSpec{}, CarrierOilSpec{}, validationErr("loss percent",
			"must be within [0, %.0f], got %.2f", limits.MaxLossPercent, req.LossPercent)
	}
	if req.BenzylAlcoholPct < 0 || req.BenzylAlcoholPct > limits.MaxBenzylAlcoholPct {
		return EsterSpec{}, CarrierOilSpec{}, validationErr("benzyl alcohol",
			"must be within [0, %.0f]%%, got %.2f", limits.MaxBenzylAlcoholPct, req.BenzylAlcoholPct)
	}
	if req.BenzylBenzoatePct != 0 &&
		(req.BenzylBenzoatePct < limits.MinBenzylBenzoatePct || req.BenzylBenzoatePct > limits.MaxBenzylBenzoatePct) {
		return EsterSpec{}, CarrierOilSpec{}, validationErr("benzyl benzoate",
			"must be 0 or within [%.0f, %.0f]%%, got %.2f",
			limits.MinBenzylBenzoatePct, limits.MaxBenzylBenzoatePct, req.BenzylBenzoatePct)
	}

	return ester, oil, nil
}
