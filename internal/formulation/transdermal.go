package formulation

// TransdermalRequest captures the target volume for an estradiol transdermal
// spray batch. Concentration and composition are fixed by the reference table.
type TransdermalRequest struct {
	TargetVolumeML float64
	LossPercent    float64
}

// TransdermalComponentResult is one vehicle constituent scaled to the batch.
type TransdermalComponentResult struct {
	Key      string
	Name     string
	Percent  float64
	VolumeML float64
	MassG    float64
}

// TransdermalResult holds the derived quantities for a spray batch.
type TransdermalResult struct {
	BaseVolumeML      float64
	AdjustedVolumeML  float64
	Concentration     float64 // fixed, mg/mL
	EstradiolMassG    float64
	EstradiolVolumeML float64 // displaced volume, taken from the alcohol share
	Components        []TransdermalComponentResult
	BioavailablePerML float64
}

const maxTransdermalLossPercent = 20

// ComputeTransdermal derives component volumes and masses for an estradiol
// transdermal spray at the fixed 58.33 mg/mL concentration. All quantities
// scale linearly with the target volume; component percentages always sum to
// exactly 100.
func ComputeTransdermal(req TransdermalRequest) (TransdermalResult, error) {
	if req.TargetVolumeML <= 0 {
		return TransdermalResult{}, validationErr("target volume", "must be positive, got %.3f", req.TargetVolumeML)
	}
	if req.LossPercent < 0 || req.LossPercent > maxTransdermalLossPercent {
		return TransdermalResult{}, validationErr("loss percent",
			"must be within [0, %d], got %.2f", maxTransdermalLossPercent, req.LossPercent)
	}

	ester, _ := EsterByKey(EstradiolSprayKey)
	adjusted := req.TargetVolumeML * (1 + req.LossPercent/100)

	massG := SprayConcentration * adjusted / 1000
	displaced := massG / ester.Density

	components := make([]TransdermalComponentResult, 0, len(sprayComponents))
	for _, component := range sprayComponents {
		volume := adjusted * component.Percent / 100
		if component.Key == "isopropyl_alcohol_91" {
			// The dissolved estradiol displaces part of the alcohol share.
			volume -= displaced
		}
		components = append(components, TransdermalComponentResult{
			Key:      component.Key,
			Name:     component.Name,
			Percent:  component.Percent,
			VolumeML: volume,
			MassG:    volume * component.Density,
		})
	}

	return TransdermalResult{
		BaseVolumeML:      req.TargetVolumeML,
		AdjustedVolumeML:  adjusted,
		Concentration:     SprayConcentration,
		EstradiolMassG:    massG,
		EstradiolVolumeML: displaced,
		Components:        components,
		BioavailablePerML: SprayConcentration * SprayAbsorptionRate,
	}, nil
}
