package pages

import (
	"fmt"
	"time"

	"magistral/internal/formulation"
	"magistral/models"
)

// WorksheetLine captures one weighed or measured component on the bench sheet.
type WorksheetLine struct {
	Order     int
	Component string
	VolumeML  float64
	MassG     float64
	Note      string
}

// WorksheetData aggregates the metadata required to render a compounding worksheet.
type WorksheetData struct {
	RecipeName       string
	FormulationType  string
	TypeLabel        string
	EsterName        string
	OilName          string
	Concentration    float64
	BatchVolumeML    float64
	AdjustedVolumeML float64
	SolubilityFlag   string
	SolubilityLimit  float64
	LotNumber        string
	CompoundedAt     time.Time
	Lines            []WorksheetLine
	Dosages          []formulation.Dosage
}

// BuildWorksheet assembles printable worksheet data from a stored recipe.
func BuildWorksheet(recipe models.Recipe) WorksheetData {
	data := WorksheetData{
		RecipeName:       recipe.Name,
		FormulationType:  recipe.FormulationType,
		TypeLabel:        RecipeTypeLabel(recipe.FormulationType),
		Concentration:    recipe.Concentration,
		BatchVolumeML:    recipe.BatchVolumeML,
		AdjustedVolumeML: recipe.AdjustedVolumeML,
		SolubilityFlag:   recipe.SolubilityFlag,
		SolubilityLimit:  recipe.SolubilityLimit,
		LotNumber:        fmt.Sprintf("MAG-%06d", recipe.ID),
		CompoundedAt:     recipe.CompoundedAt(),
	}

	if ester, ok := formulation.EsterByKey(recipe.EsterKey); ok {
		data.EsterName = ester.Name
	}
	if oil, ok := formulation.OilByKey(recipe.OilKey); ok {
		data.OilName = oil.Name
	}

	switch recipe.FormulationType {
	case models.FormulationTransdermal:
		data.Lines = transdermalLines(recipe)
	default:
		data.Lines = injectableLines(recipe, data.EsterName, data.OilName)
		data.Dosages = formulation.EasyDrawDosages(recipe.Concentration)
	}

	return data
}

func injectableLines(recipe models.Recipe, esterName, oilName string) []WorksheetLine {
	lines := []WorksheetLine{
		{
			Order:     1,
			Component: DefaultDash(esterName),
			VolumeML:  recipe.APIVolumeML,
			MassG:     recipe.APIMassG,
			Note:      "Weigh on analytical balance.",
		},
	}

	order := 2
	if recipe.BenzylAlcoholML > 0 {
		lines = append(lines, WorksheetLine{
			Order:     order,
			Component: "Benzyl alcohol",
			VolumeML:  recipe.BenzylAlcoholML,
			Note:      fmt.Sprintf("%s of working volume.", FormatPercent(recipe.BenzylAlcoholPct)),
		})
		order++
	}
	if recipe.BenzylBenzoateML > 0 {
		lines = append(lines, WorksheetLine{
			Order:     order,
			Component: "Benzyl benzoate",
			VolumeML:  recipe.BenzylBenzoateML,
			Note:      fmt.Sprintf("%s of working volume.", FormatPercent(recipe.BenzylBenzoatePct)),
		})
		order++
	}
	lines = append(lines, WorksheetLine{
		Order:     order,
		Component: DefaultDash(oilName),
		VolumeML:  recipe.CarrierOilML,
		Note:      "Add to final volume.",
	})
	return lines
}

func transdermalLines(recipe models.Recipe) []WorksheetLine {
	req := formulation.TransdermalRequest{
		TargetVolumeML: recipe.BatchVolumeML,
		LossPercent:    recipe.LossPercent,
	}
	result, err := formulation.ComputeTransdermal(req)
	if err != nil {
		// Stored recipes always come from a successful computation; an error
		// here means the snapshot was tampered with, so render the API alone.
		return []WorksheetLine{{
			Order:     1,
			Component: "Estradiol (micronized)",
			MassG:     recipe.APIMassG,
			Note:      "Weigh on analytical balance.",
		}}
	}

	lines := []WorksheetLine{{
		Order:     1,
		Component: "Estradiol (micronized)",
		MassG:     result.EstradiolMassG,
		Note:      "Weigh on analytical balance.",
	}}
	for i, component := range result.Components {
		lines = append(lines, WorksheetLine{
			Order:     i + 2,
			Component: component.Name,
			VolumeML:  component.VolumeML,
			MassG:     component.MassG,
			Note:      fmt.Sprintf("%s of finished volume.", FormatPercent(component.Percent)),
		})
	}
	return lines
}
