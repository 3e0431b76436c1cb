package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"magistral/internal/formulation"
	"magistral/internal/views/components"
)

// CalculatorError renders an inline failure banner for calculator submissions.
func CalculatorError(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="calc-error" role="alert">%s</p>`, templ.EscapeString(message))
		return err
	})
}

// SaveConfirmation renders an inline success banner after a recipe is saved.
func SaveConfirmation(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="calc-saved" role="status">%s</p>`, templ.EscapeString(message))
		return err
	})
}

// InjectableResults renders the component breakdown for a computed injectable batch.
func InjectableResults(req formulation.InjectableRequest, res formulation.InjectableResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="calc-results"><div class="calc-summary">`); err != nil {
			return err
		}
		if err := components.StatCard("Working volume", FormatVolume(res.AdjustedVolumeML), "", "Includes loss allowance").Render(ctx, w); err != nil {
			return err
		}
		if err := components.StatCard("Ester concentration", FormatConcentration(res.EsterConcentration), "", "Dissolved ester in finished batch").Render(ctx, w); err != nil {
			return err
		}
		if err := components.Badge(SolubilityBadgeClass(res.Solubility.String()), res.Solubility.String()).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `</div><p class="calc-detail">%s</p><table class="calc-table"><thead><tr><th>Component</th><th>Volume</th><th>Mass</th></tr></thead><tbody>`, templ.EscapeString(res.SolubilityDetail)); err != nil {
			return err
		}

		rows := []struct {
			name   string
			volume float64
			mass   float64
		}{
			{"Active ester", res.APIVolumeML, res.APIMassG},
			{"Benzyl alcohol", res.BenzylAlcoholML, res.BenzylAlcoholMassG},
			{"Benzyl benzoate", res.BenzylBenzoateML, res.BenzylBenzoateMassG},
			{"Carrier oil", res.CarrierOilML, res.CarrierOilMassG},
		}
		for _, row := range rows {
			if row.volume == 0 && row.mass == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(row.name), FormatVolume(row.volume), FormatMass(row.mass)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
			return err
		}

		for _, warning := range res.Warnings {
			if _, err := fmt.Fprintf(w, `<p class="calc-warning">%s</p>`, templ.EscapeString(warning)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w,
			`<form hx-post="/app/api/recipes" hx-target="#calculator-results" hx-swap="beforeend"><input type="hidden" name="ester" value="%s"><input type="hidden" name="oil" value="%s"><input type="hidden" name="concentration" value="%g"><input type="hidden" name="batch_volume" value="%g"><input type="hidden" name="loss_percent" value="%g"><input type="hidden" name="ba_percent" value="%g"><input type="hidden" name="bb_percent" value="%g"><label>Name<input type="text" name="name" required></label><button type="submit">Save recipe</button></form></div>`,
			templ.EscapeString(req.EsterKey), templ.EscapeString(req.OilKey),
			req.Concentration, req.BatchVolumeML, req.LossPercent,
			req.BenzylAlcoholPct, req.BenzylBenzoatePct); err != nil {
			return err
		}
		return nil
	})
}

// TransdermalResults renders the component breakdown for a spray batch.
func TransdermalResults(req formulation.TransdermalRequest, res formulation.TransdermalResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div class="calc-results"><p class="calc-detail">%s estradiol at %s, %s bioavailable per mL.</p><table class="calc-table"><thead><tr><th>Component</th><th>Volume</th><th>Mass</th></tr></thead><tbody><tr><td>Estradiol (micronized)</td><td>%s</td><td>%s</td></tr>`,
			FormatMass(res.EstradiolMassG),
			FormatConcentration(res.Concentration),
			FormatDose(res.BioavailablePerML),
			FormatVolume(res.EstradiolVolumeML),
			FormatMass(res.EstradiolMassG)); err != nil {
			return err
		}
		for _, component := range res.Components {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(component.Name), FormatVolume(component.VolumeML), FormatMass(component.MassG)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`</tbody></table><form hx-post="/app/api/recipes" hx-target="#spray-results" hx-swap="beforeend"><input type="hidden" name="formulation_type" value="transdermal_spray"><input type="hidden" name="batch_volume" value="%g"><input type="hidden" name="loss_percent" value="%g"><label>Name<input type="text" name="name" required></label><button type="submit">Save recipe</button></form></div>`,
			req.TargetVolumeML, req.LossPercent); err != nil {
			return err
		}
		return nil
	})
}

// SolubilityTable renders the per-oil saturation exploration.
func SolubilityTable(ester formulation.EsterSpec, concentration float64, options []formulation.OilSolubilityOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div class="calc-results"><h3>%s at %s</h3><table class="calc-table"><thead><tr><th>Carrier oil</th><th>Limit</th><th>Plain</th><th>Limit +15%% BB</th><th>With BB</th></tr></thead><tbody>`,
			templ.EscapeString(ester.Name), FormatConcentration(concentration)); err != nil {
			return err
		}
		for _, option := range options {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td>`,
				templ.EscapeString(option.Oil.Name), FormatConcentration(option.LimitNoBB)); err != nil {
				return err
			}
			if err := components.Badge(SolubilityBadgeClass(option.FlagNoBB.String()), option.FlagNoBB.String()).Render(ctx, w); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `<td>%s</td>`, FormatConcentration(option.LimitWith15BB)); err != nil {
				return err
			}
			if err := components.Badge(SolubilityBadgeClass(option.FlagWith15BB.String()), option.FlagWith15BB.String()).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></div>`)
		return err
	})
}

// DosageTable renders the easy-draw dosage reference for a concentration.
func DosageTable(concentration float64, dosages []formulation.Dosage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div class="calc-results"><h3>Easy draws at %s</h3><table class="calc-table"><thead><tr><th>Draw</th><th>Dose</th></tr></thead><tbody>`,
			FormatConcentration(concentration)); err != nil {
			return err
		}
		for _, dosage := range dosages {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td></tr>`,
				FormatVolume(dosage.VolumeML), FormatDose(dosage.DoseMG)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></div>`)
		return err
	})
}
