package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"magistral/internal/views/components"
	"magistral/internal/views/theme"
)

func worksheetBody(data WorksheetData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<article class="worksheet"><header><h1>%s</h1><p class="worksheet-meta">%s · Lot %s · %s</p></header><dl class="worksheet-facts"><dt>Concentration</dt><dd>%s</dd><dt>Batch volume</dt><dd>%s</dd><dt>Working volume</dt><dd>%s</dd>`,
			templ.EscapeString(data.RecipeName),
			templ.EscapeString(data.TypeLabel),
			templ.EscapeString(data.LotNumber),
			FormatBenchDate(data.CompoundedAt),
			FormatConcentration(data.Concentration),
			FormatVolume(data.BatchVolumeML),
			FormatVolume(data.AdjustedVolumeML)); err != nil {
			return err
		}
		if data.EsterName != "" {
			if _, err := fmt.Fprintf(w, `<dt>Compound</dt><dd>%s</dd>`, templ.EscapeString(data.EsterName)); err != nil {
				return err
			}
		}
		if data.OilName != "" {
			if _, err := fmt.Fprintf(w, `<dt>Carrier oil</dt><dd>%s</dd>`, templ.EscapeString(data.OilName)); err != nil {
				return err
			}
		}
		if data.SolubilityFlag != "" {
			if _, err := fmt.Fprintf(w, `<dt>Solubility</dt><dd>%s (limit %s)</dd>`,
				templ.EscapeString(data.SolubilityFlag), FormatConcentration(data.SolubilityLimit)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</dl><table class="worksheet-table"><thead><tr><th>#</th><th>Component</th><th>Volume</th><th>Mass</th><th>Notes</th><th>Initials</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, line := range data.Lines {
			volume := "—"
			if line.VolumeML > 0 {
				volume = FormatVolume(line.VolumeML)
			}
			mass := "—"
			if line.MassG > 0 {
				mass = FormatMass(line.MassG)
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class="worksheet-initials"></td></tr>`,
				line.Order,
				templ.EscapeString(line.Component),
				volume,
				mass,
				templ.EscapeString(line.Note)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
			return err
		}
		if len(data.Dosages) > 0 {
			if err := DosageTable(data.Concentration, data.Dosages).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<footer class="worksheet-footer"><p>Prepared by ______________ Checked by ______________</p></footer></article>`)
		return err
	})
}

// Worksheet renders the printable compounding sheet for a recipe.
func Worksheet(data WorksheetData, themeKey string) templ.Component {
	title := fmt.Sprintf("Worksheet %s · Magistral", data.LotNumber)
	return components.Shell(title, theme.Resolve(themeKey), worksheetBody(data))
}
