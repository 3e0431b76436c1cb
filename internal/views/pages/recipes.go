package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"magistral/internal/views/components"
)

// RecipesTable renders the saved recipe log as an HTMX-friendly fragment.
func RecipesTable(snapshot WorkspaceSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="bench-panel" id="recipes-panel"><h2>Recipe log</h2>`); err != nil {
			return err
		}
		if len(snapshot.Recipes) == 0 {
			_, err := io.WriteString(w, `<p class="bench-empty">No recipes saved yet. Compute a batch and save it to start your log.</p></section>`)
			return err
		}
		if _, err := io.WriteString(w, `<table class="bench-table"><thead><tr><th>Name</th><th>Type</th><th>Compound</th><th>Concentration</th><th>Volume</th><th>Solubility</th><th>Compounded</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, recipe := range snapshot.Recipes {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>`,
				templ.EscapeString(recipe.Name),
				RecipeTypeLabel(recipe.FormulationType),
				templ.EscapeString(DefaultDash(recipe.EsterKey)),
				FormatConcentration(recipe.Concentration),
				FormatVolume(recipe.BatchVolumeML)); err != nil {
				return err
			}
			if recipe.SolubilityFlag != "" {
				if err := components.Badge(SolubilityBadgeClass(recipe.SolubilityFlag), recipe.SolubilityFlag).Render(ctx, w); err != nil {
					return err
				}
			} else {
				if _, err := io.WriteString(w, "—"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w,
				`</td><td>%s</td><td><a href="/app/recipes/worksheet?id=%d">Worksheet</a> · <a href="/app/recipes/worksheet.xlsx?id=%d">XLSX</a> · <a href="/app/api/recipes/%d?format=json">JSON</a></td></tr>`,
				FormatBenchDate(recipe.CompoundedAt()), recipe.ID, recipe.ID, recipe.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}
