package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"magistral/internal/formulation"
)

// ToolsPanel renders the legacy worksheet import form.
func ToolsPanel(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="bench-panel" id="tools-panel"><h2>Import legacy worksheet</h2><p class="bench-hint">Upload a worksheet PDF or text export and Magistral will recover the batch parameters.</p>`); err != nil {
			return err
		}
		if message != "" {
			if _, err := fmt.Fprintf(w, `<p class="calc-error" role="alert">%s</p>`, templ.EscapeString(message)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<form method="post" action="/app/tools/import-worksheet" enctype="multipart/form-data" hx-post="/app/tools/import-worksheet" hx-target="#tools-panel" hx-swap="outerHTML" hx-encoding="multipart/form-data"><label>Worksheet file<input type="file" name="worksheet" accept=".pdf,.txt" required></label><button type="submit">Import</button></form></section>`)
		return err
	})
}

// ImportedWorksheet renders the parameters recovered from a legacy worksheet
// together with the recomputed batch.
func ImportedWorksheet(req formulation.InjectableRequest, res formulation.InjectableResult, notes []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="bench-panel" id="tools-panel"><h2>Imported worksheet</h2>`); err != nil {
			return err
		}
		for _, note := range notes {
			if _, err := fmt.Fprintf(w, `<p class="calc-warning">%s</p>`, templ.EscapeString(note)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<dl class="worksheet-facts"><dt>Compound</dt><dd>%s</dd><dt>Carrier oil</dt><dd>%s</dd><dt>Concentration</dt><dd>%s</dd><dt>Batch volume</dt><dd>%s</dd><dt>Benzyl alcohol</dt><dd>%s</dd><dt>Benzyl benzoate</dt><dd>%s</dd></dl>`,
			templ.EscapeString(req.EsterKey),
			templ.EscapeString(req.OilKey),
			FormatConcentration(req.Concentration),
			FormatVolume(req.BatchVolumeML),
			FormatPercent(req.BenzylAlcoholPct),
			FormatPercent(req.BenzylBenzoatePct)); err != nil {
			return err
		}
		if err := InjectableResults(req, res).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}
