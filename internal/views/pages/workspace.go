package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"magistral/internal/formulation"
	"magistral/internal/views/components"
	"magistral/internal/views/theme"
)

func workspaceSidebar(active string) templ.Component {
	return components.Sidebar(components.SidebarData{
		Active: active,
		Features: []components.SidebarLink{
			{Label: "Calculator", Path: "/app", Section: "calculator"},
			{Label: "Recipes", Path: "/app/recipes", Section: "recipes"},
			{Label: "Import", Path: "/app/tools", Section: "tools"},
		},
	})
}

func workspaceBody(snapshot WorkspaceSnapshot, active string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="bench-header"><span class="bench-brand">Magistral</span><form method="post" action="/logout"><button type="submit" class="bench-logout">Sign out</button></form></header><div class="bench-columns">`); err != nil {
			return err
		}
		if err := workspaceSidebar(active).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="bench-main" id="bench-main">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></div>`)
		return err
	})
}

func calculatorPanel(snapshot WorkspaceSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="bench-panel" id="calculator-panel"><h2>Injectable batch</h2><form hx-post="/app/calculator/injectable" hx-target="#calculator-results" hx-swap="innerHTML"><label>Compound<select name="ester">`); err != nil {
			return err
		}
		for _, ester := range formulation.InjectableEsters() {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>`, templ.EscapeString(ester.Key), templ.EscapeString(ester.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select></label><label>Carrier oil<select name="oil">`); err != nil {
			return err
		}
		for _, oil := range formulation.CarrierOils() {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>`, templ.EscapeString(oil.Key), templ.EscapeString(oil.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select></label><label>Concentration (mg/mL)<input type="number" name="concentration" step="0.01" min="0" required></label><label>Batch volume (mL)<input type="number" name="batch_volume" step="0.1" min="0" required></label><label>Loss allowance (%)<input type="number" name="loss_percent" step="0.5" min="0" max="25" value="10"></label><label>Benzyl alcohol (%)<input type="number" name="ba_percent" step="0.1" min="0" max="5" value="2"></label><label>Benzyl benzoate (%)<input type="number" name="bb_percent" step="0.5" min="0" max="25" value="0"></label><button type="submit">Compute</button></form><div id="calculator-results"></div></section><section class="bench-panel" id="spray-panel"><h2>Transdermal spray</h2><form hx-post="/app/calculator/transdermal" hx-target="#spray-results" hx-swap="innerHTML"><label>Target volume (mL)<input type="number" name="target_volume" step="1" min="0" value="120" required></label><label>Loss allowance (%)<input type="number" name="loss_percent" step="0.5" min="0" max="20" value="5"></label><button type="submit">Compute</button></form><div id="spray-results"></div></section>`); err != nil {
			return err
		}
		if err := preferencesPanel(snapshot.Theme, "").Render(ctx, w); err != nil {
			return err
		}
		return nil
	})
}

func preferencesPanel(activeTheme, status string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="bench-panel" id="preferences-panel"><h2>Preferences</h2><p class="preferences-status">%s</p><form hx-post="/app/preferences/update" hx-target="#preferences-panel" hx-swap="outerHTML"><label>Theme<select name="theme">`, templ.EscapeString(PreferenceStatusMessage(status))); err != nil {
			return err
		}
		for _, option := range theme.Options() {
			selected := ""
			if option.Value == activeTheme {
				selected = ` selected`
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, templ.EscapeString(option.Value), selected, templ.EscapeString(option.Label)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select></label><button type="submit">Save</button></form></section>`)
		return err
	})
}

// PreferencesPanel renders the theme selection card with a status banner.
func PreferencesPanel(activeTheme, status string) templ.Component {
	return preferencesPanel(activeTheme, status)
}

// Workspace renders the full authenticated workbench page.
func Workspace(snapshot WorkspaceSnapshot) templ.Component {
	resolved := theme.Resolve(snapshot.Theme)
	return components.Shell("Workbench · Magistral", resolved, workspaceBody(snapshot, "calculator", calculatorPanel(snapshot)))
}

// WorkspacePartial renders only the calculator column for HTMX swaps.
func WorkspacePartial(snapshot WorkspaceSnapshot) templ.Component {
	return calculatorPanel(snapshot)
}

// RecipesPage renders the full recipe log page.
func RecipesPage(snapshot WorkspaceSnapshot) templ.Component {
	resolved := theme.Resolve(snapshot.Theme)
	return components.Shell("Recipes · Magistral", resolved, workspaceBody(snapshot, "recipes", RecipesTable(snapshot)))
}

// ToolsPage renders the full import tools page.
func ToolsPage(snapshot WorkspaceSnapshot, content templ.Component) templ.Component {
	resolved := theme.Resolve(snapshot.Theme)
	return components.Shell("Import · Magistral", resolved, workspaceBody(snapshot, "tools", content))
}
