package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"magistral/internal/views/theme"
)

// SidebarLink describes one navigation entry in the workspace sidebar.
type SidebarLink struct {
	Label   string
	Path    string
	Section string
}

// SidebarData carries the navigation model for the workspace shell.
type SidebarData struct {
	Active   string
	Features []SidebarLink
}

func linkState(section, active string) string {
	if section == active {
		return "active"
	}
	return "inactive"
}

// Sidebar renders the workspace navigation column.
func Sidebar(data SidebarData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<nav class="bench-sidebar"><ul>`); err != nil {
			return err
		}
		for _, link := range data.Features {
			_, err := fmt.Fprintf(w,
				`<li><a href="%s" hx-boost="true" data-state="%s" data-nav-section="%s">%s</a></li>`,
				templ.EscapeString(link.Path),
				linkState(link.Section, data.Active),
				templ.EscapeString(link.Section),
				templ.EscapeString(link.Label),
			)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></nav>`)
		return err
	})
}

// StatCard renders a single summary metric tile.
func StatCard(label, value, delta, caption string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="stat-card"><span class="stat-label">%s</span><span class="stat-value">%s</span><span class="stat-delta">%s</span><span class="stat-caption">%s</span></div>`,
			templ.EscapeString(label),
			templ.EscapeString(value),
			templ.EscapeString(delta),
			templ.EscapeString(caption),
		)
		return err
	})
}

// Badge renders a small status pill with the provided styling hook.
func Badge(class, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<span class="%s">%s</span>`,
			templ.EscapeString(class), templ.EscapeString(text))
		return err
	})
}

// Shell wraps page content in the full HTML document with the resolved theme.
func Shell(title string, workspaceTheme theme.WorkspaceTheme, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/assets/css/app.css"><script src="/assets/js/htmx.min.js" defer></script></head><body class="%s" data-theme="%s"><div class="%s">`,
			templ.EscapeString(title),
			templ.EscapeString(workspaceTheme.BodyClass),
			templ.EscapeString(workspaceTheme.Key),
			templ.EscapeString(workspaceTheme.ShellClass),
		)
		if err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</div></body></html>`)
		return err
	})
}
