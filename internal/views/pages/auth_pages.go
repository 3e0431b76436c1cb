package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"magistral/internal/views/components"
	"magistral/internal/views/theme"
)

func loginForm(message, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="auth-panel" id="auth-panel"><h1>Magistral</h1><p class="auth-tagline">Formulation workbench</p>`); err != nil {
			return err
		}
		if message != "" {
			if _, err := fmt.Fprintf(w, `<p class="auth-message" role="alert">%s</p>`, templ.EscapeString(message)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/login" hx-post="/login" hx-target="#auth-panel" hx-swap="outerHTML"><label>Email<input type="email" name="email" value="%s" required></label><label>Password<input type="password" name="password" required></label><button type="submit">Sign in</button></form><p class="auth-switch">No account? <a href="/signup" hx-boost="true">Create one</a>.</p></section>`,
			templ.EscapeString(email),
		)
		return err
	})
}

// Login renders the full sign-in page.
func Login(message, email string) templ.Component {
	return components.Shell("Sign in · Magistral", theme.Resolve(""), loginForm(message, email))
}

// LoginPartial renders only the sign-in panel for HTMX swaps.
func LoginPartial(message, email string) templ.Component {
	return loginForm(message, email)
}

func signupForm(message, name, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="auth-panel" id="auth-panel"><h1>Create your bench</h1>`); err != nil {
			return err
		}
		if message != "" {
			if _, err := fmt.Fprintf(w, `<p class="auth-message" role="alert">%s</p>`, templ.EscapeString(message)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/signup" hx-post="/signup" hx-target="#auth-panel" hx-swap="outerHTML"><label>Name<input type="text" name="name" value="%s"></label><label>Email<input type="email" name="email" value="%s" required></label><label>Password<input type="password" name="password" required minlength="8"></label><label>Confirm password<input type="password" name="confirm_password" required></label><button type="submit">Create account</button></form><p class="auth-switch">Already registered? <a href="/login" hx-boost="true">Sign in</a>.</p></section>`,
			templ.EscapeString(name),
			templ.EscapeString(email),
		)
		return err
	})
}

// Signup renders the full registration page.
func Signup(message, name, email string) templ.Component {
	return components.Shell("Sign up · Magistral", theme.Resolve(""), signupForm(message, name, email))
}

// SignupPartial renders only the registration panel for HTMX swaps.
func SignupPartial(message, name, email string) templ.Component {
	return signupForm(message, name, email)
}
