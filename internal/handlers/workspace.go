package handlers

import (
	"net/http"

	templpkg "github.com/a-h/templ"

	"magistral/internal/views/pages"
)

// Workspace renders the main calculator workbench once a user is authenticated.
func Workspace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	snapshot := buildWorkspaceSnapshot(r)

	var component templpkg.Component
	if isHTMX(r) {
		component = pages.WorkspacePartial(snapshot)
	} else {
		component = pages.Workspace(snapshot)
	}

	renderComponent(w, r, component)
}

// Recipes renders the saved recipe log.
func Recipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	snapshot := buildWorkspaceSnapshot(r)

	var component templpkg.Component
	if isHTMX(r) {
		component = pages.RecipesTable(snapshot)
	} else {
		component = pages.RecipesPage(snapshot)
	}

	renderComponent(w, r, component)
}

// Home redirects visitors to the workspace or the login screen.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if ActiveSession(r) {
		redirectToApp(w, r)
		return
	}
	redirectToLogin(w, r)
}
