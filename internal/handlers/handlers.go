package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	applog "magistral/internal/log"
	"magistral/internal/views/pages"
	"magistral/models"
)

const (
	sessionAuthenticatedKey = "auth:authenticated"
	sessionLoginMessageKey  = "auth:message"
	sessionUserIDKey        = "auth:user:id"
	sessionUserEmailKey     = "auth:user:email"
	sessionUserNameKey      = "auth:user:name"
	sessionThemeKey         = "prefs:theme"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB) {
	sessionManager = sm
	database = db
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

func renderComponent(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render workspace fragment", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func currentUserID(r *http.Request) (uint, bool) {
	if sessionManager == nil {
		return 0, false
	}
	id := sessionManager.GetInt(r.Context(), sessionUserIDKey)
	if id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func loadCurrentUser(r *http.Request) (*models.User, error) {
	id, ok := currentUserID(r)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}

	user := &models.User{}
	if err := database.WithContext(r.Context()).First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func setSessionTheme(r *http.Request, themeKey string) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionThemeKey, themeKey)
}

func sessionTheme(r *http.Request) string {
	if sessionManager == nil {
		return models.DefaultTheme
	}
	if value := sessionManager.GetString(r.Context(), sessionThemeKey); value != "" {
		return value
	}
	return models.DefaultTheme
}

// buildWorkspaceSnapshot loads the current user's recipes and theme for
// rendering. Missing dependencies degrade to an empty snapshot so views
// still render during partial outages.
func buildWorkspaceSnapshot(r *http.Request) pages.WorkspaceSnapshot {
	userID, ok := currentUserID(r)
	if !ok || database == nil {
		return pages.EmptyWorkspaceSnapshot()
	}

	var recipes []models.Recipe
	if err := database.WithContext(r.Context()).Where("owner_id = ?", userID).Find(&recipes).Error; err != nil {
		applog.Error(r.Context(), "failed to load recipes for workspace", "error", err, "userID", userID)
		recipes = nil
	}

	return pages.NewWorkspaceSnapshot(recipes, sessionTheme(r), userID)
}
