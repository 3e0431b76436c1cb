package handlers

import (
	"net/http"
	"strings"

	applog "magistral/internal/log"
	"magistral/internal/views/pages"
	"magistral/internal/views/theme"
	"magistral/models"
)

type preferencesResponse struct {
	Theme string `json:"theme"`
}

// UpdatePreferences persists workspace preferences for the authenticated user.
func UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user, err := loadCurrentUser(r)
	if err != nil {
		applog.Error(r.Context(), "unable to load current user for preferences", "error", err)
		http.Error(w, "unable to load account", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse preferences form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	themeValue := models.NormalizeTheme(strings.TrimSpace(r.FormValue("theme")))
	if !models.ValidTheme(themeValue) {
		applog.Debug(r.Context(), "received invalid theme selection", "value", themeValue)
		http.Error(w, "invalid theme selection", http.StatusBadRequest)
		return
	}
	themeConfig := theme.Resolve(themeValue)

	if database == nil {
		applog.Debug(r.Context(), "database not configured; skipping preference persistence")
	} else {
		if err := database.WithContext(r.Context()).Model(user).Update("theme", themeConfig.Key).Error; err != nil {
			applog.Error(r.Context(), "failed to persist user preferences", "error", err)
			http.Error(w, "failed to save preferences", http.StatusInternalServerError)
			return
		}
	}

	setSessionTheme(r, themeConfig.Key)

	if isHTMX(r) {
		renderComponent(w, r, pages.PreferencesPanel(themeConfig.Key, "Theme saved."))
		return
	}
	writeJSON(w, http.StatusOK, preferencesResponse{Theme: themeConfig.Key})
}
