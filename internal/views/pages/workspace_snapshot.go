package pages

import (
	"sort"
	"strconv"

	"magistral/models"
)

// WorkspaceSnapshot aggregates the data required to render the bench workspace.
type WorkspaceSnapshot struct {
	Recipes []models.Recipe
	Theme   string
	UserID  uint
}

// NewWorkspaceSnapshot normalises and sorts the data required by the workspace views.
// Recipes are ordered newest first so the bench log reads like a journal.
func NewWorkspaceSnapshot(recipes []models.Recipe, theme string, userID uint) WorkspaceSnapshot {
	sort.SliceStable(recipes, func(i, j int) bool {
		if recipes[i].CreatedAt.Equal(recipes[j].CreatedAt) {
			return recipes[i].ID > recipes[j].ID
		}
		return recipes[i].CreatedAt.After(recipes[j].CreatedAt)
	})

	return WorkspaceSnapshot{
		Recipes: recipes,
		Theme:   theme,
		UserID:  userID,
	}
}

// EmptyWorkspaceSnapshot returns a zero-value snapshot to simplify call sites when no data is available.
func EmptyWorkspaceSnapshot() WorkspaceSnapshot {
	return WorkspaceSnapshot{Theme: models.DefaultTheme}
}

// FindRecipe returns the recipe with the given identifier, or nil when absent.
func (s WorkspaceSnapshot) FindRecipe(id uint) *models.Recipe {
	for i := range s.Recipes {
		if s.Recipes[i].ID == id {
			return &s.Recipes[i]
		}
	}
	return nil
}

// RecipeTypeLabel returns a user-friendly label for the stored formulation type.
func RecipeTypeLabel(formulationType string) string {
	switch formulationType {
	case models.FormulationInjectable:
		return "Injectable"
	case models.FormulationTransdermal:
		return "Transdermal Spray"
	default:
		return "Unknown"
	}
}

// SolubilityBadgeClass maps a stored solubility flag to a styling hook.
func SolubilityBadgeClass(flag string) string {
	switch flag {
	case "safe":
		return "badge badge-safe"
	case "caution":
		return "badge badge-caution"
	case "unsafe":
		return "badge badge-unsafe"
	default:
		return "badge"
	}
}

// ParseUint converts a query or form value into an unsigned identifier,
// returning zero for anything unparsable.
func ParseUint(value string) uint {
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}
	return uint(parsed)
}
