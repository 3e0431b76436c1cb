package mock

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"magistral/models"
)

func TestNewSeedsExpectedRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := New(ctx)
	if err != nil {
		t.Fatalf("mock database initialization failed: %v", err)
	}

	var user models.User
	if err := db.WithContext(ctx).First(&user).Error; err != nil {
		t.Fatalf("query user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("workbench")); err != nil {
		t.Fatalf("unexpected password hash: %v", err)
	}

	var recipes []models.Recipe
	if err := db.WithContext(ctx).Find(&recipes).Error; err != nil {
		t.Fatalf("query recipes: %v", err)
	}
	if len(recipes) < 3 {
		t.Fatalf("expected at least 3 seeded recipes, got %d", len(recipes))
	}

	types := map[string]bool{}
	for _, recipe := range recipes {
		types[recipe.FormulationType] = true
		if recipe.OwnerID != user.ID {
			t.Errorf("recipe %q owned by %d, want %d", recipe.Name, recipe.OwnerID, user.ID)
		}
		if recipe.AdjustedVolumeML <= recipe.BatchVolumeML {
			t.Errorf("recipe %q adjusted volume %.2f not above batch volume %.2f", recipe.Name, recipe.AdjustedVolumeML, recipe.BatchVolumeML)
		}
	}
	if !types[models.FormulationInjectable] || !types[models.FormulationTransdermal] {
		t.Fatalf("expected both formulation types seeded, got %v", types)
	}
}
