package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"magistral/internal/formulation"
	"magistral/models"
)

const legacyInjectableJSON = `{
  "config": {
    "ester_key": "estradiol_enanthate",
    "oil_key": "mct_oil",
    "concentration": 40,
    "total_volume": 10,
    "loss_modifier": 10,
    "ba_percent": 2,
    "bb_percent": 0,
    "ester": {"name": "Estradiol Enanthate"}
  },
  "metadata": {"formulation_type": "injectable", "version": "1.2.4"}
}`

const legacyTransdermalJSON = `{
  "config": {
    "ester_key": "estradiol_spray",
    "total_volume": 120,
    "loss_modifier": 5
  },
  "metadata": {"formulation_type": "transdermal_spray", "version": "1.2.4"}
}`

func writeRecipeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write recipe file: %v", err)
	}
	return path
}

func TestReadLegacyRecipe(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeRecipeFile(t, dir, "luna_e2en.json", legacyInjectableJSON)

	legacy, err := readLegacyRecipe(path)
	if err != nil {
		t.Fatalf("readLegacyRecipe returned error: %v", err)
	}
	if legacy.Config.EsterKey != "estradiol_enanthate" {
		t.Fatalf("unexpected ester key %q", legacy.Config.EsterKey)
	}
	if legacy.Config.TotalVolume != 10 {
		t.Fatalf("unexpected total volume %v", legacy.Config.TotalVolume)
	}
	if legacy.Metadata.FormulationType != "injectable" {
		t.Fatalf("unexpected formulation type %q", legacy.Metadata.FormulationType)
	}
}

func TestReadLegacyRecipeRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeRecipeFile(t, dir, "broken.json", "{not json")

	if _, err := readLegacyRecipe(path); err == nil {
		t.Fatal("expected error for corrupt recipe file")
	}
}

func TestBuildRecipeInjectable(t *testing.T) {
	t.Parallel()

	legacy, err := readLegacyRecipe(writeRecipeFile(t, t.TempDir(), "r.json", legacyInjectableJSON))
	if err != nil {
		t.Fatalf("readLegacyRecipe returned error: %v", err)
	}

	recipe, err := buildRecipe(legacy, "luna e2en")
	if err != nil {
		t.Fatalf("buildRecipe returned error: %v", err)
	}

	if recipe.FormulationType != models.FormulationInjectable {
		t.Fatalf("unexpected formulation type %q", recipe.FormulationType)
	}
	if recipe.Name != "luna e2en" {
		t.Fatalf("unexpected name %q", recipe.Name)
	}
	if math.Abs(recipe.AdjustedVolumeML-11) > 1e-9 {
		t.Fatalf("expected adjusted volume 11 mL, got %v", recipe.AdjustedVolumeML)
	}
	if recipe.CarrierOilML <= 0 {
		t.Fatalf("expected positive carrier oil volume, got %v", recipe.CarrierOilML)
	}
	if recipe.SolubilityFlag == "" {
		t.Fatal("expected solubility flag to be recorded")
	}
}

func TestBuildRecipeTransdermal(t *testing.T) {
	t.Parallel()

	legacy, err := readLegacyRecipe(writeRecipeFile(t, t.TempDir(), "r.json", legacyTransdermalJSON))
	if err != nil {
		t.Fatalf("readLegacyRecipe returned error: %v", err)
	}

	recipe, err := buildRecipe(legacy, "spray batch")
	if err != nil {
		t.Fatalf("buildRecipe returned error: %v", err)
	}

	if recipe.FormulationType != models.FormulationTransdermal {
		t.Fatalf("unexpected formulation type %q", recipe.FormulationType)
	}
	if recipe.EsterKey != formulation.EstradiolSprayKey {
		t.Fatalf("unexpected ester key %q", recipe.EsterKey)
	}
	if math.Abs(recipe.Concentration-formulation.SprayConcentration) > 1e-9 {
		t.Fatalf("expected fixed spray concentration, got %v", recipe.Concentration)
	}
	if math.Abs(recipe.AdjustedVolumeML-126) > 1e-9 {
		t.Fatalf("expected adjusted volume 126 mL, got %v", recipe.AdjustedVolumeML)
	}
}

func TestResolveEsterKeyFallsBackToName(t *testing.T) {
	t.Parallel()

	var legacy legacyRecipe
	legacy.Config.Ester.Name = "testosterone enanthate"

	key, err := resolveEsterKey(legacy)
	if err != nil {
		t.Fatalf("resolveEsterKey returned error: %v", err)
	}
	if key != "testosterone_enanthate" {
		t.Fatalf("unexpected ester key %q", key)
	}
}

func TestResolveEsterKeyRejectsUnknown(t *testing.T) {
	t.Parallel()

	var legacy legacyRecipe
	legacy.Config.EsterKey = "mystery_ester"

	if _, err := resolveEsterKey(legacy); err == nil {
		t.Fatal("expected error for unknown ester key")
	}
}

func TestListRecipeFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeRecipeFile(t, dir, "b_second.json", legacyInjectableJSON)
	writeRecipeFile(t, dir, "a_first.json", legacyInjectableJSON)
	writeRecipeFile(t, dir, "notes.txt", "not a recipe")
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := listRecipeFiles(dir)
	if err != nil {
		t.Fatalf("listRecipeFiles returned error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 recipe files, got %d: %v", len(paths), paths)
	}
	if filepath.Base(paths[0]) != "a_first.json" || filepath.Base(paths[1]) != "b_second.json" {
		t.Fatalf("unexpected ordering: %v", paths)
	}
}

func TestRecipeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want string
	}{
		{"recipes/luna_e2en.json", "luna e2en"},
		{"te_250.json", "te 250"},
		{"/abs/path/Spray_Batch.json", "Spray Batch"},
	}
	for _, tc := range cases {
		if got := recipeName(tc.path); got != tc.want {
			t.Fatalf("recipeName(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestRunRejectsMissingDirectory(t *testing.T) {
	t.Parallel()

	if err := run(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing recipes directory")
	}
	if err := run("  "); err == nil {
		t.Fatal("expected error for blank recipes directory")
	}
}
