package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gorm.io/gorm"

	"magistral/internal/config"
	"magistral/internal/db"
	"magistral/internal/formulation"
	"magistral/models"
)

// legacyRecipe mirrors the JSON files written by the original desktop tool
// under ~/.compoundmemommy/recipes. Only the config block and the formulation
// type are trusted; all derived quantities are recomputed before persisting.
type legacyRecipe struct {
	Config struct {
		EsterKey      string  `json:"ester_key"`
		OilKey        string  `json:"oil_key"`
		Concentration float64 `json:"concentration"`
		TotalVolume   float64 `json:"total_volume"`
		LossModifier  float64 `json:"loss_modifier"`
		BAPercent     float64 `json:"ba_percent"`
		BBPercent     float64 `json:"bb_percent"`
		Ester         struct {
			Name string `json:"name"`
		} `json:"ester"`
	} `json:"config"`
	Metadata struct {
		FormulationType string `json:"formulation_type"`
	} `json:"metadata"`
}

func main() {
	recipesDir := "recipes"
	if len(os.Args) > 1 {
		recipesDir = os.Args[1]
	}

	if err := run(recipesDir); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(recipesDir string) error {
	if strings.TrimSpace(recipesDir) == "" {
		return fmt.Errorf("recipes directory must not be empty")
	}

	if _, err := os.Stat(recipesDir); err != nil {
		return fmt.Errorf("locate recipes directory: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(database); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	paths, err := listRecipeFiles(recipesDir)
	if err != nil {
		return fmt.Errorf("list recipe files: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .json recipe files found in %s", recipesDir)
	}

	ownerID, err := resolveImportOwner(database)
	if err != nil {
		return fmt.Errorf("resolve owner: %w", err)
	}

	imported := 0
	for _, path := range paths {
		if err := database.Transaction(func(tx *gorm.DB) error {
			legacy, err := readLegacyRecipe(path)
			if err != nil {
				return err
			}

			recipe, err := buildRecipe(legacy, recipeName(path))
			if err != nil {
				return err
			}
			recipe.OwnerID = ownerID

			var existing models.Recipe
			err = tx.Where("owner_id = ? AND name = ?", ownerID, recipe.Name).First(&existing).Error
			switch {
			case err == nil:
				recipe.ID = existing.ID
				recipe.CreatedAt = existing.CreatedAt
				if err := tx.Save(recipe).Error; err != nil {
					return fmt.Errorf("update recipe %q: %w", recipe.Name, err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(recipe).Error; err != nil {
					return fmt.Errorf("create recipe %q: %w", recipe.Name, err)
				}
			default:
				return fmt.Errorf("find recipe %q: %w", recipe.Name, err)
			}

			return nil
		}); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		imported++
	}

	fmt.Fprintf(os.Stdout, "Imported %d recipes from %s\n", imported, recipesDir)
	return nil
}

func resolveImportOwner(database *gorm.DB) (uint, error) {
	if database == nil {
		return 0, fmt.Errorf("database handle is nil")
	}

	ctx := context.Background()
	email := strings.TrimSpace(os.Getenv("MAGISTRAL_IMPORT_OWNER_EMAIL"))
	if email != "" {
		var user models.User
		if err := database.WithContext(ctx).Where("lower(email) = ?", strings.ToLower(email)).First(&user).Error; err != nil {
			return 0, fmt.Errorf("find owner by email %q: %w", strings.ToLower(email), err)
		}
		return user.ID, nil
	}

	var user models.User
	if err := database.WithContext(ctx).Order("id asc").First(&user).Error; err != nil {
		return 0, fmt.Errorf("find default owner: %w", err)
	}
	return user.ID, nil
}

func listRecipeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func readLegacyRecipe(path string) (legacyRecipe, error) {
	var legacy legacyRecipe

	raw, err := os.ReadFile(path)
	if err != nil {
		return legacy, fmt.Errorf("read recipe: %w", err)
	}
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return legacy, fmt.Errorf("decode recipe: %w", err)
	}
	return legacy, nil
}

// recipeName derives the workbench recipe name from the legacy filename, the
// only place the original tool stored it.
func recipeName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(name)
}

func buildRecipe(legacy legacyRecipe, name string) (*models.Recipe, error) {
	if legacy.Metadata.FormulationType == models.FormulationTransdermal {
		req := formulation.TransdermalRequest{
			TargetVolumeML: legacy.Config.TotalVolume,
			LossPercent:    legacy.Config.LossModifier,
		}
		result, err := formulation.ComputeTransdermal(req)
		if err != nil {
			return nil, fmt.Errorf("recompute transdermal recipe: %w", err)
		}
		return &models.Recipe{
			Name:             name,
			FormulationType:  models.FormulationTransdermal,
			EsterKey:         formulation.EstradiolSprayKey,
			Concentration:    result.Concentration,
			BatchVolumeML:    req.TargetVolumeML,
			LossPercent:      req.LossPercent,
			AdjustedVolumeML: result.AdjustedVolumeML,
			APIMassG:         result.EstradiolMassG,
			APIVolumeML:      result.EstradiolVolumeML,
		}, nil
	}

	esterKey, err := resolveEsterKey(legacy)
	if err != nil {
		return nil, err
	}

	oilKey := legacy.Config.OilKey
	if oilKey == "" {
		oilKey = "sesame_oil"
	}

	req := formulation.InjectableRequest{
		EsterKey:          esterKey,
		OilKey:            oilKey,
		Concentration:     legacy.Config.Concentration,
		BatchVolumeML:     legacy.Config.TotalVolume,
		LossPercent:       legacy.Config.LossModifier,
		BenzylAlcoholPct:  legacy.Config.BAPercent,
		BenzylBenzoatePct: legacy.Config.BBPercent,
	}
	result, err := formulation.ComputeInjectable(req)
	if err != nil {
		return nil, fmt.Errorf("recompute injectable recipe: %w", err)
	}

	return &models.Recipe{
		Name:               name,
		FormulationType:    models.FormulationInjectable,
		EsterKey:           req.EsterKey,
		OilKey:             req.OilKey,
		Concentration:      req.Concentration,
		BatchVolumeML:      req.BatchVolumeML,
		LossPercent:        req.LossPercent,
		BenzylAlcoholPct:   req.BenzylAlcoholPct,
		BenzylBenzoatePct:  req.BenzylBenzoatePct,
		AdjustedVolumeML:   result.AdjustedVolumeML,
		APIMassG:           result.APIMassG,
		APIVolumeML:        result.APIVolumeML,
		BenzylAlcoholML:    result.BenzylAlcoholML,
		BenzylBenzoateML:   result.BenzylBenzoateML,
		CarrierOilML:       result.CarrierOilML,
		EsterConcentration: result.EsterConcentration,
		SolubilityLimit:    result.SolubilityLimit,
		SolubilityFlag:     result.Solubility.String(),
	}, nil
}

func resolveEsterKey(legacy legacyRecipe) (string, error) {
	if legacy.Config.EsterKey != "" {
		if _, ok := formulation.EsterByKey(legacy.Config.EsterKey); ok {
			return legacy.Config.EsterKey, nil
		}
		return "", fmt.Errorf("unknown ester key %q", legacy.Config.EsterKey)
	}

	name := strings.TrimSpace(legacy.Config.Ester.Name)
	if name == "" {
		return "", fmt.Errorf("recipe does not name an ester")
	}
	for _, ester := range formulation.Esters() {
		if strings.EqualFold(ester.Name, name) {
			return ester.Key, nil
		}
	}
	return "", fmt.Errorf("unknown ester %q", name)
}
