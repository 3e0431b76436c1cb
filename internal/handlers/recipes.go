package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"magistral/internal/formulation"
	applog "magistral/internal/log"
	"magistral/internal/metrics"
	"magistral/internal/views/pages"
	"magistral/models"
)

// RecipesAPI serves the recipe collection: GET lists the caller's recipes,
// POST computes and persists a new one. Recipes are immutable snapshots,
// so there is no update or delete.
func RecipesAPI(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		listRecipes(w, r)
	case http.MethodPost:
		createRecipe(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func listRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if database == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "storage not available")
		return
	}

	var recipes []models.Recipe
	if err := database.WithContext(r.Context()).Where("owner_id = ?", userID).Order("created_at desc").Find(&recipes).Error; err != nil {
		applog.Error(r.Context(), "failed to list recipes", "error", err, "userID", userID)
		writeJSONError(w, http.StatusInternalServerError, "failed to load recipes")
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

func createRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if database == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "storage not available")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		writeJSONError(w, http.StatusBadRequest, "recipe name is required")
		return
	}
	notes := strings.TrimSpace(r.FormValue("notes"))

	var recipe *models.Recipe
	if r.FormValue("formulation_type") == models.FormulationTransdermal {
		req := formulation.TransdermalRequest{}
		var err error
		if req.TargetVolumeML, err = parseFloatField(r, "batch_volume"); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.LossPercent, err = parseFloatField(r, "loss_percent"); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := formulation.ComputeTransdermal(req)
		if err != nil {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		recipe = &models.Recipe{
			OwnerID:          userID,
			Name:             name,
			Notes:            notes,
			FormulationType:  models.FormulationTransdermal,
			EsterKey:         formulation.EstradiolSprayKey,
			Concentration:    result.Concentration,
			BatchVolumeML:    req.TargetVolumeML,
			LossPercent:      req.LossPercent,
			AdjustedVolumeML: result.AdjustedVolumeML,
			APIMassG:         result.EstradiolMassG,
			APIVolumeML:      result.EstradiolVolumeML,
		}
	} else {
		req, err := injectableRequestFromForm(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := formulation.ComputeInjectable(req)
		if err != nil {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		recipe = &models.Recipe{
			OwnerID:            userID,
			Name:               name,
			Notes:              notes,
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
		}
	}

	recipe.NumVials = int(pages.ParseUint(r.FormValue("num_vials")))
	if vialSize, err := parseFloatField(r, "vial_size"); err == nil {
		recipe.VialSizeML = vialSize
	}

	if err := database.WithContext(r.Context()).Create(recipe).Error; err != nil {
		applog.Error(r.Context(), "failed to persist recipe", "error", err, "userID", userID)
		writeJSONError(w, http.StatusInternalServerError, "failed to save recipe")
		return
	}

	metrics.RecipesSaved.Inc()
	applog.Info(r.Context(), "recipe saved", "recipeID", recipe.ID, "userID", userID, "type", recipe.FormulationType)

	if isHTMX(r) {
		renderComponent(w, r, pages.SaveConfirmation(fmt.Sprintf("Saved %q to your recipe log.", recipe.Name)))
		return
	}
	writeJSON(w, http.StatusCreated, recipe)
}

// RecipeAPIByID serves a single recipe. With format=json the response is
// offered as a download of the workbench's own recipe snapshot; legacy
// files from the desktop tool go through cmd/import_recipes instead.
func RecipeAPIByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	userID, ok := currentUserID(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if database == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "storage not available")
		return
	}

	id := pages.ParseUint(strings.TrimPrefix(r.URL.Path, "/app/api/recipes/"))
	if id == 0 {
		writeJSONError(w, http.StatusBadRequest, "invalid recipe id")
		return
	}

	recipe := &models.Recipe{}
	err := database.WithContext(r.Context()).Where("owner_id = ?", userID).First(recipe, id).Error
	if err == gorm.ErrRecordNotFound {
		writeJSONError(w, http.StatusNotFound, "recipe not found")
		return
	}
	if err != nil {
		applog.Error(r.Context(), "failed to load recipe", "error", err, "recipeID", id)
		writeJSONError(w, http.StatusInternalServerError, "failed to load recipe")
		return
	}

	if r.URL.Query().Get("format") == "json" {
		filename := fmt.Sprintf("magistral-recipe-%d.json", recipe.ID)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.Header().Set("Content-Type", "application/json")
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(recipe); err != nil {
			applog.Error(r.Context(), "failed to encode recipe download", "error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}
