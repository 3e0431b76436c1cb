package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"magistral/internal/formulation"
	"magistral/models"
)

func seedInjectableRecipe(t *testing.T, ownerID uint) *models.Recipe {
	t.Helper()

	req := formulation.InjectableRequest{
		Concentration:     40,
		BatchVolumeML:     10,
		LossPercent:       10,
		EsterKey:          "estradiol_enanthate",
		OilKey:            "mct_oil",
		BenzylAlcoholPct:  2,
		BenzylBenzoatePct: 0,
	}
	result, err := formulation.ComputeInjectable(req)
	if err != nil {
		t.Fatalf("compute recipe fixture: %v", err)
	}

	recipe := &models.Recipe{
		OwnerID:            ownerID,
		Name:               "Worksheet Fixture",
		FormulationType:    models.FormulationInjectable,
		EsterKey:           req.EsterKey,
		OilKey:             req.OilKey,
		Concentration:      req.Concentration,
		BatchVolumeML:      req.BatchVolumeML,
		LossPercent:        req.LossPercent,
		BenzylAlcoholPct:   req.BenzylAlcoholPct,
		AdjustedVolumeML:   result.AdjustedVolumeML,
		APIMassG:           result.APIMassG,
		APIVolumeML:        result.APIVolumeML,
		BenzylAlcoholML:    result.BenzylAlcoholML,
		CarrierOilML:       result.CarrierOilML,
		EsterConcentration: result.EsterConcentration,
		SolubilityLimit:    result.SolubilityLimit,
		SolubilityFlag:     result.Solubility.String(),
	}
	if err := database.Create(recipe).Error; err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
	return recipe
}

func TestWorksheetRendersPrintableSheet(t *testing.T) {
	_, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	owner, login := seedUserAndLogin(t, "sheet@example.com")
	recipe := seedInjectableRecipe(t, owner.ID)

	req := login(httptest.NewRequest(http.MethodGet, "/app/recipes/worksheet?id=1", nil))
	rec := httptest.NewRecorder()
	Worksheet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, token := range []string{recipe.Name, "MAG-000001", "Estradiol Enanthate", "Prepared by"} {
		if !strings.Contains(body, token) {
			t.Errorf("worksheet missing %q", token)
		}
	}
}

func TestWorksheetRejectsUnknownRecipe(t *testing.T) {
	_, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	_, login := seedUserAndLogin(t, "missing@example.com")

	req := login(httptest.NewRequest(http.MethodGet, "/app/recipes/worksheet?id=99", nil))
	rec := httptest.NewRecorder()
	Worksheet(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWorksheetXLSXStreamsSpreadsheet(t *testing.T) {
	_, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	owner, login := seedUserAndLogin(t, "xlsx@example.com")
	recipe := seedInjectableRecipe(t, owner.ID)

	req := login(httptest.NewRequest(http.MethodGet, "/app/recipes/worksheet.xlsx?id=1", nil))
	rec := httptest.NewRecorder()
	WorksheetXLSX(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "spreadsheetml") {
		t.Errorf("unexpected content type %q", got)
	}

	file, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("open exported spreadsheet: %v", err)
	}
	defer file.Close()

	value, err := file.GetCellValue("Worksheet", "B1")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if value != recipe.Name {
		t.Errorf("cell B1 = %q, want recipe name %q", value, recipe.Name)
	}
}
