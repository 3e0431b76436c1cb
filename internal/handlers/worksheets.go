package handlers

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	applog "magistral/internal/log"
	"magistral/internal/metrics"
	"magistral/internal/views/pages"
	"magistral/models"
)

func loadOwnedRecipe(w http.ResponseWriter, r *http.Request) (*models.Recipe, bool) {
	userID, ok := currentUserID(r)
	if !ok {
		redirectToLogin(w, r)
		return nil, false
	}
	if database == nil {
		http.Error(w, "storage not available", http.StatusServiceUnavailable)
		return nil, false
	}

	id := pages.ParseUint(r.URL.Query().Get("id"))
	if id == 0 {
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return nil, false
	}

	recipe := &models.Recipe{}
	err := database.WithContext(r.Context()).Where("owner_id = ?", userID).First(recipe, id).Error
	if err == gorm.ErrRecordNotFound {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		applog.Error(r.Context(), "failed to load recipe for worksheet", "error", err, "recipeID", id)
		http.Error(w, "failed to load recipe", http.StatusInternalServerError)
		return nil, false
	}
	return recipe, true
}

// Worksheet renders the printable compounding sheet for a saved recipe.
func Worksheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	recipe, ok := loadOwnedRecipe(w, r)
	if !ok {
		return
	}

	data := pages.BuildWorksheet(*recipe)
	metrics.WorksheetsExported.WithLabelValues("html").Inc()
	renderComponent(w, r, pages.Worksheet(data, sessionTheme(r)))
}

// WorksheetXLSX exports the compounding sheet as a spreadsheet for bench printing.
func WorksheetXLSX(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	recipe, ok := loadOwnedRecipe(w, r)
	if !ok {
		return
	}

	data := pages.BuildWorksheet(*recipe)

	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Worksheet"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		applog.Error(r.Context(), "failed to rename worksheet sheet", "error", err)
		http.Error(w, "failed to build worksheet", http.StatusInternalServerError)
		return
	}

	header := [][]any{
		{"Recipe", data.RecipeName},
		{"Type", data.TypeLabel},
		{"Lot", data.LotNumber},
		{"Compounded", pages.FormatBenchDate(data.CompoundedAt)},
		{"Concentration", pages.FormatConcentration(data.Concentration)},
		{"Batch volume", pages.FormatVolume(data.BatchVolumeML)},
		{"Working volume", pages.FormatVolume(data.AdjustedVolumeML)},
	}
	if data.EsterName != "" {
		header = append(header, []any{"Compound", data.EsterName})
	}
	if data.OilName != "" {
		header = append(header, []any{"Carrier oil", data.OilName})
	}
	if data.SolubilityFlag != "" {
		header = append(header, []any{"Solubility", fmt.Sprintf("%s (limit %s)", data.SolubilityFlag, pages.FormatConcentration(data.SolubilityLimit))})
	}

	row := 1
	for _, pair := range header {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := file.SetSheetRow(sheet, cell, &pair); err != nil {
			applog.Error(r.Context(), "failed to write worksheet header row", "error", err)
			http.Error(w, "failed to build worksheet", http.StatusInternalServerError)
			return
		}
		row++
	}

	row++
	columns := []any{"#", "Component", "Volume (mL)", "Mass (g)", "Notes", "Initials"}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := file.SetSheetRow(sheet, cell, &columns); err != nil {
		applog.Error(r.Context(), "failed to write worksheet column row", "error", err)
		http.Error(w, "failed to build worksheet", http.StatusInternalServerError)
		return
	}
	row++

	for _, line := range data.Lines {
		values := []any{line.Order, line.Component, line.VolumeML, line.MassG, line.Note, ""}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := file.SetSheetRow(sheet, cell, &values); err != nil {
			applog.Error(r.Context(), "failed to write worksheet line", "error", err)
			http.Error(w, "failed to build worksheet", http.StatusInternalServerError)
			return
		}
		row++
	}

	if len(data.Dosages) > 0 {
		row++
		title := []any{"Easy draws"}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		_ = file.SetSheetRow(sheet, cell, &title)
		row++
		for _, dosage := range data.Dosages {
			values := []any{pages.FormatVolume(dosage.VolumeML), pages.FormatDose(dosage.DoseMG)}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			_ = file.SetSheetRow(sheet, cell, &values)
			row++
		}
	}

	filename := fmt.Sprintf("%s.xlsx", data.LotNumber)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := file.Write(w); err != nil {
		applog.Error(r.Context(), "failed to stream worksheet spreadsheet", "error", err)
		return
	}
	metrics.WorksheetsExported.WithLabelValues("xlsx").Inc()
}
