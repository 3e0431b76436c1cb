package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"magistral/internal/formulation"
	applog "magistral/internal/log"
	"magistral/internal/views/pages"
)

const maxWorksheetUploadBytes = 10 << 20

// Tools renders the legacy worksheet import page.
func Tools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	snapshot := buildWorkspaceSnapshot(r)
	if isHTMX(r) {
		renderComponent(w, r, pages.ToolsPanel(""))
		return
	}
	renderComponent(w, r, pages.ToolsPage(snapshot, pages.ToolsPanel("")))
}

// ImportWorksheet recovers batch parameters from an uploaded legacy worksheet
// and recomputes the formulation with the current reference tables.
func ImportWorksheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxWorksheetUploadBytes); err != nil {
		renderImportError(w, r, "The upload could not be read. Worksheets must be under 10 MB.")
		return
	}

	file, header, err := r.FormFile("worksheet")
	if err != nil {
		renderImportError(w, r, "Attach a worksheet PDF or text export to import.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxWorksheetUploadBytes))
	if err != nil {
		applog.Error(r.Context(), "failed to read worksheet upload", "error", err)
		renderImportError(w, r, "The upload could not be read.")
		return
	}

	text, err := worksheetText(header.Filename, data)
	if err != nil {
		applog.Error(r.Context(), "failed to extract worksheet text", "error", err, "filename", header.Filename)
		renderImportError(w, r, "The worksheet could not be parsed. Only PDF and text exports are supported.")
		return
	}

	req, notes := parseLegacyWorksheet(text)
	result, err := formulation.ComputeInjectable(req)
	if err != nil {
		renderImportError(w, r, fmt.Sprintf("Recovered parameters failed validation: %v", err))
		return
	}

	applog.Info(r.Context(), "legacy worksheet imported", "filename", header.Filename, "ester", req.EsterKey, "oil", req.OilKey)

	component := pages.ImportedWorksheet(req, result, notes)
	if isHTMX(r) {
		renderComponent(w, r, component)
		return
	}
	renderComponent(w, r, pages.ToolsPage(buildWorkspaceSnapshot(r), component))
}

func renderImportError(w http.ResponseWriter, r *http.Request, message string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	if isHTMX(r) {
		renderComponent(w, r, pages.ToolsPanel(message))
		return
	}
	renderComponent(w, r, pages.ToolsPage(buildWorkspaceSnapshot(r), pages.ToolsPanel(message)))
}

func worksheetText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractTextFromPDF(data)
	default:
		return string(data), nil
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

var (
	concentrationPattern  = regexp.MustCompile(`(?i)concentration[^\d]*([\d.]+)\s*mg\s*/\s*m[lL]`)
	volumePattern         = regexp.MustCompile(`(?i)(?:batch|total|target)\s*volume[^\d]*([\d.]+)\s*m[lL]`)
	lossPattern           = regexp.MustCompile(`(?i)loss[^\d]*([\d.]+)\s*%`)
	benzylAlcoholPattern  = regexp.MustCompile(`(?i)benzyl\s*alcohol[^\d]*([\d.]+)\s*%`)
	benzylBenzoatePattern = regexp.MustCompile(`(?i)benzyl\s*benzoate[^\d]*([\d.]+)\s*%`)
)

func matchFloat(pattern *regexp.Regexp, text string) (float64, bool) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// parseLegacyWorksheet scans free-form worksheet text for batch parameters.
// Unrecoverable fields fall back to workable defaults and are reported in the
// returned notes.
func parseLegacyWorksheet(text string) (formulation.InjectableRequest, []string) {
	req := formulation.InjectableRequest{}
	var notes []string

	lowered := strings.ToLower(text)
	for _, ester := range formulation.InjectableEsters() {
		if strings.Contains(lowered, strings.ToLower(ester.Name)) || strings.Contains(lowered, ester.Key) {
			req.EsterKey = ester.Key
			break
		}
	}
	if req.EsterKey == "" {
		req.EsterKey = "estradiol_enanthate"
		notes = append(notes, "Compound not recognised; defaulted to Estradiol enanthate.")
	}

	for _, oil := range formulation.CarrierOils() {
		if oil.Key == "custom" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(oil.Name)) || strings.Contains(lowered, oil.Key) {
			req.OilKey = oil.Key
			break
		}
	}
	if req.OilKey == "" {
		req.OilKey = "mct_oil"
		notes = append(notes, "Carrier oil not recognised; defaulted to MCT.")
	}

	if value, ok := matchFloat(concentrationPattern, text); ok {
		req.Concentration = value
	} else {
		notes = append(notes, "Concentration not found in worksheet.")
	}

	if value, ok := matchFloat(volumePattern, text); ok {
		req.BatchVolumeML = value
	} else {
		notes = append(notes, "Batch volume not found in worksheet.")
	}

	if value, ok := matchFloat(lossPattern, text); ok {
		req.LossPercent = value
	}
	if value, ok := matchFloat(benzylAlcoholPattern, text); ok {
		req.BenzylAlcoholPct = value
	}
	if value, ok := matchFloat(benzylBenzoatePattern, text); ok {
		req.BenzylBenzoatePct = value
	}

	return req, notes
}
