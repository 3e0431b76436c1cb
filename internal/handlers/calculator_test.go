package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"magistral/internal/formulation"
)

func postForm(t *testing.T, handler http.HandlerFunc, path string, form url.Values, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for key, value := range header {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func validInjectableForm() url.Values {
	return url.Values{
		"ester":         {"estradiol_enanthate"},
		"oil":           {"mct_oil"},
		"concentration": {"40"},
		"batch_volume":  {"10"},
		"loss_percent":  {"10"},
		"ba_percent":    {"2"},
		"bb_percent":    {"0"},
	}
}

func TestComputeInjectableRendersResults(t *testing.T) {
	rec := postForm(t, ComputeInjectable, "/app/calculator/injectable", validInjectableForm(), nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, token := range []string{"Active ester", "Carrier oil", "Save recipe"} {
		if !strings.Contains(body, token) {
			t.Errorf("response missing %q", token)
		}
	}
}

func TestComputeInjectableJSON(t *testing.T) {
	rec := postForm(t, ComputeInjectable, "/app/calculator/injectable", validInjectableForm(), map[string]string{"Accept": "application/json"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result formulation.InjectableResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.AdjustedVolumeML != 11 {
		t.Errorf("AdjustedVolumeML = %v, want 11", result.AdjustedVolumeML)
	}
	if result.APIMassG <= 0 {
		t.Error("expected positive API mass")
	}
}

func TestComputeInjectableValidationError(t *testing.T) {
	form := validInjectableForm()
	form.Set("concentration", "-5")

	rec := postForm(t, ComputeInjectable, "/app/calculator/injectable", form, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "calc-error") {
		t.Error("expected inline error banner")
	}
}

func TestComputeInjectableNegativeVolume(t *testing.T) {
	form := validInjectableForm()
	form.Set("ester", "testosterone_decanoate")
	form.Set("concentration", "600")
	form.Set("bb_percent", "25")

	rec := postForm(t, ComputeInjectable, "/app/calculator/injectable", form, map[string]string{"Accept": "application/json"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for over-capacity batch, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "carrier oil volume is negative") {
		t.Errorf("expected deficit explanation, got %s", rec.Body.String())
	}
}

func TestComputeInjectableRejectsNonNumeric(t *testing.T) {
	form := validInjectableForm()
	form.Set("batch_volume", "ten")

	rec := postForm(t, ComputeInjectable, "/app/calculator/injectable", form, nil)
	if !strings.Contains(rec.Body.String(), "must be a number") {
		t.Errorf("expected parse error message, got %s", rec.Body.String())
	}
}

func TestComputeInjectableMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/app/calculator/injectable", nil)
	rec := httptest.NewRecorder()
	ComputeInjectable(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestComputeTransdermalRendersResults(t *testing.T) {
	form := url.Values{
		"target_volume": {"120"},
		"loss_percent":  {"5"},
	}
	rec := postForm(t, ComputeTransdermal, "/app/calculator/transdermal", form, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, token := range []string{"Estradiol (micronized)", "Isopropyl", "Save recipe"} {
		if !strings.Contains(body, token) {
			t.Errorf("response missing %q", token)
		}
	}
}

func TestComputeTransdermalJSON(t *testing.T) {
	form := url.Values{"target_volume": {"100"}, "loss_percent": {"10"}}
	rec := postForm(t, ComputeTransdermal, "/app/calculator/transdermal", form, map[string]string{"Accept": "application/json"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result formulation.TransdermalResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.AdjustedVolumeML != 110 {
		t.Errorf("AdjustedVolumeML = %v, want 110", result.AdjustedVolumeML)
	}
	if result.Concentration != formulation.SprayConcentration {
		t.Errorf("Concentration = %v, want %v", result.Concentration, formulation.SprayConcentration)
	}
}

func TestComputeTransdermalValidationError(t *testing.T) {
	form := url.Values{"target_volume": {"0"}}
	rec := postForm(t, ComputeTransdermal, "/app/calculator/transdermal", form, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestExploreSolubility(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/app/calculator/solubility?ester=testosterone_enanthate&concentration=250", nil)
	rec := httptest.NewRecorder()
	ExploreSolubility(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sesame") {
		t.Error("expected sesame oil row in exploration output")
	}
}

func TestExploreSolubilityJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/app/calculator/solubility?ester=testosterone_enanthate&concentration=250", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	ExploreSolubility(rec, req)

	var options []formulation.OilSolubilityOption
	if err := json.Unmarshal(rec.Body.Bytes(), &options); err != nil {
		t.Fatalf("decode options: %v", err)
	}
	if len(options) == 0 {
		t.Fatal("expected at least one oil option")
	}
}

func TestExploreSolubilityRejectsUnknownEster(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/app/calculator/solubility?ester=nope&concentration=100", nil)
	rec := httptest.NewRecorder()
	ExploreSolubility(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDosages(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/app/calculator/dosages?concentration=100", nil)
	rec := httptest.NewRecorder()
	Dosages(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Easy draws") {
		t.Error("expected dosage table heading")
	}
}

func TestDosagesRejectsNonPositiveConcentration(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/app/calculator/dosages?concentration=0", nil)
	rec := httptest.NewRecorder()
	Dosages(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
