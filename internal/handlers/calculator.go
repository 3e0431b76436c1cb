package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"magistral/internal/formulation"
	applog "magistral/internal/log"
	"magistral/internal/metrics"
	"magistral/internal/views/pages"
)

func parseFloatField(r *http.Request, field string) (float64, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	return value, nil
}

func injectableRequestFromForm(r *http.Request) (formulation.InjectableRequest, error) {
	req := formulation.InjectableRequest{
		EsterKey: strings.TrimSpace(r.FormValue("ester")),
		OilKey:   strings.TrimSpace(r.FormValue("oil")),
	}

	var err error
	if req.Concentration, err = parseFloatField(r, "concentration"); err != nil {
		return req, err
	}
	if req.BatchVolumeML, err = parseFloatField(r, "batch_volume"); err != nil {
		return req, err
	}
	if req.LossPercent, err = parseFloatField(r, "loss_percent"); err != nil {
		return req, err
	}
	if req.BenzylAlcoholPct, err = parseFloatField(r, "ba_percent"); err != nil {
		return req, err
	}
	if req.BenzylBenzoatePct, err = parseFloatField(r, "bb_percent"); err != nil {
		return req, err
	}
	return req, nil
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func computeOutcome(err error) string {
	var verr *formulation.ValidationError
	var nverr *formulation.NegativeVolumeError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.As(err, &nverr):
		return metrics.OutcomeNegativeVolume
	case errors.As(err, &verr):
		return metrics.OutcomeValidationError
	default:
		return metrics.OutcomeValidationError
	}
}

// ComputeInjectable derives an injectable batch from the submitted parameters.
func ComputeInjectable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	req, err := injectableRequestFromForm(r)
	if err != nil {
		renderComponent(w, r, pages.CalculatorError(err.Error()))
		return
	}

	result, err := formulation.ComputeInjectable(req)
	metrics.FormulationsComputed.WithLabelValues("injectable", computeOutcome(err)).Inc()
	if err != nil {
		applog.Debug(r.Context(), "injectable computation rejected", "error", err, "ester", req.EsterKey)
		if wantsJSON(r) {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		renderComponent(w, r, pages.CalculatorError(err.Error()))
		return
	}

	metrics.SolubilityFlags.WithLabelValues(result.Solubility.String()).Inc()

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, result)
		return
	}
	renderComponent(w, r, pages.InjectableResults(req, result))
}

// ComputeTransdermal derives an estradiol spray batch from the submitted parameters.
func ComputeTransdermal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	req := formulation.TransdermalRequest{}
	var err error
	if req.TargetVolumeML, err = parseFloatField(r, "target_volume"); err != nil {
		renderComponent(w, r, pages.CalculatorError(err.Error()))
		return
	}
	if req.LossPercent, err = parseFloatField(r, "loss_percent"); err != nil {
		renderComponent(w, r, pages.CalculatorError(err.Error()))
		return
	}

	result, err := formulation.ComputeTransdermal(req)
	metrics.FormulationsComputed.WithLabelValues("transdermal", computeOutcome(err)).Inc()
	if err != nil {
		applog.Debug(r.Context(), "transdermal computation rejected", "error", err)
		if wantsJSON(r) {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		renderComponent(w, r, pages.CalculatorError(err.Error()))
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, result)
		return
	}
	renderComponent(w, r, pages.TransdermalResults(req, result))
}

// ExploreSolubility lists per-oil saturation limits for an ester and concentration.
func ExploreSolubility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ester, ok := formulation.EsterByKey(strings.TrimSpace(r.URL.Query().Get("ester")))
	if !ok {
		if wantsJSON(r) {
			writeJSONError(w, http.StatusBadRequest, "unknown ester")
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		renderComponent(w, r, pages.CalculatorError("Select a compound to explore."))
		return
	}

	concentration, err := strconv.ParseFloat(strings.TrimSpace(r.URL.Query().Get("concentration")), 64)
	if err != nil || concentration <= 0 {
		if wantsJSON(r) {
			writeJSONError(w, http.StatusBadRequest, "concentration must be a positive number")
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		renderComponent(w, r, pages.CalculatorError("Concentration must be a positive number."))
		return
	}

	options := formulation.ExploreSolubility(ester, concentration)
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, options)
		return
	}
	renderComponent(w, r, pages.SolubilityTable(ester, concentration, options))
}

// Dosages renders the easy-draw dosage table for a concentration.
func Dosages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	concentration, err := strconv.ParseFloat(strings.TrimSpace(r.URL.Query().Get("concentration")), 64)
	if err != nil || concentration <= 0 {
		if wantsJSON(r) {
			writeJSONError(w, http.StatusBadRequest, "concentration must be a positive number")
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		renderComponent(w, r, pages.CalculatorError("Concentration must be a positive number."))
		return
	}

	dosages := formulation.EasyDrawDosages(concentration)
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, dosages)
		return
	}
	renderComponent(w, r, pages.DosageTable(concentration, dosages))
}
