package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// FormulationsComputed counts calculator runs by formulation type and
	// outcome (ok, validation_error, negative_volume).
	FormulationsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "magistral",
		Name:      "formulations_computed_total",
		Help:      "Number of formulation computations, by type and outcome.",
	}, []string{"type", "outcome"})

	// SolubilityFlags counts injectable results by solubility band.
	SolubilityFlags = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "magistral",
		Name:      "solubility_flags_total",
		Help:      "Number of injectable results per solubility band.",
	}, []string{"flag"})

	// RecipesSaved counts recipes persisted through the API.
	RecipesSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "magistral",
		Name:      "recipes_saved_total",
		Help:      "Number of recipes saved.",
	})

	// WorksheetsExported counts worksheet downloads by format (html, xlsx).
	WorksheetsExported = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "magistral",
		Name:      "worksheets_exported_total",
		Help:      "Number of worksheet exports, by format.",
	}, []string{"format"})
)

// Outcome labels for FormulationsComputed.
const (
	OutcomeOK              = "ok"
	OutcomeValidationError = "validation_error"
	OutcomeNegativeVolume  = "negative_volume"
)

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
