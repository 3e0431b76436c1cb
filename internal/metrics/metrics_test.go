package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(FormulationsComputed.WithLabelValues("injectable", OutcomeOK))
	FormulationsComputed.WithLabelValues("injectable", OutcomeOK).Inc()
	after := testutil.ToFloat64(FormulationsComputed.WithLabelValues("injectable", OutcomeOK))
	if after != before+1 {
		t.Fatalf("counter did not increment: before=%v after=%v", before, after)
	}
}

func TestHandlerServesRegistry(t *testing.T) {
	RecipesSaved.Inc()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("metrics endpoint returned %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("metrics endpoint returned empty body")
	}
}
