package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func routeRecorder(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthzRoute(t *testing.T) {
	rec := routeRecorder(t, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /healthz, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Fatalf("unexpected health body %q", rec.Body.String())
	}
}

func TestMetricsRoute(t *testing.T) {
	rec := routeRecorder(t, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected metrics exposition output")
	}
}

func TestProtectedRoutesRedirectAnonymousUsers(t *testing.T) {
	paths := []string{
		"/app",
		"/app/recipes",
		"/app/tools",
		"/app/calculator/solubility",
	}
	for _, path := range paths {
		rec := routeRecorder(t, http.MethodGet, path)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("%s returned %d, want redirect", path, rec.Code)
			continue
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("%s redirected to %q, want /login", path, loc)
		}
	}
}

func TestRootRedirectsToLogin(t *testing.T) {
	rec := routeRecorder(t, http.MethodGet, "/")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect from root, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("root redirected to %q", loc)
	}
}

func TestUnknownPathReturnsNotFound(t *testing.T) {
	rec := routeRecorder(t, http.MethodGet, "/no-such-page")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
