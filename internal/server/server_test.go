package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	srv, err := New(Config{Addr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	return srv
}

func TestNewAppliesSessionDefaults(t *testing.T) {
	srv := newTestServer(t)

	if srv.Handler() == nil {
		t.Fatal("expected configured handler")
	}
	if srv.httpServer.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("unexpected read header timeout %s", srv.httpServer.ReadHeaderTimeout)
	}
}

func TestServerSetsSessionCookieName(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from login page, got %d", rec.Code)
	}
}

func TestServerStopWithoutStart(t *testing.T) {
	srv := newTestServer(t)
	if err := srv.Stop(); err != nil {
		t.Fatalf("stop before start returned error: %v", err)
	}
}
