package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cpTheAideveloper/geminimultilingual/internal/gemini"
)

func performRequestRaw(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_Generated(t *testing.T) {
	r := newTestRouter(okMock())

	w := performRequest(r, http.MethodGet, "/health", "")

	if rid := w.Header().Get(requestIDHeader); rid == "" {
		t.Fatal("response missing generated request id")
	}
}

func TestRequestID_Echoed(t *testing.T) {
	r := newTestRouter(okMock())

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "caller-supplied-id")
	w := performRequestRaw(r, req)

	if rid := w.Header().Get(requestIDHeader); rid != "caller-supplied-id" {
		t.Fatalf("request id = %q, want caller-supplied-id", rid)
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := newTestRouter(okMock())

	req, _ := http.NewRequest(http.MethodOptions, "/api/translate", nil)
	w := performRequestRaw(r, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("allow-origin = %q, want *", origin)
	}
}

func TestRecovery_ContainsPanic(t *testing.T) {
	// A mock with no result and no error makes the translator dereference
	// a nil reply; recovery must turn the panic into a 500, not a crash.
	r := newTestRouter(&gemini.MockClient{})

	w := performRequest(r, http.MethodPost, "/api/translate",
		`{"text":"hola","targetLanguages":["es","fr","de"]}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
