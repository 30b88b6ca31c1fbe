package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS_SetsHeadersAndAnswersPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	wrapped := CORS("https://example.com")(next)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight should short-circuit with 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("unexpected allow-origin: %q", got)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Errorf("non-preflight requests must pass through, got %d", rec.Code)
	}
}

func TestRecover_ConvertsPanicTo500JSON(t *testing.T) {
	wrapped := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false || body["message"] != "Internal server error" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestNotFound_JSON404(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "API endpoint not found" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
