package resp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSONResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONResponse(rec, http.StatusCreated, map[string]int{"spin_id": 3})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type %q", ct)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"spin_id":3}` {
		t.Fatalf("body %s", body)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusUnauthorized, "sign in required", "login")

	body := strings.TrimSpace(rec.Body.String())
	if body != `{"error":"sign in required","prompt":"login"}` {
		t.Fatalf("body %s", body)
	}
}
