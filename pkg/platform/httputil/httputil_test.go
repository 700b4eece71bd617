package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dErrors "tpb/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("upstream error maps to bad gateway with description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeUpstream, "overloaded"))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected status %d, got %d", http.StatusBadGateway, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error_description"] != "overloaded" {
			t.Fatalf("expected error_description overloaded, got %q", body["error_description"])
		}
	})

	t.Run("plain errors are internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, http.ErrAbortHandler)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})
}

type pingRequest struct {
	Message string `json:"message"`
}

func (p *pingRequest) Validate() error {
	p.Message = strings.TrimSpace(p.Message)
	if p.Message == "" {
		return dErrors.New(dErrors.CodeValidation, "message is required")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	t.Run("decodes and normalizes", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":"  hi  "}`))
		w := httptest.NewRecorder()
		req, ok := DecodeAndPrepare[pingRequest](w, r, nil, r.Context(), "req-1")
		if !ok {
			t.Fatalf("expected ok, got status %d", w.Code)
		}
		if req.Message != "hi" {
			t.Fatalf("expected trimmed message, got %q", req.Message)
		}
	})

	t.Run("empty body is a bad request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[pingRequest](w, r, nil, r.Context(), "req-2")
		if ok || w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure is written", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":"   "}`))
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[pingRequest](w, r, nil, r.Context(), "req-3")
		if ok || w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
