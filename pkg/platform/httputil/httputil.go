// Package httputil centralizes JSON request decoding and error envelopes.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "tpb/pkg/domain-errors"
)

// maxBodyBytes bounds decoded request bodies.
const maxBodyBytes = 1 << 20

// Validatable is implemented by request DTOs that normalize and check
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a coded error into a JSON envelope. Internal errors
// never leak their description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		body["error_description"] = dErrors.MessageOf(err)
	}
	WriteJSON(w, StatusFor(code), body)
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict, dErrors.CodeInvariantViolation:
		return http.StatusConflict
	case dErrors.CodeUpstream:
		return http.StatusBadGateway
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// DecodeAndPrepare decodes the request body into T and runs its validation.
// On failure the error response is already written and ok is false.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "failed to decode request body",
				"request_id", requestID,
				"error", err,
			)
		}
		msg := "invalid JSON body"
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, msg))
		return nil, false
	}
	if err := PT(&req).Validate(); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "request validation failed",
				"request_id", requestID,
				"error", err,
			)
		}
		WriteError(w, err)
		return nil, false
	}
	return &req, true
}
