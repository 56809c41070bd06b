package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/az-ai-labs/numwords/numwords"
)

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

const (
	CodeInvalidArgument  ErrorCode = "invalid_argument"
	CodeJSON             ErrorCode = "json"
	CodeValidation       ErrorCode = "validation"
	CodeTooManyRequests  ErrorCode = "too_many_requests"
	CodeNotFound         ErrorCode = "not_found"
	CodeMethodNotAllowed ErrorCode = "method_not_allowed"
	CodePanic            ErrorCode = "panic"
	CodeUnknown          ErrorCode = "unknown"
)

// HTTPStatus turns an ErrorCode into an http status code.
func HTTPStatus(c ErrorCode) int {
	switch c {
	case CodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case CodeJSON, CodeValidation:
		return http.StatusBadRequest
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// codeOf classifies a conversion error.
func codeOf(err error) ErrorCode {
	switch {
	case errors.Is(err, numwords.ErrNotFinite), errors.Is(err, numwords.ErrUnsafeRange):
		return CodeInvalidArgument
	default:
		return CodeUnknown
	}
}

// Envelope is the standard response body for all endpoints.
type Envelope struct {
	StatusCode int       `json:"status_code"`
	Status     string    `json:"status"`
	Code       ErrorCode `json:"code,omitempty"`
	Error      string    `json:"error,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	Data       any       `json:"data,omitempty"`
}

// writeJSON writes v as application/json with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondOK writes a 200 envelope with data.
func respondOK(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, http.StatusOK, Envelope{
		StatusCode: http.StatusOK,
		Status:     http.StatusText(http.StatusOK),
		RequestID:  RequestID(r.Context()),
		Data:       data,
	})
}

// respondError writes an error envelope whose status follows code.
func respondError(w http.ResponseWriter, r *http.Request, code ErrorCode, msg string) {
	status := HTTPStatus(code)
	writeJSON(w, status, Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       code,
		Error:      msg,
		RequestID:  RequestID(r.Context()),
	})
}
