// Package httputil centralizes JSON response writing and request decoding for
// HTTP handlers. All endpoints share one response envelope so clients can
// branch on a single success flag.
package httputil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "hairnote/pkg/domain-errors"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// OK wraps a payload in a success envelope.
func OK(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Validatable is implemented by request types that validate and normalize
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON serializes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error to an HTTP status and writes a failure
// envelope. Internal errors never leak their detail to the client.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)

	env := Envelope{Message: messageFor(code)}
	if code != dErrors.CodeInternal && code != dErrors.CodeInvariantViolation {
		env.Errors = []string{err.Error()}
	}

	WriteJSON(w, statusFor(code), env)
}

// DecodeAndPrepare decodes the JSON request body into T and runs its
// validation. On failure it writes the error response and returns false, so
// handlers can bail out with a plain return.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "request body decode failed",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "요청 본문을 해석할 수 없습니다."))
		return nil, false
	}

	if v, ok := any(&req).(Validatable); ok {
		if err := v.Validate(); err != nil {
			logger.WarnContext(ctx, "request validation failed",
				"request_id", requestID,
				"error", err,
			)
			WriteError(w, err)
			return nil, false
		}
	}

	return &req, true
}

func statusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeValidation:
		return http.StatusUnprocessableEntity
	case dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(code dErrors.Code) string {
	switch code {
	case dErrors.CodeValidation:
		return "입력 데이터 검증에 실패했습니다."
	case dErrors.CodeBadRequest:
		return "요청 형식이 올바르지 않습니다."
	case dErrors.CodeNotFound:
		return "요청한 자원을 찾을 수 없습니다."
	case dErrors.CodeUnavailable:
		return "서비스를 일시적으로 사용할 수 없습니다."
	default:
		return "서버 내부 오류가 발생했습니다."
	}
}
