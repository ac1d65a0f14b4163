package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"simuweb/internal/middleware"
	"simuweb/internal/model"

	"github.com/rs/zerolog"
)

// statusByCode maps API error codes to HTTP status codes.
var statusByCode = map[string]int{
	model.ErrCodeInvalidJSON:        http.StatusBadRequest,
	model.ErrCodeInvalidInput:       http.StatusBadRequest,
	model.ErrCodeUnauthorised:       http.StatusUnauthorized,
	model.ErrCodeNotFound:           http.StatusNotFound,
	model.ErrCodeConflict:           http.StatusConflict,
	model.ErrCodeNotConfigured:      http.StatusServiceUnavailable,
	model.ErrCodePersistenceFailure: http.StatusInternalServerError,
	model.ErrCodeInternalError:      http.StatusInternalServerError,
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError classifies err and writes it as an error response. Domain errors
// keep their message; anything else is reported without internal detail.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	code := model.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := "internal server error"
	var de *model.DomainError
	switch {
	case errors.As(err, &de):
		message = de.Message
	case code == model.ErrCodePersistenceFailure:
		message = "the store could not complete the request"
	}

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Str("code", code).Int("status", status).Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")
	}
	return nil
}

// pathID parses the int64 path parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, model.NewDomainError(model.ErrCodeInvalidInput, fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}

// sessionOf returns the session resolved by the identity middleware.
func sessionOf(r *http.Request) (model.Session, error) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return model.Session{}, model.ErrSessionRequired
	}
	return sess, nil
}
