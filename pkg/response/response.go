// Package response renders the uniform JSON envelope used by every route.
package response

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
	"github.com/tair/favorites-service/pkg/logger"
)

const (
	TypeSuccess = "success"
	TypeError   = "error"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Envelope wraps every success payload. Data is always present.
type Envelope struct {
	StatusCode   int    `json:"status_code"`
	ResponseType string `json:"response_type"`
	Description  string `json:"description"`
	Data         any    `json:"data"`
}

// ErrorEnvelope is the error shape; it carries no data.
type ErrorEnvelope struct {
	StatusCode   int    `json:"status_code"`
	ResponseType string `json:"response_type"`
	Description  string `json:"description"`
}

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Success writes a success envelope whose description is rendered from msg.
func Success(w http.ResponseWriter, status int, msg catalog.Message, data any, args ...any) {
	JSON(w, status, Envelope{
		StatusCode:   status,
		ResponseType: TypeSuccess,
		Description:  msg.Format(args...),
		Data:         data,
	})
}

// Error writes an error envelope. Errors that are not *apperror.Error are
// rendered as internal errors without detail.
func Error(w http.ResponseWriter, err error) {
	appErr := apperror.From(err)
	JSON(w, appErr.Status, ErrorEnvelope{
		StatusCode:   appErr.Status,
		ResponseType: TypeError,
		Description:  appErr.Message(),
	})
}

// Fail logs err at warn for client errors and at error for server errors,
// then writes the error envelope.
func Fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	appErr := apperror.From(err)
	event := logger.Warn(r.Context())
	if appErr.Status >= http.StatusInternalServerError {
		event = logger.Error(r.Context())
	}
	event.
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", appErr.Status).
		Msg(msg)
	Error(w, appErr)
}

// DecodeBody reads the request body into a generic map and a typed target.
// The map keeps track of which fields were present for partial updates.
func DecodeBody(r *http.Request) (map[string]any, []byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, apperror.Validation("unable to read request body")
	}
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil || doc == nil {
		return nil, nil, apperror.Validation("request body must be a JSON object")
	}
	return doc, body, nil
}

// Unmarshal decodes raw JSON into dst, reporting failures as validation errors.
func Unmarshal(body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return apperror.Validation("malformed request body")
	}
	return nil
}

// ParseID parses an integer identifier taken from a path or query parameter.
func ParseID(name, raw string) (int64, error) {
	if raw == "" {
		return 0, apperror.Validation(fmt.Sprintf("%s is required", name))
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.Validation(fmt.Sprintf("%s must be an integer", name))
	}
	return id, nil
}
