package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jbweber/homelab/campus/internal/middleware"
	"github.com/jbweber/homelab/campus/internal/resource"
)

// Error type tags carried in ErrorResponse.Type
const (
	TypeNotFound         = "NotFound"
	TypeMalformedInput   = "MalformedInput"
	TypeStorageFailure   = "StorageFailure"
	TypeMethodNotAllowed = "MethodNotAllowed"
)

// MalformedInputError is returned for missing or unparseable request input
type MalformedInputError struct {
	Message string
}

func (e *MalformedInputError) Error() string {
	return e.Message
}

// ErrorResponse is the body of every non-2xx response except 403
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// MessageResponse is the body of a successful delete
type MessageResponse struct {
	Message string `json:"message"`
}

// writeError maps err onto a status code and error envelope. Anything that
// is neither a not-found nor a malformed input is a storage failure; its
// detail is logged and not exposed.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *resource.NotFoundError
	var malformed *MalformedInputError

	switch {
	case errors.As(err, &notFound):
		a.writeJSON(w, r, http.StatusNotFound, ErrorResponse{Type: TypeNotFound, Message: notFound.Error()})
	case errors.As(err, &malformed):
		a.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Type: TypeMalformedInput, Message: malformed.Message})
	default:
		a.logger.ErrorContext(r.Context(), "storage failure",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		a.writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{Type: TypeStorageFailure, Message: "internal storage error"})
	}
}
