package httpapi

import (
	"errors"
	"net/http"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/store"
)

const (
	msgInternalError        = "internal server error"
	msgConcurrentWriteRetry = "the resource was changed concurrently, please retry"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// StatusOf maps an error onto the HTTP status code of the response.
func StatusOf(err error) int {
	switch core.CodeOf(err) {
	case core.CodeNotFound:
		return http.StatusNotFound
	case core.CodeConflict:
		return http.StatusConflict
	case core.CodeInvalidState, core.CodeValidation:
		return http.StatusBadRequest
	case core.CodeForbidden:
		return http.StatusForbidden
	case core.CodeUnauthenticated:
		return http.StatusUnauthorized
	}

	if errors.Is(err, store.ErrConcurrencyConflict) {
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)

	var domainErr *core.Error
	switch {
	case errors.As(err, &domainErr):
		writeJSON(w, status, errorResponse{Error: domainErr.Message, Fields: domainErr.Fields})

	case status == http.StatusConflict:
		writeJSON(w, status, errorResponse{Error: msgConcurrentWriteRetry})

	default:
		s.logger.ErrorContext(r.Context(), logMsgRequestFailed,
			logAttrMethod, r.Method,
			logAttrPath, r.URL.Path,
			logAttrError, err.Error(),
		)
		writeJSON(w, status, errorResponse{Error: msgInternalError})
	}
}

func (s *Server) writeValidation(w http.ResponseWriter, r *http.Request, fieldErrors core.FieldErrors) bool {
	if err := fieldErrors.Err(); err != nil {
		s.writeError(w, r, err)
		return true
	}

	return false
}
