package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/shell/eventpublisher"
)

// CorrelationIDHeader carries the correlation id of a request. It is generated when absent
// and echoed in the response.
const CorrelationIDHeader = "X-Correlation-ID"

const (
	logMsgRequestHandled = "http request handled"
	logMsgRequestFailed  = "http request failed"
	logMsgPanicRecovered = "http handler panicked"
	logMsgInvalidSession = "ignoring invalid session cookie"

	logAttrMethod        = "method"
	logAttrPath          = "path"
	logAttrStatus        = "status"
	logAttrDurationMS    = "duration_ms"
	logAttrCorrelationID = "correlation_id"
	logAttrError         = "error"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		s.logger.InfoContext(r.Context(), logMsgRequestHandled,
			logAttrMethod, r.Method,
			logAttrPath, r.URL.Path,
			logAttrStatus, recorder.status,
			logAttrDurationMS, float64(time.Since(start).Microseconds())/1000.0,
			logAttrCorrelationID, eventpublisher.CorrelationIDFrom(r.Context()),
		)
	})
}

func (s *Server) withCorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		w.Header().Set(CorrelationIDHeader, correlationID)
		next.ServeHTTP(w, r.WithContext(eventpublisher.WithCorrelationID(r.Context(), correlationID)))
	})
}

// withSession resolves the session cookie into the Actor of the request.
// An invalid cookie is dropped and the request continues anonymously.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := s.sessions.ActorFrom(r)
		if err != nil {
			s.logger.WarnContext(r.Context(), logMsgInvalidSession, logAttrError, err.Error())
			s.sessions.Clear(w)
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				s.logger.ErrorContext(r.Context(), logMsgPanicRecovered,
					logAttrMethod, r.Method,
					logAttrPath, r.URL.Path,
					logAttrError, recovered,
				)
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternalError})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
