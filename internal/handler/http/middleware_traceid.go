package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses or creates the request trace id, echoes it in the
// response and puts a child logger carrying it into the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// requestLogger returns the trace-scoped logger of r, or the handler logger
// when r did not pass through withTraceID.
func (h *Handler) requestLogger(r *http.Request) *logger.Logger {
	if l := logger.FromRequest(r); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return h.logger
}
