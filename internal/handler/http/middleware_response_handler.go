// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-taskflow/internal/utils"
)

// responseWriter records the status and body size of a response for
// withLogging. WriteHeader reaches the underlying writer at most once.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int

	// ctx is the request context as seen by the innermost middleware that
	// called remember, so the access log can report the signed-in user.
	ctx context.Context
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// remember stores ctx on the nearest *responseWriter in the chain. Other
// writers are left alone.
func remember(ctx context.Context, w http.ResponseWriter) {
	for {
		switch rw := w.(type) {
		case *responseWriter:
			rw.ctx = ctx
			return
		case interface{ Unwrap() http.ResponseWriter }:
			w = rw.Unwrap()
		default:
			return
		}
	}
}

func (w *responseWriter) userID() (int64, bool) {
	if w.ctx == nil {
		return 0, false
	}
	return utils.GetUserIDFromContext(w.ctx)
}
