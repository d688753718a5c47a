// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

// Package middleware holds the HTTP middleware: request IDs for log
// correlation and Prometheus instrumentation of every API request.
package middleware

import (
	"net/http"

	"github.com/pitwall-dev/pitwall/internal/logging"
)

// RequestID tags each request with a unique ID, honoring one supplied by
// an upstream proxy. The ID travels in the X-Request-ID response header
// and in the request context, where the logging package picks it up.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
