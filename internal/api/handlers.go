// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/pitwall-dev/pitwall/internal/analytics"
	"github.com/pitwall-dev/pitwall/internal/cache"
	"github.com/pitwall-dev/pitwall/internal/logging"
)

// Handler serves every dashboard endpoint from one shared Session. View
// payloads are memoized per canonical filter; the fact table never changes
// after startup, so cached entries only expire by TTL.
type Handler struct {
	session   *analytics.Session
	responses *cache.ResponseCache
	startedAt time.Time
}

// NewHandler wires a Handler. responses may be nil to disable caching.
func NewHandler(session *analytics.Session, responses *cache.ResponseCache) *Handler {
	return &Handler{
		session:   session,
		responses: responses,
		startedAt: time.Now(),
	}
}

// Health reports liveness and the basic shape of the loaded dataset.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	newResponseWriter(w, r).Success(map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"fact_rows":      h.session.Base().Len(),
	})
}

// Years returns the selectable year range, always from the full dataset.
func (h *Handler) Years(w http.ResponseWriter, r *http.Request) {
	newResponseWriter(w, r).Success(h.session.YearBounds())
}

// Overview serves the overview dashboard payload.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "overview", func(f analytics.Filter) interface{} {
		return h.session.Overview(f)
	})
}

// Circuits serves the circuits dashboard payload.
func (h *Handler) Circuits(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "circuits", func(f analytics.Filter) interface{} {
		return h.session.Circuits(f)
	})
}

// Compare serves the constructor head-to-head payload. The team parameter
// is required; rival is optional.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	rw := newResponseWriter(w, r)

	f, err := parseFilter(r, h.fullRange())
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	team := r.URL.Query().Get("team")
	if team == "" {
		rw.BadRequest("missing required parameter: team")
		return
	}
	rival := r.URL.Query().Get("rival")

	key := "compare|" + team + "|" + rival + "|" + f.Canonical()
	if payload, ok := h.cached(key); ok {
		rw.SuccessCached(payload)
		return
	}

	stats := h.session.Compare(f, team, rival)
	if stats.Team == nil {
		rw.NotFound("team not found in the selected years: " + team)
		return
	}
	rw.Success(stats)
	h.store(key, stats)
}

// TeamOptions lists the selectable teams for the current year range.
func (h *Handler) TeamOptions(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "options/teams", func(f analytics.Filter) interface{} {
		return h.session.TeamOptions(f)
	})
}

// CountryOptions lists the selectable circuit countries.
func (h *Handler) CountryOptions(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "options/countries", func(f analytics.Filter) interface{} {
		return h.session.CountryOptions(f)
	})
}

// CircuitOptions lists the selectable circuits, narrowed by the country
// parameter when present.
func (h *Handler) CircuitOptions(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "options/circuits", func(f analytics.Filter) interface{} {
		country := ""
		if len(f.Countries) > 0 {
			country = f.Countries[0]
		}
		return h.session.CircuitOptions(f, country)
	})
}

// FailureOptions lists the selectable failure categories: the distinct
// classifier-true statuses of the view narrowed by the other filters.
func (h *Handler) FailureOptions(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, "options/failures", func(f analytics.Filter) interface{} {
		return h.session.FailureOptions(f)
	})
}

// serveView is the shared parse-cache-compute-respond path.
func (h *Handler) serveView(w http.ResponseWriter, r *http.Request, endpoint string, compute func(analytics.Filter) interface{}) {
	rw := newResponseWriter(w, r)

	f, err := parseFilter(r, h.fullRange())
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	key := endpoint + "|" + f.Canonical()
	if payload, ok := h.cached(key); ok {
		rw.SuccessCached(payload)
		return
	}

	data := compute(f)
	rw.Success(data)
	h.store(key, data)
}

func (h *Handler) fullRange() analytics.Filter {
	return analytics.FullRange(h.session.Base())
}

func (h *Handler) cached(key string) ([]byte, bool) {
	if h.responses == nil {
		return nil, false
	}
	return h.responses.Get(key)
}

func (h *Handler) store(key string, data interface{}) {
	if h.responses == nil {
		return
	}
	payload, err := json.Marshal(data)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Failed to marshal payload for caching")
		return
	}
	h.responses.Set(key, payload)
}
