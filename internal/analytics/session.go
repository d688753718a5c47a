// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package analytics

import (
	"time"

	"github.com/pitwall-dev/pitwall/internal/classify"
	"github.com/pitwall-dev/pitwall/internal/metrics"
	"github.com/pitwall-dev/pitwall/internal/models"
)

func observe(view string, start time.Time) {
	metrics.ObserveAggregation(view, time.Since(start))
}

// Session bundles the immutable base snapshot with the failure classifier
// and instruments every view computation. One Session is built at startup
// and shared by all requests; it has no mutable state, so it needs no
// locking.
type Session struct {
	base       Snapshot
	classifier *classify.Classifier
}

// NewSession builds a Session over the fact table.
func NewSession(rows []models.FactRow) *Session {
	return &Session{
		base:       NewSnapshot(rows),
		classifier: classify.New(),
	}
}

// Base returns the unfiltered snapshot.
func (se *Session) Base() Snapshot {
	return se.base
}

// Classifier returns the shared failure classifier.
func (se *Session) Classifier() *classify.Classifier {
	return se.classifier
}

// YearBounds returns the selectable year range, always derived from the
// unfiltered base.
func (se *Session) YearBounds() models.YearBounds {
	return se.base.YearBounds()
}

// Overview computes the overview payload for a filter.
func (se *Session) Overview(f Filter) models.OverviewStats {
	defer observe("overview", time.Now())
	return Overview(f.Apply(se.base), se.classifier)
}

// Circuits computes the circuits payload for a filter. The failure
// selection is handled inside CircuitsView; the base passed down is the
// view without it.
func (se *Session) Circuits(f Filter) models.CircuitsStats {
	defer observe("circuits", time.Now())
	return CircuitsView(f.WithoutFailures().Apply(se.base), f, se.classifier)
}

// Compare computes the constructor comparison payload. Only the year range
// of the filter applies; team identity comes from the explicit arguments.
func (se *Session) Compare(f Filter, team, rival string) models.CompareStats {
	defer observe("compare", time.Now())
	yearView := Filter{StartYear: f.StartYear, EndYear: f.EndYear}.Apply(se.base)
	return Compare(yearView, se.classifier, team, rival)
}

// TeamOptions lists the selectable teams for a year range.
func (se *Session) TeamOptions(f Filter) []string {
	defer observe("options_teams", time.Now())
	return TeamOptions(f.Apply(se.base))
}

// CountryOptions lists the selectable circuit countries for a year range.
func (se *Session) CountryOptions(f Filter) []string {
	defer observe("options_countries", time.Now())
	return CountryOptions(f.Apply(se.base))
}

// CircuitOptions lists the selectable circuits for a year range and
// country.
func (se *Session) CircuitOptions(f Filter, country string) []string {
	defer observe("options_circuits", time.Now())
	return CircuitOptions(f.Apply(se.base), country)
}

// FailureOptions lists the selectable failure categories: distinct
// classifier-true statuses of the view narrowed by everything except the
// failure selection itself.
func (se *Session) FailureOptions(f Filter) []string {
	defer observe("options_failures", time.Now())
	return FailureOptions(f.WithoutFailures().Apply(se.base), se.classifier)
}
