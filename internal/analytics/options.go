// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package analytics

import (
	"sort"

	"github.com/samber/lo"

	"github.com/pitwall-dev/pitwall/internal/classify"
	"github.com/pitwall-dev/pitwall/internal/models"
)

// Option discovery implements the two-stage pattern: the selectable values
// of a dimension are a function of the view already narrowed by the other
// active filters (typically the year range, plus team or country), never
// of the full dataset. Discover options from a pre-filtered snapshot, then
// filter with the chosen values.

// TeamOptions returns the distinct team names of the view, ascending.
func TeamOptions(s Snapshot) []string {
	return sortedUniq(s.rows, func(r models.FactRow) string { return r.Team })
}

// CountryOptions returns the distinct circuit countries of the view,
// ascending.
func CountryOptions(s Snapshot) []string {
	return sortedUniq(s.rows, func(r models.FactRow) string { return r.Country })
}

// CircuitOptions returns the distinct circuit names of the view restricted
// to the given country, ascending. An empty country returns the circuits
// of the whole view.
func CircuitOptions(s Snapshot, country string) []string {
	rows := s.rows
	if country != "" {
		rows = lo.Filter(rows, func(r models.FactRow, _ int) bool { return r.Country == country })
	}
	return sortedUniq(rows, func(r models.FactRow) string { return r.CircuitName })
}

// FailureOptions returns the distinct raw status values of the view's
// classifier-true rows, ascending. These are the only values a failure
// filter can legitimately carry: classification first, then the distinct
// surviving statuses.
func FailureOptions(s Snapshot, c *classify.Classifier) []string {
	mechanical := lo.Filter(s.rows, func(r models.FactRow, _ int) bool {
		return c.IsMechanical(r.Status)
	})
	return sortedUniq(mechanical, func(r models.FactRow) string { return r.Status })
}

func sortedUniq(rows []models.FactRow, key func(models.FactRow) string) []string {
	values := lo.Uniq(lo.Map(rows, func(r models.FactRow, _ int) string { return key(r) }))
	sort.Strings(values)
	return values
}
