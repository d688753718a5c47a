// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

// Package analytics implements the filter engine and the aggregation
// engine: composable multi-dimensional filters over the immutable fact
// table and the pure functions that derive every dashboard statistic from
// a filtered view. Nothing in this package mutates the fact table; every
// filter produces a new view and every statistic is recomputed in full on
// each call.
package analytics

import (
	"sort"

	"github.com/samber/lo"

	"github.com/pitwall-dev/pitwall/internal/models"
)

// Snapshot is an immutable view over fact rows. The zero value is an empty
// view; all aggregations on it yield zero or empty outputs, never errors.
type Snapshot struct {
	rows []models.FactRow
}

// NewSnapshot wraps rows in a Snapshot. The caller must not mutate rows
// afterwards.
func NewSnapshot(rows []models.FactRow) Snapshot {
	return Snapshot{rows: rows}
}

// Rows returns the underlying rows. Callers must treat them as read-only.
func (s Snapshot) Rows() []models.FactRow {
	return s.rows
}

// Len returns the number of rows in the view.
func (s Snapshot) Len() int {
	return len(s.rows)
}

// YearBounds returns the distinct years of the view in ascending order
// with their min and max. The selectable range is always derived from the
// unfiltered base snapshot.
func (s Snapshot) YearBounds() models.YearBounds {
	years := lo.Uniq(lo.Map(s.rows, func(r models.FactRow, _ int) int { return r.Year }))
	sort.Ints(years)

	bounds := models.YearBounds{Years: years}
	if len(years) > 0 {
		bounds.MinYear = years[0]
		bounds.MaxYear = years[len(years)-1]
	}
	return bounds
}
