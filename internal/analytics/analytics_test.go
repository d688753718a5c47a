// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package analytics

import (
	"github.com/pitwall-dev/pitwall/internal/models"
)

// row is a compact fact-row builder for tests. Fields not set by an option
// stay at their zero value.
func row(year, raceID int, team, status string, opts ...func(*models.FactRow)) models.FactRow {
	r := models.FactRow{
		Year:   year,
		RaceID: raceID,
		Team:   team,
		Status: status,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func atCircuit(name, country string) func(*models.FactRow) {
	return func(r *models.FactRow) {
		r.CircuitName = name
		r.Country = country
	}
}

func withGrid(grid int) func(*models.FactRow) {
	return func(r *models.FactRow) { r.Grid = grid }
}

func withPosition(pos int) func(*models.FactRow) {
	return func(r *models.FactRow) { r.PositionOrder = pos }
}

func withLaps(laps int) func(*models.FactRow) {
	return func(r *models.FactRow) { r.Laps = laps }
}

func withDriver(id int) func(*models.FactRow) {
	return func(r *models.FactRow) { r.DriverID = id }
}

func withConstructor(id int) func(*models.FactRow) {
	return func(r *models.FactRow) { r.ConstructorID = id }
}

func names(counts []models.GroupCount) []string {
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = c.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
