// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package analytics

import (
	"github.com/samber/lo"

	"github.com/pitwall-dev/pitwall/internal/classify"
	"github.com/pitwall-dev/pitwall/internal/models"
)

// Overview computes the overview payload from an already-filtered view.
//
// The worst/best constructor slices and the most/least frequent failure
// slices are the head and tail of one stable descending sort over the full
// group-by; the display toggle only picks a side, it never re-sorts.
func Overview(s Snapshot, c *classify.Classifier) models.OverviewStats {
	rows := s.Rows()

	mechanical := lo.Filter(rows, func(r models.FactRow, _ int) bool {
		return c.IsMechanical(r.Status)
	})

	byTeam := sortCountsDesc(countByName(mechanical, func(r models.FactRow) string { return r.Team }))
	byStatus := sortCountsDesc(countByName(mechanical, func(r models.FactRow) string { return r.Status }))

	return models.OverviewStats{
		Races:            distinctInts(rows, func(r models.FactRow) int { return r.RaceID }),
		Seasons:          distinctInts(rows, func(r models.FactRow) int { return r.Year }),
		Drivers:          distinctInts(rows, func(r models.FactRow) int { return r.DriverID }),
		Constructors:     distinctInts(rows, func(r models.FactRow) int { return r.ConstructorID }),
		MechanicalIssues: len(mechanical),

		IssuesPerYear: countByYear(mechanical),
		Outcomes: models.OutcomeSplit{
			Mechanical: len(mechanical),
			Other:      len(rows) - len(mechanical),
		},

		WorstConstructors: head(byTeam, topN),
		BestConstructors:  tail(byTeam, topN),

		MostFrequentFailures:  head(byStatus, topN),
		LeastFrequentFailures: tail(byStatus, topN),
	}
}

func distinctInts(rows []models.FactRow, key func(models.FactRow) int) int {
	return len(lo.Uniq(lo.Map(rows, func(r models.FactRow, _ int) int { return key(r) })))
}

func distinctStrings(rows []models.FactRow, key func(models.FactRow) string) int {
	return len(lo.Uniq(lo.Map(rows, func(r models.FactRow, _ int) string { return key(r) })))
}
