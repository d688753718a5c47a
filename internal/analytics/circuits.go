// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package analytics

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/pitwall-dev/pitwall/internal/classify"
	"github.com/pitwall-dev/pitwall/internal/models"
)

// CircuitsView computes the circuits payload.
//
// base is the view narrowed by year range, country and circuit but NOT by
// the failure-category selection; the selection (filter.Failures) is
// applied inside, because the statistics split over it: issue counts, map
// points, KPIs and the per-year series respect it, while races held, mean
// issues per race and the modal failure per circuit are defined on base
// alone. That asymmetry is part of the contract.
func CircuitsView(base Snapshot, filter Filter, c *classify.Classifier) models.CircuitsStats {
	selected := base
	if len(filter.Failures) > 0 {
		selected = Filter{
			StartYear: filter.StartYear,
			EndYear:   filter.EndYear,
			Failures:  filter.Failures,
		}.Apply(base)
	}

	selectedRows := selected.Rows()
	selectedMechanical := lo.Filter(selectedRows, func(r models.FactRow, _ int) bool {
		return c.IsMechanical(r.Status)
	})
	baseMechanical := lo.Filter(base.Rows(), func(r models.FactRow, _ int) bool {
		return c.IsMechanical(r.Status)
	})

	stats := models.CircuitsStats{
		Races:            distinctInts(selectedRows, func(r models.FactRow) int { return r.RaceID }),
		Seasons:          distinctInts(selectedRows, func(r models.FactRow) int { return r.Year }),
		Teams:            distinctInts(selectedRows, func(r models.FactRow) int { return r.ConstructorID }),
		MechanicalIssues: len(selectedMechanical),
		Countries:        distinctStrings(selectedRows, func(r models.FactRow) string { return r.Country }),
		Circuits:         distinctStrings(selectedRows, func(r models.FactRow) string { return r.CircuitName }),

		MapPoints:     mapPoints(selectedMechanical),
		IssuesPerYear: countByYear(selectedMechanical),

		// The frequent-failure ranking ignores the failure selection;
		// the constructor ranking respects it.
		MostFrequentFailures: head(sortCountsDesc(countByName(baseMechanical,
			func(r models.FactRow) string { return r.Status })), topN),
		WorstConstructors: head(sortCountsDesc(countByName(selectedMechanical,
			func(r models.FactRow) string { return r.Team })), topN),

		Table:       circuitTable(base, selectedMechanical, baseMechanical),
		FailureLaps: failureLaps(base.Rows(), filter.Failures, c),
		Media:       circuitMedia(base, filter),
	}

	return stats
}

// mapPoints groups classifier-true rows per circuit location, ordered by
// circuit name ascending.
func mapPoints(mechanical []models.FactRow) []models.CircuitMapPoint {
	type locKey struct {
		circuit string
		country string
		lat     float64
		lng     float64
	}

	counts := make(map[locKey]int)
	for _, r := range mechanical {
		counts[locKey{r.CircuitName, r.Country, r.Lat, r.Lng}]++
	}

	points := make([]models.CircuitMapPoint, 0, len(counts))
	for k, n := range counts {
		points = append(points, models.CircuitMapPoint{
			CircuitName: k.circuit,
			Country:     k.country,
			Lat:         k.lat,
			Lng:         k.lng,
			Issues:      n,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].CircuitName < points[j].CircuitName })
	return points
}

// circuitTable assembles the per-circuit reliability table. A circuit is
// present only when every component has data for it (inner-join
// semantics): at least one issue under the current selection, at least one
// race held and at least one classifier-true row in base. Rows are ordered
// by issue count descending (stable over ascending circuit name).
func circuitTable(base Snapshot, selectedMechanical, baseMechanical []models.FactRow) []models.CircuitTableRow {
	issues := countByName(selectedMechanical, func(r models.FactRow) string { return r.CircuitName })

	racesHeld := make(map[string]map[int]struct{})
	meta := make(map[string]models.FactRow)
	for _, r := range base.Rows() {
		if racesHeld[r.CircuitName] == nil {
			racesHeld[r.CircuitName] = make(map[int]struct{})
		}
		racesHeld[r.CircuitName][r.RaceID] = struct{}{}
		if _, ok := meta[r.CircuitName]; !ok {
			meta[r.CircuitName] = r
		}
	}

	baseIssues := make(map[string]int)
	for _, r := range baseMechanical {
		baseIssues[r.CircuitName]++
	}

	modal, modalTimes := modalFailures(baseMechanical)

	rows := make([]models.CircuitTableRow, 0, len(issues))
	for _, entry := range sortCountsDesc(issues) {
		circuit := entry.Name
		races := len(racesHeld[circuit])
		if races == 0 || baseIssues[circuit] == 0 {
			continue
		}

		first := meta[circuit]
		rows = append(rows, models.CircuitTableRow{
			CircuitName:     circuit,
			CountryFlagURL:  first.CountryFlagURL,
			Country:         first.Country,
			Location:        first.Location,
			Issues:          entry.Count,
			Races:           races,
			MeanPerRace:     float64(baseIssues[circuit]) / float64(races),
			FrequentFailure: modal[circuit],
			Times:           modalTimes[circuit],
			Rate:            int(math.Round(100 * float64(modalTimes[circuit]) / float64(entry.Count))),
		})
	}
	return rows
}

// modalFailures finds, per circuit, the most frequent failure status among
// classifier-true rows. Statuses are considered in ascending order, so a
// tie resolves to the first (lowest) status.
func modalFailures(mechanical []models.FactRow) (modal map[string]string, times map[string]int) {
	perCircuit := make(map[string]map[string]int)
	for _, r := range mechanical {
		if perCircuit[r.CircuitName] == nil {
			perCircuit[r.CircuitName] = make(map[string]int)
		}
		perCircuit[r.CircuitName][r.Status]++
	}

	modal = make(map[string]string, len(perCircuit))
	times = make(map[string]int, len(perCircuit))
	for circuit, counts := range perCircuit {
		statuses := make([]string, 0, len(counts))
		for status := range counts {
			statuses = append(statuses, status)
		}
		sort.Strings(statuses)

		for _, status := range statuses {
			if counts[status] > times[circuit] {
				times[circuit] = counts[status]
				modal[circuit] = status
			}
		}
	}
	return modal, times
}

// failureLaps collects the laps value of every base row whose status is an
// exact taxonomy term (not the substring classifier), further narrowed by
// the failure selection when present. Feeds the client-side histogram.
func failureLaps(rows []models.FactRow, failures []string, c *classify.Classifier) []int {
	selected := toSet(failures)

	laps := make([]int, 0)
	for _, r := range rows {
		if !c.IsTaxonomyTerm(r.Status) {
			continue
		}
		if len(selected) > 0 {
			if _, ok := selected[r.Status]; !ok {
				continue
			}
		}
		laps = append(laps, r.Laps)
	}
	return laps
}

// circuitMedia picks the presentation assets for the selected country and
// circuit from the first matching row. Nil when nothing is selected or the
// view is empty ("field not yet selected" is a blank area, not an error).
func circuitMedia(base Snapshot, filter Filter) *models.CircuitMedia {
	if len(filter.Countries) == 0 && len(filter.Circuits) == 0 {
		return nil
	}
	rows := base.Rows()
	if len(rows) == 0 {
		return nil
	}

	media := &models.CircuitMedia{}
	first := rows[0]
	if len(filter.Countries) > 0 {
		media.Country = first.Country
		media.CountryFlagURL = first.CountryFlagURL
	}
	if len(filter.Circuits) > 0 {
		media.CircuitName = first.CircuitName
		media.CircuitLayoutURL = first.CircuitLayoutURL
	}
	return media
}
