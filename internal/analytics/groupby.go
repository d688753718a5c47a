// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package analytics

import (
	"sort"

	"github.com/pitwall-dev/pitwall/internal/models"
)

// topN is the slice size of every ranking statistic.
const topN = 10

// countByName counts rows per string key, returning one GroupCount per
// distinct key ordered by ascending key. The ascending key order matters:
// it is the base ordering the stable descending count sort runs on, which
// fixes how ties rank (alphabetically first key wins).
func countByName(rows []models.FactRow, key func(models.FactRow) string) []models.GroupCount {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[key(r)]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]models.GroupCount, 0, len(names))
	for _, name := range names {
		out = append(out, models.GroupCount{Name: name, Count: counts[name]})
	}
	return out
}

// countByYear counts rows per year in ascending year order.
func countByYear(rows []models.FactRow) []models.YearCount {
	counts := make(map[int]int)
	for _, r := range rows {
		counts[r.Year]++
	}

	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	out := make([]models.YearCount, 0, len(years))
	for _, year := range years {
		out = append(out, models.YearCount{Year: year, Count: counts[year]})
	}
	return out
}

// sortCountsDesc stable-sorts a key-ascending group-by result by count
// descending. Stability keeps equal counts in key order.
func sortCountsDesc(counts []models.GroupCount) []models.GroupCount {
	sorted := append([]models.GroupCount(nil), counts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	return sorted
}

// head returns the first n entries of a descending-sorted ranking.
func head(counts []models.GroupCount, n int) []models.GroupCount {
	if len(counts) < n {
		n = len(counts)
	}
	return counts[:n]
}

// tail returns the last n entries of a descending-sorted ranking with
// their positional order preserved. On a descending sort that yields the n
// smallest values, still ordered largest-first; they are deliberately NOT
// re-sorted ascending.
func tail(counts []models.GroupCount, n int) []models.GroupCount {
	if len(counts) < n {
		n = len(counts)
	}
	return counts[len(counts)-n:]
}
