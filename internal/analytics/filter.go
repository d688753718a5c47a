// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package analytics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/pitwall-dev/pitwall/internal/models"
)

// Filter is the set of user-chosen predicates over the fact table. The
// year range is inclusive on both ends and always active; the slice
// dimensions are optional: an empty slice imposes no constraint (identity,
// never "match nothing"). Active dimensions combine with AND; values
// inside one dimension combine with OR.
//
// Failures matches the raw status text exactly. Its selectable values are
// discovered separately (FailureOptions) from the already-classified
// subset of the current year/team view, so an exact match here is always a
// classifier-true status.
type Filter struct {
	StartYear int
	EndYear   int
	Teams     []string
	Countries []string
	Circuits  []string
	Failures  []string
}

// FullRange returns a Filter spanning the whole snapshot with no other
// predicates. Applying it reproduces the base view unchanged.
func FullRange(s Snapshot) Filter {
	bounds := s.YearBounds()
	return Filter{StartYear: bounds.MinYear, EndYear: bounds.MaxYear}
}

// Apply returns the filtered view as a new Snapshot. The input is never
// mutated; row order is preserved. An empty result is valid.
func (f Filter) Apply(s Snapshot) Snapshot {
	teams := toSet(f.Teams)
	countries := toSet(f.Countries)
	circuits := toSet(f.Circuits)
	failures := toSet(f.Failures)

	matched := lo.Filter(s.rows, func(r models.FactRow, _ int) bool {
		if r.Year < f.StartYear || r.Year > f.EndYear {
			return false
		}
		if len(teams) > 0 {
			if _, ok := teams[r.Team]; !ok {
				return false
			}
		}
		if len(countries) > 0 {
			if _, ok := countries[r.Country]; !ok {
				return false
			}
		}
		if len(circuits) > 0 {
			if _, ok := circuits[r.CircuitName]; !ok {
				return false
			}
		}
		if len(failures) > 0 {
			if _, ok := failures[r.Status]; !ok {
				return false
			}
		}
		return true
	})

	return Snapshot{rows: matched}
}

// WithoutFailures returns a copy of the filter with the failure-category
// selection cleared. Several circuit statistics are defined on the
// year/country/circuit view regardless of the failure selection.
func (f Filter) WithoutFailures() Filter {
	f.Failures = nil
	return f
}

// Canonical returns a stable string form of the filter, independent of the
// order the multi-select values arrived in. Used as a cache key.
func (f Filter) Canonical() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(f.StartYear))
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(f.EndYear))
	for _, dim := range [][]string{f.Teams, f.Countries, f.Circuits, f.Failures} {
		b.WriteByte('|')
		sorted := append([]string(nil), dim...)
		sort.Strings(sorted)
		b.WriteString(strings.Join(sorted, "\x1f"))
	}
	return b.String()
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
