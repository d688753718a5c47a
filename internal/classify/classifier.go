// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package classify

import "strings"

// Classifier answers the three status predicates the aggregations need.
// Build one with New and share it freely; it is immutable.
type Classifier struct {
	mechanical *matcher
	exact      map[string]struct{}
}

// New builds a Classifier over the fixed Taxonomy.
func New() *Classifier {
	return NewWithTaxonomy(Taxonomy)
}

// NewWithTaxonomy builds a Classifier over a custom term list. Production
// code uses New; tests use this to pin down matching behavior in isolation.
func NewWithTaxonomy(terms []string) *Classifier {
	exact := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		exact[t] = struct{}{}
	}
	return &Classifier{
		mechanical: newMatcher(terms),
		exact:      exact,
	}
}

// IsMechanical reports whether the status text is classified as a
// mechanical issue: it case-insensitively contains at least one taxonomy
// term as a substring. Input is not trimmed or normalized beyond case
// folding.
func (c *Classifier) IsMechanical(status string) bool {
	return c.mechanical.Contains(status)
}

// IsTaxonomyTerm reports whether the raw status text is itself one of the
// taxonomy terms, matched exactly (case-sensitive, whole string).
//
// This is deliberately narrower than IsMechanical. The podiums-lost and
// wins-lost counters and the failure-laps histogram use exact membership,
// while every issue count uses substring classification; the two must not
// be unified or the historical numbers shift.
func (c *Classifier) IsTaxonomyTerm(status string) bool {
	_, ok := c.exact[status]
	return ok
}

// IsFinished reports whether the status text counts as a finish for the
// reliability metric: it case-insensitively contains "finished", or
// contains a "+" (lapped finishers such as "+1 Lap").
func (c *Classifier) IsFinished(status string) bool {
	lower := strings.ToLower(status)
	return strings.Contains(lower, "finished") || strings.Contains(lower, "+")
}
