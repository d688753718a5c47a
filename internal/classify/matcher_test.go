// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package classify

import (
	"strings"
	"testing"
)

func TestMatcher_Contains(t *testing.T) {
	t.Parallel()

	m := newMatcher([]string{"he", "she", "his", "hers"})

	tests := []struct {
		text string
		want bool
	}{
		{"ushers", true},
		{"SHE said", true},
		{"hi there", true}, // "he" inside "there"
		{"good day", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := m.Contains(tt.text); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestMatcher_EquivalentToNaiveContains(t *testing.T) {
	t.Parallel()

	// The automaton must be semantically identical to OR-ing
	// strings.Contains over every taxonomy term.
	m := newMatcher(Taxonomy)

	naive := func(text string) bool {
		lower := strings.ToLower(text)
		for _, term := range Taxonomy {
			if strings.Contains(lower, strings.ToLower(term)) {
				return true
			}
		}
		return false
	}

	texts := []string{
		"Engine", "engine failure", "Finished", "+1 Lap", "Accident",
		"Turbocharger", "Collision damage", "Wheel nut", "overheating issues",
		"Spun off", "Out of fuel", "Tyre", "tyres", "ers deployment",
		"Dispersion", "Withdrew", "Water pressure", "launch CONTROL", "",
	}

	for _, text := range texts {
		if got, want := m.Contains(text), naive(text); got != want {
			t.Errorf("Contains(%q) = %v, naive = %v", text, got, want)
		}
	}
}

func TestMatcher_EmptyPatterns(t *testing.T) {
	t.Parallel()

	m := newMatcher(nil)
	if m.Contains("anything") {
		t.Error("matcher with no patterns must never match")
	}

	m = newMatcher([]string{""})
	if m.Contains("anything") {
		t.Error("empty patterns are ignored")
	}
}
