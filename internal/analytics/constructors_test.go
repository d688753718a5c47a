// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package analytics

import (
	"testing"

	"github.com/pitwall-dev/pitwall/internal/classify"
	"github.com/pitwall-dev/pitwall/internal/models"
)

func TestTeamCardReliability(t *testing.T) {
	t.Parallel()

	// 6 finished, 2 mechanical failures: 6/8 = 75.0%.
	rows := make([]models.FactRow, 0, 8)
	for i := 0; i < 6; i++ {
		rows = append(rows, row(2000, i+1, "Ferrari", "Finished"))
	}
	rows = append(rows,
		row(2000, 7, "Ferrari", "Engine"),
		row(2000, 8, "Ferrari", "Engine"),
	)

	card, ok := TeamCard(NewSnapshot(rows), classify.New(), "Ferrari")
	if !ok {
		t.Fatal("team not found")
	}
	if card.Reliability == nil || *card.Reliability != 75.0 {
		t.Fatalf("reliability = %v, want 75.0", card.Reliability)
	}
	if card.Races != 8 || card.Seasons != 1 || card.MechanicalIssues != 2 {
		t.Errorf("races/seasons/issues = %d/%d/%d, want 8/1/2", card.Races, card.Seasons, card.MechanicalIssues)
	}
}

func TestTeamCardReliabilityRounding(t *testing.T) {
	t.Parallel()

	// 2 finished, 1 failure: 66.666... rounds to 66.7.
	rows := []models.FactRow{
		row(2000, 1, "Lotus", "Finished"),
		row(2000, 2, "Lotus", "+1 Lap"),
		row(2000, 3, "Lotus", "Engine"),
	}
	card, ok := TeamCard(NewSnapshot(rows), classify.New(), "Lotus")
	if !ok {
		t.Fatal("team not found")
	}
	if card.Reliability == nil || *card.Reliability != 66.7 {
		t.Fatalf("reliability = %v, want 66.7", card.Reliability)
	}
}

func TestTeamCardReliabilityUndefined(t *testing.T) {
	t.Parallel()

	// Only non-finish, non-mechanical outcomes: the ratio has no
	// denominator and must be absent, not zero.
	rows := []models.FactRow{
		row(2000, 1, "Arrows", "Disqualified"),
		row(2000, 2, "Arrows", "Did not qualify"),
	}
	card, ok := TeamCard(NewSnapshot(rows), classify.New(), "Arrows")
	if !ok {
		t.Fatal("team not found")
	}
	if card.Reliability != nil {
		t.Errorf("reliability = %v, want nil", *card.Reliability)
	}
}

func TestTeamCardLostPositionsUseExactTaxonomy(t *testing.T) {
	t.Parallel()

	rows := []models.FactRow{
		// Pole position lost to an exact taxonomy failure: counts for
		// both wins lost and podiums lost.
		row(2001, 1, "McLaren", "Engine", withGrid(1)),
		// Front-row start lost: podiums lost only.
		row(2001, 2, "McLaren", "Gearbox", withGrid(2)),
		// Pit-lane start (grid 0) satisfies grid <= 3: podiums lost only.
		row(2001, 3, "McLaren", "Hydraulics", withGrid(0)),
		// Grid 4 is past the threshold: nothing lost.
		row(2001, 4, "McLaren", "Suspension", withGrid(4)),
		// Pole lost to a status that only substring-matches the
		// taxonomy: not an exact term, so it does not count.
		row(2001, 5, "McLaren", "Engine blown", withGrid(1)),
		// Pole converted: nothing lost.
		row(2001, 6, "McLaren", "Finished", withGrid(1), withPosition(1)),
	}
	card, ok := TeamCard(NewSnapshot(rows), classify.New(), "McLaren")
	if !ok {
		t.Fatal("team not found")
	}
	if card.WinsLost != 1 {
		t.Errorf("wins lost = %d, want 1", card.WinsLost)
	}
	if card.PodiumsLost != 3 {
		t.Errorf("podiums lost = %d, want 3", card.PodiumsLost)
	}
	if card.MechanicalIssues != 5 {
		t.Errorf("mechanical issues = %d, want 5", card.MechanicalIssues)
	}
	if card.Wins != 1 || card.Podiums != 1 {
		t.Errorf("wins/podiums = %d/%d, want 1/1", card.Wins, card.Podiums)
	}
}

func TestTeamCardWorstSeason(t *testing.T) {
	t.Parallel()

	rows := []models.FactRow{
		row(2001, 1, "Jordan", "Engine"),
		row(2002, 2, "Jordan", "Engine"),
		row(2002, 3, "Jordan", "Gearbox"),
		row(2003, 4, "Jordan", "Finished"),
	}
	card, ok := TeamCard(NewSnapshot(rows), classify.New(), "Jordan")
	if !ok {
		t.Fatal("team not found")
	}
	if card.WorstSeason != 2002 {
		t.Errorf("worst season = %d, want 2002", card.WorstSeason)
	}
}

func TestTeamCardWorstSeasonTieResolvesToEarliestYear(t *testing.T) {
	t.Parallel()

	rows := []models.FactRow{
		row(2004, 1, "Sauber", "Engine"),
		row(2002, 2, "Sauber", "Engine"),
	}
	card, ok := TeamCard(NewSnapshot(rows), classify.New(), "Sauber")
	if !ok {
		t.Fatal("team not found")
	}
	if card.WorstSeason != 2002 {
		t.Errorf("worst season = %d, want 2002 on a tie", card.WorstSeason)
	}
}

func TestTeamCardUnknownTeam(t *testing.T) {
	t.Parallel()

	s := NewSnapshot([]models.FactRow{row(2000, 1, "Ferrari", "Finished")})
	if _, ok := TeamCard(s, classify.New(), "Brabham"); ok {
		t.Error("expected no card for a team outside the view")
	}
	if _, ok := TeamCard(s, classify.New(), ""); ok {
		t.Error("expected no card for an empty team name")
	}
}

func TestCompareSeriesOrdering(t *testing.T) {
	t.Parallel()

	s := NewSnapshot([]models.FactRow{
		row(2002, 1, "Williams", "Engine"),
		row(2001, 2, "Williams", "Engine"),
		row(2001, 3, "Ferrari", "Gearbox"),
		row(2001, 4, "McLaren", "Engine"), // not part of the comparison
		row(2002, 5, "Ferrari", "Finished"),
	})

	series := CompareSeries(s, classify.New(), "Ferrari", "Williams")
	want := []models.TeamYearCount{
		{Year: 2001, Team: "Ferrari", Count: 1},
		{Year: 2001, Team: "Williams", Count: 1},
		{Year: 2002, Team: "Williams", Count: 1},
	}
	if len(series) != len(want) {
		t.Fatalf("series has %d entries, want %d: %+v", len(series), len(want), series)
	}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("series[%d] = %+v, want %+v", i, series[i], want[i])
		}
	}
}

func TestCompareWithoutRival(t *testing.T) {
	t.Parallel()

	s := NewSnapshot([]models.FactRow{
		row(2001, 1, "Ferrari", "Engine"),
	})
	got := Compare(s, classify.New(), "Ferrari", "")
	if got.Team == nil {
		t.Fatal("missing team card")
	}
	if got.Rival != nil {
		t.Errorf("rival card present without a rival: %+v", got.Rival)
	}
	if len(got.Series) != 1 {
		t.Errorf("series = %+v, want one entry", got.Series)
	}
}
