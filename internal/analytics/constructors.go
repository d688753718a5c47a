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

// Compare computes the head-to-head constructor payload over a
// year-filtered view. rival may be empty: the comparison then carries one
// card and a single-team series, which is a valid state, not an error. A
// team with no rows in the view yields a nil card the same way.
func Compare(s Snapshot, c *classify.Classifier, team, rival string) models.CompareStats {
	stats := models.CompareStats{
		Series: CompareSeries(s, c, team, rival),
	}
	if card, ok := TeamCard(s, c, team); ok {
		stats.Team = &card
	}
	if rival != "" {
		if card, ok := TeamCard(s, c, rival); ok {
			stats.Rival = &card
		}
	}
	return stats
}

// CompareSeries returns the per-year mechanical-issue counts of the named
// teams, ordered by year ascending then by team name ascending within a
// year. Teams with no classifier-true rows contribute nothing.
func CompareSeries(s Snapshot, c *classify.Classifier, teams ...string) []models.TeamYearCount {
	wanted := toSet(lo.Compact(teams))
	if len(wanted) == 0 {
		return nil
	}

	type key struct {
		year int
		team string
	}
	counts := make(map[key]int)
	for _, r := range s.Rows() {
		if _, ok := wanted[r.Team]; !ok {
			continue
		}
		if !c.IsMechanical(r.Status) {
			continue
		}
		counts[key{r.Year, r.Team}]++
	}

	series := make([]models.TeamYearCount, 0, len(counts))
	for k, n := range counts {
		series = append(series, models.TeamYearCount{Year: k.year, Team: k.team, Count: n})
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Year != series[j].Year {
			return series[i].Year < series[j].Year
		}
		return series[i].Team < series[j].Team
	})
	return series
}

// TeamCard computes one side of the comparison from a year-filtered view.
// Returns false when the team has no rows in the view.
//
// Two different failure predicates are in play, inherited behavior that
// must stay split: MechanicalIssues and Reliability use the substring
// classifier, PodiumsLost and WinsLost use exact taxonomy membership of
// the raw status.
func TeamCard(s Snapshot, c *classify.Classifier, team string) (models.TeamCard, bool) {
	if team == "" {
		return models.TeamCard{}, false
	}

	rows := lo.Filter(s.Rows(), func(r models.FactRow, _ int) bool { return r.Team == team })
	if len(rows) == 0 {
		return models.TeamCard{}, false
	}

	first := rows[0]
	card := models.TeamCard{
		Team:        team,
		Nationality: first.TeamNationality,
		FlagURL:     first.TeamFlagURL,
		CarURL:      first.CarURL,

		Races:   distinctInts(rows, func(r models.FactRow) int { return r.RaceID }),
		Seasons: distinctInts(rows, func(r models.FactRow) int { return r.Year }),
	}

	type racePosition struct {
		race     int
		position int
	}
	podiums := make(map[racePosition]struct{})
	wins := make(map[racePosition]struct{})

	finished := 0
	mechanical := make([]models.FactRow, 0)

	for _, r := range rows {
		if r.PositionOrder >= 1 && r.PositionOrder <= 3 {
			podiums[racePosition{r.RaceID, r.PositionOrder}] = struct{}{}
		}
		if r.PositionOrder == 1 {
			wins[racePosition{r.RaceID, 1}] = struct{}{}
		}
		if c.IsFinished(r.Status) {
			finished++
		}
		if c.IsMechanical(r.Status) {
			mechanical = append(mechanical, r)
		}
		if c.IsTaxonomyTerm(r.Status) {
			// Grid 0 (pit-lane start) still counts toward podiums lost:
			// the threshold is grid <= 3, not a front-row range.
			if r.Grid <= 3 {
				card.PodiumsLost++
			}
			if r.Grid == 1 {
				card.WinsLost++
			}
		}
	}

	card.Wins = len(wins)
	card.Podiums = len(podiums)
	card.MechanicalIssues = len(mechanical)
	card.WorstSeason = worstSeason(mechanical)

	if denominator := finished + card.MechanicalIssues; denominator > 0 {
		reliability := math.Round(100*float64(finished)/float64(denominator)*10) / 10
		card.Reliability = &reliability
	}

	return card, true
}

// worstSeason is the year with the highest mechanical-issue count: stable
// descending sort of the year-ascending series, first entry, so a tie
// resolves to the earliest year. Zero when the team never failed.
func worstSeason(mechanical []models.FactRow) int {
	perYear := countByYear(mechanical)
	if len(perYear) == 0 {
		return 0
	}
	sort.SliceStable(perYear, func(i, j int) bool { return perYear[i].Count > perYear[j].Count })
	return perYear[0].Year
}
