// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package models

// YearBounds describes the selectable year range. It is always derived from
// the unfiltered fact table, never from a filtered view.
type YearBounds struct {
	MinYear int   `json:"min_year"`
	MaxYear int   `json:"max_year"`
	Years   []int `json:"years"` // distinct years, ascending
}

// YearCount is one point of a per-year series.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// GroupCount is one row of a named group-by count (constructor or failure
// category rankings). Slices of GroupCount carry a positional ordering
// contract: descending count for top-N slices, and for bottom-N slices the
// tail of the same descending sort with its order preserved.
type GroupCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TeamYearCount is one point of the head-to-head comparison series.
type TeamYearCount struct {
	Year  int    `json:"year"`
	Team  string `json:"team"`
	Count int    `json:"count"`
}

// OutcomeSplit is the two-way mechanical vs other split of all outcomes in
// a filtered view.
type OutcomeSplit struct {
	Mechanical int `json:"mechanical"`
	Other      int `json:"other"`
}

// OverviewStats is the full payload of the overview view.
type OverviewStats struct {
	Races            int `json:"races"`
	Seasons          int `json:"seasons"`
	Drivers          int `json:"drivers"`
	Constructors     int `json:"constructors"`
	MechanicalIssues int `json:"mechanical_issues"`

	IssuesPerYear []YearCount  `json:"issues_per_year"`
	Outcomes      OutcomeSplit `json:"outcomes"`

	// Top 10 constructors by issue count (descending) and the bottom 10
	// of the same sort (display toggle picks one side; values identical).
	WorstConstructors []GroupCount `json:"worst_constructors"`
	BestConstructors  []GroupCount `json:"best_constructors"`

	MostFrequentFailures  []GroupCount `json:"most_frequent_failures"`
	LeastFrequentFailures []GroupCount `json:"least_frequent_failures"`
}

// CircuitMapPoint is one circuit marker on the world map: location plus the
// mechanical-issue count at that circuit under the current filters.
type CircuitMapPoint struct {
	CircuitName string  `json:"circuit_name"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Issues      int     `json:"issues"`
}

// CircuitTableRow is one row of the per-circuit reliability table.
//
// Races and MeanPerRace ignore the failure-category selection while Issues,
// FrequentFailure, Times and Rate respect it. That asymmetry is inherited
// behavior and must not be "fixed" here.
type CircuitTableRow struct {
	CircuitName     string  `json:"circuit_name"`
	CountryFlagURL  string  `json:"country_flag_url"`
	Country         string  `json:"country"`
	Location        string  `json:"location"`
	Issues          int     `json:"issues"`
	Races           int     `json:"races"`
	MeanPerRace     float64 `json:"mean_per_race"`
	FrequentFailure string  `json:"frequent_failure"`
	Times           int     `json:"times"`
	Rate            int     `json:"rate"` // round(100 * Times / Issues)
}

// CircuitMedia carries the presentation assets for a selected country or
// circuit. Empty URLs mean the lookup tables had no image.
type CircuitMedia struct {
	Country          string `json:"country,omitempty"`
	CountryFlagURL   string `json:"country_flag_url,omitempty"`
	CircuitName      string `json:"circuit_name,omitempty"`
	CircuitLayoutURL string `json:"circuit_layout_url,omitempty"`
}

// CircuitsStats is the full payload of the circuits view.
type CircuitsStats struct {
	Races            int `json:"races"`
	Seasons          int `json:"seasons"`
	Teams            int `json:"teams"`
	MechanicalIssues int `json:"mechanical_issues"`
	Countries        int `json:"countries"`
	Circuits         int `json:"circuits"`

	MapPoints            []CircuitMapPoint `json:"map_points"`
	IssuesPerYear        []YearCount       `json:"issues_per_year"`
	MostFrequentFailures []GroupCount      `json:"most_frequent_failures"`
	WorstConstructors    []GroupCount      `json:"worst_constructors"`
	Table                []CircuitTableRow `json:"table"`

	// FailureLaps is the laps value of every row whose status is an exact
	// taxonomy term, for the client-side histogram.
	FailureLaps []int `json:"failure_laps"`

	Media *CircuitMedia `json:"media,omitempty"`
}

// TeamCard is one side of the constructor comparison.
type TeamCard struct {
	Team        string `json:"team"`
	Nationality string `json:"nationality"`
	FlagURL     string `json:"flag_url"`
	CarURL      string `json:"car_url"`

	Races            int `json:"races"`
	Wins             int `json:"wins"`
	Podiums          int `json:"podiums"`
	Seasons          int `json:"seasons"`
	MechanicalIssues int `json:"mechanical_issues"`
	PodiumsLost      int `json:"podiums_lost"`
	WinsLost         int `json:"wins_lost"`
	WorstSeason      int `json:"worst_season"`

	// Reliability is nil when the team has neither finishes nor failures
	// in the selected range (undefined, not zero).
	Reliability *float64 `json:"reliability,omitempty"`
}

// CompareStats is the full payload of the constructor comparison view.
// Rival is nil until a second team is selected; that is a valid state and
// renders as blank, not an error.
type CompareStats struct {
	Team   *TeamCard       `json:"team,omitempty"`
	Rival  *TeamCard       `json:"rival,omitempty"`
	Series []TeamYearCount `json:"series"`
}
