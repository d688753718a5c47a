// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package models

// FactRow is one denormalized race result: a Result joined with its Race,
// Driver, Constructor, Status, Circuit and both picture lookups. It is the
// sole input to every aggregation.
//
// Column-name collisions from the joins are resolved here with explicit
// field names instead of positional suffixes:
//
//   - RaceName / Team / CircuitName all come from a column called "name"
//     in races, constructors and circuits respectively.
//   - DriverNationality vs TeamNationality ("nationality" in drivers and
//     constructors).
//   - TeamFlagURL / CarURL come from the constructor picture table;
//     CountryFlagURL / CircuitLayoutURL from the circuit picture table.
//
// Every aggregation must reference these names; nothing downstream may
// re-derive a field from the reference tables.
type FactRow struct {
	ResultID int `json:"result_id"`

	RaceID   int    `json:"race_id"`
	Year     int    `json:"year"`
	RaceName string `json:"race_name"`
	Date     string `json:"date"`

	DriverID          int    `json:"driver_id"`
	Driver            string `json:"driver"` // forename + " " + surname
	DriverNationality string `json:"driver_nationality"`

	ConstructorID   int    `json:"constructor_id"`
	Team            string `json:"team"`
	TeamNationality string `json:"team_nationality"`
	TeamFlagURL     string `json:"team_flag_url"`
	CarURL          string `json:"car_url"`

	StatusID int    `json:"status_id"`
	Status   string `json:"status"`

	Grid          int `json:"grid"`
	PositionOrder int `json:"position_order"`
	Laps          int `json:"laps"`

	CircuitID        int     `json:"circuit_id"`
	CircuitName      string  `json:"circuit_name"`
	Country          string  `json:"country"`
	Location         string  `json:"location"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	CircuitLink      string  `json:"link"`
	CountryFlagURL   string  `json:"country_flag_url"`
	CircuitLayoutURL string  `json:"circuit_layout_url"`
}
