// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

// Package models defines the reference entities loaded from the dataset,
// the denormalized fact row they join into, and the typed responses the
// analytics endpoints return.
package models

// Constructor is one row of constructors.csv.
type Constructor struct {
	ID          int    `json:"constructor_id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	URL         string `json:"url"`
}

// Status is one row of status.csv. Description is free text such as
// "Finished", "Engine", "+1 Lap" or "Accident"; classification into
// failure categories happens in the classify package, never here.
type Status struct {
	ID          int    `json:"status_id"`
	Description string `json:"status"`
}

// Result is one row of results.csv, the grain of the whole system:
// one driver's outcome in one race.
type Result struct {
	ResultID      int     `json:"result_id"`
	RaceID        int     `json:"race_id"`
	DriverID      int     `json:"driver_id"`
	ConstructorID int     `json:"constructor_id"`
	StatusID      int     `json:"status_id"`
	Grid          int     `json:"grid"`
	PositionOrder int     `json:"position_order"`
	Points        float64 `json:"points"`
	Laps          int     `json:"laps"`
}

// Race is one row of races.csv.
type Race struct {
	ID        int    `json:"race_id"`
	Year      int    `json:"year"`
	CircuitID int    `json:"circuit_id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
}

// Driver is one row of drivers.csv.
type Driver struct {
	ID          int    `json:"driver_id"`
	Forename    string `json:"forename"`
	Surname     string `json:"surname"`
	Nationality string `json:"nationality"`
}

// Circuit is one row of circuits.csv. Name is exposed as circuit_name and
// URL as link so the fields cannot be confused with the race name and the
// constructor URL after the join.
type Circuit struct {
	ID       int     `json:"circuit_id"`
	Name     string  `json:"circuit_name"`
	Location string  `json:"location"`
	Country  string  `json:"country"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Link     string  `json:"link"`
}

// ConstructorPicture maps a constructor to its car image and national flag.
// Presentation-only, but part of the fact-table join: a constructor missing
// here drops all of its results (inner-join contract).
type ConstructorPicture struct {
	ConstructorID int    `json:"constructor_id"`
	FlagURL       string `json:"flag_url"`
	CarURL        string `json:"car_url"`
}

// CircuitPicture maps a circuit to its track layout image and country flag.
// Same inner-join contract as ConstructorPicture.
type CircuitPicture struct {
	CircuitID  int    `json:"circuit_id"`
	FlagURL    string `json:"flag_url"`
	PictureURL string `json:"picture_url"`
}
