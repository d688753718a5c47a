// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package dataset

import (
	"testing"

	"github.com/pitwall-dev/pitwall/internal/models"
)

func factRefs() *References {
	return &References{
		Constructors: []models.Constructor{
			{ID: 1, Name: "Ferrari", Nationality: "Italian"},
			{ID: 2, Name: "Williams", Nationality: "British"},
		},
		Statuses: []models.Status{
			{ID: 1, Description: "Finished"},
			{ID: 5, Description: "Engine"},
		},
		Races: []models.Race{
			{ID: 10, Year: 2004, CircuitID: 20, Name: "Italian Grand Prix", Date: "2004-09-12"},
		},
		Drivers: []models.Driver{
			{ID: 30, Forename: "Michael", Surname: "Schumacher", Nationality: "German"},
			{ID: 31, Forename: "Juan", Surname: "Montoya", Nationality: "Colombian"},
		},
		Circuits: []models.Circuit{
			{ID: 20, Name: "Monza", Location: "Monza", Country: "Italy", Lat: 45.6156, Lng: 9.2811, Link: "https://example.test/monza"},
		},
		ConstructorPictures: []models.ConstructorPicture{
			{ConstructorID: 1, FlagURL: "flag-it", CarURL: "car-ferrari"},
			{ConstructorID: 2, FlagURL: "flag-gb", CarURL: "car-williams"},
		},
		CircuitPictures: []models.CircuitPicture{
			{CircuitID: 20, FlagURL: "flag-italy", PictureURL: "layout-monza"},
		},
		Results: []models.Result{
			{ResultID: 100, RaceID: 10, DriverID: 30, ConstructorID: 1, StatusID: 1, Grid: 1, PositionOrder: 1, Laps: 53},
			{ResultID: 101, RaceID: 10, DriverID: 31, ConstructorID: 2, StatusID: 5, Grid: 4, PositionOrder: 18, Laps: 30},
		},
	}
}

func TestBuildFactTableFieldMapping(t *testing.T) {
	t.Parallel()

	facts := BuildFactTable(factRefs())
	if len(facts) != 2 {
		t.Fatalf("got %d rows, want 2", len(facts))
	}

	first := facts[0]
	if first.ResultID != 100 {
		t.Errorf("ResultID = %d", first.ResultID)
	}
	if first.Driver != "Michael Schumacher" {
		t.Errorf("Driver = %q, want forename plus surname", first.Driver)
	}
	if first.Team != "Ferrari" || first.TeamNationality != "Italian" {
		t.Errorf("team fields = %q/%q", first.Team, first.TeamNationality)
	}
	if first.TeamFlagURL != "flag-it" || first.CarURL != "car-ferrari" {
		t.Errorf("constructor picture fields = %q/%q", first.TeamFlagURL, first.CarURL)
	}
	if first.Status != "Finished" || first.StatusID != 1 {
		t.Errorf("status = %q/%d", first.Status, first.StatusID)
	}
	if first.Year != 2004 || first.RaceName != "Italian Grand Prix" {
		t.Errorf("race fields = %d/%q", first.Year, first.RaceName)
	}
	if first.CircuitName != "Monza" || first.Country != "Italy" || first.Location != "Monza" {
		t.Errorf("circuit fields = %q/%q/%q", first.CircuitName, first.Country, first.Location)
	}
	if first.CountryFlagURL != "flag-italy" || first.CircuitLayoutURL != "layout-monza" {
		t.Errorf("circuit picture fields = %q/%q", first.CountryFlagURL, first.CircuitLayoutURL)
	}
	if first.Grid != 1 || first.PositionOrder != 1 || first.Laps != 53 {
		t.Errorf("result fields = %d/%d/%d", first.Grid, first.PositionOrder, first.Laps)
	}
}

func TestBuildFactTablePreservesResultOrder(t *testing.T) {
	t.Parallel()

	facts := BuildFactTable(factRefs())
	if facts[0].ResultID != 100 || facts[1].ResultID != 101 {
		t.Errorf("rows reordered: %d, %d", facts[0].ResultID, facts[1].ResultID)
	}
}

func TestBuildFactTableDropsUnmatchedRows(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*References)
	}{
		{"missing race", func(r *References) { r.Races = nil }},
		{"missing driver", func(r *References) { r.Drivers = r.Drivers[:1] }},
		{"missing status", func(r *References) { r.Statuses = r.Statuses[:1] }},
		{"missing constructor picture", func(r *References) { r.ConstructorPictures = r.ConstructorPictures[:1] }},
		{"missing circuit picture", func(r *References) { r.CircuitPictures = nil }},
		{"missing circuit", func(r *References) { r.Circuits = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			refs := factRefs()
			full := len(BuildFactTable(refs))
			tc.mutate(refs)
			got := len(BuildFactTable(refs))
			if got >= full {
				t.Errorf("no rows dropped: %d >= %d", got, full)
			}
		})
	}
}

func TestBuildFactTableEmptyResults(t *testing.T) {
	t.Parallel()

	refs := factRefs()
	refs.Results = nil
	if got := BuildFactTable(refs); len(got) != 0 {
		t.Errorf("got %d rows from no results", len(got))
	}
}
