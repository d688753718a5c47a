// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package dataset

import (
	"time"

	"github.com/pitwall-dev/pitwall/internal/logging"
	"github.com/pitwall-dev/pitwall/internal/metrics"
	"github.com/pitwall-dev/pitwall/internal/models"
)

// BuildFactTable joins the reference tables into the denormalized fact
// table, one row per result, preserving results order.
//
// Every join is an inner join: a result whose race, driver, constructor,
// status or circuit id has no match is dropped, and so is any result whose
// constructor or circuit is missing from the picture lookups. The silent
// drop is a deliberate contract, not an oversight; downstream counts depend
// on it, so the picture tables must cover every id present in results or
// data is lost without an error. The dropped count is logged at warn level
// to make the loss observable without changing the numbers.
//
// The function is pure: it reads refs and allocates a new slice. Callers
// build the table once per process and treat it as immutable.
func BuildFactTable(refs *References) []models.FactRow {
	start := time.Now()

	racesByID := make(map[int]models.Race, len(refs.Races))
	for _, race := range refs.Races {
		racesByID[race.ID] = race
	}
	driversByID := make(map[int]models.Driver, len(refs.Drivers))
	for _, d := range refs.Drivers {
		driversByID[d.ID] = d
	}
	constructorsByID := make(map[int]models.Constructor, len(refs.Constructors))
	for _, c := range refs.Constructors {
		constructorsByID[c.ID] = c
	}
	statusesByID := make(map[int]models.Status, len(refs.Statuses))
	for _, s := range refs.Statuses {
		statusesByID[s.ID] = s
	}
	circuitsByID := make(map[int]models.Circuit, len(refs.Circuits))
	for _, c := range refs.Circuits {
		circuitsByID[c.ID] = c
	}
	constructorPicsByID := make(map[int]models.ConstructorPicture, len(refs.ConstructorPictures))
	for _, p := range refs.ConstructorPictures {
		constructorPicsByID[p.ConstructorID] = p
	}
	circuitPicsByID := make(map[int]models.CircuitPicture, len(refs.CircuitPictures))
	for _, p := range refs.CircuitPictures {
		circuitPicsByID[p.CircuitID] = p
	}

	facts := make([]models.FactRow, 0, len(refs.Results))
	dropped := 0

	for _, res := range refs.Results {
		race, ok := racesByID[res.RaceID]
		if !ok {
			dropped++
			continue
		}
		driver, ok := driversByID[res.DriverID]
		if !ok {
			dropped++
			continue
		}
		constructor, ok := constructorsByID[res.ConstructorID]
		if !ok {
			dropped++
			continue
		}
		status, ok := statusesByID[res.StatusID]
		if !ok {
			dropped++
			continue
		}
		constructorPic, ok := constructorPicsByID[res.ConstructorID]
		if !ok {
			dropped++
			continue
		}
		circuitPic, ok := circuitPicsByID[race.CircuitID]
		if !ok {
			dropped++
			continue
		}
		circuit, ok := circuitsByID[race.CircuitID]
		if !ok {
			dropped++
			continue
		}

		facts = append(facts, models.FactRow{
			ResultID: res.ResultID,

			RaceID:   race.ID,
			Year:     race.Year,
			RaceName: race.Name,
			Date:     race.Date,

			DriverID:          driver.ID,
			Driver:            driver.Forename + " " + driver.Surname,
			DriverNationality: driver.Nationality,

			ConstructorID:   constructor.ID,
			Team:            constructor.Name,
			TeamNationality: constructor.Nationality,
			TeamFlagURL:     constructorPic.FlagURL,
			CarURL:          constructorPic.CarURL,

			StatusID: status.ID,
			Status:   status.Description,

			Grid:          res.Grid,
			PositionOrder: res.PositionOrder,
			Laps:          res.Laps,

			CircuitID:        circuit.ID,
			CircuitName:      circuit.Name,
			Country:          circuit.Country,
			Location:         circuit.Location,
			Lat:              circuit.Lat,
			Lng:              circuit.Lng,
			CircuitLink:      circuit.Link,
			CountryFlagURL:   circuitPic.FlagURL,
			CircuitLayoutURL: circuitPic.PictureURL,
		})
	}

	metrics.FactTableRows.Set(float64(len(facts)))
	if dropped > 0 {
		logging.Warn().
			Int("dropped", dropped).
			Int("kept", len(facts)).
			Msg("Results dropped by inner join (missing reference or picture rows)")
	}
	logging.Info().
		Int("rows", len(facts)).
		Dur("elapsed", time.Since(start)).
		Msg("Fact table built")

	return facts
}
