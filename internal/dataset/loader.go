// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

// Package dataset loads the static reference tables and builds the
// denormalized fact table every aggregation runs against. Loading happens
// once at startup; the resulting slices are immutable for the process
// lifetime.
package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/pitwall-dev/pitwall/internal/logging"
	"github.com/pitwall-dev/pitwall/internal/metrics"
	"github.com/pitwall-dev/pitwall/internal/models"
)

// File names of the reference tables inside the dataset directory. The
// schema is fixed; datasets that deviate from it are unsupported.
const (
	fileConstructors        = "constructors.csv"
	fileStatus              = "status.csv"
	fileResults             = "results.csv"
	fileRaces               = "races.csv"
	fileDrivers             = "drivers.csv"
	fileCircuits            = "circuits.csv"
	fileConstructorPictures = "constructor_car_pictures.csv"
	fileCircuitPictures     = "circuits_pictures.csv"
)

// References holds the six reference tables and the two image lookups,
// loaded verbatim.
type References struct {
	Constructors        []models.Constructor
	Statuses            []models.Status
	Results             []models.Result
	Races               []models.Race
	Drivers             []models.Driver
	Circuits            []models.Circuit
	ConstructorPictures []models.ConstructorPicture
	CircuitPictures     []models.CircuitPicture
}

// Load reads all reference tables from dir through an in-memory DuckDB
// instance (read_csv with "\N" as NULL, matching the dataset's encoding).
// Any missing or malformed file is a fatal load error; there is no
// partial-load recovery.
func Load(ctx context.Context, dir string) (*References, error) {
	start := time.Now()

	conn, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Closing dataset loader connection")
		}
	}()

	refs := &References{}
	for _, step := range []struct {
		name string
		load func(context.Context, *sql.DB, string) error
	}{
		{fileConstructors, refs.loadConstructors},
		{fileStatus, refs.loadStatuses},
		{fileResults, refs.loadResults},
		{fileRaces, refs.loadRaces},
		{fileDrivers, refs.loadDrivers},
		{fileCircuits, refs.loadCircuits},
		{fileConstructorPictures, refs.loadConstructorPictures},
		{fileCircuitPictures, refs.loadCircuitPictures},
	} {
		if err := step.load(ctx, conn, filepath.Join(dir, step.name)); err != nil {
			return nil, fmt.Errorf("load %s: %w", step.name, err)
		}
	}

	metrics.DatasetLoadDuration.Observe(time.Since(start).Seconds())
	logging.Info().
		Int("results", len(refs.Results)).
		Int("races", len(refs.Races)).
		Int("drivers", len(refs.Drivers)).
		Int("constructors", len(refs.Constructors)).
		Int("circuits", len(refs.Circuits)).
		Dur("elapsed", time.Since(start)).
		Msg("Reference tables loaded")

	return refs, nil
}

// readCSV renders the read_csv table function for path. The path is quoted
// as a SQL string literal; it comes from configuration, not user input.
func readCSV(path string) string {
	quoted := strings.ReplaceAll(path, "'", "''")
	return fmt.Sprintf("read_csv('%s', header=true, nullstr='\\N')", quoted)
}

func (r *References) loadConstructors(ctx context.Context, conn *sql.DB, path string) error {
	query := fmt.Sprintf(`
		SELECT CAST(constructorId AS INTEGER),
		       name,
		       COALESCE(nationality, ''),
		       COALESCE(url, '')
		FROM %s`, readCSV(path))

	return scanRows(ctx, conn, query, func(rows *sql.Rows) error {
		var c models.Constructor
		if err := rows.Scan(&c.ID, &c.Name, &c.Nationality, &c.URL); err != nil {
			return err
		}
		r.Constructors = append(r.Constructors, c)
		return nil
	})
}

func (r *References) loadStatuses(ctx context.Context, conn *sql.DB, path string) error {
	query := fmt.Sprintf(`
		SELECT CAST(statusId AS INTEGER), status
		FROM %s`, readCSV(path))

	return scanRows(ctx, conn, query, func(rows *sql.Rows) error {
		var s models.Status
		if err := rows.Scan(&s.ID, &s.Description); err != nil {
			return err
		}
		r.Statuses = append(r.Statuses, s)
		return nil
	})
}

func (r *References) loadResults(ctx context.Context, conn *sql.DB, path string) error {
	query := fmt.Sprintf(`
		SELECT CAST(resultId AS INTEGER),
		       CAST(raceId AS INTEGER),
		       CAST(driverId AS INTEGER),
		       CAST(constructorId AS INTEGER),
		       CAST(statusId AS INTEGER),
		       CAST(COALESCE(grid, 0) AS INTEGER),
		       CAST(COALESCE(positionOrder, 0) AS INTEGER),
		       CAST(COALESCE(points, 0) AS DOUBLE),
		       CAST(COALESCE(laps, 0) AS INTEGER)
		FROM %s
		ORDER BY resultId`, readCSV(path))

	return scanRows(ctx, conn, query, func(rows *sql.Rows) error {
		var res models.Result
		if err := rows.Scan(&res.ResultID, &res.RaceID, &res.DriverID, &res.ConstructorID,
			&res.StatusID, &res.Grid, &res.PositionOrder, &res.Points, &res.Laps); err != nil {
			return err
		}
		r.Results = append(r.Results, res)
		return nil
	})
}

func (r *References) loadRaces(ctx context.Context, conn *sql.DB, path string) error {
	query := fmt.Sprintf(`
		SELECT CAST(raceId AS INTEGER),
		       CAST(year AS INTEGER),
		       CAST(circuitId AS INTEGER),
		       name,
		       COALESCE(CAST(date AS VARCHAR), '')
		FROM %s`, readCSV(path))

	return scanRows(ctx, conn, query, func(rows *sql.Rows) error {
		var race models.Race
		if err := rows.Scan(&race.ID, &race.Year, &race.CircuitID, &race.Name, &race.Date); err != nil {
			return err
		}
		r.Races = append(r.Races, race)
		return nil
	})
}

func (r *References) loadDrivers(ctx context.Context, conn *sql.DB, path string) error {
	query := fmt.Sprintf(`
		SELECT CAST(driverId AS INTEGER),
		       forename,
		       surname,
		       COALESCE(nationality, '')
		FROM %s`, readCSV(path))

	return scanRows(ctx, conn, query, func(rows *sql.Rows) error {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Forename, &d.Surname, &d.Nationality); err != nil {
			return err
		}
		r.Drivers = append(r.Drivers, d)
		return nil
	})
}

func (r *References) loadCircuits(ctx context.Context, conn *sql.DB, path string) error {
	query := fmt.Sprintf(`
		SELECT CAST(circuitId AS INTEGER),
		       name,
		       COALESCE(location, ''),
		       COALESCE(country, ''),
		       CAST(COALESCE(lat, 0) AS DOUBLE),
		       CAST(COALESCE(lng, 0) AS DOUBLE),
		       COALESCE(url, '')
		FROM %s`, readCSV(path))

	return scanRows(ctx, conn, query, func(rows *sql.Rows) error {
		var c models.Circuit
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Country, &c.Lat, &c.Lng, &c.Link); err != nil {
			return err
		}
		r.Circuits = append(r.Circuits, c)
		return nil
	})
}

func (r *References) loadConstructorPictures(ctx context.Context, conn *sql.DB, path string) error {
	query := fmt.Sprintf(`
		SELECT CAST(constructorId AS INTEGER),
		       COALESCE(flag_url, ''),
		       COALESCE(car_url, '')
		FROM %s`, readCSV(path))

	return scanRows(ctx, conn, query, func(rows *sql.Rows) error {
		var p models.ConstructorPicture
		if err := rows.Scan(&p.ConstructorID, &p.FlagURL, &p.CarURL); err != nil {
			return err
		}
		r.ConstructorPictures = append(r.ConstructorPictures, p)
		return nil
	})
}

func (r *References) loadCircuitPictures(ctx context.Context, conn *sql.DB, path string) error {
	query := fmt.Sprintf(`
		SELECT CAST(circuitId AS INTEGER),
		       COALESCE(flag_url, ''),
		       COALESCE(picture_url, '')
		FROM %s`, readCSV(path))

	return scanRows(ctx, conn, query, func(rows *sql.Rows) error {
		var p models.CircuitPicture
		if err := rows.Scan(&p.CircuitID, &p.FlagURL, &p.PictureURL); err != nil {
			return err
		}
		r.CircuitPictures = append(r.CircuitPictures, p)
		return nil
	})
}

// scanRows runs query and applies scan to every row, wrapping errors with
// enough context to identify the failing table.
func scanRows(ctx context.Context, conn *sql.DB, query string, scan func(*sql.Rows) error) error {
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Closing rows")
		}
	}()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate: %w", err)
	}
	return nil
}
