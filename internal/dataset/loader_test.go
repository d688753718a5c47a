// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDatasetDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		fileConstructors: "constructorId,constructorRef,name,nationality,url\n" +
			"1,ferrari,Ferrari,Italian,http://example.test/ferrari\n" +
			"2,williams,Williams,British,\\N\n",
		fileStatus: "statusId,status\n" +
			"1,Finished\n" +
			"5,Engine\n",
		fileResults: "resultId,raceId,driverId,constructorId,number,grid,position,positionText,positionOrder,points,laps,time,milliseconds,fastestLap,rank,fastestLapTime,fastestLapSpeed,statusId\n" +
			"100,10,30,1,1,1,1,1,1,10,53,1:20:00,4800000,30,1,1:21.046,250.0,1\n" +
			"101,10,31,2,3,4,\\N,R,18,0,30,\\N,\\N,22,15,1:22.500,245.1,5\n",
		fileRaces: "raceId,year,round,circuitId,name,date,time,url\n" +
			"10,2004,15,20,Italian Grand Prix,2004-09-12,13:00:00,\\N\n",
		fileDrivers: "driverId,driverRef,number,code,forename,surname,dob,nationality,url\n" +
			"30,msc,1,MSC,Michael,Schumacher,1969-01-03,German,\\N\n" +
			"31,montoya,3,MON,Juan,Montoya,1975-09-20,Colombian,\\N\n",
		fileCircuits: "circuitId,circuitRef,name,location,country,lat,lng,alt,url\n" +
			"20,monza,Monza,Monza,Italy,45.6156,9.2811,162,http://example.test/monza\n",
		fileConstructorPictures: "constructorId,flag_url,car_url\n" +
			"1,flag-it,car-ferrari\n" +
			"2,flag-gb,car-williams\n",
		fileCircuitPictures: "circuitId,flag_url,picture_url\n" +
			"20,flag-italy,layout-monza\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadReferenceTables(t *testing.T) {
	t.Parallel()

	refs, err := Load(context.Background(), writeDatasetDir(t))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(refs.Constructors) != 2 || len(refs.Statuses) != 2 || len(refs.Results) != 2 {
		t.Errorf("counts = %d/%d/%d, want 2/2/2",
			len(refs.Constructors), len(refs.Statuses), len(refs.Results))
	}
	if len(refs.Races) != 1 || len(refs.Drivers) != 2 || len(refs.Circuits) != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/2/1",
			len(refs.Races), len(refs.Drivers), len(refs.Circuits))
	}
	if len(refs.ConstructorPictures) != 2 || len(refs.CircuitPictures) != 1 {
		t.Errorf("picture counts = %d/%d, want 2/1",
			len(refs.ConstructorPictures), len(refs.CircuitPictures))
	}
}

func TestLoadNullHandling(t *testing.T) {
	t.Parallel()

	refs, err := Load(context.Background(), writeDatasetDir(t))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// \N nationality/url columns come back as empty strings, not errors.
	var williams bool
	for _, c := range refs.Constructors {
		if c.Name == "Williams" {
			williams = true
			if c.URL != "" {
				t.Errorf("Williams url = %q, want empty for \\N", c.URL)
			}
		}
	}
	if !williams {
		t.Fatal("Williams not loaded")
	}
}

func TestLoadIntoFactTable(t *testing.T) {
	t.Parallel()

	refs, err := Load(context.Background(), writeDatasetDir(t))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	facts := BuildFactTable(refs)
	if len(facts) != 2 {
		t.Fatalf("fact rows = %d, want 2", len(facts))
	}
	if facts[0].Driver != "Michael Schumacher" || facts[0].Status != "Finished" {
		t.Errorf("first row = %q/%q", facts[0].Driver, facts[0].Status)
	}
	if facts[1].Status != "Engine" || facts[1].Laps != 30 {
		t.Errorf("second row = %q/%d", facts[1].Status, facts[1].Laps)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	dir := writeDatasetDir(t)
	if err := os.Remove(filepath.Join(dir, fileResults)); err != nil {
		t.Fatal(err)
	}

	_, err := Load(context.Background(), dir)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), fileResults) {
		t.Errorf("error does not name the missing file: %v", err)
	}
}
