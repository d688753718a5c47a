// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pitwall-dev/pitwall/internal/analytics"
)

// parseFilter decodes the shared filter parameters from the query string.
//
//	start_year, end_year  inclusive year range, default full dataset range
//	team                  repeatable, exact team name
//	country               repeatable, exact circuit country
//	circuit               repeatable, exact circuit name
//	failure               repeatable, exact status text
//
// Unknown values are not rejected here: a filter value outside the dataset
// simply matches nothing, which the aggregation layer handles as an empty
// view.
func parseFilter(r *http.Request, bounds analytics.Filter) (analytics.Filter, error) {
	q := r.URL.Query()

	f := analytics.Filter{
		StartYear: bounds.StartYear,
		EndYear:   bounds.EndYear,
		Teams:     q["team"],
		Countries: q["country"],
		Circuits:  q["circuit"],
		Failures:  q["failure"],
	}

	var err error
	if f.StartYear, err = parseYear(q.Get("start_year"), f.StartYear); err != nil {
		return analytics.Filter{}, err
	}
	if f.EndYear, err = parseYear(q.Get("end_year"), f.EndYear); err != nil {
		return analytics.Filter{}, err
	}
	if f.StartYear > f.EndYear {
		return analytics.Filter{}, fmt.Errorf("start_year %d is after end_year %d", f.StartYear, f.EndYear)
	}
	return f, nil
}

func parseYear(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return year, nil
}
