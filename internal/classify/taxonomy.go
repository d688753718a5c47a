// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

package classify

// Taxonomy is the fixed list of terms that mark a status as a mechanical
// issue. A status counts as mechanical iff it contains any of these terms
// as a case-insensitive substring.
//
// The list is matched by containment, not whole words, so overlapping
// entries ("Tyre" / "Tyre puncture") and embedded hits ("ERS" inside an
// unrelated word) are possible. Classification is boolean, so overlaps
// never double-count, but the false-positive potential is a known quirk
// that is kept for parity with the historical numbers.
//
// Order matters only for review against the source dataset; matching is a
// logical OR across all terms.
var Taxonomy = []string{
	"Engine", "Transmission", "Gearbox", "Suspension", "Hydraulics", "Brakes", "Differential",
	"Clutch", "Driveshaft", "Fuel pressure", "Throttle", "Steering", "Exhaust", "Fuel pump",
	"Track rod", "Pneumatics", "Engine fire", "Fuel system", "Oil line", "Oil pressure", "Drivetrain", "Halfshaft",
	"Crankshaft", "Wheel bearing", "Vibrations", "Oil pump", "Injection", "Distributor", "Turbo",
	"CV joint", "Water pump", "Spark plugs", "Fuel pipe", "Oil pipe", "Axle", "Water pipe",
	"Supercharger", "Engine misfire", "Power Unit", "Brake duct", "Cooling system", "Overheating",
	"Oil leak", "Mechanical", "Radiator", "Electrical", "Driver Seat", "Water Pressure", "Water leak",
	"Fire", "Power loss", "Launch control", "Ignition", "Battery", "Alternator", "ERS", "Seat", "Tyre", "Puncture",
	"Wheel", "Tyre puncture",
}
