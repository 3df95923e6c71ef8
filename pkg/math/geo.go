// pkg/math/geo.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

// EarthRadiusNM is the radius of the Earth in nautical miles used by
// NMDistance for great-circle distance calculations.
const EarthRadiusNM = 3441.035

// NMDistance returns the great-circle distance in nautical miles between
// two points given as (latitude, longitude) in decimal degrees.
func NMDistance(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1, rlon1 := Radians(lat1), Radians(lon1)
	rlat2, rlon2 := Radians(lat2), Radians(lon2)
	dlat, dlon := rlat2-rlat1, rlon2-rlon1

	x := Sqr(gomath.Sin(dlat/2)) + gomath.Cos(rlat1)*gomath.Cos(rlat2)*Sqr(gomath.Sin(dlon/2))
	c := 2 * gomath.Atan2(gomath.Sqrt(x), gomath.Sqrt(1-x))

	return EarthRadiusNM * c
}
