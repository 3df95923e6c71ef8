// pkg/math/geo_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "testing"

func TestNMDistanceZero(t *testing.T) {
	d := NMDistance(42.3656, -71.0096, 42.3656, -71.0096)
	if Abs(d) > 1e-9 {
		t.Errorf("expected zero distance for identical points, got %g", d)
	}
}

func TestNMDistanceSymmetric(t *testing.T) {
	// KBOS and KJFK, roughly.
	d1 := NMDistance(42.3656, -71.0096, 40.6398, -73.7789)
	d2 := NMDistance(40.6398, -73.7789, 42.3656, -71.0096)
	if Abs(d1-d2) > 1e-9 {
		t.Errorf("distance should be symmetric: %g vs %g", d1, d2)
	}
	// Sanity: Boston-JFK is on the order of 160NM.
	if d1 < 140 || d1 > 180 {
		t.Errorf("KBOS-KJFK distance %g NM outside expected range", d1)
	}
}
