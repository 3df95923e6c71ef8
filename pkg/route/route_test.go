// pkg/route/route_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"testing"

	"github.com/ifrnav/xpnav/pkg/navdata"
)

func mustLoadNavData(t *testing.T) *navdata.NavData {
	t.Helper()
	nd, err := navdata.Load("../navdata/testdata", nil)
	if err != nil {
		t.Fatalf("navdata.Load: %v", err)
	}
	return nd
}

func codes(wps []Waypoint) []string {
	out := make([]string, len(wps))
	for i, w := range wps {
		out[i] = w.Code
	}
	return out
}

func TestAppendAirwayRoute(t *testing.T) {
	nd := mustLoadNavData(t)
	r := New(nd, nil)

	if f := r.Append("KBOS J121 KJFK", true, false, nil); f != nil {
		t.Fatalf("unexpected failure: %+v", f)
	}

	got := codes(r.Waypoints)
	want := []string{"KBOS", "ORW", "KJFK"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}

	if r.Waypoints[0].OutAwy != "J121" || r.Waypoints[1].InAwy != "J121" || r.Waypoints[1].OutAwy != "J121" {
		t.Errorf("expected J121 in/out airway annotations, got %+v", r.Waypoints)
	}
	if r.Waypoints[2].InAwy != "J121" || r.Waypoints[2].OutAwy != "" {
		t.Errorf("expected terminal waypoint with no outgoing airway, got %+v", r.Waypoints[2])
	}
}

func TestAppendDirectRoute(t *testing.T) {
	nd := mustLoadNavData(t)
	r := New(nd, nil)

	if f := r.Append("KBOS DCT KJFK", true, false, nil); f != nil {
		t.Fatalf("unexpected failure: %+v", f)
	}

	got := codes(r.Waypoints)
	want := []string{"KBOS", "KJFK"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
	if r.Waypoints[0].OutAwy != "" {
		t.Errorf("expected no airway across a DCT leg, got %+v", r.Waypoints[0])
	}
}

func TestAppendMissingWaypointFails(t *testing.T) {
	nd := mustLoadNavData(t)
	r := New(nd, nil)

	// NOPE is neither a known navaid nor a known airway; since it has a
	// waypoint on either side it's reported as an ambiguous
	// airway-or-waypoint failure rather than a bare unknown code.
	f := r.Append("KBOS NOPE KJFK", true, false, nil)
	if f == nil {
		t.Fatal("expected a failure for an unknown waypoint code")
	}
	if f.Code != "NOPE" || f.IsNavaid || f.Wp1 != "KBOS" || f.Wp2 != "KJFK" {
		t.Errorf("unexpected failure details: %+v", f)
	}
	if f.Remaining != "NOPE KJFK" {
		t.Errorf("expected remaining to start at the failing token, got %q", f.Remaining)
	}
}

func TestAppendMissingWaypointAtEndFails(t *testing.T) {
	nd := mustLoadNavData(t)
	r := New(nd, nil)

	// NOPE is the last token, so there's no room for it to be read as an
	// airway identifier: it's reported as a bare unknown navaid code.
	f := r.Append("KBOS NOPE", true, false, nil)
	if f == nil {
		t.Fatal("expected a failure for an unknown waypoint code")
	}
	if f.Code != "NOPE" || !f.IsNavaid || f.Wp1 != "" || f.Wp2 != "" {
		t.Errorf("unexpected failure details: %+v", f)
	}
}

func TestAppendMissingWaypointSkippedWhenOk(t *testing.T) {
	nd := mustLoadNavData(t)
	r := New(nd, nil)

	if f := r.Append("KBOS NOPE DCT KJFK", true, true, nil); f != nil {
		t.Fatalf("unexpected failure: %+v", f)
	}

	got := codes(r.Waypoints)
	want := []string{"KBOS", "KJFK"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAppendAmbiguousAirwayTokenFallsBackToWaypoint(t *testing.T) {
	// RIVRA and BOSOX are only joined by V1, not J121; referencing V1 from
	// KBOS should fail the airway lookup and fall through to treating V1
	// itself as an (unknown) waypoint code.
	nd := mustLoadNavData(t)
	r := New(nd, nil)

	f := r.Append("KBOS V1 ORW", true, false, nil)
	if f == nil {
		t.Fatal("expected a failure since V1 does not connect KBOS to ORW")
	}
	if f.Code != "V1" {
		t.Errorf("expected the failing token to be V1, got %+v", f)
	}
}

func TestAppendAmbiguousCodeBestGuessPicksNearest(t *testing.T) {
	// ABC is staged twice in the fixtures: once roughly 10 NM from KBOS,
	// once roughly 200 NM away. With bestGuess on, the nearer one wins.
	nd := mustLoadNavData(t)
	r := New(nd, nil)

	if f := r.Append("KBOS ABC", true, false, nil); f != nil {
		t.Fatalf("unexpected failure: %+v", f)
	}

	got := codes(r.Waypoints)
	want := []string{"KBOS", "ABC"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}

	candidates, ok := nd.Lookup("ABC")
	if !ok || len(candidates) != 2 {
		t.Fatalf("expected two ABC candidates in the fixture, got %+v", candidates)
	}
	nearer := candidates[0]
	if candidates[1].Coords.Lat < nearer.Coords.Lat {
		nearer = candidates[1]
	}
	if r.Waypoints[1].Coords != nearer.Coords {
		t.Errorf("expected the nearer ABC candidate %+v, got %+v", nearer.Coords, r.Waypoints[1].Coords)
	}
}

func TestAppendAmbiguousCodeFailsWithChoices(t *testing.T) {
	nd := mustLoadNavData(t)
	r := New(nd, nil)

	f := r.Append("KBOS ABC", false, false, nil)
	if f == nil {
		t.Fatal("expected a failure for an ambiguous code with bestGuess off")
	}
	if f.Code != "ABC" || len(f.Choices) != 2 {
		t.Fatalf("expected both ABC candidates in Choices, got %+v", f)
	}
}

func TestAppendResumesWithChoice(t *testing.T) {
	nd := mustLoadNavData(t)
	r := New(nd, nil)

	if f := r.Append("KBOS", true, false, nil); f != nil {
		t.Fatalf("unexpected failure: %+v", f)
	}

	picked := Waypoint{Code: "ORW", Coords: navdata.Coordinate{Lat: 1, Lon: 2}}
	if f := r.Append("ORW KJFK", true, false, &picked); f != nil {
		t.Fatalf("unexpected failure resuming with a choice: %+v", f)
	}

	got := codes(r.Waypoints)
	want := []string{"KBOS", "ORW", "KJFK"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}
