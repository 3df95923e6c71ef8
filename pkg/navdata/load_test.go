// pkg/navdata/load_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdata

import "testing"

func mustLoad(t *testing.T) *NavData {
	t.Helper()
	nd, err := Load("testdata", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return nd
}

func TestLoadNavaids(t *testing.T) {
	nd := mustLoad(t)

	for _, code := range []string{"RIVRA", "BOSOX", "ORW", "HY", "KBOS", "KJFK"} {
		if _, ok := nd.Lookup(code); !ok {
			t.Errorf("expected navaid %s to be loaded", code)
		}
	}

	vors, ok := nd.Lookup("ORW")
	if !ok || len(vors) != 1 {
		t.Fatalf("expected exactly one ORW navaid, got %v", vors)
	}
	if vors[0].Kind != KindVOR {
		t.Errorf("expected ORW to be a VOR, got %v", vors[0].Kind)
	}

	airports, ok := nd.Lookup("KBOS")
	if !ok || len(airports) != 1 {
		t.Fatalf("expected exactly one KBOS navaid, got %v", airports)
	}
	if airports[0].Kind != KindAirport {
		t.Errorf("expected KBOS to be an airport, got %v", airports[0].Kind)
	}
	if airports[0].Coords.Lat != 42.3643 || airports[0].Coords.Lon != -71.0052 {
		t.Errorf("expected KBOS centroid of identical runway ends, got %+v", airports[0].Coords)
	}
}

func TestAssembleAirwayJoinsSegments(t *testing.T) {
	nd := mustLoad(t)

	aws, ok := nd.Airways["J121"]
	if !ok || len(aws) != 1 {
		t.Fatalf("expected one assembled J121 airway, got %v", aws)
	}
	if len(aws[0].Points) != 3 {
		t.Fatalf("expected 3 points in assembled J121, got %d", len(aws[0].Points))
	}

	codes := map[string]bool{}
	for _, p := range aws[0].Points {
		codes[p.Code] = true
	}
	for _, code := range []string{"KBOS", "ORW", "KJFK"} {
		if !codes[code] {
			t.Errorf("expected J121 to include %s, got %+v", code, aws[0].Points)
		}
	}

	// Exactly one point (the last in traversal order) has no outgoing edge.
	terminal := 0
	for _, p := range aws[0].Points {
		if !p.HasNext {
			terminal++
		}
	}
	if terminal != 1 {
		t.Errorf("expected exactly one terminal point, got %d", terminal)
	}
}

func TestFindAirwayBothDirections(t *testing.T) {
	nd := mustLoad(t)
	kbos, _ := nd.Lookup("KBOS")
	kjfk, _ := nd.Lookup("KJFK")

	fwd, aw, ok := nd.FindAirway("J121", kbos[0], "KJFK")
	if !ok {
		t.Fatalf("expected to find J121 from KBOS to KJFK")
	}
	if aw.Ident != "J121" {
		t.Errorf("expected airway ident J121, got %s", aw.Ident)
	}
	if len(fwd) != 2 || fwd[0].Code != "ORW" || fwd[1].Code != "KJFK" {
		t.Fatalf("expected [ORW, KJFK], got %+v", fwd)
	}
	if !fwd[0].HasNext || fwd[1].HasNext {
		t.Errorf("expected only the final point to have HasNext == false: %+v", fwd)
	}

	rev, _, ok := nd.FindAirway("J121", kjfk[0], "KBOS")
	if !ok {
		t.Fatalf("expected to find J121 from KJFK to KBOS")
	}
	if len(rev) != 2 || rev[0].Code != "ORW" || rev[1].Code != "KBOS" {
		t.Fatalf("expected [ORW, KBOS] traversing the other way, got %+v", rev)
	}
}

func TestFindAirwayUnknownIdent(t *testing.T) {
	nd := mustLoad(t)
	kbos, _ := nd.Lookup("KBOS")
	if _, _, ok := nd.FindAirway("Q999", kbos[0], "KJFK"); ok {
		t.Errorf("expected no match for an unknown airway identifier")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist", nil); err == nil {
		t.Error("expected an error loading a nonexistent directory")
	}
}
