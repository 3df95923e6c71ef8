// pkg/navcache/navcache_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navcache

import (
	"path/filepath"
	"testing"

	"github.com/ifrnav/xpnav/pkg/navdata"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	nd, err := navdata.Load("../navdata/testdata", nil)
	if err != nil {
		t.Fatalf("navdata.Load: %v", err)
	}

	path := filepath.Join(t.TempDir(), "xpnav.cache")
	if err := Save(path, nd); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(got.Navaids) != len(nd.Navaids) {
		t.Errorf("got %d navaid codes, want %d", len(got.Navaids), len(nd.Navaids))
	}
	if len(got.Airways) != len(nd.Airways) {
		t.Errorf("got %d airway idents, want %d", len(got.Airways), len(nd.Airways))
	}

	wantCodes := nd.Codes()
	gotCodes := got.Codes()
	if len(gotCodes) != len(wantCodes) {
		t.Fatalf("got %v, want %v", gotCodes, wantCodes)
	}
	for i := range wantCodes {
		if gotCodes[i] != wantCodes[i] {
			t.Errorf("code order mismatch at %d: got %s, want %s", i, gotCodes[i], wantCodes[i])
			break
		}
	}

	orw, ok := got.Lookup("ORW")
	if !ok || len(orw) != 1 || orw[0].Kind != navdata.KindVOR {
		t.Errorf("expected ORW to round-trip as a single VOR, got %+v", orw)
	}
}
