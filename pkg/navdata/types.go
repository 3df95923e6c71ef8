// pkg/navdata/types.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdata

import "github.com/iancoleman/orderedmap"

// Coordinate is a point on the Earth expressed in decimal degrees. No
// wraparound normalization is applied; values come straight from the
// source text.
type Coordinate struct {
	Lat, Lon float64
}

// Kind discriminates the five record types a navdata index carries.
type Kind int

const (
	KindFix Kind = iota
	KindNDB
	KindVOR
	KindDME
	KindAirport
)

func (k Kind) String() string {
	switch k {
	case KindFix:
		return "fix"
	case KindNDB:
		return "ndb"
	case KindVOR:
		return "vor"
	case KindDME:
		return "dme"
	case KindAirport:
		return "airport"
	default:
		return "unknown"
	}
}

// Navaid is a single record from one of the four navdata files: a fix, an
// NDB, a VOR, a DME, or an airport. Only the fields relevant to Kind are
// populated; the rest are left at their zero value.
type Navaid struct {
	Kind   Kind
	Code   string
	Coords Coordinate

	// ndb, vor, dme (Name and Elevation also for airports)
	Name      string
	Elevation int
	Frequency int
	Range     int

	// vor only
	SlavedVariation float64

	// dme only
	DMEBias float64
}

// AirwayPoint is one point along an assembled airway. Base and Top
// describe the outgoing edge toward the next point; HasNext is false for
// the last point in the polyline, at which point Base and Top are
// meaningless.
type AirwayPoint struct {
	Code    string
	Coords  Coordinate
	Base    int
	Top     int
	HasNext bool
}

// Airway is a fully assembled, ordered polyline sharing one identifier and
// altitude classification. A single identifier may be represented by
// several disconnected Airway values when its segments don't all join
// into one polyline, or when high- and low-altitude segments diverge.
type Airway struct {
	Ident  string
	High   bool
	Points []AirwayPoint
}

// rawAirwaySegment is the bag-of-segments intermediate representation
// produced while reading earth_awy.dat, before assembly joins segments
// sharing an identifier into ordered Airways.
type rawAirwaySegment struct {
	High   bool
	Base   int
	Top    int
	P1, P2 airwayEndpoint
}

type airwayEndpoint struct {
	Code   string
	Coords Coordinate
}

// NavData is the immutable, fully loaded navigation database index: every
// navaid keyed by its (non-unique) identifier code, and every assembled
// airway keyed by its (also non-unique) identifier.
type NavData struct {
	Navaids map[string][]Navaid
	Airways map[string][]Airway

	// CodeOrder is the exported snapshot of codeOrder's key order, filled
	// in once loading completes. It's what survives a navcache
	// round-trip, since gob only carries exported fields and an
	// *orderedmap.OrderedMap doesn't reconstruct itself from one anyway.
	CodeOrder []string

	// codeOrder records the order in which navaid codes were first seen
	// across the source files, so that summaries and dumps of the index
	// are reproducible between runs rather than at the mercy of Go's
	// randomized map iteration. Only populated while actively parsing;
	// nil on a NavData restored from a cache file (Codes falls back to
	// CodeOrder in that case).
	codeOrder *orderedmap.OrderedMap
}

func newNavData() *NavData {
	return &NavData{
		Navaids:   make(map[string][]Navaid),
		Airways:   make(map[string][]Airway),
		codeOrder: orderedmap.New(),
	}
}

func (nd *NavData) addNavaid(n Navaid) {
	if _, ok := nd.Navaids[n.Code]; !ok {
		nd.codeOrder.Set(n.Code, len(nd.Navaids))
	}
	nd.Navaids[n.Code] = append(nd.Navaids[n.Code], n)
}

// Lookup returns every navaid known under the given code, in the order
// they were read from the source files.
func (nd *NavData) Lookup(code string) ([]Navaid, bool) {
	n, ok := nd.Navaids[code]
	return n, ok
}

// Codes returns every distinct navaid code in the order it was first
// encountered while loading.
func (nd *NavData) Codes() []string {
	if nd.codeOrder == nil {
		out := make([]string, len(nd.CodeOrder))
		copy(out, nd.CodeOrder)
		return out
	}
	keys := nd.codeOrder.Keys()
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// finalize snapshots codeOrder into the exported CodeOrder field so that
// code ordering survives a navcache round-trip. Called once loading
// completes.
func (nd *NavData) finalize() {
	nd.CodeOrder = nd.Codes()
}

// FindAirway searches every Airway segment stored under ident for one
// whose polyline contains both src.Code and destCode, and returns the
// ordered sequence of points strictly after src up to and including dest.
// The direction of traversal (which end of the stored polyline is nearer
// src) is resolved purely from index position, so the result is the same
// regardless of which orientation the polyline happened to be assembled
// in.
func (nd *NavData) FindAirway(ident string, src Navaid, destCode string) ([]AirwayPoint, *Airway, bool) {
	candidates, ok := nd.Airways[ident]
	if !ok {
		return nil, nil, false
	}

	for i := range candidates {
		aw := &candidates[i]
		srcIdx := indexOfCode(aw.Points, src.Code)
		destIdx := indexOfCode(aw.Points, destCode)
		if srcIdx < 0 || destIdx < 0 || srcIdx == destIdx {
			continue
		}

		step := 1
		if destIdx < srcIdx {
			step = -1
		}

		var out []AirwayPoint
		for j := srcIdx + step; ; j += step {
			p := aw.Points[j]
			p.HasNext = j != destIdx
			out = append(out, p)
			if j == destIdx {
				break
			}
		}
		return out, aw, true
	}

	return nil, nil, false
}

func indexOfCode(points []AirwayPoint, code string) int {
	for i, p := range points {
		if p.Code == code {
			return i
		}
	}
	return -1
}
