// pkg/navdata/assemble.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdata

// assembleAirways turns the bag of unordered segments staged per
// identifier into one or more ordered Airway polylines. Segments are
// consumed destructively from rawSegments.
//
// For each identifier, an arbitrary segment seeds a new airway, and the
// remaining segments for that identifier are repeatedly scanned for one
// that shares an endpoint (by code and coordinate) and altitude class
// with either end of the airway built so far: first extending forward
// from the tail, then, once no more segments extend the tail, extending
// backward from the head. When neither direction finds a match the
// airway is complete and a new one is seeded from whatever segments
// remain, so a single identifier can end up split across several
// disconnected (or differently classed) Airway values.
func assembleAirways(rawSegments map[string][]rawAirwaySegment, nd *NavData) {
	for ident, segments := range rawSegments {
		for len(segments) != 0 {
			seed := segments[0]
			segments = segments[1:]

			points := []AirwayPoint{
				{Code: seed.P1.Code, Coords: seed.P1.Coords, Base: seed.Base, Top: seed.Top, HasNext: true},
				{Code: seed.P2.Code, Coords: seed.P2.Coords},
			}
			high := seed.High

			for {
				if idx, endpoint := findJoiningSegment(segments, high, points[len(points)-1]); idx >= 0 {
					points[len(points)-1].Base = segments[idx].Base
					points[len(points)-1].Top = segments[idx].Top
					points[len(points)-1].HasNext = true
					points = append(points, AirwayPoint{Code: endpoint.Code, Coords: endpoint.Coords})
					segments = removeSegment(segments, idx)
					continue
				}

				if idx, endpoint := findJoiningSegment(segments, high, points[0]); idx >= 0 {
					newHead := AirwayPoint{
						Code: endpoint.Code, Coords: endpoint.Coords,
						Base: segments[idx].Base, Top: segments[idx].Top, HasNext: true,
					}
					points = append([]AirwayPoint{newHead}, points...)
					segments = removeSegment(segments, idx)
					continue
				}

				break
			}

			nd.Airways[ident] = append(nd.Airways[ident], Airway{
				Ident:  ident,
				High:   high,
				Points: points,
			})
		}
		delete(rawSegments, ident)
	}
}

// findJoiningSegment scans segments for the first one, matching the given
// altitude class, whose endpoint equals at, returning the index of that
// segment and the endpoint on its far side.
func findJoiningSegment(segments []rawAirwaySegment, high bool, at AirwayPoint) (int, airwayEndpoint) {
	for i, seg := range segments {
		if seg.High != high {
			continue
		}
		if endpointEquals(seg.P1, at) {
			return i, seg.P2
		}
		if endpointEquals(seg.P2, at) {
			return i, seg.P1
		}
	}
	return -1, airwayEndpoint{}
}

func endpointEquals(e airwayEndpoint, p AirwayPoint) bool {
	return e.Code == p.Code && e.Coords == p.Coords
}

func removeSegment(segments []rawAirwaySegment, i int) []rawAirwaySegment {
	return append(segments[:i], segments[i+1:]...)
}
