// pkg/route/resolve.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"sort"
	"strings"

	"github.com/ifrnav/xpnav/pkg/log"
	"github.com/ifrnav/xpnav/pkg/math"
	"github.com/ifrnav/xpnav/pkg/navdata"
)

// IfrRoute accumulates a resolved sequence of Waypoints built up by one or
// more calls to Append.
type IfrRoute struct {
	nd        *navdata.NavData
	logger    *log.Logger
	Waypoints []Waypoint
}

// New creates an empty route resolver against the given navdata index.
// logger may be nil.
func New(nd *navdata.NavData, logger *log.Logger) *IfrRoute {
	return &IfrRoute{nd: nd, logger: logger}
}

// NewFromRoute creates a route resolver and immediately appends route to
// it, making a best guess at any ambiguity (the nearest navaid, the first
// matching airway) rather than reporting a RouteFailure.
func NewFromRoute(nd *navdata.NavData, logger *log.Logger, route string) (*IfrRoute, *RouteFailure) {
	r := New(nd, logger)
	if f := r.Append(route, true, false, nil); f != nil {
		return r, f
	}
	return r, nil
}

// Append parses route (a whitespace-separated sequence of waypoint and
// airway identifiers, optionally interspersed with DCT/SID/STAR markers)
// and extends Waypoints with the result.
//
// If bestGuess is true, an ambiguous navaid code resolves to the
// geographically nearest candidate (to the last committed waypoint, or to
// (0,0) if no waypoint has been committed yet); when that token is also followed by
// an airway/waypoint pair, each candidate is tried against the airway
// lookup in distance order and the first one that matches wins, falling
// back to the nearest candidate if none do. If bestGuess is false, such
// an ambiguity is reported as a RouteFailure with Choices populated
// instead.
//
// If missingOk is true, a token that matches no known waypoint is
// silently skipped rather than reported as a RouteFailure.
//
// choice, if non-nil, is appended as the very next waypoint verbatim
// instead of being looked up; it's how a caller resumes a route after
// resolving a RouteFailure's Choices by hand.
func (r *IfrRoute) Append(route string, bestGuess, missingOk bool, choice *Waypoint) *RouteFailure {
	tokens := strings.Fields(strings.ToUpper(route))

	expectWaypoint, expectAirway, expectDirect := true, false, false

	var lastWaypoint *Waypoint
	if n := len(r.Waypoints); n > 0 {
		lastWaypoint = &r.Waypoints[n-1]
	}

	remaining := func(i int) string { return strings.Join(tokens[i:], " ") }

	for i := 0; i != len(tokens); i++ {
		tok := tokens[i]

		if expectDirect && i != len(tokens)-1 && (tok == "DCT" || tok == "SID" || tok == "STAR") {
			expectWaypoint, expectAirway, expectDirect = true, false, false
			continue
		}

		if expectAirway && lastWaypoint != nil && i != len(tokens)-1 {
			if pts, ok := r.findAirway(tok, *lastWaypoint, tokens[i+1]); ok {
				r.appendAirway(tok, pts)
				lastWaypoint = &r.Waypoints[len(r.Waypoints)-1]
				i += 2
				if i == len(tokens) {
					break
				}
				expectWaypoint, expectAirway, expectDirect = true, true, true
				i--
				continue
			}
		}

		if expectWaypoint {
			if choice != nil {
				r.Waypoints = append(r.Waypoints, *choice)
				lastWaypoint = &r.Waypoints[len(r.Waypoints)-1]
				choice = nil
				expectDirect, expectAirway = true, true
				continue
			}

			candidates, ok := r.nd.Lookup(tok)
			if !ok {
				if missingOk {
					expectDirect, expectAirway = true, true
					continue
				}
				isNavaid, wp1, wp2 := true, "", ""
				if expectAirway && lastWaypoint != nil && i != len(tokens)-1 {
					isNavaid, wp1, wp2 = false, tokens[i-1], tokens[i+1]
				}
				return &RouteFailure{
					Remaining: remaining(i),
					IsNavaid:  isNavaid,
					Code:      tok,
					Wp1:       wp1,
					Wp2:       wp2,
				}
			}

			standpoint := navdata.Coordinate{}
			if lastWaypoint != nil {
				standpoint = lastWaypoint.Coords
			}

			if bestGuess {
				sorted := sortByDistance(candidates, standpoint)

				haveRoom := i < len(tokens)-2
				committed := false
				if haveRoom {
					for _, cand := range sorted {
						if pts, ok := r.findAirway(tokens[i+1], navaidAsWaypoint(cand), tokens[i+2]); ok {
							r.commit(cand)
							r.appendAirway(tokens[i+1], pts)
							lastWaypoint = &r.Waypoints[len(r.Waypoints)-1]
							i += 2
							committed = true
							break
						}
					}
				}
				if !committed {
					r.commit(sorted[0])
					lastWaypoint = &r.Waypoints[len(r.Waypoints)-1]
				}
			} else {
				if len(candidates) > 1 {
					isNavaid, wp1, wp2 := true, "", ""
					if expectAirway && lastWaypoint != nil && i != len(tokens)-1 {
						isNavaid, wp1, wp2 = false, tokens[i-1], tokens[i+1]
					}
					return &RouteFailure{
						Remaining: remaining(i),
						IsNavaid:  isNavaid,
						Code:      tok,
						Choices:   candidates,
						Wp1:       wp1,
						Wp2:       wp2,
					}
				}
				r.commit(candidates[0])
				lastWaypoint = &r.Waypoints[len(r.Waypoints)-1]
			}

			expectDirect, expectAirway = true, true
		}
	}

	return nil
}

// commit appends n as a plain (non-airway-bounded) waypoint.
func (r *IfrRoute) commit(n navdata.Navaid) {
	r.Waypoints = append(r.Waypoints, Waypoint{Code: n.Code, Coords: n.Coords})
}

// appendAirway sets ident as the outgoing airway of the waypoint most
// recently appended to r.Waypoints, then appends pts as new waypoints
// entered (and, for all but the last, departed) on that airway.
func (r *IfrRoute) appendAirway(ident string, pts []navdata.AirwayPoint) {
	if n := len(r.Waypoints); n > 0 {
		r.Waypoints[n-1].OutAwy = ident
	}
	for _, p := range pts {
		wp := Waypoint{Code: p.Code, Coords: p.Coords, InAwy: ident}
		if p.HasNext {
			wp.OutAwy = ident
		}
		r.Waypoints = append(r.Waypoints, wp)
	}
}

func (r *IfrRoute) findAirway(ident string, src Waypoint, destCode string) ([]navdata.AirwayPoint, bool) {
	pts, _, ok := r.nd.FindAirway(ident, navdata.Navaid{Code: src.Code, Coords: src.Coords}, destCode)
	return pts, ok
}

func navaidAsWaypoint(n navdata.Navaid) Waypoint {
	return Waypoint{Code: n.Code, Coords: n.Coords}
}

// sortByDistance returns candidates ordered by increasing great-circle
// distance from standpoint.
func sortByDistance(candidates []navdata.Navaid, standpoint navdata.Coordinate) []navdata.Navaid {
	sorted := make([]navdata.Navaid, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(a, b int) bool {
		da := math.NMDistance(standpoint.Lat, standpoint.Lon, sorted[a].Coords.Lat, sorted[a].Coords.Lon)
		db := math.NMDistance(standpoint.Lat, standpoint.Lon, sorted[b].Coords.Lat, sorted[b].Coords.Lon)
		return da < db
	})
	return sorted
}
