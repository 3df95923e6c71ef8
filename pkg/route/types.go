// pkg/route/types.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import "github.com/ifrnav/xpnav/pkg/navdata"

// Waypoint is one point along a resolved route: a code and coordinate,
// annotated with the airway (if any) it was entered and departed on.
// InAwy and OutAwy are empty when the waypoint was reached or left
// direct.
type Waypoint struct {
	Code   string
	Coords navdata.Coordinate
	InAwy  string
	OutAwy string
}

// RouteFailure describes why Append could not fully resolve a route. It
// is a plain data value, not an error: the caller is expected to inspect
// it, possibly prompt for a disambiguating Choice, and retry rather than
// propagate it up a call stack.
type RouteFailure struct {
	// Remaining is the unparsed suffix of the route, starting at the
	// token that could not be resolved.
	Remaining string

	// IsNavaid is true if the failing token was expected to be a
	// waypoint only; false if it could also have been interpreted as an
	// airway identifier (in which case Wp1/Wp2 name the airway's
	// would-be entry and exit points).
	IsNavaid bool

	Code    string
	Choices []navdata.Navaid
	Wp1     string
	Wp2     string
}
