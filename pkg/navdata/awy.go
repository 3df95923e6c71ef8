// pkg/navdata/awy.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdata

import (
	"io"
	"strings"
)

// parseAwyFile reads earth_awy.dat. Each row describes one segment
// between two points and may be shared by several airway identifiers
// (joined with '-'); the segments are staged into rawSegments, keyed by
// identifier, for assembleAirways to join into ordered polylines.
func parseAwyFile(r io.Reader, rawSegments map[string][]rawAirwaySegment) error {
	const file = "earth_awy.dat"
	scanner := latin1Scanner(r)
	headerLines, err := readHeader(scanner, file, kindAwy)
	if err != nil {
		return err
	}

	lineNo := headerLines
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if line == "99" {
			return nil
		}

		fields := splitFields(line, 10)
		if err := expectFields(file, lineNo, fields, 10); err != nil {
			return err
		}

		lat1, err := parseFloat(file, lineNo, fields[1])
		if err != nil {
			return err
		}
		lon1, err := parseFloat(file, lineNo, fields[2])
		if err != nil {
			return err
		}
		lat2, err := parseFloat(file, lineNo, fields[4])
		if err != nil {
			return err
		}
		lon2, err := parseFloat(file, lineNo, fields[5])
		if err != nil {
			return err
		}

		var high bool
		switch fields[6] {
		case "1":
			high = false
		case "2":
			high = true
		default:
			return lineErr(file, lineNo, ErrBadAirwayLevel)
		}

		base, err := parseInt(file, lineNo, fields[7])
		if err != nil {
			return err
		}
		top, err := parseInt(file, lineNo, fields[8])
		if err != nil {
			return err
		}

		seg := rawAirwaySegment{
			High: high,
			Base: base,
			Top:  top,
			P1:   airwayEndpoint{Code: fields[0], Coords: Coordinate{Lat: lat1, Lon: lon1}},
			P2:   airwayEndpoint{Code: fields[3], Coords: Coordinate{Lat: lat2, Lon: lon2}},
		}

		for _, ident := range strings.Split(fields[9], "-") {
			rawSegments[ident] = append(rawSegments[ident], seg)
		}
	}

	if err := scanner.Err(); err != nil {
		return fileErr(file, err)
	}
	return nil
}
