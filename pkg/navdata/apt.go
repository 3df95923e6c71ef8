// pkg/navdata/apt.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdata

import (
	"io"
	"strings"
)

type aptInProgress struct {
	elevation int
	code      string
	name      string
	coords    []Coordinate
}

// parseAptFile reads apt.dat. It only looks at airport headers (row codes
// 1, 16, 17) and their runway/helipad rows (100, 101, 103); everything
// else (frequencies, taxiways, lighting, metadata) is skipped. X-Plane
// doesn't record an airport reference point directly, so the airport's
// coordinate is taken as the centroid of all its runway ends and helipads.
func parseAptFile(r io.Reader, nd *NavData) error {
	const file = "apt.dat"
	scanner := latin1Scanner(r)
	headerLines, err := readHeader(scanner, file, kindApt)
	if err != nil {
		return err
	}

	var airports []*aptInProgress

	lineNo := headerLines
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if line == "99" {
			break
		}

		rowCode := strings.SplitN(strings.TrimSpace(line), " ", 2)[0]
		switch rowCode {
		case "1", "16", "17":
			fields := splitFields(line, 6)
			if err := expectFields(file, lineNo, fields, 6); err != nil {
				return err
			}
			elevation, err := parseInt(file, lineNo, fields[1])
			if err != nil {
				return err
			}
			airports = append(airports, &aptInProgress{
				elevation: elevation,
				code:      fields[4],
				name:      fields[5],
			})

		case "100":
			if len(airports) == 0 {
				return lineErr(file, lineNo, ErrRunwayBeforeAirport)
			}
			fields := splitFields(line, 26)
			if err := expectFields(file, lineNo, fields, 26); err != nil {
				return err
			}
			c1, err := coordPair(file, lineNo, fields[9], fields[10])
			if err != nil {
				return err
			}
			c2, err := coordPair(file, lineNo, fields[18], fields[19])
			if err != nil {
				return err
			}
			ap := airports[len(airports)-1]
			ap.coords = append(ap.coords, c1, c2)

		case "101":
			if len(airports) == 0 {
				return lineErr(file, lineNo, ErrRunwayBeforeAirport)
			}
			fields := splitFields(line, 9)
			if err := expectFields(file, lineNo, fields, 9); err != nil {
				return err
			}
			c1, err := coordPair(file, lineNo, fields[4], fields[5])
			if err != nil {
				return err
			}
			c2, err := coordPair(file, lineNo, fields[7], fields[8])
			if err != nil {
				return err
			}
			ap := airports[len(airports)-1]
			ap.coords = append(ap.coords, c1, c2)

		case "103":
			if len(airports) == 0 {
				return lineErr(file, lineNo, ErrRunwayBeforeAirport)
			}
			fields := splitFields(line, 12)
			if err := expectFields(file, lineNo, fields, 12); err != nil {
				return err
			}
			c, err := coordPair(file, lineNo, fields[2], fields[3])
			if err != nil {
				return err
			}
			ap := airports[len(airports)-1]
			ap.coords = append(ap.coords, c)

		default:
			continue
		}
	}

	if err := scanner.Err(); err != nil {
		return fileErr(file, err)
	}

	for _, ap := range airports {
		if len(ap.coords) == 0 {
			continue
		}
		var lat, lon float64
		for _, c := range ap.coords {
			lat += c.Lat
			lon += c.Lon
		}
		n := float64(len(ap.coords))
		nd.addNavaid(Navaid{
			Kind:      KindAirport,
			Code:      ap.code,
			Coords:    Coordinate{Lat: lat / n, Lon: lon / n},
			Elevation: ap.elevation,
			Name:      ap.name,
		})
	}

	return nil
}

func coordPair(file string, lineNo int, latStr, lonStr string) (Coordinate, error) {
	lat, err := parseFloat(file, lineNo, latStr)
	if err != nil {
		return Coordinate{}, err
	}
	lon, err := parseFloat(file, lineNo, lonStr)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}
