// pkg/navdata/nav.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdata

import (
	"io"
	"regexp"
	"strings"
)

var reRowCode = regexp.MustCompile(`^([0-9]+)\s?`)

// parseNavFile reads earth_nav.dat: NDBs (row code 2), VORs (3), and DMEs
// (12 and 13) are kept; rows 4-9 (ILS components, glideslopes, markers)
// are skipped as not relevant to route resolution; "99" ends the file.
func parseNavFile(r io.Reader, nd *NavData) error {
	const file = "earth_nav.dat"
	scanner := latin1Scanner(r)
	headerLines, err := readHeader(scanner, file, kindNav)
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

		m := reRowCode.FindStringSubmatch(line)
		if m == nil {
			return lineErr(file, lineNo, ErrBadRowCode)
		}
		code := m[1]

		switch code {
		case "2", "3", "12", "13":
			fields := splitFields(line, 9)
			if err := expectFields(file, lineNo, fields, 9); err != nil {
				return err
			}

			lat, err := parseFloat(file, lineNo, fields[1])
			if err != nil {
				return err
			}
			lon, err := parseFloat(file, lineNo, fields[2])
			if err != nil {
				return err
			}
			elevation, err := parseInt(file, lineNo, fields[3])
			if err != nil {
				return err
			}
			freq, err := parseInt(file, lineNo, fields[4])
			if err != nil {
				return err
			}
			recRange, err := parseInt(file, lineNo, fields[5])
			if err != nil {
				return err
			}

			n := Navaid{
				Code:      fields[7],
				Coords:    Coordinate{Lat: lat, Lon: lon},
				Elevation: elevation,
				Frequency: freq,
				Range:     recRange,
				Name:      fields[8],
			}

			switch code {
			case "2":
				n.Kind = KindNDB
			case "3":
				n.Kind = KindVOR
				sVar, err := parseFloat(file, lineNo, fields[6])
				if err != nil {
					return err
				}
				n.SlavedVariation = sVar
			case "12", "13":
				n.Kind = KindDME
				bias, err := parseFloat(file, lineNo, fields[6])
				if err != nil {
					return err
				}
				n.DMEBias = bias
			}

			nd.addNavaid(n)

		case "99":
			return nil

		case "4", "5", "6", "7", "8", "9":
			// ILS localizers, glideslopes, and markers: out of scope.
			continue

		default:
			return lineErr(file, lineNo, ErrBadRowCode)
		}
	}

	if err := scanner.Err(); err != nil {
		return fileErr(file, err)
	}
	return nil
}
