// pkg/navdata/fix.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdata

import (
	"io"
	"strings"
)

// parseFixFile reads earth_fix.dat: blank lines are skipped, "99" ends the
// file, and every other row is "<lat> <lon> <code>".
func parseFixFile(r io.Reader, nd *NavData) error {
	const file = "earth_fix.dat"
	scanner := latin1Scanner(r)
	headerLines, err := readHeader(scanner, file, kindFix)
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

		fields := splitFields(line, 3)
		if err := expectFields(file, lineNo, fields, 3); err != nil {
			return err
		}

		lat, err := parseFloat(file, lineNo, fields[0])
		if err != nil {
			return err
		}
		lon, err := parseFloat(file, lineNo, fields[1])
		if err != nil {
			return err
		}

		nd.addNavaid(Navaid{
			Kind:   KindFix,
			Code:   fields[2],
			Coords: Coordinate{Lat: lat, Lon: lon},
		})
	}

	if err := scanner.Err(); err != nil {
		return fileErr(file, err)
	}
	return nil
}
