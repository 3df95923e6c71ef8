// pkg/navdata/parser.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdata

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var reVersionLine = regexp.MustCompile(`^([0-9]+)\s?Version`)

// fileKind identifies which of the four X-Plane navdata files is being
// parsed; each has its own header version and row grammar.
type fileKind int

const (
	kindAwy fileKind = iota
	kindFix
	kindNav
	kindApt
)

var kindVersion = map[fileKind]string{
	kindAwy: "640",
	kindFix: "600",
	kindNav: "810",
	kindApt: "850",
}

// latin1Scanner returns a *bufio.Scanner over r decoded from ISO-8859-1
// (Latin-1), the encoding X-Plane navdata files are distributed in.
func latin1Scanner(r io.Reader) *bufio.Scanner {
	return bufio.NewScanner(newLatin1Reader(r))
}

// readHeader validates the mandatory three-line header common to all four
// file kinds: an origin code ('I' or 'A'), a version line matching "<n>
// Version ...", and an empty third line. It returns the number of header
// lines consumed, or an error if the header is malformed.
func readHeader(scanner *bufio.Scanner, file string, kind fileKind) (int, error) {
	line := 0

	if !scanner.Scan() {
		return line, lineErr(file, line+1, ErrBadOriginCode)
	}
	line++
	origin := strings.TrimRight(scanner.Text(), "\r")
	if origin != "I" && origin != "A" {
		return line, lineErr(file, line, ErrBadOriginCode)
	}

	if !scanner.Scan() {
		return line, lineErr(file, line+1, ErrBadVersion)
	}
	line++
	versionLine := strings.TrimRight(scanner.Text(), "\r")
	m := reVersionLine.FindStringSubmatch(versionLine)
	if m == nil || m[1] != kindVersion[kind] {
		return line, lineErr(file, line, ErrBadVersion)
	}

	if !scanner.Scan() {
		return line, lineErr(file, line+1, ErrBadHeaderBlank)
	}
	line++
	if strings.TrimRight(scanner.Text(), "\r") != "" {
		return line, lineErr(file, line, ErrBadHeaderBlank)
	}

	return line, nil
}

func parseFloat(file string, lineNo int, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, lineErr(file, lineNo, err)
	}
	return v, nil
}

func parseInt(file string, lineNo int, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, lineErr(file, lineNo, err)
	}
	return v, nil
}

func expectFields(file string, lineNo int, fields []string, n int) error {
	if len(fields) != n {
		return lineErr(file, lineNo, ErrFieldCount)
	}
	return nil
}

// splitFields splits a row into at most maxFields whitespace-separated
// fields, leaving any remaining text (e.g. a free-form navaid name)
// unsplit in the final field. This mirrors Python's str.split(None, n)
// behavior that the source format's fixed-field-count-plus-trailing-name
// rows rely on.
func splitFields(line string, maxFields int) []string {
	var fields []string
	rest := line
	for len(fields) < maxFields-1 {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			return fields
		}
		idx := strings.IndexAny(rest, " \t")
		if idx < 0 {
			return append(fields, rest)
		}
		fields = append(fields, rest[:idx])
		rest = rest[idx+1:]
	}
	rest = strings.TrimLeft(rest, " \t")
	if rest != "" {
		fields = append(fields, rest)
	}
	return fields
}
