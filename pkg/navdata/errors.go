// pkg/navdata/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdata

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFile         = errors.New("required navdata file is missing")
	ErrNotAFile            = errors.New("expected a regular file")
	ErrBadOriginCode       = errors.New("invalid origin code")
	ErrBadVersion          = errors.New("invalid or unsupported version line")
	ErrBadHeaderBlank      = errors.New("expected blank third header line")
	ErrBadRowCode          = errors.New("unrecognised row code")
	ErrFieldCount          = errors.New("incorrect number of fields")
	ErrBadAirwayLevel      = errors.New("invalid airway level code")
	ErrRunwayBeforeAirport = errors.New("runway or helipad record before any airport header")
)

// LoadError is returned for any failure encountered while parsing a
// navdata file. Line is 0 when the failure isn't tied to a specific line
// (e.g. a missing file).
type LoadError struct {
	File string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func lineErr(file string, line int, err error) error {
	return &LoadError{File: file, Line: line, Err: err}
}

func fileErr(file string, err error) error {
	return &LoadError{File: file, Err: err}
}
