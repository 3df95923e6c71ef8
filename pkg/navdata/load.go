// pkg/navdata/load.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdata

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ifrnav/xpnav/pkg/log"
)

// Load reads earth_awy.dat, earth_fix.dat, earth_nav.dat, and apt.dat from
// dir and returns the fully assembled, immutable navdata index. Loading is
// all-or-nothing: the first malformed line or missing file aborts the load
// and returns a *LoadError. logger may be nil.
func Load(dir string, logger *log.Logger) (*NavData, error) {
	start := time.Now()

	files := map[string]fileKind{
		"earth_awy.dat": kindAwy,
		"earth_fix.dat": kindFix,
		"earth_nav.dat": kindNav,
		"apt.dat":       kindApt,
	}

	for name := range files {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			return nil, fileErr(name, ErrMissingFile)
		}
		if info.IsDir() {
			return nil, fileErr(name, ErrNotAFile)
		}
	}

	nd := newNavData()
	rawSegments := make(map[string][]rawAirwaySegment)

	order := []string{"earth_awy.dat", "earth_fix.dat", "earth_nav.dat", "apt.dat"}
	for _, name := range order {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			return nil, fileErr(name, err)
		}

		switch files[name] {
		case kindAwy:
			err = parseAwyFile(f, rawSegments)
		case kindFix:
			err = parseFixFile(f, nd)
		case kindNav:
			err = parseNavFile(f, nd)
		case kindApt:
			err = parseAptFile(f, nd)
		}
		f.Close()

		if err != nil {
			return nil, err
		}
		logger.Debug("parsed navdata file", slog.String("file", name))
	}

	assembleAirways(rawSegments, nd)
	nd.finalize()

	logger.Info("navdata load complete",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("navaid_codes", len(nd.Navaids)),
		slog.Int("airway_idents", len(nd.Airways)))

	return nd, nil
}
