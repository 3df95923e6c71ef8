// cmd/xpnavcache/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// xpnavcache parses an X-Plane navdata directory and writes a compressed
// cache file that cmd/ifrroute (or any other tool using pkg/navcache) can
// load without re-parsing the source files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ifrnav/xpnav/pkg/log"
	"github.com/ifrnav/xpnav/pkg/navcache"
	"github.com/ifrnav/xpnav/pkg/navdata"
)

func errorExit(msg string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func main() {
	logLevel := flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir := flag.String("logdir", "", "directory for log files (default xpnav-logs)")
	flag.Parse()

	if len(flag.Args()) != 2 {
		fmt.Printf("usage: xpnavcache [-loglevel level] [-logdir dir] <navdata directory> <cache filename>\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	lg := log.New(*logLevel, *logDir)

	navdataDir, cacheFile := flag.Args()[0], flag.Args()[1]

	nd, err := navdata.Load(navdataDir, lg)
	errorExit("loading navdata", err)

	err = navcache.Save(cacheFile, nd)
	errorExit("writing cache", err)

	fmt.Printf("wrote %s: %d navaid codes, %d airway identifiers\n", cacheFile, len(nd.Navaids), len(nd.Airways))
}
