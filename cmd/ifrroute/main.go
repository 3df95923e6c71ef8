// cmd/ifrroute/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// ifrroute resolves one or more IFR route strings against an X-Plane
// navdata index, printing the resolved waypoint sequence or a dump of
// whatever ambiguity or unknown code stopped resolution.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/ifrnav/xpnav/pkg/log"
	"github.com/ifrnav/xpnav/pkg/navcache"
	"github.com/ifrnav/xpnav/pkg/navdata"
	"github.com/ifrnav/xpnav/pkg/route"
	"github.com/ifrnav/xpnav/pkg/util"
)

func errorExit(msg string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func main() {
	navdataDir := flag.String("navdata", "", "X-Plane navdata directory (earth_fix.dat, earth_nav.dat, earth_awy.dat, apt.dat)")
	cacheFile := flag.String("cache", "", "navcache file to load instead of -navdata, or to write after parsing -navdata")
	batchFile := flag.String("batch", "", "JSON file containing an array of route strings to resolve instead of the command line")
	bestGuess := flag.Bool("bestguess", true, "resolve ambiguous codes to the nearest candidate instead of failing")
	missingOk := flag.Bool("missingok", false, "silently skip unrecognised waypoint codes instead of failing")
	logLevel := flag.String("loglevel", "warn", "logging level: debug, info, warn, error")
	flag.Parse()

	if *navdataDir == "" && *cacheFile == "" {
		fmt.Printf("usage: ifrroute -navdata dir | -cache file [-batch routes.json] [route...]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	lg := log.New(*logLevel, "")

	nd, err := loadIndex(*navdataDir, *cacheFile, lg)
	errorExit("loading navdata", err)

	routes := flag.Args()
	if *batchFile != "" {
		routes, err = loadBatch(*batchFile)
		errorExit("loading batch routes", err)
	}

	if len(routes) == 0 {
		fmt.Printf("no routes given\n")
		os.Exit(1)
	}

	failed := false
	for _, rt := range routes {
		if !resolveAndPrint(nd, lg, rt, *bestGuess, *missingOk) {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

// loadIndex returns a navdata index from cacheFile if given, otherwise
// parses navdataDir; if both are given, it parses navdataDir and writes
// the result to cacheFile for next time.
func loadIndex(navdataDir, cacheFile string, lg *log.Logger) (*navdata.NavData, error) {
	if navdataDir == "" {
		return navcache.Load(cacheFile)
	}

	nd, err := navdata.Load(navdataDir, lg)
	if err != nil {
		return nil, err
	}

	if cacheFile != "" {
		if err := navcache.Save(cacheFile, nd); err != nil {
			return nil, fmt.Errorf("writing cache: %w", err)
		}
	}

	return nd, nil
}

func loadBatch(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var routes []string
	if err := util.UnmarshalJSON(f, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// resolveAndPrint resolves one route string and prints either the
// resolved waypoint codes, space-separated on one line, or a spew dump
// of the RouteFailure. It
// returns false if resolution failed.
func resolveAndPrint(nd *navdata.NavData, lg *log.Logger, rt string, bestGuess, missingOk bool) bool {
	r := route.New(nd, lg)
	if f := r.Append(rt, bestGuess, missingOk, nil); f != nil {
		fmt.Printf("%s: failed to resolve\n", rt)
		fmt.Println(spew.Sdump(f))
		return false
	}

	codes := make([]string, len(r.Waypoints))
	for i, wp := range r.Waypoints {
		codes[i] = wp.Code
	}
	fmt.Printf("%s: %s\n", rt, strings.Join(codes, " "))
	return true
}
