// pkg/navcache/navcache.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package navcache saves and restores a parsed navdata index as a single
// zstd-compressed gob file, so that a long-running tool doesn't have to
// re-parse the X-Plane data files on every startup.
package navcache

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/ifrnav/xpnav/pkg/navdata"
)

// Save writes nd to path as a zstd-compressed gob stream.
func Save(path string, nd *navdata.NavData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("navcache: %w", err)
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("navcache: %w", err)
	}
	defer zw.Close()

	if err := gob.NewEncoder(zw).Encode(nd); err != nil {
		return fmt.Errorf("navcache: %w", err)
	}
	return nil
}

// Load reads a navdata index previously written by Save.
func Load(path string) (*navdata.NavData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("navcache: %w", err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("navcache: %w", err)
	}
	defer zr.Close()

	var nd navdata.NavData
	if err := gob.NewDecoder(zr).Decode(&nd); err != nil {
		return nil, fmt.Errorf("navcache: %w", err)
	}
	return &nd, nil
}
