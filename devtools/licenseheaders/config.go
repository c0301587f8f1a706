// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"go.astrophena.name/headers/header"
	"go.astrophena.name/headers/txtar"
)

const defaultConfigPath = ".licenseheaders.txtar"

type config struct {
	headerPath string
	fileTypes  header.Registry
	exclusions []string
}

func defaultConfig() *config {
	return &config{
		headerPath: header.DefaultHeaderPath,
		fileTypes:  header.DefaultRegistry(),
		exclusions: header.DefaultExclusions,
	}
}

// parseConfig reads the configuration archive at path. A missing archive
// yields the default configuration.
func parseConfig(path string) (*config, error) {
	cfg := defaultConfig()

	ar, err := txtar.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	for _, f := range ar.Files {
		switch f.Name {
		case "header_path":
			cfg.headerPath = strings.TrimSpace(string(f.Data))
			if cfg.headerPath == "" {
				return nil, fmt.Errorf("%s: header_path is empty", path)
			}
		case "file_types.json":
			var types map[string][]string
			if err := json.Unmarshal(f.Data, &types); err != nil {
				return nil, fmt.Errorf("%s: file_types.json: %w", path, err)
			}
			cfg.fileTypes = make(header.Registry, len(types))
			for ext, markers := range types {
				if !strings.HasPrefix(ext, ".") {
					return nil, fmt.Errorf("%s: file_types.json: extension %q must start with a dot", path, ext)
				}
				if len(markers) != 2 {
					return nil, fmt.Errorf("%s: file_types.json: %q needs an opening and a closing marker, got %d", path, ext, len(markers))
				}
				cfg.fileTypes[ext] = header.Markers{Open: markers[0], Close: markers[1]}
			}
		case "exclusions.json":
			var exclusions []string
			if err := json.Unmarshal(f.Data, &exclusions); err != nil {
				return nil, fmt.Errorf("%s: exclusions.json: %w", path, err)
			}
			cfg.exclusions = exclusions
		default:
			return nil, fmt.Errorf("%s: unknown file %q", path, f.Name)
		}
	}

	return cfg, nil
}
