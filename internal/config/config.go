// This file is part of ngaro - https://github.com/db47h/ngaro
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config is the TOML-backed runtime configuration for cmd/sl,
// grounded on lookbusy1344-arm_emulator/config/config.go's nested-
// struct-with-toml-tags-plus-Default-constructor pattern.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the top-level runtime configuration (spec §6.4, SPEC_FULL
// ambient stack).
type Config struct {
	Stdlib StdlibConfig `toml:"stdlib"`
	Pool   PoolConfig   `toml:"pool"`
	Trace  TraceConfig  `toml:"trace"`
}

// StdlibConfig controls preloading of the bundled standard library
// (spec §6.4).
type StdlibConfig struct {
	Path string `toml:"path"`
	Skip bool   `toml:"skip"`
}

// PoolConfig sizes the value arena (spec §5's free-list allocator).
type PoolConfig struct {
	InitialCells int `toml:"initial_cells"`
	GrowCells    int `toml:"grow_cells"`
}

// TraceConfig names the symbols whose calls are traced by default
// (internal/trace).
type TraceConfig struct {
	Names []string `toml:"names"`
}

// Default returns the configuration cmd/sl runs with absent a
// --config flag.
func Default() *Config {
	return &Config{
		Stdlib: StdlibConfig{
			Path: "/usr/local/lib/sl/stdlib.lisp",
			Skip: false,
		},
		Pool: PoolConfig{
			InitialCells: 4096,
			GrowCells:    4096,
		},
		Trace: TraceConfig{
			Names: nil,
		},
	}
}

// Load reads and decodes the TOML file at path over Default(). A
// missing file is not an error: Default() is returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %q", path)
	}
	return cfg, nil
}
