// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// cliConfig is the shape of the YAML config file accepted via --config. It is distinct from
// internal/config.Config: this one describes ambient CLI behavior (renderer choice, fallback
// command, kind filters), the comparison engine's own options are derived from it at call sites.
type cliConfig struct {
	// Renderer is the default renderer tag, overridden by --renderer.
	Renderer string `yaml:"renderer"`

	// Context is the number of matching tokens of context to keep around each hunk.
	Context int `yaml:"context"`

	// Optimal disables the TOO_EXPENSIVE heuristic, trading runtime for a minimal edit script.
	Optimal bool `yaml:"optimal"`

	// ExcludeKinds and IncludeKinds mirror flatten.Options; exclusion wins on conflict.
	ExcludeKinds []string `yaml:"exclude_kinds"`
	IncludeKinds []string `yaml:"include_kinds"`

	// FallbackCmd, if set, is spawned with (old, new) as arguments whenever the input files'
	// language can't be resolved to a statically linked grammar.
	FallbackCmd []string `yaml:"fallback_cmd"`

	// Color forces color on or off; nil means auto-detect from the output terminal.
	Color *bool `yaml:"color"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		Renderer: "unified",
		Context:  3,
	}
}

// defaultConfigPath returns the XDG-style default location for tsdiff's config file:
// $XDG_CONFIG_HOME/tsdiff/config.yaml, falling back to $HOME/.config/tsdiff/config.yaml.
func defaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tsdiff", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tsdiff", "config.yaml")
}

// loadConfig reads and parses the config file at path.
//
// An absent or unreadable file at the default path is not an error: it falls back to
// defaultConfig() with a warning logged via slog. A file that exists but fails to parse as YAML is
// always a hard error, because the user asked for it either explicitly (--config) or it exists at
// the default location and is presumably intentional.
func loadConfig(path string, explicit bool) (cliConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return cliConfig{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		slog.Warn("could not read config file, using defaults", "path", path, "error", err)
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cliConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func toSet(kinds []string) map[string]bool {
	if len(kinds) == 0 {
		return nil
	}
	set := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return set
}
