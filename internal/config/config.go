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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// tsdiff.Option.
package config

// Config collects all configurable parameters for the comparison functions in this module.
type Config struct {
	// Context is the number of matching tokens to include as a prefix and postfix for hunks.
	Context int

	// If set, comparison functions try to find an optimal edit script irrespective of cost. By
	// default, the comparison functions in this package limit the cost for large inputs with many
	// differences by applying heuristics that reduce the time complexity.
	Optimal bool

	// AnchoringHeuristic records whether the anchoring heuristic was requested. internal/myers does
	// not read it: the search runs the same way whether it is set or not.
	AnchoringHeuristic bool
}

// Default is the default configuration.
var Default = Config{
	Context:            3,
	Optimal:            false,
	AnchoringHeuristic: false,
}

// Flag describes a single config entry. This is used to detect options being set that are not
// allowed in the context they're used in.
type Flag int

const (
	Context Flag = 1 << iota
	Optimal
	AnchoringHeuristic
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.Optimal && cfg.AnchoringHeuristic {
		panic("Options tsdiff.Optimal and tsdiff.AnchoringHeuristic cannot be set at the same time")
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "tsdiff.Context"
	case Optimal:
		return "tsdiff.Optimal"
	case AnchoringHeuristic:
		return "tsdiff.AnchoringHeuristic"
	default:
		panic("never reached")
	}
}
