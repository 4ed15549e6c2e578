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

//go:build experimental

package tsdiff

import "tsdiff.dev/tsdiff/internal/config"

// AnchoringHeuristic sets the anchoring-heuristic flag in the configuration. It cannot be combined
// with [Optimal].
//
// The Myers search in internal/myers does not read this flag, so setting it does not change the
// edit script [Diff] returns; the default TOO_EXPENSIVE heuristic still applies.
//
// It is only available in builds with the experimental build tag.
func AnchoringHeuristic() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.AnchoringHeuristic = true
		return config.AnchoringHeuristic
	}
}
