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

package tsdiff

import "tsdiff.dev/tsdiff/internal/config"

// Option configures the behavior of the comparison functions in this package.
type Option = config.Option

// Context sets the number of matching tokens to include as a prefix and postfix around hunks
// returned by [Assemble]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Optimal finds an optimal edit script irrespective of cost. By default, [Diff] limits the cost
// for large inputs with many differences by applying a heuristic that reduces time complexity at
// the expense of finding a slightly longer edit script.
//
// With this option, the runtime is O(ND) where N = len(x.Tokens) + len(y.Tokens), and D is the
// number of differences between x and y.
func Optimal() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Optimal = true
		return config.Optimal
	}
}
