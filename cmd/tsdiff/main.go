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

// Command tsdiff compares the concrete syntax trees of two source files and prints a structural
// diff.
//
// tsdiff has no global allocator override: nothing in its dependency tree exercises one, and Go
// doesn't expose a pluggable allocator the way some other languages do, so large inputs pay
// whatever the runtime's GC decides to pay.
package main

import (
	"errors"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUnsupportedLanguage) {
			return exitUnsupported
		}
		return exitError
	}
	return exitSuccess
}

const (
	exitSuccess     = 0
	exitError       = 1
	exitUnsupported = 2
)
