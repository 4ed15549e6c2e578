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

// Package tsdiff compares the concrete syntax trees of two source files and produces a structural
// diff: a sequence of token-level edits, grouped into hunks that are addressable by line and
// column rather than by line alone.
//
// The package operates in three stages. First, a tree from an external parser (see the parser
// package's Tree interface) is flattened into a [TokenSequence] by the internal/flatten package.
// Second, [Diff] compares the token sequences of the old and new file using Myers' algorithm,
// producing a slice of [Edit]. Third, [Assemble] groups consecutive edits into [RichHunks],
// attaching surrounding context and validating the adjacency invariants a renderer depends on.
//
// By default, the comparison functions in this package try to find an optimal path, but may fall
// back to a good-enough path for large files with many differences. Use [Optimal] to disable this
// heuristic.
package tsdiff
