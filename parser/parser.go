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

// Package parser declares the interface tsdiff expects from a concrete syntax tree, so that the
// flattener in internal/flatten never depends on a specific parser implementation. [Parse] parses
// source with a github.com/smacker/go-tree-sitter grammar and adapts the resulting tree to it.
package parser

// Point is a zero-based row/column position into source text, using the same coordinate system
// tree-sitter reports.
type Point struct {
	Row, Col int
}

// Node is a single node of a concrete syntax tree.
type Node interface {
	// ChildCount returns the number of named and anonymous children of this node.
	ChildCount() int

	// Child returns the i-th child of this node. i must be in [0, ChildCount()).
	Child(i int) Node

	// Kind returns the grammar's node type for this node (e.g. "identifier", "string_literal").
	Kind() string

	// KindID returns the grammar's numeric symbol id for Kind. It is stable for a given Kind
	// within one parser/grammar version and is cheaper to compare than Kind.
	KindID() uint16

	// StartPoint and EndPoint return this node's position in the source document.
	StartPoint() Point
	EndPoint() Point

	// StartByte and EndByte return this node's byte offsets into the source document.
	StartByte() int
	EndByte() int
}

// Tree is a parsed concrete syntax tree.
type Tree interface {
	RootNode() Node
}
