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

// Package flatten turns a concrete syntax tree ([parser.Tree]) into a flat, position-tagged
// [tsdiff.TokenSequence] that the diff engine can compare.
package flatten

import (
	"bytes"

	"github.com/rivo/uniseg"
	"tsdiff.dev/tsdiff"
	"tsdiff.dev/tsdiff/internal/byteview"
	"tsdiff.dev/tsdiff/parser"
)

// Options configures how a tree is flattened into tokens.
type Options struct {
	// ExcludeKinds lists node kinds that are never emitted as tokens, regardless of IncludeKinds.
	ExcludeKinds map[string]bool

	// IncludeKinds, if non-empty, restricts emitted tokens to these kinds. It is ignored for any
	// kind already rejected by ExcludeKinds.
	IncludeKinds map[string]bool

	// SplitGraphemes splits every leaf's text into one token per extended grapheme cluster,
	// instead of one token per leaf. Enabled by default.
	SplitGraphemes bool

	// StripWhitespace skips leaves whose text consists only of '\r' and '\n' bytes. Some grammars
	// (observed with newline-only leaves emitted by certain Go-ecosystem tree-sitter bindings)
	// produce leaf nodes that carry no meaningful content; this option exists specifically to mask
	// that upstream quirk and should not be treated as a general whitespace-handling feature.
	StripWhitespace bool
}

// DefaultOptions returns the default flattening options: grapheme splitting enabled, no kind
// filtering, no whitespace stripping.
func DefaultOptions() Options {
	return Options{SplitGraphemes: true}
}

func (o Options) shouldInclude(kind string) bool {
	if o.ExcludeKinds[kind] {
		return false
	}
	if len(o.IncludeKinds) > 0 {
		return o.IncludeKinds[kind]
	}
	return true
}

// Flatten walks tree in document order and returns the resulting token sequence. source must be
// the exact byte slice the tree was parsed from; tokens borrow their Text from it.
func Flatten(tree parser.Tree, source []byte, opts Options) tsdiff.TokenSequence {
	f := &flattener{source: source, opts: opts}
	f.walk(tree.RootNode())
	return tsdiff.TokenSequence{Tokens: f.tokens, Source: source}
}

type flattener struct {
	source []byte
	opts   Options
	tokens []tsdiff.Token
}

func (f *flattener) walk(n parser.Node) {
	if n == nil {
		return
	}
	if n.ChildCount() == 0 {
		f.leaf(n)
		return
	}
	for i := 0; i < n.ChildCount(); i++ {
		f.walk(n.Child(i))
	}
}

func (f *flattener) leaf(n parser.Node) {
	start, end := n.StartByte(), n.EndByte()
	if start >= end {
		return
	}
	text := f.source[start:end]

	if f.opts.StripWhitespace {
		stripped := bytes.Trim(text, "\r\n")
		if len(stripped) == 0 {
			return
		}
	}

	if !f.opts.shouldInclude(n.Kind()) {
		return
	}

	startPt := toPosition(n.StartPoint())
	if !f.opts.SplitGraphemes {
		f.tokens = append(f.tokens, tsdiff.Token{
			Text:   text,
			Kind:   n.Kind(),
			KindID: n.KindID(),
			Start:  startPt,
			End:    toPosition(n.EndPoint()),
		})
		return
	}

	f.splitGraphemes(text, startPt, n.Kind(), n.KindID())
}

// splitGraphemes emits one token per extended grapheme cluster in text. Column offsets restart at
// zero on every line after the first, matching the row/column convention used for the rest of the
// leaf's text; the row advances once per embedded newline.
func (f *flattener) splitGraphemes(text []byte, start tsdiff.Position, kind string, kindID uint16) {
	lines, _ := byteview.SplitLines(byteview.From(text))
	if len(lines) == 0 {
		lines = []byteview.ByteView{byteview.From(text)}
	}

	row := start.Row
	off := 0
	for lineIdx, line := range lines {
		col := 0
		if lineIdx == 0 {
			col = start.Col
		}

		// Slice text itself so every cluster borrows from the source rather than a copy.
		lineBytes := bytes.TrimRight(text[off:off+line.Len()], "\r\n")
		off += line.Len()
		state := -1
		rest := lineBytes
		for len(rest) > 0 {
			cluster, next, _, newState := uniseg.FirstGraphemeCluster(rest, state)
			state = newState
			if len(cluster) == 0 {
				break
			}
			f.tokens = append(f.tokens, tsdiff.Token{
				Text:   cluster,
				Kind:   kind,
				KindID: kindID,
				Start:  tsdiff.Position{Row: row, Col: col},
				End:    tsdiff.Position{Row: row, Col: col + len(cluster)},
			})
			col += len(cluster)
			rest = next
		}
		row++
	}
}

func toPosition(p parser.Point) tsdiff.Position {
	return tsdiff.Position{Row: p.Row, Col: p.Col}
}
