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

import (
	"errors"
	"fmt"

	"tsdiff.dev/tsdiff/internal/config"
)

// Side identifies which of the two compared documents a [RichHunk] belongs to.
type Side int

const (
	Old Side = iota
	New
)

func (s Side) String() string {
	if s == Old {
		return "old"
	}
	return "new"
}

// Line groups every token on a single line of one document that participates in a hunk.
type Line struct {
	LineIndex int
	Tokens    []Token
}

// Hunk is a sequence of consecutive [Line]s for a single document. Lines in a hunk are always in
// strictly ascending, gap-free order.
type Hunk struct {
	Lines []Line
}

// FirstLine and LastLine return the line index of the first/last line in the hunk. ok is false for
// an empty hunk.
func (h *Hunk) FirstLine() (idx int, ok bool) {
	if len(h.Lines) == 0 {
		return 0, false
	}
	return h.Lines[0].LineIndex, true
}

func (h *Hunk) LastLine() (idx int, ok bool) {
	if len(h.Lines) == 0 {
		return 0, false
	}
	return h.Lines[len(h.Lines)-1].LineIndex, true
}

// PriorLineError is returned when a token is appended to a hunk on a line earlier than the hunk's
// last line.
type PriorLineError struct{ IncomingLine, LastLine int }

func (e *PriorLineError) Error() string {
	return fmt.Sprintf("appended token on line %d precedes hunk's last line %d", e.IncomingLine, e.LastLine)
}

// NonAdjacentHunkError is returned when a token is appended to a hunk on a line that doesn't
// immediately follow the hunk's last line.
type NonAdjacentHunkError struct{ IncomingLine, LastLine int }

func (e *NonAdjacentHunkError) Error() string {
	return fmt.Sprintf("appended token on line %d is not adjacent to hunk's last line %d", e.IncomingLine, e.LastLine)
}

// PriorColumnError is returned when a token is appended on the hunk's current line at a column
// that precedes the end column of the line's last token.
type PriorColumnError struct {
	IncomingCol, IncomingLine int
	LastCol, LastLine         int
}

func (e *PriorColumnError) Error() string {
	return fmt.Sprintf("appended token at column %d (line %d) precedes last token's end column %d (line %d)",
		e.IncomingCol, e.IncomingLine, e.LastCol, e.LastLine)
}

// pushBack appends tok to the hunk. Tokens must be appended in ascending row/column order. Returns
// *PriorLineError, *NonAdjacentHunkError or *PriorColumnError if the invariant is violated.
func (h *Hunk) pushBack(tok Token) error {
	incomingLine := tok.Start.Row

	if last, ok := h.LastLine(); ok {
		switch {
		case incomingLine < last:
			return &PriorLineError{IncomingLine: incomingLine, LastLine: last}
		case incomingLine-last > 1:
			return &NonAdjacentHunkError{IncomingLine: incomingLine, LastLine: last}
		case incomingLine-last == 1:
			h.Lines = append(h.Lines, Line{LineIndex: incomingLine})
		}
	} else {
		h.Lines = append(h.Lines, Line{LineIndex: incomingLine})
	}

	line := &h.Lines[len(h.Lines)-1]
	if len(line.Tokens) > 0 {
		last := line.Tokens[len(line.Tokens)-1]
		if tok.Start.Col < last.End.Col {
			return &PriorColumnError{
				IncomingCol:  tok.Start.Col,
				IncomingLine: tok.Start.Row,
				LastCol:      last.End.Col,
				LastLine:     last.End.Row,
			}
		}
	}
	line.Tokens = append(line.Tokens, tok)
	return nil
}

// RichHunk is a [Hunk] tagged with the document ([Side]) it belongs to.
type RichHunk struct {
	Side Side
	Hunk Hunk
}

// RichHunks is an ordered sequence of hunks drawn from both documents, in the order they were
// produced by [Assemble]. Because hunks from the old and new document are appended to a single
// list as they're discovered, RichHunks preserves the interleaving of old- and new-only changes
// instead of grouping all old-document hunks before all new-document ones.
type RichHunks []RichHunk

// richHunksBuilder incrementally assembles RichHunks from a stream of (Side, Token) insertions. It
// tracks, for each side independently, the index of the last hunk that side appended to, so that a
// deletion and an insertion that happen to be adjacent in the edit stream don't get merged into the
// same hunk just because they were pushed back to back.
type richHunksBuilder struct {
	hunks   RichHunks
	lastOld int // index into hunks, or -1 if the old document has no hunk yet
	lastNew int
}

func newRichHunksBuilder() *richHunksBuilder {
	return &richHunksBuilder{lastOld: -1, lastNew: -1}
}

func (b *richHunksBuilder) last(side Side) *int {
	if side == Old {
		return &b.lastOld
	}
	return &b.lastNew
}

// hunkForInsertion returns the index of the hunk tok should be appended to, creating a new one if
// necessary. The decision of whether tok continues the side's current hunk is made on tok's end
// line: a multi-line token (e.g. a block comment kept as a single non-split leaf) belongs to the
// hunk that covers the line its last character is on.
func (b *richHunksBuilder) hunkForInsertion(side Side, tok Token) (int, error) {
	last := b.last(side)

	if *last < 0 {
		b.hunks = append(b.hunks, RichHunk{Side: side})
		*last = len(b.hunks) - 1
		return *last, nil
	}

	lastLine, ok := b.hunks[*last].Hunk.LastLine()
	if ok {
		incomingLine := tok.End.Row
		if incomingLine < lastLine {
			return 0, &PriorLineError{IncomingLine: incomingLine, LastLine: lastLine}
		}
		if incomingLine-lastLine > 1 {
			b.hunks = append(b.hunks, RichHunk{Side: side})
			*last = len(b.hunks) - 1
		}
	}
	return *last, nil
}

func (b *richHunksBuilder) pushBack(side Side, tok Token) error {
	idx, err := b.hunkForInsertion(side, tok)
	if err != nil {
		return err
	}
	if err := b.hunks[idx].Hunk.pushBack(tok); err != nil {
		var nonAdjacent *NonAdjacentHunkError
		if !errors.As(err, &nonAdjacent) {
			return err
		}
		// The per-hunk invariant caught a gap between tok's start line and the hunk's last line.
		// hunkForInsertion's end-line check already rules this out for any token whose start line
		// is not after its end line, so this is a fallback: close the current hunk and retry in a
		// fresh one.
		b.hunks = append(b.hunks, RichHunk{Side: side})
		*b.last(side) = len(b.hunks) - 1
		return b.hunks[*b.last(side)].Hunk.pushBack(tok)
	}
	return nil
}

// Assemble groups a sequence of [Edit]s (as returned by [Diff]) into [RichHunks]: every delete is
// appended to the old document's hunks and every insert to the new document's, preserving the
// relative order in which old- and new-side hunks were opened.
//
// [Context] controls how many matching tokens immediately before and after a run of edits are kept
// as context, pushed onto both the old- and new-side hunks since a matched token exists
// identically on both sides. Context tokens that fall within reach of two separate runs of edits
// are only ever pushed once, so a short gap between two changes naturally merges their hunks
// instead of duplicating the tokens between them.
func Assemble(edits []Edit, opts ...Option) (RichHunks, error) {
	cfg := config.FromOptions(opts, config.Context)
	n := cfg.Context

	b := newRichHunksBuilder()
	pushContext := func(e Edit) error {
		if err := b.pushBack(Old, e.X); err != nil {
			return fmt.Errorf("assembling hunks: %w", err)
		}
		if err := b.pushBack(New, e.Y); err != nil {
			return fmt.Errorf("assembling hunks: %w", err)
		}
		return nil
	}

	// pending holds up to n most-recently-seen match edits that haven't been used as context yet;
	// it becomes the leading context for whichever run of edits comes next, if any does before the
	// window fills up and starts dropping its oldest entries. trailing counts down the matches
	// still owed as context after the run of edits most recently seen.
	var pending []Edit
	trailing := 0

	for _, e := range edits {
		if e.Op == Match {
			if trailing > 0 {
				if err := pushContext(e); err != nil {
					return nil, err
				}
				trailing--
				continue
			}
			pending = append(pending, e)
			if len(pending) > n {
				pending = pending[1:]
			}
			continue
		}

		for _, m := range pending {
			if err := pushContext(m); err != nil {
				return nil, err
			}
		}
		pending = pending[:0]

		switch e.Op {
		case Delete:
			if err := b.pushBack(Old, e.X); err != nil {
				return nil, fmt.Errorf("assembling hunks: %w", err)
			}
		case Insert:
			if err := b.pushBack(New, e.Y); err != nil {
				return nil, fmt.Errorf("assembling hunks: %w", err)
			}
		}
		trailing = n
	}
	return b.hunks, nil
}
