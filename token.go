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

import "bytes"

// Position is a zero-based row/column coordinate into source text. Columns are byte offsets, not
// rune or grapheme counts, matching the coordinate system reported by tree-sitter.
type Position struct {
	Row, Col int
}

// Less reports whether p sorts strictly before q in reading order.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Token is a leaf of a flattened concrete syntax tree: either a whole grammar leaf node, or, when
// grapheme splitting is enabled, a single extended grapheme cluster carved out of one.
type Token struct {
	// Text is the token's source text. For a grapheme-split token, this is exactly one extended
	// grapheme cluster.
	Text []byte

	// Kind is the grammar's node type for the leaf this token was derived from (e.g. "identifier",
	// "string_literal").
	Kind string

	// KindID is the grammar's numeric symbol id for Kind. It is used in place of Kind when
	// comparing tokens, since it's cheaper to compare and grammars guarantee it is stable for a
	// given Kind within one parser version.
	KindID uint16

	// Start and End are the token's position in its source document. For a grapheme-split token
	// both are on the same line; for a non-split multi-line leaf (e.g. a block comment) End may be
	// on a later line than Start.
	Start, End Position
}

// Equal reports whether t and o are considered the same token for diffing purposes: same kind and
// same text. Positions are deliberately excluded, since two tokens at different positions in their
// respective files can still match.
func (t Token) Equal(o Token) bool {
	return t.KindID == o.KindID && bytes.Equal(t.Text, o.Text)
}

// TokenSequence is a flattened concrete syntax tree together with the source text it was derived
// from. Tokens borrow their Text from Source; a TokenSequence must outlive any Token obtained from
// it via slicing.
type TokenSequence struct {
	Tokens []Token
	Source []byte
}
