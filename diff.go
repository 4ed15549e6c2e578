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
	"tsdiff.dev/tsdiff/internal/config"
	"tsdiff.dev/tsdiff/internal/myers"
)

// Op describes an edit operation.
type Op int

const (
	Match  Op = iota // The tokens on both sides are identical.
	Delete           // A token present in x is missing from y.
	Insert           // A token present in y is missing from x.
)

func (op Op) String() string {
	switch op {
	case Match:
		return "match"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return "invalid"
	}
}

// Edit describes a single edit of a diff between two token sequences.
//
//   - For Match, X and Y are both set to the matching token.
//   - For Delete, X is set to the token missing from y and Y is the zero value.
//   - For Insert, Y is set to the token missing from x and X is the zero value.
type Edit struct {
	Op   Op
	X, Y Token
}

// Diff compares the tokens of x and y and returns every edit necessary to transform x into y, in
// order. If x and y have identical tokens, the result consists of a Match edit for every token.
//
// Diff is the entry point for [Assemble]: Assemble(Diff(x, y, opts...)) groups the individual
// edits into position-addressable hunks.
func Diff(x, y TokenSequence, opts ...Option) []Edit {
	// Context only affects hunk assembly (see Assemble), but callers commonly pass the same
	// options to both Diff and Assemble, so it's accepted here and ignored.
	cfg := config.FromOptions(opts, config.Context|config.Optimal|config.AnchoringHeuristic)

	// Token isn't comparable (it embeds a []byte), so it can't be fed directly to myers.Diff's
	// comparable fast path. Intern it into small integers first: tsdiff's token streams are
	// dominated by a handful of repeated kinds (punctuation, keywords, common identifiers), which
	// is exactly the case the unique-token reduction in myers.Diff is meant for.
	xi, yi := internTokens(x.Tokens, y.Tokens)
	rx, ry := myers.Diff(xi, yi, cfg)

	var ret []Edit
	for s, t := 0, 0; s < len(x.Tokens) || t < len(y.Tokens); {
		// Handle one case per iteration so consecutive deletions and insertions are grouped by
		// operation instead of interleaved.
		switch {
		case s < len(x.Tokens) && rx[s]:
			ret = append(ret, Edit{Op: Delete, X: x.Tokens[s]})
			s++
		case t < len(y.Tokens) && ry[t]:
			ret = append(ret, Edit{Op: Insert, Y: y.Tokens[t]})
			t++
		default:
			ret = append(ret, Edit{Op: Match, X: x.Tokens[s], Y: y.Tokens[t]})
			s++
			t++
		}
	}
	return ret
}

// tokenID is the identity myers.Diff compares on: same kind and same text means the same token,
// mirroring [Token.Equal].
type tokenID struct {
	kindID uint16
	text   string
}

// internTokens assigns a small integer id to each distinct token identity across x and y, so that
// myers.Diff (which requires a comparable element type) can be used in place of myers.DiffFunc.
func internTokens(x, y []Token) (xi, yi []int32) {
	ids := make(map[tokenID]int32, len(x)+len(y))
	var next int32
	intern := func(t Token) int32 {
		id := tokenID{kindID: t.KindID, text: string(t.Text)}
		n, ok := ids[id]
		if !ok {
			n = next
			next++
			ids[id] = n
		}
		return n
	}

	xi = make([]int32, len(x))
	for i, t := range x {
		xi[i] = intern(t)
	}
	yi = make([]int32, len(y))
	for i, t := range y {
		yi[i] = intern(t)
	}
	return xi, yi
}
