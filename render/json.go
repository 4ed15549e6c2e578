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

package render

import (
	"encoding/json"
	"io"

	"tsdiff.dev/tsdiff"
)

// JSON renders a diff as a single machine-readable JSON document, for consumption by editor
// integrations and other tooling. Unlike the other renderers, it ignores TerminalInfo entirely.
type JSON struct{}

type jsonPosition struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type jsonToken struct {
	Text          string       `json:"text"`
	Kind          string       `json:"kind"`
	KindID        uint16       `json:"kind_id"`
	StartPosition jsonPosition `json:"start_position"`
	EndPosition   jsonPosition `json:"end_position"`
}

type jsonLine struct {
	Line   int         `json:"line"`
	Tokens []jsonToken `json:"tokens"`
}

// jsonHunk is the externally-tagged old/new variant from spec.md §6.3: exactly one of Old or New
// is set, holding the hunk's lines directly (not wrapped in an object), mirroring how the original
// Rust's DocumentType enum serializes.
type jsonHunk struct {
	Old []jsonLine `json:"old,omitempty"`
	New []jsonLine `json:"new,omitempty"`
}

type jsonDocument struct {
	Filename string `json:"filename"`
}

type jsonDiff struct {
	Old   jsonDocument `json:"old"`
	New   jsonDocument `json:"new"`
	Hunks []jsonHunk   `json:"hunks"`
}

func (*JSON) Render(w io.Writer, data DisplayData, _ *TerminalInfo) error {
	out := jsonDiff{
		Old: jsonDocument{Filename: data.Old.Filename},
		New: jsonDocument{Filename: data.New.Filename},
	}
	for _, h := range data.Hunks {
		var lines []jsonLine
		for _, line := range h.Hunk.Lines {
			jl := jsonLine{Line: line.LineIndex}
			for _, tok := range line.Tokens {
				jl.Tokens = append(jl.Tokens, jsonToken{
					Text:          string(tok.Text),
					Kind:          tok.Kind,
					KindID:        tok.KindID,
					StartPosition: jsonPosition{Row: tok.Start.Row, Column: tok.Start.Col},
					EndPosition:   jsonPosition{Row: tok.End.Row, Column: tok.End.Col},
				})
			}
			lines = append(lines, jl)
		}

		var jh jsonHunk
		if h.Side == tsdiff.New {
			jh.New = lines
		} else {
			jh.Old = lines
		}
		out.Hunks = append(out.Hunks, jh)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
