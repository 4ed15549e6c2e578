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
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"tsdiff.dev/tsdiff"
)

// Delta renders hunks as two side-by-side columns, old on the left and new on the right, each
// prefixed with its line number. Hunks that only touch one side leave the other column blank.
type Delta struct {
	ColumnWidth int // 0 means derive it from the terminal width (at least 20), or 40 if unknown.
}

func (d *Delta) columnWidth(term *TerminalInfo) int {
	if d.ColumnWidth > 0 {
		return d.ColumnWidth
	}
	if term != nil && term.Width > 0 {
		return max(20, term.Width/2-4)
	}
	return 40
}

func (d *Delta) Render(w io.Writer, data DisplayData, term *TerminalInfo) error {
	width := d.columnWidth(term)
	deletion := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	addition := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	color := term != nil && term.Color

	left := make(map[int]string)
	right := make(map[int]string)
	var lineNums []int
	seen := map[int]bool{}

	for _, h := range data.Hunks {
		dst := left
		if h.Side == tsdiff.New {
			dst = right
		}
		for _, line := range h.Hunk.Lines {
			var sb strings.Builder
			for _, tok := range line.Tokens {
				sb.Write(tok.Text)
			}
			text := sb.String()
			if color {
				if h.Side == tsdiff.Old {
					text = deletion.Render(text)
				} else {
					text = addition.Render(text)
				}
			}
			dst[line.LineIndex] = text
			if !seen[line.LineIndex] {
				seen[line.LineIndex] = true
				lineNums = append(lineNums, line.LineIndex)
			}
		}
	}

	sort.Ints(lineNums)
	for _, n := range lineNums {
		l := pad(left[n], width)
		r := pad(right[n], width)
		if _, err := fmt.Fprintf(w, "%4d %s | %s\n", n+1, l, r); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
