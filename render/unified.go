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

	"github.com/charmbracelet/lipgloss"
	"tsdiff.dev/tsdiff"
)

// Unified renders hunks inline: every changed line is printed once, prefixed with "-" for the old
// document or "+" for the new one, in the order hunks were discovered. This is a token-level
// generalization of the classic unified line diff, not a byte-accurate reproduction of it.
//
// AdditionColor and DeletionColor are ANSI color codes as accepted by [lipgloss.Color]; the zero
// value falls back to green and red respectively.
type Unified struct {
	AdditionColor string
	DeletionColor string
}

func (u *Unified) styles() (addition, deletion lipgloss.Style) {
	add, del := u.AdditionColor, u.DeletionColor
	if add == "" {
		add = "2" // green
	}
	if del == "" {
		del = "1" // red
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(add)).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color(del)).Bold(true)
}

func (u *Unified) Render(w io.Writer, data DisplayData, term *TerminalInfo) error {
	color := term != nil && term.Color
	addStyle, delStyle := u.styles()

	for hi, h := range data.Hunks {
		doc := data.Old
		prefix, style := "- ", delStyle
		if h.Side == tsdiff.New {
			doc = data.New
			prefix, style = "+ ", addStyle
		}

		if first, ok := h.Hunk.FirstLine(); ok {
			last, _ := h.Hunk.LastLine()
			header := fmt.Sprintf("--- %s:%d", doc.Filename, first+1)
			if last != first {
				header = fmt.Sprintf("--- %s:%d-%d", doc.Filename, first+1, last+1)
			}
			if _, err := fmt.Fprintln(w, header); err != nil {
				return err
			}
		}

		for _, line := range h.Hunk.Lines {
			text := prefix
			for _, tok := range line.Tokens {
				text += string(tok.Text)
			}
			if color {
				text = style.Render(text)
			}
			if _, err := fmt.Fprintln(w, text); err != nil {
				return err
			}
		}

		if hi != len(data.Hunks)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
