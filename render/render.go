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

// Package render turns a [tsdiff.RichHunks] into terminal or machine-readable output. Renderers
// are pure functions of [DisplayData] and an optional [TerminalInfo]; they never query the
// terminal themselves, so they stay trivially testable.
package render

import (
	"fmt"
	"io"
	"sort"

	"tsdiff.dev/tsdiff"
)

// DocumentInfo identifies one of the two compared documents.
type DocumentInfo struct {
	Filename string
	Text     []byte
}

// DisplayData is everything a [Renderer] needs to produce output.
type DisplayData struct {
	Hunks    tsdiff.RichHunks
	Old, New DocumentInfo
}

// TerminalInfo describes the terminal output is being written to. A nil *TerminalInfo means the
// destination is not an interactive terminal (e.g. output is being piped to a file).
type TerminalInfo struct {
	Width int
	Color bool
}

// Renderer renders a diff to w.
type Renderer interface {
	Render(w io.Writer, data DisplayData, term *TerminalInfo) error
}

// Registry is a named collection of renderers, used to resolve the --renderer flag and to
// validate that user-configured custom renderer tags don't collide with the built-in ones.
type Registry struct {
	builtin map[string]Renderer
	custom  map[string]Renderer
}

// NewRegistry returns a Registry pre-populated with the built-in renderers: "unified", "delta" and
// "json".
func NewRegistry() *Registry {
	return &Registry{
		builtin: map[string]Renderer{
			"unified": &Unified{},
			"delta":   &Delta{},
			"json":    &JSON{},
		},
		custom: map[string]Renderer{},
	}
}

// Register adds a custom renderer under name. It returns an error if name collides with a
// built-in renderer's tag.
func (r *Registry) Register(name string, renderer Renderer) error {
	if _, ok := r.builtin[name]; ok {
		return fmt.Errorf("renderer tag %q collides with a built-in renderer", name)
	}
	r.custom[name] = renderer
	return nil
}

// Get resolves name to a Renderer, checking custom renderers before built-in ones so a later
// Register call can be favored in tests, though in practice the two sets never overlap because
// Register refuses collisions.
func (r *Registry) Get(name string) (Renderer, error) {
	if renderer, ok := r.custom[name]; ok {
		return renderer, nil
	}
	if renderer, ok := r.builtin[name]; ok {
		return renderer, nil
	}
	return nil, fmt.Errorf("unknown renderer %q", name)
}

// Names returns every registered renderer tag, built-in and custom, sorted for stable output (used
// by the "list" CLI subcommand).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builtin)+len(r.custom))
	for name := range r.builtin {
		names = append(names, name)
	}
	for name := range r.custom {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
