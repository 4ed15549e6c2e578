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

package parser

import (
	"context"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/json"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
)

// languages maps a file-type name (as accepted by the --file-type flag) to its statically linked
// grammar. Dynamic loading of grammars built outside this binary (e.g. from a .so file) is out of
// scope: none of the retrieved examples load a grammar that way, and go-tree-sitter's dynamic
// loading mechanism is platform-specific enough that it would need its own extensive test matrix.
var languages = map[string]*sitter.Language{
	"go":         golang.GetLanguage(),
	"javascript": javascript.GetLanguage(),
	"python":     python.GetLanguage(),
	"rust":       rust.GetLanguage(),
	"bash":       bash.GetLanguage(),
	"json":       json.GetLanguage(),
}

// Languages returns the names of every statically linked grammar, sorted for stable output (used
// by the "list" CLI subcommand).
func Languages() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load resolves a file-type name to its grammar. It returns an error if the name isn't one of the
// statically linked languages.
func Load(name string) (*sitter.Language, error) {
	lang, ok := languages[name]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q", name)
	}
	return lang, nil
}

// Parse parses src with lang and returns the resulting tree adapted to the [Tree] interface.
func Parse(ctx context.Context, lang *sitter.Language, src []byte) (Tree, error) {
	p := sitter.NewParser()
	p.SetLanguage(lang)
	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}
	return treesitterTree{tree}, nil
}

type treesitterTree struct {
	tree *sitter.Tree
}

func (t treesitterTree) RootNode() Node { return treesitterNode{t.tree.RootNode()} }

type treesitterNode struct {
	n *sitter.Node
}

func (n treesitterNode) ChildCount() int { return int(n.n.ChildCount()) }

func (n treesitterNode) Child(i int) Node { return treesitterNode{n.n.Child(i)} }

func (n treesitterNode) Kind() string { return n.n.Type() }

func (n treesitterNode) KindID() uint16 { return uint16(n.n.Symbol()) }

func (n treesitterNode) StartPoint() Point {
	p := n.n.StartPoint()
	return Point{Row: int(p.Row), Col: int(p.Column)}
}

func (n treesitterNode) EndPoint() Point {
	p := n.n.EndPoint()
	return Point{Row: int(p.Row), Col: int(p.Column)}
}

func (n treesitterNode) StartByte() int { return int(n.n.StartByte()) }

func (n treesitterNode) EndByte() int { return int(n.n.EndByte()) }
