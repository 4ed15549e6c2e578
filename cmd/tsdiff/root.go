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

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"tsdiff.dev/tsdiff"
	"tsdiff.dev/tsdiff/internal/flatten"
	"tsdiff.dev/tsdiff/parser"
	"tsdiff.dev/tsdiff/render"
)

// extensionLanguages maps a file extension to the file-type name used by parser.Load, for
// languages that weren't given an explicit --file-type.
var extensionLanguages = map[string]string{
	".go":   "go",
	".js":   "javascript",
	".mjs":  "javascript",
	".py":   "python",
	".rs":   "rust",
	".sh":   "bash",
	".bash": "bash",
	".json": "json",
}

// errUnsupportedLanguage is returned when no fallback_cmd is configured and the inputs don't
// resolve to a statically linked grammar: an explicit --file-type that isn't one, or, without
// --file-type, an extension of either file that isn't known or two extensions that map to
// different languages. main maps it to exitUnsupported.
var errUnsupportedLanguage = errors.New("unsupported input language and no fallback_cmd configured")

type rootFlags struct {
	fileType   string
	configPath string
	renderer   string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "tsdiff OLD NEW",
		Short: "Structural diff of two source files' concrete syntax trees",
		Long: "tsdiff parses two source files, flattens their concrete syntax trees into token\n" +
			"sequences, diffs them with Myers' algorithm, and renders the result as a\n" +
			"sequence of line/column-addressable hunks.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], args[1], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.fileType, "file-type", "t", "", "override language inference (e.g. go, python, rust)")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a config file (default: "+defaultConfigPath()+")")
	cmd.Flags().StringVar(&flags.renderer, "renderer", "", "renderer tag to use (overrides the config file)")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newDumpDefaultConfigCmd())
	cmd.AddCommand(newCompletionCmd())
	return cmd
}

func runDiff(cmd *cobra.Command, oldPath, newPath string, flags rootFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	explicit := flags.configPath != ""
	path := flags.configPath
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}
	if flags.renderer != "" {
		cfg.Renderer = flags.renderer
	}

	lang, ok := resolveLanguage(flags.fileType, oldPath, newPath)
	if !ok {
		if len(cfg.FallbackCmd) == 0 {
			return errUnsupportedLanguage
		}
		return runFallback(ctx, cfg.FallbackCmd, oldPath, newPath)
	}

	oldSrc, newSrc, err := readInputs(oldPath, newPath)
	if err != nil {
		return err
	}

	grammar, err := parser.Load(lang)
	if err != nil {
		return err
	}

	var oldTree, newTree parser.Tree
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		oldTree, err = parser.Parse(gctx, grammar, oldSrc)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", oldPath, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		newTree, err = parser.Parse(gctx, grammar, newSrc)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", newPath, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fopts := flatten.DefaultOptions()
	fopts.ExcludeKinds = toSet(cfg.ExcludeKinds)
	fopts.IncludeKinds = toSet(cfg.IncludeKinds)

	oldSeq := flatten.Flatten(oldTree, oldSrc, fopts)
	newSeq := flatten.Flatten(newTree, newSrc, fopts)

	var opts []tsdiff.Option
	opts = append(opts, tsdiff.Context(cfg.Context))
	if cfg.Optimal {
		opts = append(opts, tsdiff.Optimal())
	}

	edits := tsdiff.Diff(oldSeq, newSeq, opts...)
	hunks, err := tsdiff.Assemble(edits, opts...)
	if err != nil {
		return fmt.Errorf("assembling hunks: %w", err)
	}

	registry := render.NewRegistry()
	renderer, err := registry.Get(cfg.Renderer)
	if err != nil {
		return err
	}

	data := render.DisplayData{
		Hunks: hunks,
		Old:   render.DocumentInfo{Filename: oldPath, Text: oldSrc},
		New:   render.DocumentInfo{Filename: newPath, Text: newSrc},
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := renderer.Render(out, data, terminalInfo(cfg)); err != nil {
		return fmt.Errorf("rendering diff: %w", err)
	}
	return out.Flush()
}

func readInputs(oldPath, newPath string) (old, new []byte, err error) {
	old, err = os.ReadFile(oldPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", oldPath, err)
	}
	new, err = os.ReadFile(newPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", newPath, err)
	}
	return old, new, nil
}

func resolveLanguage(fileType, oldPath, newPath string) (string, bool) {
	if fileType != "" {
		if _, err := parser.Load(fileType); err != nil {
			return "", false
		}
		return fileType, true
	}
	oldLang, oldOK := extensionLanguages[filepath.Ext(oldPath)]
	newLang, newOK := extensionLanguages[filepath.Ext(newPath)]
	if !oldOK || !newOK || oldLang != newLang {
		return "", false
	}
	return oldLang, true
}

func runFallback(ctx context.Context, fallbackCmd []string, oldPath, newPath string) error {
	args := append(append([]string{}, fallbackCmd[1:]...), oldPath, newPath)
	c := exec.CommandContext(ctx, fallbackCmd[0], args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	slog.Warn("unsupported input language, delegating to fallback_cmd", "cmd", fallbackCmd[0])
	return c.Run()
}

func terminalInfo(cfg cliConfig) *render.TerminalInfo {
	color := isatty.IsTerminal(os.Stdout.Fd())
	if cfg.Color != nil {
		color = *cfg.Color
	}
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	return &render.TerminalInfo{Width: width, Color: color}
}
