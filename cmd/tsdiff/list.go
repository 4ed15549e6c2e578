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
	"fmt"

	"github.com/spf13/cobra"

	"tsdiff.dev/tsdiff/parser"
	"tsdiff.dev/tsdiff/render"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the languages and renderers compiled into this binary",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "languages:")
			for _, name := range parser.Languages() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			fmt.Fprintln(w, "renderers:")
			for _, name := range render.NewRegistry().Names() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			return nil
		},
	}
}
