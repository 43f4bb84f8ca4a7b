// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mermaid-check/internal/validate"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the diagram keywords mermaid-check recognises",
	Long: `Kinds lists the first-line keywords that select a diagram type, in the
order they are matched. Keywords without a dedicated checker are accepted
without further checks.`,
	Run: func(cmd *cobra.Command, args []string) {
		printKinds(cmd.OutOrStdout(), validate.Kinds())
	},
}

func printKinds(w io.Writer, kinds []validate.KindInfo) {
	fmt.Fprintf(w, "%-18s  %-10s  %s\n", "Keyword", "Kind", "Checked")
	fmt.Fprintln(w, strings.Repeat("-", 38))
	for _, k := range kinds {
		fmt.Fprintf(w, "%-18s  %-10s  %s\n", strconv.Quote(k.Keyword), k.Kind, yesNo(k.Checked))
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
