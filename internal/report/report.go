// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report prints check results as text, JSON, or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mermaid-check/pkg/types"
)

const delimiter = "---------------"

// Style holds the colours used for text summaries.
type Style struct {
	ok   *color.Color
	fail *color.Color
	warn *color.Color
}

// NewStyle returns a Style with colour forced on or off, independent of the
// terminal detection done by the color package.
func NewStyle(enabled bool) Style {
	s := Style{
		ok:   color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{s.ok, s.fail, s.warn} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// TextFile prints one file's outcome in the human-readable format.
// Results go to w; access errors and render warnings go to diag.
func TextFile(w, diag io.Writer, r types.FileReport, style Style) {
	if AccessError(diag, r) {
		return
	}

	fmt.Fprintf(w, "Validating Mermaid diagrams in: %s\n", r.Path)

	if r.Total() == 0 {
		fmt.Fprintf(w, "No Mermaid diagrams found in %s\n", r.Path)
		return
	}

	for _, b := range r.Blocks {
		if b.RenderWarning != "" {
			fmt.Fprintln(diag, style.warn.Sprintf("warning: renderer rejected diagram at line %d in %s: %s",
				b.StartLine, r.Path, b.RenderWarning))
		}
		if b.Valid {
			continue
		}
		fmt.Fprintf(w, "Error in diagram at line %d in %s\n", b.StartLine, r.Path)
		fmt.Fprintln(w, "Diagram content:")
		fmt.Fprintln(w, delimiter)
		fmt.Fprintln(w, b.Content)
		fmt.Fprintln(w, delimiter)
		fmt.Fprintln(w, "Error message:")
		fmt.Fprintln(w, b.Error)
	}

	if failed := r.Failed(); failed > 0 {
		fmt.Fprintln(w, style.fail.Sprintf("❌ Found %d errors in %d diagrams in %s", failed, r.Total(), r.Path))
		return
	}
	fmt.Fprintln(w, style.ok.Sprintf("✅ All %d diagrams in %s are valid", r.Total(), r.Path))
}

// AccessError prints the diagnostic for a file that could not be checked and
// reports whether it printed one. Every output format calls it.
func AccessError(diag io.Writer, r types.FileReport) bool {
	switch {
	case r.Missing:
		fmt.Fprintf(diag, "Error: File not found - %s\n", r.Path)
	case r.Err != "":
		fmt.Fprintf(diag, "Error processing file %s: %s\n", r.Path, r.Err)
	default:
		return false
	}
	return true
}

// Text prints every file of s in order.
func Text(w, diag io.Writer, s types.RunSummary, style Style) {
	for _, f := range s.Files {
		TextFile(w, diag, f, style)
	}
}

// JSON writes s as indented JSON.
func JSON(w io.Writer, s types.RunSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(withBlocks(s)); err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	return nil
}

// YAML writes s as a YAML document.
func YAML(w io.Writer, s types.RunSummary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(withBlocks(s)); err != nil {
		return fmt.Errorf("encoding YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding YAML report: %w", err)
	}
	return nil
}

// Write prints s in the given format. Text output sends diagnostics to diag.
func Write(format types.OutputFormat, w, diag io.Writer, s types.RunSummary, style Style) error {
	switch format {
	case types.OutputText, "":
		Text(w, diag, s, style)
		return nil
	case types.OutputJSON:
		return JSON(w, s)
	case types.OutputYAML:
		return YAML(w, s)
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}
}

// withBlocks replaces nil block slices so encoders emit [] rather than null.
func withBlocks(s types.RunSummary) types.RunSummary {
	files := make([]types.FileReport, len(s.Files))
	for i, f := range s.Files {
		if f.Blocks == nil {
			f.Blocks = []types.BlockReport{}
		}
		files[i] = f
	}
	return types.RunSummary{Files: files}
}

// Counts returns a one-line summary across all files, e.g.
// "3 files, 7 diagrams, 1 failed".
func Counts(s types.RunSummary) string {
	var blocks, failed, unreadable int
	for _, f := range s.Files {
		blocks += f.Total()
		failed += f.Failed()
		if f.Missing || f.Err != "" {
			unreadable++
		}
	}
	parts := []string{
		plural(len(s.Files), "file"),
		plural(blocks, "diagram"),
		fmt.Sprintf("%d failed", failed),
	}
	if unreadable > 0 {
		parts = append(parts, fmt.Sprintf("%d unreadable", unreadable))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
