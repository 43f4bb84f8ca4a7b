// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check runs the extract-then-validate pipeline over files.
// Files are processed one after another, and blocks within a file in source
// order. A problem with one file or block never stops the rest of the run.
package check

import (
	"os"

	"github.com/pdiddy/mermaid-check/internal/extract"
	"github.com/pdiddy/mermaid-check/internal/renderer"
	"github.com/pdiddy/mermaid-check/internal/validate"
	"github.com/pdiddy/mermaid-check/pkg/types"
)

// Options controls a check run.
type Options struct {
	// Fence selects the block markers; empty fields use the defaults.
	Fence types.FenceConfig

	// Renderer, when set, renders every block that passed the heuristics.
	// Render errors are attached as warnings and never flip a verdict.
	Renderer renderer.Renderer
}

// CheckText extracts and validates every diagram block in text.
func CheckText(text string, opts Options) []types.BlockReport {
	var reports []types.BlockReport
	for blk := range extract.Blocks(text, opts.Fence) {
		reports = append(reports, checkBlock(blk, opts))
	}
	return reports
}

func checkBlock(blk types.DiagramBlock, opts Options) types.BlockReport {
	res := validate.Validate(blk.Content)
	br := types.BlockReport{
		StartLine: blk.StartLine,
		Kind:      validate.Classify(blk.Content),
		Content:   blk.Content,
		Valid:     res.Valid,
		Error:     res.Error,
	}
	if res.Valid && opts.Renderer != nil {
		if err := opts.Renderer.Render(blk.Content); err != nil {
			br.RenderWarning = err.Error()
		}
	}
	return br
}

// CheckFile checks the file at path. A missing path or non-regular file sets
// Missing; a read failure is recorded in Err.
func CheckFile(path string, opts Options) types.FileReport {
	report := types.FileReport{Path: path}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		report.Missing = true
		report.Err = "file not found"
		return report
	}

	data, err := os.ReadFile(path)
	if err != nil {
		report.Err = err.Error()
		return report
	}

	report.Blocks = CheckText(string(data), opts)
	return report
}

// CheckFiles checks each path in order and returns the aggregate summary.
func CheckFiles(paths []string, opts Options) types.RunSummary {
	summary := types.RunSummary{Files: make([]types.FileReport, 0, len(paths))}
	for _, p := range paths {
		summary.Files = append(summary.Files, CheckFile(p, opts))
	}
	return summary
}
