// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/mermaid-check/internal/check"
	"github.com/pdiddy/mermaid-check/internal/renderer"
	"github.com/pdiddy/mermaid-check/internal/report"
	"github.com/pdiddy/mermaid-check/pkg/types"
)

var (
	// errUsage is returned when no files are given; the usage line has
	// already been printed.
	errUsage = errors.New("no input files")

	// errChecksFailed is returned when any file was missing, unreadable, or
	// held a failing diagram; the details have already been printed.
	errChecksFailed = errors.New("mermaid checks failed")
)

// runner executes one check run with injected collaborators.
type runner struct {
	cfg        types.CheckConfig
	detect     renderer.Detector
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
}

// run checks paths and prints results. It returns the summary and a
// non-nil error when the process should exit with status 1.
func (r runner) run(paths []string) (types.RunSummary, error) {
	if len(paths) == 0 {
		fmt.Fprintln(r.stderr, "Usage: mermaid-check <file1> [file2 ...]")
		return types.RunSummary{}, errUsage
	}

	rend, err := renderer.Startup(r.cfg.Renderer, r.detect, r.stderr)
	if err != nil {
		return types.RunSummary{}, err
	}

	opts := check.Options{Fence: r.cfg.Fence}
	if r.cfg.Renderer.Render && rend != nil {
		opts.Renderer = rend
	}

	style := report.NewStyle(r.colorEnabled())
	format := r.cfg.Output.Format

	summary := types.RunSummary{Files: make([]types.FileReport, 0, len(paths))}
	for _, p := range paths {
		fr := check.CheckFile(p, opts)
		summary.Files = append(summary.Files, fr)
		// Text output streams per file; structured formats print once, but
		// access errors reach stderr as each file is tried.
		if format == types.OutputText || format == "" {
			report.TextFile(r.stdout, r.stderr, fr, style)
		} else {
			report.AccessError(r.stderr, fr)
		}
	}

	switch format {
	case types.OutputText, "":
	default:
		if err := report.Write(format, r.stdout, r.stderr, summary, style); err != nil {
			return summary, err
		}
	}

	if r.cfg.Output.Summary {
		fmt.Fprintln(r.stderr, report.Counts(summary))
	}

	if summary.HasFailures() {
		return summary, errChecksFailed
	}
	return summary, nil
}

func (r runner) colorEnabled() bool {
	switch r.cfg.Output.Color {
	case types.ColorOn:
		return true
	case types.ColorOff:
		return false
	default:
		return r.isTerminal != nil && r.isTerminal()
	}
}
