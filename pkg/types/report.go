// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BlockReport is the outcome of checking one diagram block.
type BlockReport struct {
	StartLine int         `json:"start_line" yaml:"start_line"`
	Kind      DiagramKind `json:"kind" yaml:"kind"`
	Content   string      `json:"content" yaml:"content"`
	Valid     bool        `json:"valid" yaml:"valid"`
	Error     string      `json:"error,omitempty" yaml:"error,omitempty"`

	// RenderWarning holds the renderer's complaint about a block that passed
	// the heuristics. It never affects Valid.
	RenderWarning string `json:"render_warning,omitempty" yaml:"render_warning,omitempty"`
}

// FileReport holds the outcome of checking one input path.
type FileReport struct {
	Path   string        `json:"path" yaml:"path"`
	Blocks []BlockReport `json:"blocks" yaml:"blocks"`

	// Missing is set when the path does not exist or is not a regular file.
	Missing bool `json:"missing,omitempty" yaml:"missing,omitempty"`

	// Err is set when the file could not be checked at all.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Total returns the number of diagram blocks found.
func (r FileReport) Total() int {
	return len(r.Blocks)
}

// Failed returns the number of blocks that failed validation.
func (r FileReport) Failed() int {
	n := 0
	for _, b := range r.Blocks {
		if !b.Valid {
			n++
		}
	}
	return n
}

// Valid reports whether the file was read and every block passed. A file
// with no blocks is valid.
func (r FileReport) Valid() bool {
	return r.Err == "" && r.Failed() == 0
}

// RunSummary aggregates the reports of one invocation.
type RunSummary struct {
	Files []FileReport `json:"files" yaml:"files"`
}

// HasFailures reports whether any file was missing, unreadable, or held a
// failing block.
func (s RunSummary) HasFailures() bool {
	for _, f := range s.Files {
		if !f.Valid() {
			return true
		}
	}
	return false
}

// ExitCode returns the process exit status for the run.
func (s RunSummary) ExitCode() int {
	if s.HasFailures() {
		return 1
	}
	return 0
}
