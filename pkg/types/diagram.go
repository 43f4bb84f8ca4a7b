// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DiagramBlock is one fenced diagram found in a text file.
type DiagramBlock struct {
	// StartLine is the 1-based line number of the first line after the
	// opening fence.
	StartLine int `json:"start_line" yaml:"start_line"`

	// Content is the trimmed text between the fence markers. Never empty.
	Content string `json:"content" yaml:"content"`
}

// ValidationResult is the verdict for one block. Error is set iff Valid is
// false.
type ValidationResult struct {
	Valid bool   `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Pass returns a passing result.
func Pass() ValidationResult {
	return ValidationResult{Valid: true}
}

// Fail returns a failing result carrying reason.
func Fail(reason string) ValidationResult {
	return ValidationResult{Error: reason}
}

// DiagramKind identifies the diagram type selected from a block's first line.
type DiagramKind string

const (
	KindFlowchart DiagramKind = "flowchart"
	KindSequence  DiagramKind = "sequence"
	KindClass     DiagramKind = "class"
	KindER        DiagramKind = "er"
	KindGitGraph  DiagramKind = "gitgraph"
	KindGantt     DiagramKind = "gantt"
	KindPie       DiagramKind = "pie"
	KindState     DiagramKind = "state"
	KindJourney   DiagramKind = "journey"
	KindUnknown   DiagramKind = "unknown"
)
