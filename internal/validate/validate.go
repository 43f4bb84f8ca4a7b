// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate applies heuristic syntax checks to Mermaid diagram
// source. The checks are plausibility tests over lines of text, not a
// grammar: they accept a superset of valid diagrams and reject a curated set
// of detectable mistakes.
//
// The diagram type is chosen from the first line of the content by an
// ordered prefix table. Each entry names a kind and an optional Checker;
// entries without a Checker are recognised but not checked.
package validate

import (
	"fmt"
	"strings"

	"github.com/pdiddy/mermaid-check/internal/textutil"
	"github.com/pdiddy/mermaid-check/pkg/types"
)

// Checker inspects the lines of one diagram (line 0 is the type line) and
// returns a rejection reason, or "" when the diagram looks plausible.
type Checker func(lines []string) string

// rule binds a discriminator keyword to a diagram kind and its checker.
type rule struct {
	keyword string
	kind    types.DiagramKind
	check   Checker
}

// rules is matched top to bottom against the trimmed first line. Checked
// kinds come first so "graph " wins over the bare "graph" pass-through.
var rules = []rule{
	{keyword: "graph ", kind: types.KindFlowchart, check: checkFlowchart},
	{keyword: "flowchart ", kind: types.KindFlowchart, check: checkFlowchart},
	{keyword: "sequenceDiagram", kind: types.KindSequence, check: checkSequence},
	{keyword: "classDiagram", kind: types.KindClass, check: checkClass},
	{keyword: "erDiagram", kind: types.KindER, check: checkER},
	{keyword: "gitGraph", kind: types.KindGitGraph, check: checkGitGraph},
	{keyword: "gantt", kind: types.KindGantt, check: checkGantt},
	{keyword: "pie", kind: types.KindPie, check: checkPie},

	// Recognised without dedicated checks.
	{keyword: "graph", kind: types.KindFlowchart},
	{keyword: "flowchart", kind: types.KindFlowchart},
	{keyword: "stateDiagram", kind: types.KindState},
	{keyword: "journey", kind: types.KindJourney},
}

// Validate checks one block's content and returns its verdict. It is a pure
// function of content.
func Validate(content string) types.ValidationResult {
	if reason := check(content); reason != "" {
		return types.Fail(reason)
	}
	return types.Pass()
}

// Classify returns the diagram kind selected by content's first line, or
// KindUnknown when no keyword matches.
func Classify(content string) types.DiagramKind {
	if r, ok := lookup(discriminator(strings.Split(content, "\n"))); ok {
		return r.kind
	}
	return types.KindUnknown
}

func check(content string) string {
	lines := strings.Split(content, "\n")
	first := discriminator(lines)

	if len(lines) <= 1 && first == "" {
		return "Empty diagram"
	}

	r, ok := lookup(first)
	if !ok {
		return fmt.Sprintf(`Unknown diagram type: "%s"`, first)
	}
	if r.check == nil {
		return ""
	}
	return r.check(lines)
}

func discriminator(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return textutil.Trim(lines[0])
}

func lookup(first string) (rule, bool) {
	for _, r := range rules {
		if strings.HasPrefix(first, r.keyword) {
			return r, true
		}
	}
	return rule{}, false
}

// KindInfo describes one recognised discriminator keyword.
type KindInfo struct {
	Keyword string            `json:"keyword" yaml:"keyword"`
	Kind    types.DiagramKind `json:"kind" yaml:"kind"`
	Checked bool              `json:"checked" yaml:"checked"`
}

// Kinds lists the recognised keywords in match order.
func Kinds() []KindInfo {
	out := make([]KindInfo, len(rules))
	for i, r := range rules {
		out[i] = KindInfo{
			Keyword: r.keyword,
			Kind:    r.kind,
			Checked: r.check != nil,
		}
	}
	return out
}
