// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/mermaid-check/pkg/types"
)

func TestValidate_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "empty content", content: "", wantErr: "Empty diagram"},
		{name: "unknown type", content: "foobar", wantErr: `Unknown diagram type: "foobar"`},
		{name: "unknown type with body", content: "foobar\nA-->B", wantErr: `Unknown diagram type: "foobar"`},
		{name: "blank first line is unknown", content: "\ngraph TD", wantErr: `Unknown diagram type: ""`},
		{name: "keywords are case sensitive", content: "Graph TD\nA-->B", wantErr: `Unknown diagram type: "Graph TD"`},
		{name: "first line is trimmed", content: "   graph TD   \nA-->B"},
		{name: "byte order mark before type line", content: "\uFEFFpie\n\"a\": 1"},
		{name: "state diagram passes through", content: "stateDiagram-v2\n[*] -- S"},
		{name: "journey passes through", content: "journey\ntitle My day"},
		{name: "bare graph keyword passes through", content: "graph"},
		{name: "bare flowchart keyword passes through", content: "flowchart\nA -- B"},
		{name: "graph without space skips flowchart rules", content: "graphTD\nA -- B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.content)
			assertResult(t, tt.wantErr, got)
		})
	}
}

func TestValidate_Deterministic(t *testing.T) {
	inputs := []string{
		"graph TD\nA -- B",
		"classDiagram\nclass A{",
		"pie\n\"a\": 1",
		"foobar",
	}
	for _, in := range inputs {
		assert.Equal(t, Validate(in), Validate(in), "input %q", in)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		content string
		want    types.DiagramKind
	}{
		{"graph TD\nA-->B", types.KindFlowchart},
		{"flowchart LR", types.KindFlowchart},
		{"graph", types.KindFlowchart},
		{"sequenceDiagram", types.KindSequence},
		{"classDiagram", types.KindClass},
		{"erDiagram", types.KindER},
		{"gitGraph", types.KindGitGraph},
		{"gantt", types.KindGantt},
		{"pie title Pets", types.KindPie},
		{"stateDiagram-v2", types.KindState},
		{"journey", types.KindJourney},
		{"\uFEFFgantt", types.KindGantt},
		{"mindmap", types.KindUnknown},
		{"", types.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.content))
		})
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if assert.NotEmpty(t, kinds) {
		assert.Equal(t, KindInfo{Keyword: "graph ", Kind: types.KindFlowchart, Checked: true}, kinds[0])
	}

	checked := map[string]bool{}
	for _, k := range kinds {
		checked[k.Keyword] = k.Checked
	}
	assert.True(t, checked["pie"])
	assert.True(t, checked["gitGraph"])
	assert.False(t, checked["stateDiagram"])
	assert.False(t, checked["journey"])
}

// assertResult checks a verdict against an expected reason; "" means valid.
func assertResult(t *testing.T, wantErr string, got types.ValidationResult) {
	t.Helper()
	if wantErr == "" {
		assert.True(t, got.Valid, "unexpected error: %s", got.Error)
		assert.Empty(t, got.Error)
		return
	}
	assert.False(t, got.Valid)
	assert.Equal(t, wantErr, got.Error)
}
