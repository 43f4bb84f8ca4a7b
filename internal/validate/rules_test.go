// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/mermaid-check/internal/textutil"
)

type ruleCase struct {
	name    string
	content string
	wantErr string
}

func runRuleCases(t *testing.T, cases []ruleCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assertResult(t, tt.wantErr, Validate(tt.content))
		})
	}
}

func TestFlowchart(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "header only", content: "graph TD", wantErr: "Flowchart must have at least one node or connection"},
		{name: "simple arrow", content: "graph TD\nA-->B"},
		{name: "flowchart keyword", content: "flowchart LR\nA -.-> B\nB ==> C"},
		{name: "unbalanced double quote", content: "graph TD\nA[\"x]", wantErr: "Unbalanced double quotes in flowchart"},
		{name: "escaped double quotes are not counted", content: "graph TD\nA[\\\"x\\\"]"},
		{name: "balanced double quotes", content: "graph TD\nA[\"x\"] --> B"},
		{name: "unbalanced single quote", content: "graph TD\nA[it's]", wantErr: "Unbalanced single quotes in flowchart"},
		{name: "single quotes reported before double", content: "graph TD\nA['x\"]", wantErr: "Unbalanced single quotes in flowchart"},
		{name: "quotes counted across lines", content: "graph TD\nA[\"x\nB\"]"},
		{name: "plain node declarations", content: "graph TD\nA[Start]\nB(Stop)"},
		{name: "bare double dash", content: "graph TD\nA -- B", wantErr: `Invalid connection syntax in line: "A -- B"`},
		{name: "bare double equals", content: "graph TD\nA == B", wantErr: `Invalid connection syntax in line: "A == B"`},
		{name: "dangling dotted", content: "graph TD\n  A -.. B  ", wantErr: `Invalid connection syntax in line: "A -.. B"`},
		{name: "dash with pipe label", content: "graph TD\nA --|label| B"},
		{name: "dash with closing bracket", content: "graph TD\nA --] B"},
		{name: "recognised connectors", content: "graph TD\nA --- B\nA --x B\nA --o B\nA <--> B\nA <==> B\nA === B"},
		{name: "first bad line wins", content: "graph TD\nA-->B\nC -- D\nE == F", wantErr: `Invalid connection syntax in line: "C -- D"`},
		{name: "comments skipped", content: "graph TD\n%% A -- B\nA-->B"},
		{name: "subgraph and end skipped", content: "graph TD\nsubgraph one -- two\nA-->B\nend"},
		{name: "class lines skipped", content: "graph TD\nclassDef x stroke--w\nclass A -- x"},
		{name: "blank body lines skipped", content: "graph TD\n\n   \nA-->B"},
	})
}

func TestSequenceDiagram(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "no braces", content: "sequenceDiagram\nAlice->>Bob: Hello"},
		{name: "balanced braces", content: "sequenceDiagram\nNote over A: {x}\nA->>B: {"+"\n}"},
		{name: "unclosed brace", content: "sequenceDiagram\nNote over A: {", wantErr: "Unbalanced braces in sequence diagram"},
		{name: "stray closing brace", content: "sequenceDiagram\nA->>B: }", wantErr: "Unbalanced braces in sequence diagram"},
	})
}

func TestClassDiagram(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "balanced class body", content: "classDiagram\nclass A{\n}"},
		{name: "unclosed class body", content: "classDiagram\nclass A{", wantErr: "Unbalanced braces in class diagram"},
		{name: "net zero counts as balanced", content: "classDiagram\n}\n{"},
		{name: "relations only", content: "classDiagram\nAnimal <|-- Duck"},
	})
}

func TestERDiagram(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "relationship with label", content: "erDiagram\nCUSTOMER ||--o| ORDER : places"},
		{name: "relationship without label", content: "erDiagram\nCUSTOMER ||--|| ORDER"},
		{name: "missing dashes", content: "erDiagram\nCUSTOMER || ORDER", wantErr: `Invalid relationship syntax in line: "CUSTOMER || ORDER"`},
		{name: "crow's foot outside the accepted set", content: "erDiagram\n  CUSTOMER ||--o{ ORDER : places", wantErr: `Invalid relationship syntax in line: "CUSTOMER ||--o{ ORDER : places"`},
		{name: "entity attributes", content: "erDiagram\nCUSTOMER {\nstring name\n}"},
		{name: "comment skipped", content: "erDiagram\n%% A || B"},
		{name: "header only", content: "erDiagram"},
		{name: "no-break spaces around cardinality", content: "erDiagram\nA\u00a0||--o|\u00a0B"},
	})
}

func TestGitGraph(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "plain commits", content: "gitGraph\ncommit\nbranch dev\ncommit"},
		{name: "commit with id and type", content: "gitGraph\ncommit id: \"abc\" type: HIGHLIGHT"},
		{name: "commit with trailing text is accepted", content: "gitGraph\ncommit whatever"},
		{name: "header only", content: "gitGraph"},
	})
}

func TestGantt(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "missing dateFormat", content: "gantt\nsection S\ntask1: 2024-01-01, 3d", wantErr: "Missing dateFormat in Gantt chart"},
		{name: "complete chart", content: "gantt\ndateFormat YYYY-MM-DD\nsection S\ntask1: 2024-01-01, 3d"},
		{name: "no section required", content: "gantt\ndateFormat YYYY-MM-DD\ntask1: 2024-01-01, 3d"},
		{name: "no tasks", content: "gantt\ndateFormat YYYY-MM-DD\nsection S", wantErr: "No tasks defined in Gantt chart"},
		{name: "section line is not a task", content: "gantt\ndateFormat YYYY-MM-DD\nsection S: x", wantErr: "No tasks defined in Gantt chart"},
		{name: "header only", content: "gantt", wantErr: "Missing dateFormat in Gantt chart"},
	})
}

func TestPie(t *testing.T) {
	runRuleCases(t, []ruleCase{
		{name: "header only", content: "pie", wantErr: "Pie chart must have at least one data point"},
		{name: "line without colon", content: "pie\nplain text", wantErr: `Invalid pie chart data in line: "plain text"`},
		{name: "data points", content: "pie title Pets\n\"Dogs\" : 386\n%% comment\n\n\"Cats\" : 85"},
		{name: "bad line after good", content: "pie\n\"a\": 1\n  oops  ", wantErr: `Invalid pie chart data in line: "oops"`},
	})
}

func TestCheckers_EmptyInput(t *testing.T) {
	checkers := map[string]Checker{
		"flowchart": checkFlowchart,
		"sequence":  checkSequence,
		"class":     checkClass,
		"er":        checkER,
		"gitgraph":  checkGitGraph,
		"gantt":     checkGantt,
		"pie":       checkPie,
	}
	for name, c := range checkers {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() { c(nil) })
		})
	}
}

func TestUnicodeSpace_MatchesTrim(t *testing.T) {
	re := regexp.MustCompile(`^` + unicodeSpace + `$`)
	for r := rune(0); r <= 0xFFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		if re.MatchString(string(r)) != textutil.IsSpace(r) {
			t.Errorf("rune %U: regexp and textutil.IsSpace disagree", r)
		}
	}
}
