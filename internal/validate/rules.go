// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/mermaid-check/internal/textutil"
)

// flowConnectors are link tokens accepted as-is on a flowchart line.
var flowConnectors = []string{
	"-->", "---", "-.->", "-.-", "==>", "===", "--x", "--o",
	"-->>", "--[", "<-->", "<-.->", "<==>",
}

// flowLinkFragments mark a line as attempting a link.
var flowLinkFragments = []string{"--", "==", "-."}

var (
	flowDashLink   = regexp.MustCompile(`--[>x\[\]|o]`)
	flowThickLink  = regexp.MustCompile(`==>`)
	flowDottedLink = regexp.MustCompile(`-\.[>-]`)

	erRelationship = regexp.MustCompile(spaced(`\w+\s+[|o][|o]--[|o][|o]\s+\w+\s*:?\s*.*$`))

	// Unanchored: any line that starts with "commit" matches.
	gitCommit = regexp.MustCompile(spaced(`commit(\s+id:\s*"[^"]*")?(\s+type:\s*(NORMAL|REVERSE|HIGHLIGHT))?`))
)

// unicodeSpace matches the same runes as textutil.IsSpace. RE2's \s is
// ASCII only and misses no-break spaces, vertical tab and U+FEFF.
const unicodeSpace = `[\s\v\p{Z}\x{85}\x{FEFF}]`

// spaced rewrites every \s in pattern to unicodeSpace. Patterns passed to it
// must not use \s inside a character class.
func spaced(pattern string) string {
	return strings.ReplaceAll(pattern, `\s`, unicodeSpace)
}

// flowSkipPrefixes mark flowchart lines that never carry links.
var flowSkipPrefixes = []string{"%", "subgraph", "end", "classDef", "class"}

// erCardinalities mark an ER line as a relationship.
var erCardinalities = []string{"||", "|o", "o|", "oo"}

func checkFlowchart(lines []string) string {
	if len(lines) < 2 {
		return "Flowchart must have at least one node or connection"
	}

	single, double := countQuotes(lines)
	if single%2 != 0 {
		return "Unbalanced single quotes in flowchart"
	}
	if double%2 != 0 {
		return "Unbalanced double quotes in flowchart"
	}

	for _, raw := range body(lines) {
		line := textutil.Trim(raw)
		if line == "" || hasAnyPrefix(line, flowSkipPrefixes) {
			continue
		}
		if containsAny(line, flowConnectors) {
			continue
		}
		if !containsAny(line, flowLinkFragments) {
			continue
		}
		if !flowDashLink.MatchString(line) && !flowThickLink.MatchString(line) && !flowDottedLink.MatchString(line) {
			return fmt.Sprintf(`Invalid connection syntax in line: "%s"`, line)
		}
	}
	return ""
}

// countQuotes counts single and double quotes not preceded by a backslash.
func countQuotes(lines []string) (single, double int) {
	for _, line := range lines {
		for i := 0; i < len(line); i++ {
			if i > 0 && line[i-1] == '\\' {
				continue
			}
			switch line[i] {
			case '"':
				double++
			case '\'':
				single++
			}
		}
	}
	return single, double
}

func checkSequence(lines []string) string {
	if braceDepth(lines) != 0 {
		return "Unbalanced braces in sequence diagram"
	}
	return ""
}

func checkClass(lines []string) string {
	if braceDepth(lines) != 0 {
		return "Unbalanced braces in class diagram"
	}
	return ""
}

// braceDepth returns the count of '{' minus the count of '}'.
func braceDepth(lines []string) int {
	depth := 0
	for _, line := range lines {
		depth += strings.Count(line, "{") - strings.Count(line, "}")
	}
	return depth
}

func checkER(lines []string) string {
	for _, raw := range body(lines) {
		line := textutil.Trim(raw)
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if containsAny(line, erCardinalities) && !erRelationship.MatchString(line) {
			return fmt.Sprintf(`Invalid relationship syntax in line: "%s"`, line)
		}
	}
	return ""
}

func checkGitGraph(lines []string) string {
	for _, raw := range body(lines) {
		line := textutil.Trim(raw)
		if strings.HasPrefix(line, "commit") && !gitCommit.MatchString(line) {
			return fmt.Sprintf(`Invalid commit syntax in line: "%s"`, line)
		}
	}
	return ""
}

func checkGantt(lines []string) string {
	var hasDateFormat, hasTask bool
	for _, raw := range lines {
		line := textutil.Trim(raw)
		switch {
		case strings.HasPrefix(line, "dateFormat"):
			hasDateFormat = true
		case strings.HasPrefix(line, "section"):
			// Sections are optional and never count as tasks.
		case strings.Contains(line, ":"):
			hasTask = true
		}
	}
	if !hasDateFormat {
		return "Missing dateFormat in Gantt chart"
	}
	if !hasTask {
		return "No tasks defined in Gantt chart"
	}
	return ""
}

func checkPie(lines []string) string {
	if len(lines) < 2 {
		return "Pie chart must have at least one data point"
	}
	for _, raw := range body(lines) {
		line := textutil.Trim(raw)
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if !strings.Contains(line, ":") {
			return fmt.Sprintf(`Invalid pie chart data in line: "%s"`, line)
		}
	}
	return ""
}

// body returns the lines after the type line.
func body(lines []string) []string {
	if len(lines) < 2 {
		return nil
	}
	return lines[1:]
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
