// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract locates fenced diagram blocks inside ordinary text.
// A block opens on a line whose trimmed value equals the open fence and
// closes on the next line whose trimmed value equals the close fence.
package extract

import (
	"iter"
	"strings"

	"github.com/pdiddy/mermaid-check/internal/textutil"
	"github.com/pdiddy/mermaid-check/pkg/types"
)

// Blocks yields the diagram blocks of text in order of appearance. The
// sequence is a single lazy pass over text; ranging over it again rescans
// from the start.
//
// Blocks whose content is only whitespace are skipped. A block still open
// when the input ends is dropped without error.
func Blocks(text string, fence types.FenceConfig) iter.Seq[types.DiagramBlock] {
	fence = fence.WithDefaults()
	return func(yield func(types.DiagramBlock) bool) {
		var (
			inside    bool
			startLine int
			acc       strings.Builder
		)
		lineNo := 0
		for raw := range strings.Lines(text) {
			lineNo++
			line := trimEOL(raw)
			trimmed := textutil.Trim(line)

			if trimmed == fence.Open {
				inside = true
				startLine = lineNo + 1
				acc.Reset()
				continue
			}

			if !inside {
				continue
			}

			if trimmed == fence.Close {
				inside = false
				content := textutil.Trim(acc.String())
				if content == "" {
					continue
				}
				if !yield(types.DiagramBlock{StartLine: startLine, Content: content}) {
					return
				}
				continue
			}

			acc.WriteString(line)
			acc.WriteByte('\n')
		}
	}
}

// Extract collects every block of text into a slice.
func Extract(text string, fence types.FenceConfig) []types.DiagramBlock {
	var blocks []types.DiagramBlock
	for b := range Blocks(text, fence) {
		blocks = append(blocks, b)
	}
	return blocks
}

// trimEOL strips a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
