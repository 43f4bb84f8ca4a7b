// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"ascii white space", " \t```mermaid\r\n", "```mermaid"},
		{"leading byte order mark", "\uFEFF```mermaid", "```mermaid"},
		{"no-break and ideographic spaces", "\u00a0graph TD\u3000", "graph TD"},
		{"vertical tab and form feed", "\v\fpie\v", "pie"},
		{"inner space kept", " a  b ", "a  b"},
		{"only white space", "\uFEFF  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Trim(tt.in))
		})
	}
}
