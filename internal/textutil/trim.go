// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil holds the white-space rules shared by extraction and
// validation.
package textutil

import (
	"strings"
	"unicode"
)

// byteOrderMark is treated as white space so files saved with a BOM match
// fence markers and type keywords on their first line.
const byteOrderMark = '\uFEFF'

// IsSpace reports whether r is Unicode white space or a byte order mark.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || r == byteOrderMark
}

// Trim returns s with leading and trailing white space removed, as defined
// by IsSpace.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}
