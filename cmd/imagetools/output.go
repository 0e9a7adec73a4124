package main

import (
	"path/filepath"
	"strings"
)

// deriveOutput picks the output path: the explicit one when given, otherwise
// the input with its extension replaced by suffix (e.g. "_enhanced.png",
// ".svg").
func deriveOutput(explicit, input, suffix string) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}
