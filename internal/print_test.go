package internal

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/voxelforge/blockquery/query"
)

func TestFormatDiagnostics(t *testing.T) {
	color.NoColor = true // plain text for assertions
	defer func() { color.NoColor = false }()

	diagnostics := []Diagnostic{{
		Filename: "rules.bq",
		Line:     3,
		Query:    "stone gold",
		Err: &query.ParseError{
			Kind:     query.ErrUnknownBlock,
			Spec:     "stone gold",
			Fragment: "gold",
		},
	}}

	out := FormatDiagnostics(diagnostics)
	assert.Contains(t, out, "error: unknown-block")
	assert.Contains(t, out, "rules.bq:3")
	assert.Contains(t, out, "stone gold")
	assert.Contains(t, out, `no block called "gold"`)

	// caret sits under the offending fragment
	assert.Contains(t, out, "      ^^^^")
}

func TestCaretLine(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		fragment string
		want     string
	}{
		{name: "fragment at start", query: "gold stone", fragment: "gold", want: "^^^^"},
		{name: "fragment offset", query: "stone gold", fragment: "gold", want: "      ^^^^"},
		{name: "fragment missing", query: "abc", fragment: "zzz", want: "^^^"},
		{name: "empty fragment", query: "ab", fragment: "", want: "^^"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, caretLine(tt.query, tt.fragment))
		})
	}
}

func TestFormatDiagnostics_Empty(t *testing.T) {
	assert.Equal(t, "", FormatDiagnostics(nil))
	assert.False(t, strings.Contains(FormatDiagnostics(nil), "error"))
}
