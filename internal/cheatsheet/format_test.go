package cheatsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "markdown", "json"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}

	_, err := ParseFormat("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text, markdown, json")

	_, err = ParseFormat("TEXT")
	assert.Error(t, err)
}

func TestFormatNames(t *testing.T) {
	names := FormatNames()
	assert.Equal(t, []string{"text", "markdown", "json"}, names)

	names[0] = "mutated"
	assert.Equal(t, "text", FormatNames()[0])
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".txt", Text.Extension())
	assert.Equal(t, ".md", Markdown.Extension())
	assert.Equal(t, ".json", JSON.Extension())
	assert.Equal(t, ".txt", Format("bogus").Extension())
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		format Format
		want   string
	}{
		{name: "matching extension kept", path: "report.txt", format: Text, want: "report.txt"},
		{name: "mismatched extension replaced", path: "report.txt", format: Markdown, want: "report.md"},
		{name: "case-insensitive match kept", path: "REPORT.MD", format: Markdown, want: "REPORT.MD"},
		{name: "missing extension appended", path: "report", format: JSON, want: "report.json"},
		{name: "nested path", path: "out/dir/sheet.md", format: Text, want: "out/dir/sheet.txt"},
		{name: "only last extension replaced", path: "sheet.v1.txt", format: JSON, want: "sheet.v1.json"},
		{name: "dot in directory ignored", path: "out.d/sheet", format: Markdown, want: "out.d/sheet.md"},
		{name: "dotfile is a name", path: ".sheet", format: Text, want: ".sheet.txt"},
		{name: "default output", path: "builtins_cheatsheet.txt", format: JSON, want: "builtins_cheatsheet.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.path, tt.format))
		})
	}
}

func TestLayoutNormalized(t *testing.T) {
	l := Layout{Columns: 0, ColumnWidth: -1, Gap: -3}.normalized()
	assert.Equal(t, 4, l.Columns)
	assert.Equal(t, 0, l.ColumnWidth)
	assert.Equal(t, 0, l.Gap)
	assert.Equal(t, "=", l.RuleChar)
	assert.Equal(t, 80, l.RuleWidth)

	assert.Equal(t, DefaultLayout, DefaultLayout.normalized())
}
