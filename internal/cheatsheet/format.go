// Package cheatsheet renders grouped builtin names as a reference document
// and writes it to disk.
package cheatsheet

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output encoding.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	JSON     Format = "json"
)

var formats = []Format{Text, Markdown, JSON}

var extensions = map[Format]string{
	Text:     ".txt",
	Markdown: ".md",
	JSON:     ".json",
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// FormatNames returns the supported format names as strings.
func FormatNames() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (expected one of %s)", s, strings.Join(FormatNames(), ", "))
}

// orText maps unknown formats to Text.
func (f Format) orText() Format {
	if _, ok := extensions[f]; ok {
		return f
	}
	return Text
}

// Extension returns the file extension for f, including the dot.
// Unknown formats get the text extension.
func (f Format) Extension() string {
	return extensions[f.orText()]
}

// NormalizePath replaces the extension of path with the one required by f when
// the two differ (case-insensitively). Paths without an extension get one.
func NormalizePath(path string, f Format) string {
	want := f.Extension()
	ext := filepath.Ext(path)
	if base := filepath.Base(path); strings.LastIndex(base, ".") <= 0 {
		// ".profile" is a name, not an extension.
		ext = ""
	}
	if strings.EqualFold(ext, want) {
		return path
	}
	return strings.TrimSuffix(path, ext) + want
}

// Layout holds the column layout shared by the text and markdown encodings.
type Layout struct {
	Columns     int
	ColumnWidth int
	Gap         int
	RuleChar    string
	RuleWidth   int
}

// DefaultLayout is four 20-wide columns separated by two spaces, under an
// 80-wide rule of '='.
var DefaultLayout = Layout{
	Columns:     4,
	ColumnWidth: 20,
	Gap:         2,
	RuleChar:    "=",
	RuleWidth:   80,
}

func (l Layout) normalized() Layout {
	if l.Columns <= 0 {
		l.Columns = DefaultLayout.Columns
	}
	if l.ColumnWidth < 0 {
		l.ColumnWidth = 0
	}
	if l.Gap < 0 {
		l.Gap = 0
	}
	if l.RuleChar == "" {
		l.RuleChar = DefaultLayout.RuleChar
	}
	if l.RuleWidth <= 0 {
		l.RuleWidth = DefaultLayout.RuleWidth
	}
	return l
}
