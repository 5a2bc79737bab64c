package cheatsheet

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/NikitaCOEUR/builtinsheet/internal/builtins"
	"github.com/NikitaCOEUR/builtinsheet/internal/derrors"
)

// TotalLabel prefixes the trailer line.
const TotalLabel = "Total builtins: "

// Options controls rendering.
type Options struct {
	Format Format
	// Zero value means DefaultLayout.
	Layout       Layout
	IncludeTotal bool
	// Header is an optional text/template placed above the groups.
	// Ignored by the JSON encoding.
	Header string
}

// Render encodes grouped according to opts. Unknown formats render as text.
// The trailer and header are never added to JSON output.
func Render(grouped builtins.Grouped, opts Options) (string, error) {
	format := opts.Format.orText()
	layout := opts.Layout
	if layout == (Layout{}) {
		layout = DefaultLayout
	}
	layout = layout.normalized()

	if format == JSON {
		return renderJSON(grouped)
	}

	var sections []string
	if opts.Header != "" {
		header, err := renderHeader(opts.Header, headerData{
			Total:  grouped.Total(),
			Groups: len(grouped),
			Keys:   grouped.Keys(),
			Format: string(format),
		})
		if err != nil {
			return "", derrors.NewFormatError(string(format), "failed to render header", err)
		}
		if header != "" {
			sections = append(sections, header)
		}
	}

	var body []string
	switch format {
	case Markdown:
		body = markdownLines(grouped, layout)
	default:
		body = textLines(grouped, layout)
	}
	if len(body) > 0 {
		sections = append(sections, strings.Join(body, "\n"))
	}

	if opts.IncludeTotal {
		sections = append(sections, fmt.Sprintf("%s%d", TotalLabel, grouped.Total()))
	}

	if len(sections) == 0 {
		return "", nil
	}
	return strings.Join(sections, "\n\n") + "\n", nil
}

func textLines(grouped builtins.Grouped, l Layout) []string {
	rule := strings.Repeat(l.RuleChar, l.RuleWidth)
	var lines []string
	for _, grp := range grouped {
		lines = append(lines, rule, grp.Key, rule)
		lines = append(lines, columnRows(grp.Names, l)...)
	}
	return lines
}

func markdownLines(grouped builtins.Grouped, l Layout) []string {
	var lines []string
	for _, grp := range grouped {
		lines = append(lines, "## "+grp.Key, "```text")
		lines = append(lines, columnRows(grp.Names, l)...)
		lines = append(lines, "```")
	}
	return lines
}

// columnRows lays names out l.Columns per row, each padded to l.ColumnWidth.
// Longer names are kept whole.
func columnRows(names []string, l Layout) []string {
	gap := strings.Repeat(" ", l.Gap)
	rows := make([]string, 0, (len(names)+l.Columns-1)/l.Columns)
	for i := 0; i < len(names); i += l.Columns {
		end := min(i+l.Columns, len(names))
		cells := make([]string, 0, end-i)
		for _, name := range names[i:end] {
			cells = append(cells, runewidth.FillRight(name, l.ColumnWidth))
		}
		rows = append(rows, strings.Join(cells, gap))
	}
	return rows
}

func renderJSON(grouped builtins.Grouped) (string, error) {
	// encoding/json writes map keys in sorted order, which matches group order.
	data, err := json.MarshalIndent(grouped.Map(), "", "  ")
	if err != nil {
		return "", derrors.NewFormatError(string(JSON), "failed to encode groups", err)
	}
	return string(data) + "\n", nil
}
