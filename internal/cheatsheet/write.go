package cheatsheet

import (
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/builtinsheet/internal/builtins"
	"github.com/NikitaCOEUR/builtinsheet/internal/derrors"
	"github.com/NikitaCOEUR/builtinsheet/internal/logger"
	"github.com/NikitaCOEUR/builtinsheet/internal/timing"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteOptions configures Write.
type WriteOptions struct {
	Options

	// Source supplies candidate names. Nil means builtins.Universe.
	Source builtins.Source

	// Names, when non-nil, replaces Source. The document is then always laid
	// out as text, whatever Options.Format says, and the trailer follows
	// IncludeTotal alone.
	Names []string

	Logger *logger.Logger
}

// Result describes a written cheatsheet.
type Result struct {
	// Path is the cleaned path the document was written to.
	Path string
	// Grouped holds the names exactly as rendered into the document.
	Grouped builtins.Grouped
}

// Write renders the cheatsheet and writes it to path, creating missing parent
// directories and replacing any existing file.
func Write(path string, opts WriteOptions) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	timer := timing.NewTimer()
	path = filepath.Clean(path)

	renderOpts := opts.Options
	var names []string
	if opts.Names != nil {
		names = builtins.FilterSort(opts.Names)
		renderOpts.Format = Text
	} else {
		names = builtins.List(opts.Source)
	}
	timer.Mark("list")

	grouped := builtins.GroupNames(names)
	timer.Mark("group")

	content, err := Render(grouped, renderOpts)
	if err != nil {
		return nil, err
	}
	timer.Mark("render")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, derrors.NewWriteError(path, "failed to create output directory", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return nil, derrors.NewWriteError(path, "failed to write cheatsheet", err)
	}
	timer.Mark("write")

	log.Debug().
		Str("path", path).
		Str("format", string(renderOpts.Format.orText())).
		Bool("override", opts.Names != nil).
		Int("names", len(names)).
		Int("groups", len(grouped)).
		Strs("keys", grouped.Keys()).
		Dur("elapsed_ms", timer.Elapsed()).
		Str("timing", timer.Summary()).
		Msg("Cheatsheet written")

	return &Result{Path: path, Grouped: grouped}, nil
}
