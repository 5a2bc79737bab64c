//go:build dev

// Package trace provides runtime tracing for development builds.
//
// Usage:
//
//	go build -tags dev ./cmd/builtinsheet
//	BUILTINSHEET_TRACE=trace.out builtinsheet cheatsheet -f markdown
//	go tool trace trace.out
package trace

import (
	"context"
	"fmt"
	"os"
	"runtime/trace"
)

// EnvVar names the trace output file.
const EnvVar = "BUILTINSHEET_TRACE"

var active bool

// Init starts tracing when BUILTINSHEET_TRACE holds a file path.
// The returned function stops tracing and must be deferred.
func Init() func() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return func() {}
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "builtinsheet: failed to create trace file %s: %v\n", path, err)
		return func() {}
	}
	if err := trace.Start(f); err != nil {
		fmt.Fprintf(os.Stderr, "builtinsheet: failed to start trace: %v\n", err)
		_ = f.Close()
		return func() {}
	}

	active = true
	return func() {
		trace.Stop()
		active = false
		_ = f.Close()
	}
}

// WithRegion runs f inside a named region.
func WithRegion(ctx context.Context, name string, f func()) {
	if !active {
		f()
		return
	}
	trace.WithRegion(ctx, name, f)
}
