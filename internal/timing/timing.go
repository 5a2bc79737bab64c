// Package timing measures the stages of a cheatsheet run.
package timing

import (
	"fmt"
	"strings"
	"time"
)

// Timer tracks execution time of pipeline stages
type Timer struct {
	start time.Time
	last  time.Time
	marks map[string]time.Duration
	order []string // Track order of marks for consistent output
	now   func() time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return newTimer(time.Now)
}

func newTimer(now func() time.Time) *Timer {
	start := now()
	return &Timer{
		start: start,
		last:  start,
		marks: make(map[string]time.Duration),
		now:   now,
	}
}

// Mark records the time spent since the previous mark under label
func (t *Timer) Mark(label string) time.Duration {
	current := t.now()
	stage := current.Sub(t.last)
	t.last = current
	if _, seen := t.marks[label]; !seen {
		t.order = append(t.order, label)
	}
	t.marks[label] += stage
	return stage
}

// Elapsed returns total elapsed time since timer creation
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Summary returns a formatted summary of all stages
func (t *Timer) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %.3fms", millis(t.Elapsed()))

	if len(t.order) > 0 {
		b.WriteString(" (")
		for i, label := range t.order {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %.3fms", label, millis(t.marks[label]))
		}
		b.WriteString(")")
	}

	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
