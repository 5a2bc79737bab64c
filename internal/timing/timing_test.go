package timing

import (
	"strings"
	"testing"
	"time"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	current := time.Unix(0, 0)
	return func() time.Time {
		now := current
		current = current.Add(step)
		return now
	}
}

func TestTimer_StageDurations(t *testing.T) {
	timer := newTimer(fakeClock(2 * time.Millisecond))

	if d := timer.Mark("list"); d != 2*time.Millisecond {
		t.Errorf("list stage: expected 2ms, got %v", d)
	}
	if d := timer.Mark("group"); d != 2*time.Millisecond {
		t.Errorf("group stage: expected 2ms, got %v", d)
	}

	if summary := timer.Summary(); !strings.Contains(summary, "list: 2.000ms, group: 2.000ms") {
		t.Errorf("unexpected summary: %s", summary)
	}
}

func TestTimer_RepeatedLabelAccumulates(t *testing.T) {
	timer := newTimer(fakeClock(time.Millisecond))

	timer.Mark("render")
	timer.Mark("write")
	timer.Mark("render")

	summary := timer.Summary()
	if !strings.Contains(summary, "(render: 2.000ms, write: 1.000ms)") {
		t.Errorf("render should accumulate once, in first-mark order, got: %s", summary)
	}
}

func TestTimer_Summary(t *testing.T) {
	timer := newTimer(fakeClock(time.Millisecond))
	timer.Mark("step1")
	timer.Mark("step2")

	summary := timer.Summary()

	for _, want := range []string{"Total:", "step1: 1.000ms", "step2: 1.000ms"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary should contain %q, got: %s", want, summary)
		}
	}
}

func TestTimer_SummaryNoMarks(t *testing.T) {
	timer := NewTimer()
	summary := timer.Summary()

	if !strings.HasPrefix(summary, "Total:") {
		t.Errorf("Summary should start with 'Total:', got: %s", summary)
	}
	if strings.Contains(summary, "(") {
		t.Errorf("Summary without marks should not list stages, got: %s", summary)
	}
}

func TestTimer_Elapsed(t *testing.T) {
	timer := NewTimer()
	time.Sleep(time.Millisecond)
	if timer.Elapsed() < time.Millisecond {
		t.Errorf("Elapsed should be at least 1ms, got %v", timer.Elapsed())
	}
}
