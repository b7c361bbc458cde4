package suite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"longestword/internal/logging"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

func TestRunnerBuiltinSuite(t *testing.T) {
	runner := NewRunner(logging.NewNop(), 1)
	report, err := runner.Run(context.Background(), Builtin())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Correct != len(Builtin()) || report.Wrong != 0 || !report.Passed() {
		t.Fatalf("unexpected totals: correct=%d wrong=%d", report.Correct, report.Wrong)
	}
	if _, err := uuid.Parse(report.RunID); err != nil {
		t.Fatalf("run id %q is not a uuid: %v", report.RunID, err)
	}
	if len(report.Results) != len(Builtin()) {
		t.Fatalf("expected %d results, got %d", len(Builtin()), len(report.Results))
	}
	if got := report.Results[1].GotLabel(); got != NoneLabel {
		t.Fatalf("empty input label = %q, want %q", got, NoneLabel)
	}
}

func TestRunnerCountsWrongAnswers(t *testing.T) {
	runner := &Runner{
		Selector: func(string) (string, bool) { return "nope", true },
		Logger:   logging.NewNop(),
	}
	cases := []Case{
		{Name: "right", Input: "x", Expected: "nope"},
		{Name: "wrong", Input: "y", Expected: "yes"},
		{Name: "absent", Input: "", WantNone: true},
	}
	report, err := runner.Run(context.Background(), cases)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Correct != 1 || report.Wrong != 2 || report.Passed() {
		t.Fatalf("unexpected totals: correct=%d wrong=%d", report.Correct, report.Wrong)
	}
	if !report.Results[0].Correct || report.Results[1].Correct {
		t.Fatalf("unexpected per-case results: %+v", report.Results)
	}
}

func TestRunnerRepeatAndTiming(t *testing.T) {
	calls := 0
	runner := &Runner{
		Selector: func(string) (string, bool) {
			calls++
			return "a", true
		},
		Repeat: 4,
		now:    fakeClock(time.Millisecond),
	}
	report, err := runner.Run(context.Background(), []Case{{Name: "a", Input: "a", Expected: "a"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 4 {
		t.Fatalf("expected 4 selector calls, got %d", calls)
	}
	// caseStart and caseEnd are one tick apart; the mean splits it by repeat.
	if got := report.Results[0].Elapsed; got != time.Millisecond/4 {
		t.Fatalf("mean elapsed = %v, want %v", got, time.Millisecond/4)
	}
	// start, caseStart, caseEnd, end: three ticks from start to end.
	if report.Elapsed != 3*time.Millisecond {
		t.Fatalf("total elapsed = %v, want 3ms", report.Elapsed)
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	runner := &Runner{
		Selector: func(string) (string, bool) {
			calls++
			cancel()
			return "", false
		},
	}
	cases := []Case{
		{Name: "first", WantNone: true},
		{Name: "second", WantNone: true},
	}
	report, err := runner.Run(ctx, cases)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 || len(report.Results) != 1 {
		t.Fatalf("expected one executed case, got calls=%d results=%d", calls, len(report.Results))
	}
}
