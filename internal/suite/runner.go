package suite

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"longestword/internal/logging"
	"longestword/internal/wordselect"
)

// Selector picks a word from text, reporting false when there is none.
type Selector func(text string) (string, bool)

// Result records one case execution.
type Result struct {
	Case    Case          `json:"case"`
	Got     string        `json:"got"`
	Found   bool          `json:"found"`
	Correct bool          `json:"correct"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// GotLabel renders the selector output for reports.
func (r Result) GotLabel() string {
	if !r.Found {
		return NoneLabel
	}
	return r.Got
}

// Report summarizes a suite run.
type Report struct {
	RunID   string        `json:"run_id"`
	Results []Result      `json:"results"`
	Correct int           `json:"correct"`
	Wrong   int           `json:"wrong"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Passed reports whether every case matched.
func (r Report) Passed() bool {
	return r.Wrong == 0
}

// Runner executes cases against a selector.
type Runner struct {
	// Selector defaults to wordselect.LongestWord.
	Selector Selector
	// Repeat is the number of calls per case; values below 1 mean 1.
	Repeat int
	Logger *slog.Logger

	now func() time.Time
}

// NewRunner returns a Runner using the package selector.
func NewRunner(logger *slog.Logger, repeat int) *Runner {
	return &Runner{
		Selector: wordselect.LongestWord,
		Repeat:   repeat,
		Logger:   logger,
	}
}

// Run executes every case in order. It stops early only when ctx is done.
func (r *Runner) Run(ctx context.Context, cases []Case) (Report, error) {
	selector := r.Selector
	if selector == nil {
		selector = wordselect.LongestWord
	}
	repeat := max(r.Repeat, 1)
	now := r.now
	if now == nil {
		now = time.Now
	}

	report := Report{RunID: uuid.NewString(), Results: make([]Result, 0, len(cases))}
	ctx = logging.WithRunID(ctx, report.RunID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(r.Logger, "suite"))
	logger.Debug("suite started", logging.Int("cases", len(cases)), logging.Int("repeat", repeat))

	start := now()
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			report.Elapsed = now().Sub(start)
			return report, err
		}

		var word string
		var found bool
		caseStart := now()
		for i := 0; i < repeat; i++ {
			word, found = selector(c.Input)
		}
		elapsed := now().Sub(caseStart) / time.Duration(repeat)

		result := Result{
			Case:    c,
			Got:     word,
			Found:   found,
			Correct: c.Matches(word, found),
			Elapsed: elapsed,
		}
		if result.Correct {
			report.Correct++
		} else {
			report.Wrong++
		}
		report.Results = append(report.Results, result)

		logger.Debug("case finished",
			logging.String(logging.FieldCase, c.Name),
			logging.String("got", result.GotLabel()),
			logging.Bool("correct", result.Correct),
			logging.Duration("elapsed", elapsed),
		)
	}
	report.Elapsed = now().Sub(start)

	attrs := []logging.Attr{
		logging.Int("correct", report.Correct),
		logging.Int("wrong", report.Wrong),
		logging.Duration("elapsed", report.Elapsed),
	}
	if report.Passed() {
		logger.Info("suite finished", logging.Args(attrs...)...)
	} else {
		logger.Warn("suite finished with wrong answers", logging.Args(attrs...)...)
	}
	return report, nil
}
