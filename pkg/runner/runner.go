/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

// Package runner executes a matrix suite: it parses each row, builds the
// entity, validates it, classifies the outcome, and checks it against the
// file-level expectation.
//
// The Runner is an explicit context object constructed at run start and
// discarded at run end; there is no ambient global state. Files are
// processed sequentially by default. With parallelism enabled, files are
// evaluated concurrently with per-file buffers merged back in suite
// order, so the final report order is deterministic either way.
package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	harnesserrors "github.com/pictverify/pictverify/pkg/errors"
	"github.com/pictverify/pictverify/pkg/matrix"
	"github.com/pictverify/pictverify/pkg/product"
	"github.com/pictverify/pictverify/pkg/report"
	"github.com/pictverify/pictverify/pkg/rules"
	"github.com/pictverify/pictverify/pkg/token"
)

// Runner evaluates matrix suites against the Product rule set.
type Runner struct {
	// Version is the harness version stamped on the report.
	Version string

	// StrictFieldMatch requires invalid-matrix rows to violate the
	// targeted field's rule, not merely any rule.
	StrictFieldMatch bool

	// Parallel evaluates matrix files concurrently.
	Parallel bool
}

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithVersion returns an Option that sets the Runner version string.
func WithVersion(version string) Option {
	return func(r *Runner) {
		r.Version = version
	}
}

// WithStrictFieldMatch returns an Option that toggles the targeted-field
// expectation check.
func WithStrictFieldMatch(strict bool) Option {
	return func(r *Runner) {
		r.StrictFieldMatch = strict
	}
}

// WithParallel returns an Option that toggles concurrent per-file
// evaluation.
func WithParallel(parallel bool) Option {
	return func(r *Runner) {
		r.Parallel = parallel
	}
}

// New creates a new Runner with the provided options. Strict field
// matching is on by default.
func New(opts ...Option) *Runner {
	r := &Runner{StrictFieldMatch: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Outcome is the recorded result of one matrix row.
type Outcome struct {
	File       string
	Category   string
	RowNumber  int
	Cells      []string
	Violations []rules.Violation
	Result     report.Result
	Expected   report.Result
	Mismatch   bool
	Reason     string
}

// RunResult holds all recorded outcomes plus the rendered-once report.
type RunResult struct {
	RunID      uuid.UUID
	Outcomes   []Outcome
	Summary    report.Summary
	Mismatches int
	Report     *report.Report
}

// Run processes every file of the suite in order and classifies every
// row. It completes all rows and assembles the report even when
// expectation mismatches occur, then returns an expectation error so the
// caller can persist the report before failing the run. Fixture errors
// (unreadable or empty matrix files) abort immediately with a nil result.
func (r *Runner) Run(ctx context.Context, suite *matrix.Suite) (*RunResult, error) {
	start := time.Now()
	defer func() {
		runDuration.Observe(time.Since(start).Seconds())
	}()

	result := &RunResult{RunID: uuid.New()}

	perFile := make([][]Outcome, len(suite.Files))
	if r.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i, mf := range suite.Files {
			g.Go(func() error {
				outcomes, err := r.processFile(gctx, mf)
				if err != nil {
					return err
				}
				perFile[i] = outcomes
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, mf := range suite.Files {
			outcomes, err := r.processFile(ctx, mf)
			if err != nil {
				return nil, err
			}
			perFile[i] = outcomes
		}
	}

	// Merge in suite order; row order within a file is preserved.
	for _, outcomes := range perFile {
		for _, o := range outcomes {
			result.Outcomes = append(result.Outcomes, o)
			result.Summary.Total++
			switch o.Result {
			case report.ResultPass:
				result.Summary.Passed++
			case report.ResultFail:
				result.Summary.Failed++
			}
			if o.Mismatch {
				result.Mismatches++
			}
		}
	}
	result.Summary.Duration = time.Since(start)
	result.Report = r.buildReport(result)

	slog.Info("run completed",
		"run_id", result.RunID,
		"total", result.Summary.Total,
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"mismatches", result.Mismatches,
		"duration", result.Summary.Duration)

	if result.Mismatches > 0 {
		return result, harnesserrors.Newf(harnesserrors.ErrCodeExpectation,
			"%d of %d rows mismatched their file expectation",
			result.Mismatches, result.Summary.Total)
	}
	return result, nil
}

// processFile runs the per-row cycle for one matrix file: parse, build,
// validate, classify, record.
func (r *Runner) processFile(ctx context.Context, mf matrix.File) ([]Outcome, error) {
	fileStart := time.Now()
	defer func() {
		matrixFileDuration.WithLabelValues(mf.Category).Observe(time.Since(fileStart).Seconds())
	}()

	rows, err := matrix.ReadRows(mf.Path)
	if err != nil {
		return nil, err
	}
	slog.Debug("processing matrix file",
		"path", mf.Path,
		"category", mf.Category,
		"rows", len(rows))

	outcomes := make([]Outcome, 0, len(rows))
	for _, row := range rows {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		p := product.Build(token.Fields(row.Cells))
		violations := rules.Validate(p)

		o := Outcome{
			File:       mf.Path,
			Category:   mf.Category,
			RowNumber:  row.Number,
			Cells:      row.Cells,
			Violations: violations,
			Result:     classify(violations),
			Expected:   expectedResult(mf.Expect),
		}
		o.Mismatch, o.Reason = r.checkExpectation(mf, o)

		if o.Mismatch {
			expectationMismatchTotal.Inc()
			slog.Warn("expectation mismatch",
				"file", mf.Path,
				"row", row.Number,
				"expected", o.Expected,
				"actual", o.Result,
				"reason", o.Reason,
				"violations", violations)
		}
		rowsValidatedTotal.WithLabelValues(string(o.Result)).Inc()

		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

// absorbedByParser reports whether malformed tokens for the field degrade
// to absent before validation. For these fields the targeted rule cannot
// fire, so the strict check falls back to any-violation.
func absorbedByParser(field string) bool {
	return field == "status" || field == "dateAdded"
}

// checkExpectation compares a row's actual classification against its
// file-level expectation.
func (r *Runner) checkExpectation(mf matrix.File, o Outcome) (bool, string) {
	switch mf.Expect {
	case matrix.ExpectPass:
		if o.Result != report.ResultPass {
			return true, "expected zero violations"
		}
	case matrix.ExpectFail:
		if o.Result != report.ResultFail {
			return true, "expected at least one violation"
		}
		if r.StrictFieldMatch && !absorbedByParser(mf.Field) && !violatesField(o.Violations, mf.Field) {
			return true, "no violation on targeted field " + mf.Field
		}
	}
	return false, ""
}

func violatesField(violations []rules.Violation, field string) bool {
	for _, v := range violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func classify(violations []rules.Violation) report.Result {
	if len(violations) == 0 {
		return report.ResultPass
	}
	return report.ResultFail
}

func expectedResult(e matrix.Expectation) report.Result {
	if e == matrix.ExpectPass {
		return report.ResultPass
	}
	return report.ResultFail
}

// buildReport assembles the write-once report from recorded outcomes.
func (r *Runner) buildReport(result *RunResult) *report.Report {
	rep := &report.Report{
		RunID:       result.RunID,
		Version:     r.Version,
		GeneratedAt: time.Now(),
		Summary:     result.Summary,
	}
	for _, o := range result.Outcomes {
		rep.Rows = append(rep.Rows, report.Row{
			Category: o.Category,
			Cells:    o.Cells,
			Result:   o.Result,
		})
	}
	return rep
}
