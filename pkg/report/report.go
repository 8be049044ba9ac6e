/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders run outcomes as a Markdown table document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	harnesserrors "github.com/pictverify/pictverify/pkg/errors"
	"github.com/pictverify/pictverify/pkg/token"
)

// DefaultPath is the report location relative to the working directory.
const DefaultPath = "test-reports/report.md"

// Result is the classification of one test case.
type Result string

// Result values.
const (
	ResultPass Result = "PASS"
	ResultFail Result = "FAIL"
)

// Row is one rendered test case: the source-file category tag, the raw
// input tokens, and the classification.
type Row struct {
	Category string
	Cells    []string // raw tokens, token.ColumnCount of them
	Result   Result
}

// Summary holds aggregate counts for a run.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Duration time.Duration
}

// Report is the ordered sequence of case outcomes for one run. It is
// built once, after all matrices are processed, and never mutated after
// writing.
type Report struct {
	RunID       uuid.UUID
	Version     string
	GeneratedAt time.Time
	Rows        []Row
	Summary     Summary
}

// Cell sanitizes a raw token for table rendering: the column delimiter
// becomes "/", newlines become spaces, and absent values render as the
// literal text "null".
func Cell(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return "null"
	}
	s = strings.ReplaceAll(s, "|", "/")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// Render produces the Markdown document: a metadata comment, the header
// row, the separator row, and one data row per case in processed order.
func (r *Report) Render() []byte {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<!-- pictverify %s | run %s | generated %s -->\n",
		r.Version, r.RunID, r.GeneratedAt.UTC().Format(time.RFC3339))

	sb.WriteString("| attribute |")
	for _, col := range token.Columns {
		sb.WriteString(" " + col + " |")
	}
	sb.WriteString(" result |\n")

	sb.WriteString("|-")
	for range token.Columns {
		sb.WriteString("|-")
	}
	sb.WriteString("|-|\n")

	for _, row := range r.Rows {
		sb.WriteString("| " + Cell(row.Category) + " |")
		for _, cell := range row.Cells {
			sb.WriteString(" " + Cell(cell) + " |")
		}
		sb.WriteString(" " + string(row.Result) + " |\n")
	}

	return []byte(sb.String())
}

// WriteFile renders the report and writes it to path, creating the parent
// directory if absent. A write failure is fatal to the run: success
// requires a written report.
func (r *Report) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return harnesserrors.Wrap(harnesserrors.ErrCodeReportIO, err,
				fmt.Sprintf("cannot create report directory %q", dir))
		}
	}
	if err := os.WriteFile(path, r.Render(), 0o644); err != nil {
		return harnesserrors.Wrap(harnesserrors.ErrCodeReportIO, err,
			fmt.Sprintf("cannot write report %q", path))
	}
	return nil
}
