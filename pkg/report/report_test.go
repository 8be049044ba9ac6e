/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	harnesserrors "github.com/pictverify/pictverify/pkg/errors"
)

func TestCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Widget", want: "Widget"},
		{name: "absent renders null", in: "", want: "null"},
		{name: "whitespace renders null", in: "  ", want: "null"},
		{name: "pipe becomes slash", in: "a|b", want: "a/b"},
		{name: "newline becomes space", in: "a\nb", want: "a b"},
		{name: "trimmed", in: "  Widget  ", want: "Widget"},
		{name: "empty quotes kept literal", in: `""`, want: `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cell(tt.in))
		})
	}
}

func sampleRow(category string, result Result) Row {
	return Row{
		Category: category,
		Cells: []string{
			"Widget", "kw", "desc", "3", "9.99", "5",
			"ACTIVE", "1.2", "10x10", "2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z",
		},
		Result: result,
	}
}

// Three pass rows and two fail rows render as one metadata comment, one
// header, one separator, and five data rows with five result cells.
func TestRender(t *testing.T) {
	r := &Report{
		RunID:       uuid.New(),
		Version:     "test",
		GeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Rows: []Row{
			sampleRow("valid", ResultPass),
			sampleRow("valid", ResultPass),
			sampleRow("valid", ResultPass),
			sampleRow("title", ResultFail),
			sampleRow("price", ResultFail),
		},
	}

	lines := strings.Split(strings.TrimRight(string(r.Render()), "\n"), "\n")
	require.Len(t, lines, 8)

	assert.True(t, strings.HasPrefix(lines[0], "<!--"))
	assert.Equal(t,
		"| attribute | title | keywords | description | rating | price | quantity | status | weight | dimensions | dateAdded | dateModified | result |",
		lines[1])
	assert.Equal(t, "|-|-|-|-|-|-|-|-|-|-|-|-|-|", lines[2])

	assert.Equal(t, 3, strings.Count(string(r.Render()), "| PASS |"))
	assert.Equal(t, 2, strings.Count(string(r.Render()), "| FAIL |"))

	// Data rows carry the category tag first and the result last.
	assert.True(t, strings.HasPrefix(lines[3], "| valid |"))
	assert.True(t, strings.HasSuffix(lines[6], "| FAIL |"))
}

func TestRenderSanitizesCells(t *testing.T) {
	row := sampleRow("valid", ResultPass)
	row.Cells[0] = "Wid|get\nX"
	row.Cells[1] = ""

	r := &Report{Rows: []Row{row}}
	out := string(r.Render())
	assert.Contains(t, out, "| Wid/get X |")
	assert.Contains(t, out, "| null |")
	assert.NotContains(t, out, "Wid|get")
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test-reports", "report.md")

	r := &Report{
		RunID: uuid.New(),
		Rows:  []Row{sampleRow("valid", ResultPass)},
	}
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| attribute |")

	// Directory creation is idempotent: a second write succeeds.
	require.NoError(t, r.WriteFile(path))
}

func TestWriteFileFailureIsFatal(t *testing.T) {
	r := &Report{RunID: uuid.New()}

	// Parent path is a file, so MkdirAll must fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := r.WriteFile(filepath.Join(blocker, "sub", "report.md"))
	require.Error(t, err)
	assert.True(t, harnesserrors.HasCode(err, harnesserrors.ErrCodeReportIO))
}
