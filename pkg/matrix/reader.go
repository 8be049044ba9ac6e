/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

// Package matrix reads combinatorial test-matrix files and the suite
// manifest that names them.
//
// Matrix files are tab-separated, one header row (ignored) followed by
// data rows of exactly eleven columns in fixed order: title, keywords,
// description, rating, price, quantity, status, weight, dimensions,
// dateAdded, dateModified. PICT on Windows commonly writes UTF-16 or
// BOM-prefixed output, so readers decode through a BOM-aware transformer.
package matrix

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	harnesserrors "github.com/pictverify/pictverify/pkg/errors"
	"github.com/pictverify/pictverify/pkg/token"
)

// Row is one data row of a matrix file.
type Row struct {
	// Number is the 1-based data row number (header excluded).
	Number int

	// Cells holds the raw cell tokens, exactly token.ColumnCount of them.
	// Missing trailing cells are padded empty, which parses as absent.
	Cells []string
}

// ReadRows reads all data rows of the matrix file at path. The header row
// is skipped, blank lines are ignored. A file that yields zero data rows
// is a fixture error: it signals a broken fixture, not zero test cases.
func ReadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, harnesserrors.Wrap(harnesserrors.ErrCodeFixture, err,
			fmt.Sprintf("cannot open matrix file %q", path))
	}
	defer f.Close()

	// UTF-16 input is decoded by BOM; UTF-8 with or without BOM otherwise.
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(f, decoder))

	var (
		rows   []Row
		lineNo int
	)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lineNo++
		if lineNo == 1 {
			// Header row.
			continue
		}

		cells := strings.Split(line, "\t")
		if len(cells) > token.ColumnCount {
			return nil, harnesserrors.Newf(harnesserrors.ErrCodeFixture,
				"matrix file %q row %d has %d columns, expected at most %d",
				path, lineNo-1, len(cells), token.ColumnCount)
		}
		for len(cells) < token.ColumnCount {
			cells = append(cells, "")
		}
		rows = append(rows, Row{Number: lineNo - 1, Cells: cells})
	}
	if err := scanner.Err(); err != nil {
		return nil, harnesserrors.Wrap(harnesserrors.ErrCodeFixture, err,
			fmt.Sprintf("cannot read matrix file %q", path))
	}

	if len(rows) == 0 {
		return nil, harnesserrors.Newf(harnesserrors.ErrCodeFixture,
			"matrix file %q yielded zero data rows", path)
	}
	return rows, nil
}
