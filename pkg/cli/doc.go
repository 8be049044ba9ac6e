/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the pictverify tool.
//
// # Overview
//
// pictverify consumes pairwise (PICT-style) test matrices for the Product
// entity, validates every row against the constraint rule set, classifies
// each row PASS or FAIL, checks classifications against file-level
// expectations, and writes a Markdown run report.
//
// # Commands
//
// run - Validate matrix files and write the report:
//
//	pictverify run --matrix pict/valid_test_cases.csv --matrix pict/invalid_title_cases.csv
//	pictverify run --suite suite.yaml --output test-reports/report.md
//	pictverify run --suite suite.yaml --any-violation   # loose expectation check
//	pictverify run --suite suite.yaml --parallel        # concurrent per-file evaluation
//
// Matrix files are tab-separated with one header row. With --matrix, the
// expectation is derived from the file name: valid_* expects every row to
// pass, invalid_<field>_* expects every row to fail on <field>. With
// --suite, a YAML manifest lists files and expectations explicitly:
//
//	kind: matrixSuite
//	apiVersion: pictverify.io/v1alpha1
//	metadata:
//	  name: product-suite
//	spec:
//	  matrices:
//	    - path: pict/valid_test_cases.csv
//	      expect: pass
//	    - path: pict/invalid_title_cases.csv
//	      expect: fail
//	      field: title
//
// check - Validate a single row:
//
//	pictverify check "Widget" "kw" "desc" "3" "9.99" "5" "ACTIVE" "1.2" "10x10" \
//	    "2024-01-01T00:00:00Z" "2024-01-02T00:00:00Z"
//	pictverify check --fail-on-error "$(sed -n 2p pict/valid_test_cases.csv)"
//
// Accepts the eleven cell tokens as separate arguments, or a single
// tab-joined argument (one raw matrix line).
//
// # Global Flags
//
//	--debug       Enable debug logging
//	--log-json    Output logs in JSON format
//	--help, -h    Show command help
//	--version, -v Show version information
//
// # Environment Variables
//
//	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success: every row matched its expectation and the report was written
//	1  General error (fixture error, expectation mismatch, report I/O failure)
//	2  Context canceled or timeout
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/matrix - Matrix file reading and suite manifests
//   - pkg/token - Token parsing and sentinel substitution
//   - pkg/product - Product entity and builder
//   - pkg/rules - Constraint rule table and validation
//   - pkg/runner - Per-row run cycle and expectation checking
//   - pkg/report - Markdown report rendering
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/pictverify/pictverify/pkg/cli.version=1.0.0'"
package cli
