/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/pictverify/pictverify/pkg/matrix"
	"github.com/pictverify/pictverify/pkg/runner"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:                  "run",
		EnableShellCompletion: true,
		Usage:                 "Validate matrix files and write the run report",
		Description: `Processes every row of every matrix file: parses the raw tokens, builds a
Product, validates it against the constraint rule set, and classifies the
row PASS (no violations) or FAIL (any violation). Each classification is
checked against the file-level expectation; mismatches fail the run after
the report is written.

The report is a Markdown table at the --output path, one row per test
case in processed order, written exactly once per run.

# Examples

Derive expectations from file names:
  pictverify run -m pict/valid_test_cases.csv -m pict/invalid_title_cases.csv

Use an explicit suite manifest:
  pictverify run --suite suite.yaml -o test-reports/report.md

Restore the historical loose expectation check (any violation fails an
invalid row, even on an untargeted field):
  pictverify run --suite suite.yaml --any-violation`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "suite",
				Aliases: []string{"s"},
				Usage:   "YAML suite manifest listing matrix files and expectations",
			},
			&cli.StringSliceFlag{
				Name:    "matrix",
				Aliases: []string{"m"},
				Usage:   "matrix file path (repeatable); expectation derived from the file name",
			},
			&cli.BoolFlag{
				Name:  "any-violation",
				Usage: "accept any violation on invalid-matrix rows instead of requiring the targeted field's rule",
			},
			&cli.BoolFlag{
				Name:  "parallel",
				Usage: "evaluate matrix files concurrently (report order is preserved)",
			},
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			suitePath := cmd.String("suite")
			matrixPaths := cmd.StringSlice("matrix")

			var (
				suite *matrix.Suite
				err   error
			)
			switch {
			case suitePath != "" && len(matrixPaths) > 0:
				return fmt.Errorf("--suite and --matrix are mutually exclusive")
			case suitePath != "":
				suite, err = matrix.SuiteFromFile(suitePath)
			case len(matrixPaths) > 0:
				suite, err = matrix.SuiteFromPaths(matrixPaths)
			default:
				return fmt.Errorf("either --suite or --matrix is required")
			}
			if err != nil {
				return err
			}

			r := runner.New(
				runner.WithVersion(version),
				runner.WithStrictFieldMatch(!cmd.Bool("any-violation")),
				runner.WithParallel(cmd.Bool("parallel")),
			)

			result, runErr := r.Run(ctx, suite)
			if result == nil {
				// Fixture error or cancellation: nothing to report.
				return runErr
			}

			// The report is part of run success: write it before
			// surfacing any expectation error.
			outputPath := cmd.String("output")
			if err := result.Report.WriteFile(outputPath); err != nil {
				slog.Error("failed to write report", "error", err, "path", outputPath)
				return err
			}
			slog.Info("report written",
				"path", outputPath,
				"rows", result.Summary.Total)

			return runErr
		},
	}
}
