/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/pictverify/pictverify/pkg/logging"
	"github.com/pictverify/pictverify/pkg/report"
)

// version is embedded at build time via ldflags.
var version = "dev"

// Version returns the harness version string.
func Version() string {
	return version
}

// Shared flags
var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Value:   report.DefaultPath,
	Usage:   "report output file path",
}

// New constructs the root pictverify command.
func New() *cli.Command {
	return &cli.Command{
		Name:    "pictverify",
		Usage:   "Validate Product entities against pairwise-generated test matrices",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.Setup(logging.Options{
				Debug: cmd.Bool("debug"),
				JSON:  cmd.Bool("log-json"),
			})
			return ctx, nil
		},
		Commands: []*cli.Command{
			runCmd(),
			checkCmd(),
		},
	}
}
