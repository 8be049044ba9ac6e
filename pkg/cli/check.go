/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	harnesserrors "github.com/pictverify/pictverify/pkg/errors"
	"github.com/pictverify/pictverify/pkg/product"
	"github.com/pictverify/pictverify/pkg/rules"
	"github.com/pictverify/pictverify/pkg/token"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Validate a single matrix row and print its violations",
		Description: `Parses one row of cell tokens, builds a Product, and prints the full
violation set. Useful for diagnosing a single matrix row without running
a whole suite.

Tokens follow the fixed column order: title, keywords, description,
rating, price, quantity, status, weight, dimensions, dateAdded,
dateModified. Pass them as eleven arguments, or as a single tab-joined
argument (a raw matrix line).`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit non-zero when the row has violations (for CI pipelines)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()

			var cells []string
			if len(args) == 1 && strings.Contains(args[0], "\t") {
				cells = strings.Split(args[0], "\t")
			} else {
				cells = args
			}
			if len(cells) != token.ColumnCount {
				return harnesserrors.Newf(harnesserrors.ErrCodeInvalidInput,
					"expected %d cell tokens, got %d", token.ColumnCount, len(cells))
			}

			p := product.Build(token.Fields(cells))
			violations := rules.Validate(p)

			if len(violations) == 0 {
				fmt.Println("PASS")
				return nil
			}

			fmt.Printf("FAIL (%d violations)\n", len(violations))
			for _, v := range violations {
				fmt.Printf("  %s\n", v)
			}

			if cmd.Bool("fail-on-error") {
				return harnesserrors.Newf(harnesserrors.ErrCodeExpectation,
					"row has %d violations", len(violations))
			}
			return nil
		},
	}
}
