// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/cmd/commit-utility/cli"
	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/lib/version"
)

// rootParams extends the pipeline flags with --version, which short
// circuits the pipeline the way subcommandless CLI tools
// conventionally do.
type rootParams struct {
	inspectParams
	ShowVersion bool `json:"-" flag:"version" desc:"print version information and exit"`
}

// Root builds and returns the complete commit-utility command tree.
// The root command itself runs the decode-and-render pipeline, so the
// common invocation needs no subcommand.
func Root() *cli.Command {
	var params rootParams

	return &cli.Command{
		Name: "commit-utility",
		Description: `Diagnostic tool for table commitment artifacts.

Decode postcard-serialized table commitments produced by the proof of
SQL prover and render their structure: commitment elements, column
metadata with types and bounds, and the table row range.`,
		Usage:  "commit-utility [command] --scheme <name> [flags]",
		Params: func() any { return &params },
		Subcommands: []*cli.Command{
			inspectCommand(),
			exportCommand(),
			digestCommand(),
			schemesCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("commit-utility %s\n", version.Full())
					return nil
				},
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if params.ShowVersion {
				fmt.Printf("commit-utility %s\n", version.Full())
				return nil
			}
			return runInspect(&params.inspectParams, args, logger)
		},
		Examples: []cli.Example{
			{
				Description: "Render an IPA commitment",
				Command:     "commit-utility --scheme ipa -i commitment.bin",
			},
			{
				Description: "Render a Dory commitment from stdin to a file",
				Command:     "cat commitment.bin | commit-utility --scheme dory -o commitment.txt",
			},
			{
				Description: "Export a commitment as YAML",
				Command:     "commit-utility export --scheme dynamic_dory --format yaml -i commitment.bin",
			},
			{
				Description: "Identify an artifact by content hash",
				Command:     "commit-utility digest -i commitment.bin",
			},
		},
	}
}
