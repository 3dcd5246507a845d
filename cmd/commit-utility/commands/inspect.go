// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/cmd/commit-utility/cli"
	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/lib/commitment"
)

// inspectParams holds the flags of the decode-and-render pipeline.
// The root command and the inspect subcommand bind separate instances
// of the same struct; export embeds it to share the input flags.
type inspectParams struct {
	Input       string `json:"input"       flag:"input,i"     desc:"input file path (default: stdin)"`
	Output      string `json:"output"      flag:"output,o"    desc:"output file path (default: stdout)"`
	Scheme      string `json:"scheme"      flag:"scheme"      desc:"commitment scheme: ipa, dory, or dynamic_dory (required)"`
	HexInput    bool   `json:"hex_input"   flag:"hex,x"       desc:"treat input as hex-encoded"`
	Compression string `json:"compression" flag:"compression" desc:"input compression: none, zstd, or lz4" default:"none"`
}

func inspectCommand() *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Decode a commitment artifact and render it as text",
		Description: `Decode a serialized table commitment artifact and render its full
structure as deterministic text: the commitment elements, the
per-column metadata with types and bounds, and the row range.

This is the default action: running commit-utility with no subcommand
is equivalent to running commit-utility inspect.`,
		Usage:  "commit-utility inspect [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runInspect(&params, args, logger)
		},
		Examples: []cli.Example{
			{
				Description: "Inspect an IPA commitment from a file",
				Command:     "commit-utility inspect --scheme ipa -i commitment.bin",
			},
			{
				Description: "Inspect a hex dump from stdin",
				Command:     "cat commitment.hex | commit-utility inspect --scheme dory --hex",
			},
			{
				Description: "Inspect a zstd-compressed artifact",
				Command:     "commit-utility inspect --scheme dynamic_dory --compression zstd -i commitment.bin.zst",
			},
		},
	}
}

// runInspect is the decode-and-render pipeline shared by the root
// command and the inspect subcommand: acquire input bytes, resolve the
// scheme, decode, render, emit. The first failure aborts the run and
// no later stage executes.
func runInspect(params *inspectParams, args []string, logger *slog.Logger) error {
	kind, err := validateUsage(params, args)
	if err != nil {
		return err
	}

	data, err := acquireInput(params.Input, params.HexInput, kind)
	if err != nil {
		return err
	}
	logger.Debug("artifact acquired", "bytes", len(data))

	scheme, err := commitment.ParseScheme(params.Scheme)
	if err != nil {
		return err
	}

	table, err := commitment.Decode(scheme, data)
	if err != nil {
		return err
	}

	return commitment.WriteOutput(params.Output, os.Stdout, []byte(table.Render()))
}

// validateUsage rejects positional arguments and resolves the
// compression flag. These are command line mistakes, not pipeline
// failures, so they report as plain usage errors.
func validateUsage(params *inspectParams, args []string) (compressionKind, error) {
	if len(args) > 0 {
		return 0, fmt.Errorf("unexpected argument %q", args[0])
	}
	return parseCompression(params.Compression)
}
