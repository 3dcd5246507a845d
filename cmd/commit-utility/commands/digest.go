// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/cmd/commit-utility/cli"
	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/lib/commitment"
	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/lib/digest"
)

// digestParams holds the digest flags. The scheme is deliberately
// absent: digests identify the artifact bytes, not their decoding.
type digestParams struct {
	cli.JSONOutput
	Input       string `json:"input"       flag:"input,i"     desc:"input file path (default: stdin)"`
	Output      string `json:"output"      flag:"output,o"    desc:"output file path (default: stdout)"`
	HexInput    bool   `json:"hex_input"   flag:"hex,x"       desc:"treat input as hex-encoded"`
	Compression string `json:"compression" flag:"compression" desc:"input compression: none, zstd, or lz4" default:"none"`
}

// digestDocument is the --json form of a digest report.
type digestDocument struct {
	BLAKE3 string `json:"blake3"`
	SHA256 string `json:"sha256"`
	Size   int    `json:"size"`
}

func digestCommand() *cli.Command {
	var params digestParams

	return &cli.Command{
		Name:    "digest",
		Summary: "Print content digests identifying a commitment artifact",
		Description: `Compute BLAKE3 and SHA-256 digests of the artifact bytes, plus the
byte count. Two systems hold the same commitment exactly when their
digests agree, so this identifies artifacts across databases and
archives without decoding them.

The hashes are unkeyed: output matches b3sum and sha256sum on the
same bytes. With --hex or --compression, the digests cover the
decoded or decompressed bytes, the same bytes the other commands
would decode.`,
		Usage:  "commit-utility digest [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runDigest(&params, args, logger)
		},
		Examples: []cli.Example{
			{
				Description: "Digest an artifact file",
				Command:     "commit-utility digest -i commitment.bin",
			},
			{
				Description: "Digest from stdin as JSON",
				Command:     "cat commitment.bin | commit-utility digest --json",
			},
		},
	}
}

func runDigest(params *digestParams, args []string, logger *slog.Logger) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	kind, err := parseCompression(params.Compression)
	if err != nil {
		return err
	}

	data, err := acquireInput(params.Input, params.HexInput, kind)
	if err != nil {
		return err
	}

	report := digest.Compute(data)
	logger.Debug("artifact hashed", "bytes", report.Size)

	var payload []byte
	if params.OutputJSON {
		payload, err = json.MarshalIndent(digestDocument{
			BLAKE3: digest.Format(report.BLAKE3),
			SHA256: digest.Format(report.SHA256),
			Size:   report.Size,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode digest document: %w", err)
		}
		payload = append(payload, '\n')
	} else {
		payload = []byte(fmt.Sprintf("blake3: %s\nsha256: %s\nsize: %d bytes\n",
			digest.Format(report.BLAKE3), digest.Format(report.SHA256), report.Size))
	}

	return commitment.WriteOutput(params.Output, os.Stdout, payload)
}
