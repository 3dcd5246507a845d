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
	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/lib/codec"
	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/lib/commitment"
	"gopkg.in/yaml.v3"
)

// exportParams extends the shared pipeline flags with the document
// format selection.
type exportParams struct {
	inspectParams
	Format string `json:"format" flag:"format,f" desc:"document format: json, yaml, or cbor" default:"json"`
}

func exportCommand() *cli.Command {
	var params exportParams

	return &cli.Command{
		Name:    "export",
		Summary: "Export a decoded commitment as a machine-readable document",
		Description: `Decode a commitment artifact and emit it as a structured document
instead of rendered text. JSON and YAML are human-readable; CBOR uses
Core Deterministic Encoding for a compact binary form.

Commitment bytes appear hex-encoded, and int128 bounds appear as
decimal strings so that no consumer needs 128-bit integer support.
All three formats are deterministic for identical input.`,
		Usage:  "commit-utility export [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runExport(&params, args, logger)
		},
		Examples: []cli.Example{
			{
				Description: "Export as indented JSON",
				Command:     "commit-utility export --scheme ipa -i commitment.bin",
			},
			{
				Description: "Export as YAML to a file",
				Command:     "commit-utility export --scheme dory --format yaml -i commitment.bin -o commitment.yaml",
			},
			{
				Description: "Export as deterministic CBOR",
				Command:     "commit-utility export --scheme dynamic_dory --format cbor -i commitment.bin -o commitment.cbor",
			},
		},
	}
}

func runExport(params *exportParams, args []string, logger *slog.Logger) error {
	encode, err := documentEncoder(params.Format)
	if err != nil {
		return err
	}
	kind, err := validateUsage(&params.inspectParams, args)
	if err != nil {
		return err
	}

	data, err := acquireInput(params.Input, params.HexInput, kind)
	if err != nil {
		return err
	}

	scheme, err := commitment.ParseScheme(params.Scheme)
	if err != nil {
		return err
	}

	table, err := commitment.Decode(scheme, data)
	if err != nil {
		return err
	}

	payload, err := encode(commitment.NewDocument(table))
	if err != nil {
		return fmt.Errorf("encode %s document: %w", params.Format, err)
	}
	logger.Debug("document encoded", "format", params.Format, "bytes", len(payload))

	return commitment.WriteOutput(params.Output, os.Stdout, payload)
}

// documentEncoder returns the marshaling function for a document
// format name. An unknown name is a usage error reported before any
// input is read.
func documentEncoder(format string) (func(any) ([]byte, error), error) {
	switch format {
	case "json":
		return func(v any) ([]byte, error) {
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return nil, err
			}
			return append(data, '\n'), nil
		}, nil
	case "yaml":
		return yaml.Marshal, nil
	case "cbor":
		return codec.Marshal, nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected json, yaml, or cbor)", format)
	}
}
