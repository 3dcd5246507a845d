// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/cmd/commit-utility/cli"
	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/lib/commitment"
)

type schemesParams struct {
	cli.JSONOutput
}

// schemeListing is one row of the schemes table.
type schemeListing struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases"`
	Leaf     string   `json:"leaf"`
	LeafSize int      `json:"leaf_size"`
}

func schemesCommand() *cli.Command {
	var params schemesParams

	return &cli.Command{
		Name:    "schemes",
		Summary: "List the supported commitment schemes",
		Description: `List the closed set of commitment schemes this tool can decode,
with the accepted --scheme spellings and the per-commitment leaf
encoding of each. Scheme names match case-insensitively.`,
		Usage:  "commit-utility schemes [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			listings := schemeListings()
			if done, err := params.EmitJSON(listings); done {
				return err
			}
			return writeSchemesTable(os.Stdout, listings)
		},
		Examples: []cli.Example{
			{
				Description: "List schemes as a table",
				Command:     "commit-utility schemes",
			},
			{
				Description: "List schemes as JSON",
				Command:     "commit-utility schemes --json",
			},
		},
	}
}

// schemeListings builds one listing per supported scheme, in the
// resolver's declaration order.
func schemeListings() []schemeListing {
	schemes := commitment.Schemes()
	listings := make([]schemeListing, 0, len(schemes))
	for _, scheme := range schemes {
		listings = append(listings, schemeListing{
			Name:     scheme.String(),
			Aliases:  scheme.Aliases(),
			Leaf:     scheme.LeafLabel(),
			LeafSize: scheme.LeafSize(),
		})
	}
	return listings
}

// writeSchemesTable renders the listings as an aligned text table.
func writeSchemesTable(w io.Writer, listings []schemeListing) error {
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tALIASES\tLEAF ENCODING")
	for _, listing := range listings {
		fmt.Fprintf(tw, "%s\t%s\t%s (%d bytes)\n",
			listing.Name, strings.Join(listing.Aliases, ", "), listing.Leaf, listing.LeafSize)
	}
	return tw.Flush()
}
