// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"slices"
	"strings"
	"testing"
)

func TestSchemeListings(t *testing.T) {
	listings := schemeListings()

	want := []schemeListing{
		{Name: "InnerProductArgument", Aliases: []string{"ipa", "innerproductargument"}, Leaf: "Ristretto", LeafSize: 32},
		{Name: "Dory", Aliases: []string{"dory"}, Leaf: "GT", LeafSize: 576},
		{Name: "DynamicDory", Aliases: []string{"dynamic_dory", "dynamic-dory"}, Leaf: "GT", LeafSize: 576},
	}
	if len(listings) != len(want) {
		t.Fatalf("len(listings) = %d, want %d", len(listings), len(want))
	}
	for i, expected := range want {
		got := listings[i]
		if got.Name != expected.Name || got.Leaf != expected.Leaf || got.LeafSize != expected.LeafSize {
			t.Errorf("listing %d = %+v, want %+v", i, got, expected)
		}
		if !slices.Equal(got.Aliases, expected.Aliases) {
			t.Errorf("listing %d aliases = %v, want %v", i, got.Aliases, expected.Aliases)
		}
	}
}

func TestWriteSchemesTable(t *testing.T) {
	var out strings.Builder
	if err := writeSchemesTable(&out, schemeListings()); err != nil {
		t.Fatalf("writeSchemesTable: %v", err)
	}

	table := out.String()
	for _, want := range []string{
		"NAME",
		"ALIASES",
		"LEAF ENCODING",
		"InnerProductArgument",
		"ipa, innerproductargument",
		"Ristretto (32 bytes)",
		"dynamic_dory, dynamic-dory",
		"GT (576 bytes)",
	} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q\n\nfull table:\n%s", want, table)
		}
	}
}
