// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commitment

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/lib/postcard"
)

// Scheme identifies the commitment scheme that produced an artifact.
// The scheme is not recorded in the artifact itself; the caller must
// name it, and the choice determines how per-column commitment values
// are decoded.
type Scheme uint8

const (
	SchemeInnerProductArgument Scheme = iota
	SchemeDory
	SchemeDynamicDory
)

// Group element sizes in bytes. Inner product argument commitments
// are compressed Ristretto points; the Dory schemes commit into the
// target group GT of the BLS12-381 pairing, serialized compressed.
const (
	ristrettoSize = 32
	gtSize        = 576
)

// schemeEntry couples one scheme's naming with its decode behavior.
// The table is the single registration point: a new scheme is one new
// row plus its constant.
type schemeEntry struct {
	scheme    Scheme
	name      string
	aliases   []string // lowercase spellings accepted by ParseScheme
	leafLabel string   // group element type shown in output
	leafSize  int      // encoded group element size in bytes
	readLeaf  func(*postcard.Reader) ([]byte, error)
}

var schemeTable = []schemeEntry{
	{
		scheme:    SchemeInnerProductArgument,
		name:      "InnerProductArgument",
		aliases:   []string{"ipa", "innerproductargument"},
		leafLabel: "Ristretto",
		leafSize:  ristrettoSize,
		readLeaf:  readRistrettoElement,
	},
	{
		scheme:    SchemeDory,
		name:      "Dory",
		aliases:   []string{"dory"},
		leafLabel: "GT",
		leafSize:  gtSize,
		readLeaf:  readGTElement,
	},
	{
		scheme:    SchemeDynamicDory,
		name:      "DynamicDory",
		aliases:   []string{"dynamic_dory", "dynamic-dory"},
		leafLabel: "GT",
		leafSize:  gtSize,
		readLeaf:  readGTElement,
	},
}

// ParseScheme resolves a user-supplied scheme name. Matching is
// case-insensitive against each scheme's aliases. Unrecognized names
// produce an [ErrUnknownScheme] error carrying the original spelling.
func ParseScheme(name string) (Scheme, error) {
	lowered := strings.ToLower(name)
	for _, entry := range schemeTable {
		if slices.Contains(entry.aliases, lowered) {
			return entry.scheme, nil
		}
	}
	return 0, UnknownSchemeError(name)
}

// Schemes returns all supported schemes in declaration order.
func Schemes() []Scheme {
	schemes := make([]Scheme, len(schemeTable))
	for i, entry := range schemeTable {
		schemes[i] = entry.scheme
	}
	return schemes
}

// String returns the scheme's display name.
func (s Scheme) String() string {
	if entry := s.entry(); entry != nil {
		return entry.name
	}
	return fmt.Sprintf("Scheme(%d)", uint8(s))
}

// Aliases returns the lowercase spellings [ParseScheme] accepts for s.
func (s Scheme) Aliases() []string {
	if entry := s.entry(); entry != nil {
		return slices.Clone(entry.aliases)
	}
	return nil
}

// LeafLabel returns the display name of the scheme's group element
// type.
func (s Scheme) LeafLabel() string {
	if entry := s.entry(); entry != nil {
		return entry.leafLabel
	}
	return "unknown"
}

// LeafSize returns the encoded size in bytes of one commitment value.
func (s Scheme) LeafSize() int {
	if entry := s.entry(); entry != nil {
		return entry.leafSize
	}
	return 0
}

func (s Scheme) entry() *schemeEntry {
	for i := range schemeTable {
		if schemeTable[i].scheme == s {
			return &schemeTable[i]
		}
	}
	return nil
}

// readRistrettoElement reads one compressed Ristretto point: a
// fixed-size 32-byte array with no length prefix.
func readRistrettoElement(reader *postcard.Reader) ([]byte, error) {
	return reader.FixedBytes(ristrettoSize)
}

// readGTElement reads one compressed GT element: a length-prefixed
// byte sequence whose length must be exactly the compressed size.
func readGTElement(reader *postcard.Reader) ([]byte, error) {
	data, err := reader.Bytes()
	if err != nil {
		return nil, err
	}
	if len(data) != gtSize {
		return nil, fmt.Errorf("GT element is %d bytes, want %d", len(data), gtSize)
	}
	return data, nil
}
