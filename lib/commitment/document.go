// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commitment

import "encoding/hex"

// Document is the export representation of a decoded commitment,
// shared by the JSON, YAML, and CBOR encodings. All fields are plain
// strings and integers with a fixed order, so every encoding of the
// same decoded artifact is deterministic. Commitment values are
// lowercase hex; bounds are decimal strings because Int128 values
// exceed the integer range JSON consumers can rely on.
type Document struct {
	Scheme      string           `json:"scheme"      yaml:"scheme"`
	Range       RangeDocument    `json:"range"       yaml:"range"`
	Commitments []string         `json:"commitments" yaml:"commitments"`
	Columns     []ColumnDocument `json:"columns"     yaml:"columns"`
}

// RangeDocument is the exported row span.
type RangeDocument struct {
	Start uint64 `json:"start" yaml:"start"`
	End   uint64 `json:"end"   yaml:"end"`
	Rows  uint64 `json:"rows"  yaml:"rows"`
}

// ColumnDocument is one exported column metadata entry.
type ColumnDocument struct {
	Name   string         `json:"name"            yaml:"name"`
	Quote  string         `json:"quote,omitempty" yaml:"quote,omitempty"`
	Type   TypeDocument   `json:"type"            yaml:"type"`
	Bounds BoundsDocument `json:"bounds"          yaml:"bounds"`
}

// TypeDocument is an exported column type. Precision and Scale are
// present only for Decimal75; Unit and Timezone only for TimestampTZ.
type TypeDocument struct {
	Kind      string `json:"kind"                yaml:"kind"`
	Precision *uint8 `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale     *int8  `json:"scale,omitempty"     yaml:"scale,omitempty"`
	Unit      string `json:"unit,omitempty"      yaml:"unit,omitempty"`
	Timezone  string `json:"timezone,omitempty"  yaml:"timezone,omitempty"`
}

// BoundsDocument is an exported bounds value. Variant is empty for
// NoOrder; Min and Max are present only for Bounded and Sharp.
type BoundsDocument struct {
	Kind    string `json:"kind"              yaml:"kind"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Min     string `json:"min,omitempty"     yaml:"min,omitempty"`
	Max     string `json:"max,omitempty"     yaml:"max,omitempty"`
}

// NewDocument builds the export representation of a decoded
// commitment.
func NewDocument(t *TableCommitment) *Document {
	commitments := make([]string, len(t.Commitments))
	for i, element := range t.Commitments {
		commitments[i] = hex.EncodeToString(element)
	}

	columns := make([]ColumnDocument, len(t.Columns))
	for i, column := range t.Columns {
		columns[i] = ColumnDocument{
			Name:   column.Name.Value,
			Quote:  quoteString(column.Name.Quote),
			Type:   newTypeDocument(column.Type),
			Bounds: newBoundsDocument(column.Bounds),
		}
	}

	return &Document{
		Scheme: t.Scheme.String(),
		Range: RangeDocument{
			Start: t.Range.Start,
			End:   t.Range.End,
			Rows:  t.Range.Rows(),
		},
		Commitments: commitments,
		Columns:     columns,
	}
}

func quoteString(quote rune) string {
	if quote == 0 {
		return ""
	}
	return string(quote)
}

func newTypeDocument(columnType ColumnType) TypeDocument {
	document := TypeDocument{Kind: columnType.Kind.String()}
	switch columnType.Kind {
	case TypeDecimal75:
		precision := columnType.Precision
		scale := columnType.Scale
		document.Precision = &precision
		document.Scale = &scale
	case TypeTimestampTZ:
		document.Unit = columnType.Unit.String()
		document.Timezone = FormatTimezoneOffset(columnType.TimezoneOffset)
	}
	return document
}

func newBoundsDocument(bounds ColumnBounds) BoundsDocument {
	document := BoundsDocument{Kind: bounds.Kind.String()}
	if bounds.Kind == BoundsNoOrder {
		return document
	}
	document.Variant = bounds.Variant.String()
	if bounds.Variant == BoundsEmpty {
		return document
	}
	if bounds.Min != nil {
		document.Min = bounds.Min.String()
	}
	if bounds.Max != nil {
		document.Max = bounds.Max.String()
	}
	return document
}
