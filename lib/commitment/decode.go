// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commitment

import (
	"fmt"
	"math/big"

	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/lib/postcard"
)

// Decode parses a postcard-encoded table commitment artifact for the
// given scheme. The entire input must be consumed: trailing bytes
// after the final field are an error. Any malformation is returned as
// an [ErrDeserialization] error with the structural cause on the
// error chain.
//
// Decode panics if scheme is not one of the declared constants;
// callers obtain schemes from [ParseScheme].
func Decode(scheme Scheme, data []byte) (*TableCommitment, error) {
	entry := scheme.entry()
	if entry == nil {
		panic(fmt.Sprintf("commitment: Decode called with invalid scheme %d", scheme))
	}

	reader := postcard.NewReader(data)
	decoded, err := decodeBody(reader, entry)
	if err != nil {
		return nil, DeserializationError(err)
	}
	if err := reader.Done(); err != nil {
		return nil, DeserializationError(err)
	}
	decoded.Scheme = scheme
	return decoded, nil
}

// decodeBody reads the full artifact layout: the commitment sequence,
// the column metadata map, and the row range.
func decodeBody(reader *postcard.Reader, entry *schemeEntry) (*TableCommitment, error) {
	commitmentCount, err := reader.SeqLen()
	if err != nil {
		return nil, fmt.Errorf("commitment count: %w", err)
	}
	commitments := make([][]byte, 0, commitmentCount)
	for i := range commitmentCount {
		element, err := entry.readLeaf(reader)
		if err != nil {
			return nil, fmt.Errorf("commitment %d: %w", i, err)
		}
		commitments = append(commitments, element)
	}

	metadataCount, err := reader.SeqLen()
	if err != nil {
		return nil, fmt.Errorf("column metadata count: %w", err)
	}
	columns := make([]Column, 0, metadataCount)
	for i := range metadataCount {
		column, err := readColumn(reader)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		columns = append(columns, column)
	}

	start, err := reader.Uint64()
	if err != nil {
		return nil, fmt.Errorf("row range start: %w", err)
	}
	end, err := reader.Uint64()
	if err != nil {
		return nil, fmt.Errorf("row range end: %w", err)
	}

	return &TableCommitment{
		Commitments: commitments,
		Columns:     columns,
		Range:       RowRange{Start: start, End: end},
	}, nil
}

// readColumn reads one metadata map entry: the column identifier
// followed by its type and bounds.
func readColumn(reader *postcard.Reader) (Column, error) {
	name, err := readIdent(reader)
	if err != nil {
		return Column{}, err
	}
	columnType, err := readColumnType(reader)
	if err != nil {
		return Column{}, fmt.Errorf("%s: %w", name.Value, err)
	}
	bounds, err := readBounds(reader)
	if err != nil {
		return Column{}, fmt.Errorf("%s: %w", name.Value, err)
	}
	return Column{Name: name, Type: columnType, Bounds: bounds}, nil
}

// readIdent reads an identifier: its string value and an optional
// quote character.
func readIdent(reader *postcard.Reader) (Ident, error) {
	value, err := reader.String()
	if err != nil {
		return Ident{}, fmt.Errorf("identifier: %w", err)
	}
	quoted, err := reader.Option()
	if err != nil {
		return Ident{}, fmt.Errorf("quote style: %w", err)
	}
	if !quoted {
		return Ident{Value: value}, nil
	}
	quote, err := reader.Char()
	if err != nil {
		return Ident{}, fmt.Errorf("quote style: %w", err)
	}
	return Ident{Value: value, Quote: quote}, nil
}

// readColumnType reads the column type enum with its per-variant
// payload.
func readColumnType(reader *postcard.Reader) (ColumnType, error) {
	discriminant, err := reader.Discriminant()
	if err != nil {
		return ColumnType{}, fmt.Errorf("column type: %w", err)
	}

	switch kind := ColumnTypeKind(discriminant); {
	case discriminant > uint32(TypeVarBinary):
		return ColumnType{}, fmt.Errorf("invalid column type discriminant %d", discriminant)

	case kind == TypeDecimal75:
		precision, err := reader.Uint8()
		if err != nil {
			return ColumnType{}, fmt.Errorf("decimal precision: %w", err)
		}
		if precision > 75 {
			return ColumnType{}, fmt.Errorf("decimal precision %d exceeds 75", precision)
		}
		scale, err := reader.Int8()
		if err != nil {
			return ColumnType{}, fmt.Errorf("decimal scale: %w", err)
		}
		return ColumnType{Kind: kind, Precision: precision, Scale: scale}, nil

	case kind == TypeTimestampTZ:
		unit, err := reader.Discriminant()
		if err != nil {
			return ColumnType{}, fmt.Errorf("time unit: %w", err)
		}
		if unit > uint32(TimeUnitNanosecond) {
			return ColumnType{}, fmt.Errorf("invalid time unit discriminant %d", unit)
		}
		offset, err := reader.Int32()
		if err != nil {
			return ColumnType{}, fmt.Errorf("timezone offset: %w", err)
		}
		return ColumnType{Kind: kind, Unit: TimeUnit(unit), TimezoneOffset: offset}, nil

	default:
		return ColumnType{Kind: kind}, nil
	}
}

// readBounds reads the column bounds enum: the ordered-type
// discriminant, then for ordered types the bounds variant with its
// min/max payload.
func readBounds(reader *postcard.Reader) (ColumnBounds, error) {
	discriminant, err := reader.Discriminant()
	if err != nil {
		return ColumnBounds{}, fmt.Errorf("bounds: %w", err)
	}
	if discriminant > uint32(BoundsTimestampTZ) {
		return ColumnBounds{}, fmt.Errorf("invalid bounds discriminant %d", discriminant)
	}
	kind := BoundsKind(discriminant)
	if kind == BoundsNoOrder {
		return ColumnBounds{Kind: kind}, nil
	}

	variant, err := reader.Discriminant()
	if err != nil {
		return ColumnBounds{}, fmt.Errorf("bounds variant: %w", err)
	}
	if variant > uint32(BoundsSharp) {
		return ColumnBounds{}, fmt.Errorf("invalid bounds variant discriminant %d", variant)
	}
	bounds := ColumnBounds{Kind: kind, Variant: BoundsVariant(variant)}
	if bounds.Variant == BoundsEmpty {
		return bounds, nil
	}

	bounds.Min, err = readBoundValue(reader, kind)
	if err != nil {
		return ColumnBounds{}, fmt.Errorf("bounds min: %w", err)
	}
	bounds.Max, err = readBoundValue(reader, kind)
	if err != nil {
		return ColumnBounds{}, fmt.Errorf("bounds max: %w", err)
	}
	return bounds, nil
}

// readBoundValue reads one min or max value at the width the bounds
// kind dictates, widened to an arbitrary-precision integer.
func readBoundValue(reader *postcard.Reader, kind BoundsKind) (*big.Int, error) {
	switch kind {
	case BoundsUint8:
		value, err := reader.Uint8()
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetUint64(uint64(value)), nil
	case BoundsTinyInt:
		value, err := reader.Int8()
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(value)), nil
	case BoundsSmallInt:
		value, err := reader.Int16()
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(value)), nil
	case BoundsInt:
		value, err := reader.Int32()
		if err != nil {
			return nil, err
		}
		return big.NewInt(int64(value)), nil
	case BoundsBigInt, BoundsTimestampTZ:
		value, err := reader.Int64()
		if err != nil {
			return nil, err
		}
		return big.NewInt(value), nil
	case BoundsInt128:
		return reader.Int128()
	default:
		return nil, fmt.Errorf("bounds kind %d carries no values", kind)
	}
}
