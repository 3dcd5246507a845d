// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commitment

import (
	"fmt"
	"math/big"
)

// TableCommitment is a decoded table commitment artifact: one group
// element and one metadata entry per committed column, plus the row
// span the commitment covers. Commitments and column metadata are
// stored exactly as ordered in the artifact. A well-formed artifact
// has equal counts, but the two sequences are encoded independently
// and are exposed independently so malformed producers can be
// diagnosed.
type TableCommitment struct {
	Scheme      Scheme
	Commitments [][]byte
	Columns     []Column
	Range       RowRange
}

// Column pairs a column identifier with its commitment metadata.
type Column struct {
	Name   Ident
	Type   ColumnType
	Bounds ColumnBounds
}

// RowRange is the half-open span of table rows a commitment covers.
type RowRange struct {
	Start uint64
	End   uint64
}

// Rows returns the number of rows in the span. An inverted span
// (End < Start) cannot be produced by a correct producer but can
// appear in a malformed artifact; it reports zero rows.
func (r RowRange) Rows() uint64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Ident is a SQL identifier with an optional quote character.
type Ident struct {
	Value string
	Quote rune // 0 when the identifier is unquoted
}

// String renders the identifier as it would appear in SQL: wrapped in
// its quote character when quoted, bare otherwise.
func (i Ident) String() string {
	if i.Quote == 0 {
		return i.Value
	}
	return string(i.Quote) + i.Value + string(i.Quote)
}

// ColumnTypeKind identifies a column's SQL type. The numeric values
// are the artifact's enum discriminants and must not be reordered.
type ColumnTypeKind uint8

const (
	TypeBoolean ColumnTypeKind = iota
	TypeUint8
	TypeTinyInt
	TypeSmallInt
	TypeInt
	TypeBigInt
	TypeInt128
	TypeVarChar
	TypeScalar
	TypeDecimal75
	TypeTimestampTZ
	TypeVarBinary
)

func (k ColumnTypeKind) String() string {
	switch k {
	case TypeBoolean:
		return "Boolean"
	case TypeUint8:
		return "Uint8"
	case TypeTinyInt:
		return "TinyInt"
	case TypeSmallInt:
		return "SmallInt"
	case TypeInt:
		return "Int"
	case TypeBigInt:
		return "BigInt"
	case TypeInt128:
		return "Int128"
	case TypeVarChar:
		return "VarChar"
	case TypeScalar:
		return "Scalar"
	case TypeDecimal75:
		return "Decimal75"
	case TypeTimestampTZ:
		return "TimestampTZ"
	case TypeVarBinary:
		return "VarBinary"
	default:
		return fmt.Sprintf("ColumnTypeKind(%d)", uint8(k))
	}
}

// TimeUnit is the resolution of a timestamp column. The numeric
// values are the artifact's enum discriminants.
type TimeUnit uint8

const (
	TimeUnitSecond TimeUnit = iota
	TimeUnitMillisecond
	TimeUnitMicrosecond
	TimeUnitNanosecond
)

func (u TimeUnit) String() string {
	switch u {
	case TimeUnitSecond:
		return "Second"
	case TimeUnitMillisecond:
		return "Millisecond"
	case TimeUnitMicrosecond:
		return "Microsecond"
	case TimeUnitNanosecond:
		return "Nanosecond"
	default:
		return fmt.Sprintf("TimeUnit(%d)", uint8(u))
	}
}

// ColumnType is a column's SQL type together with any type
// parameters. Precision and Scale are meaningful only for
// TypeDecimal75; Unit and TimezoneOffset only for TypeTimestampTZ.
type ColumnType struct {
	Kind ColumnTypeKind

	Precision uint8
	Scale     int8

	Unit           TimeUnit
	TimezoneOffset int32 // seconds east of UTC
}

// String renders the type with its parameters, for example
// "Decimal75(precision 38, scale 4)" or
// "TimestampTZ(Nanosecond, +05:30)".
func (t ColumnType) String() string {
	switch t.Kind {
	case TypeDecimal75:
		return fmt.Sprintf("Decimal75(precision %d, scale %d)", t.Precision, t.Scale)
	case TypeTimestampTZ:
		return fmt.Sprintf("TimestampTZ(%s, %s)", t.Unit, FormatTimezoneOffset(t.TimezoneOffset))
	default:
		return t.Kind.String()
	}
}

// FormatTimezoneOffset renders a timezone offset in seconds east of
// UTC as "+HH:MM", with a ":SS" suffix for the rare offsets that are
// not whole minutes.
func FormatTimezoneOffset(seconds int32) string {
	sign := "+"
	value := int64(seconds)
	if value < 0 {
		sign = "-"
		value = -value
	}
	hours := value / 3600
	minutes := value % 3600 / 60
	remainder := value % 60
	if remainder != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, remainder)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}

// BoundsKind identifies which ordered column type a bounds value
// carries, or NoOrder for column types that track no bounds. The
// numeric values are the artifact's enum discriminants.
type BoundsKind uint8

const (
	BoundsNoOrder BoundsKind = iota
	BoundsUint8
	BoundsTinyInt
	BoundsSmallInt
	BoundsInt
	BoundsBigInt
	BoundsInt128
	BoundsTimestampTZ
)

func (k BoundsKind) String() string {
	switch k {
	case BoundsNoOrder:
		return "NoOrder"
	case BoundsUint8:
		return "Uint8"
	case BoundsTinyInt:
		return "TinyInt"
	case BoundsSmallInt:
		return "SmallInt"
	case BoundsInt:
		return "Int"
	case BoundsBigInt:
		return "BigInt"
	case BoundsInt128:
		return "Int128"
	case BoundsTimestampTZ:
		return "TimestampTZ"
	default:
		return fmt.Sprintf("BoundsKind(%d)", uint8(k))
	}
}

// BoundsVariant distinguishes how a bounds pair was derived.
type BoundsVariant uint8

const (
	// BoundsEmpty: no rows contributed; there is no min or max.
	BoundsEmpty BoundsVariant = iota

	// BoundsBounded: min and max bound the column's values but are
	// not necessarily attained by any row.
	BoundsBounded

	// BoundsSharp: min and max are each attained by some row.
	BoundsSharp
)

func (v BoundsVariant) String() string {
	switch v {
	case BoundsEmpty:
		return "Empty"
	case BoundsBounded:
		return "Bounded"
	case BoundsSharp:
		return "Sharp"
	default:
		return fmt.Sprintf("BoundsVariant(%d)", uint8(v))
	}
}

// ColumnBounds is the per-column min/max tracking recorded alongside
// a commitment. Variant, Min, and Max are meaningful only when Kind
// is not BoundsNoOrder; Min and Max are nil for BoundsEmpty. Values
// of every width are held as arbitrary-precision integers so that
// Int128 bounds need no special casing. Bounds are exposed exactly as
// decoded: a malformed artifact may carry Min greater than Max.
type ColumnBounds struct {
	Kind    BoundsKind
	Variant BoundsVariant
	Min     *big.Int
	Max     *big.Int
}

// String renders the bounds, for example "NoOrder", "BigInt Empty",
// or "BigInt Sharp [-10, 42]".
func (b ColumnBounds) String() string {
	if b.Kind == BoundsNoOrder {
		return b.Kind.String()
	}
	if b.Variant == BoundsEmpty {
		return fmt.Sprintf("%s %s", b.Kind, b.Variant)
	}
	return fmt.Sprintf("%s %s [%s, %s]", b.Kind, b.Variant, b.Min, b.Max)
}
