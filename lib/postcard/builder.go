// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package postcard

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Builder appends postcard-encoded fields to a growing buffer. The
// zero value is ready to use. Varints are always emitted in minimal
// form, the canonical encoding.
type Builder struct {
	buf []byte
}

// Data returns the accumulated encoding. The slice aliases the
// Builder's buffer; further Add calls may invalidate it.
func (b *Builder) Data() []byte {
	return b.buf
}

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

// AddUint8 appends a single raw byte.
func (b *Builder) AddUint8(v uint8) {
	b.buf = append(b.buf, v)
}

// AddInt8 appends a single raw two's-complement byte.
func (b *Builder) AddInt8(v int8) {
	b.buf = append(b.buf, byte(v))
}

// AddUint16 appends a varint-encoded u16.
func (b *Builder) AddUint16(v uint16) {
	b.buf = binary.AppendUvarint(b.buf, uint64(v))
}

// AddUint32 appends a varint-encoded u32.
func (b *Builder) AddUint32(v uint32) {
	b.buf = binary.AppendUvarint(b.buf, uint64(v))
}

// AddUint64 appends a varint-encoded u64.
func (b *Builder) AddUint64(v uint64) {
	b.buf = binary.AppendUvarint(b.buf, v)
}

// AddInt16 appends a zigzag varint-encoded i16.
func (b *Builder) AddInt16(v int16) {
	b.buf = binary.AppendUvarint(b.buf, uint64(uint16(v<<1)^uint16(v>>15)))
}

// AddInt32 appends a zigzag varint-encoded i32.
func (b *Builder) AddInt32(v int32) {
	b.buf = binary.AppendUvarint(b.buf, uint64(uint32(v<<1)^uint32(v>>31)))
}

// AddInt64 appends a zigzag varint-encoded i64.
func (b *Builder) AddInt64(v int64) {
	b.buf = binary.AppendUvarint(b.buf, uint64(v<<1)^uint64(v>>63))
}

// AddInt128 appends a zigzag varint-encoded i128. Panics if v is
// outside the i128 range; callers supply schema-valid values.
func (b *Builder) AddInt128(v *big.Int) {
	if v.BitLen() > 127 {
		// -2^127 is in range despite its 128-bit magnitude.
		if !(v.Sign() < 0 && v.BitLen() == 128 && v.TrailingZeroBits() == 127) {
			panic(fmt.Sprintf("postcard: %s out of i128 range", v))
		}
	}
	unsigned := new(big.Int)
	if v.Sign() < 0 {
		// Zigzag encode: negative n maps to -2n - 1.
		unsigned.Lsh(new(big.Int).Neg(v), 1)
		unsigned.Sub(unsigned, big.NewInt(1))
	} else {
		unsigned.Lsh(v, 1)
	}
	b.addBigUvarint(unsigned)
}

// AddBool appends a boolean as 0x00 or 0x01.
func (b *Builder) AddBool(v bool) {
	if v {
		b.buf = append(b.buf, 0x01)
	} else {
		b.buf = append(b.buf, 0x00)
	}
}

// AddOption appends an option presence tag. The caller appends the
// value fields after a present tag.
func (b *Builder) AddOption(present bool) {
	b.AddBool(present)
}

// AddDiscriminant appends an enum variant index as a varint u32.
func (b *Builder) AddDiscriminant(v uint32) {
	b.buf = binary.AppendUvarint(b.buf, uint64(v))
}

// AddSeqLen appends a sequence or map element count as a varint u64.
func (b *Builder) AddSeqLen(n int) {
	b.buf = binary.AppendUvarint(b.buf, uint64(n))
}

// AddString appends a varint length prefix followed by the string's
// UTF-8 bytes.
func (b *Builder) AddString(s string) {
	b.buf = binary.AppendUvarint(b.buf, uint64(len(s)))
	b.buf = append(b.buf, s...)
}

// AddChar appends a Unicode scalar value as a one-rune string.
func (b *Builder) AddChar(c rune) {
	b.AddString(string(c))
}

// AddBytes appends a varint length prefix followed by the raw bytes.
func (b *Builder) AddBytes(p []byte) {
	b.buf = binary.AppendUvarint(b.buf, uint64(len(p)))
	b.buf = append(b.buf, p...)
}

// AddRaw appends bytes with no length prefix, as used by fixed-size
// tuple encodings.
func (b *Builder) AddRaw(p []byte) {
	b.buf = append(b.buf, p...)
}

// addBigUvarint appends a minimal LEB128 varint from an arbitrary
// non-negative integer.
func (b *Builder) addBigUvarint(v *big.Int) {
	mask := big.NewInt(0x7f)
	low := new(big.Int)
	remaining := new(big.Int).Set(v)
	for remaining.BitLen() > 7 {
		low.And(remaining, mask)
		b.buf = append(b.buf, byte(low.Uint64())|0x80)
		remaining.Rsh(remaining, 7)
	}
	b.buf = append(b.buf, byte(remaining.Uint64()))
}
