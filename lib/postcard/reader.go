// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package postcard

import (
	"fmt"
	"math/big"
	"unicode/utf8"
)

// Maximum encoded byte counts for varints, by width. A varint stores
// seven value bits per byte, so a width-w integer needs ceil(w/7)
// bytes at most.
const (
	maxVarintLen16  = 3
	maxVarintLen32  = 5
	maxVarintLen64  = 10
	maxVarintLen128 = 19
)

// Reader consumes postcard-encoded fields from a byte buffer in
// schema order. Methods advance an internal offset and return an
// error describing the offset and the violated rule on malformed
// input. Once a method returns an error the Reader should be
// discarded: the offset is left at the point of failure.
type Reader struct {
	data   []byte
	offset int
}

// NewReader returns a Reader positioned at the start of data. The
// Reader does not copy data; the caller must not mutate it while
// reading.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// Done verifies that the entire input has been consumed. A
// well-formed artifact has no bytes after its final field.
func (r *Reader) Done() error {
	if n := r.Remaining(); n > 0 {
		return r.errorf("%d trailing bytes after final field", n)
	}
	return nil
}

// Uint8 reads a single raw byte.
func (r *Reader) Uint8() (uint8, error) {
	if r.offset >= len(r.data) {
		return 0, r.errorf("unexpected end of input reading u8")
	}
	value := r.data[r.offset]
	r.offset++
	return value, nil
}

// Int8 reads a single raw byte as a two's-complement signed value.
// Unlike wider signed integers, i8 is not zigzag-encoded.
func (r *Reader) Int8() (int8, error) {
	value, err := r.Uint8()
	return int8(value), err
}

// Uint16 reads a varint-encoded u16.
func (r *Reader) Uint16() (uint16, error) {
	value, err := r.uvarint(16, maxVarintLen16)
	return uint16(value), err
}

// Uint32 reads a varint-encoded u32.
func (r *Reader) Uint32() (uint32, error) {
	value, err := r.uvarint(32, maxVarintLen32)
	return uint32(value), err
}

// Uint64 reads a varint-encoded u64.
func (r *Reader) Uint64() (uint64, error) {
	return r.uvarint(64, maxVarintLen64)
}

// Int16 reads a zigzag varint-encoded i16.
func (r *Reader) Int16() (int16, error) {
	value, err := r.uvarint(16, maxVarintLen16)
	if err != nil {
		return 0, err
	}
	encoded := uint16(value)
	return int16(encoded>>1) ^ -int16(encoded&1), nil
}

// Int32 reads a zigzag varint-encoded i32.
func (r *Reader) Int32() (int32, error) {
	value, err := r.uvarint(32, maxVarintLen32)
	if err != nil {
		return 0, err
	}
	encoded := uint32(value)
	return int32(encoded>>1) ^ -int32(encoded&1), nil
}

// Int64 reads a zigzag varint-encoded i64.
func (r *Reader) Int64() (int64, error) {
	encoded, err := r.uvarint(64, maxVarintLen64)
	if err != nil {
		return 0, err
	}
	return int64(encoded>>1) ^ -int64(encoded&1), nil
}

// Int128 reads a zigzag varint-encoded i128. The result is an
// arbitrary-precision integer because the value range exceeds int64.
func (r *Reader) Int128() (*big.Int, error) {
	low, high, err := r.uvarint128()
	if err != nil {
		return nil, err
	}
	unsigned := new(big.Int).SetUint64(high)
	unsigned.Lsh(unsigned, 64)
	unsigned.Or(unsigned, new(big.Int).SetUint64(low))

	// Zigzag decode: even values are non-negative n/2, odd values
	// are -(n+1)/2.
	result := new(big.Int).Rsh(unsigned, 1)
	if unsigned.Bit(0) == 1 {
		result.Neg(result)
		result.Sub(result, big.NewInt(1))
	}
	return result, nil
}

// Bool reads a boolean. Only 0x00 and 0x01 are valid encodings.
func (r *Reader) Bool() (bool, error) {
	if r.offset >= len(r.data) {
		return false, r.errorf("unexpected end of input reading bool")
	}
	value := r.data[r.offset]
	r.offset++
	switch value {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		r.offset--
		return false, r.errorf("invalid bool encoding 0x%02x", value)
	}
}

// Option reads an option presence tag, reporting whether a value
// follows. Only 0x00 (absent) and 0x01 (present) are valid.
func (r *Reader) Option() (bool, error) {
	if r.offset >= len(r.data) {
		return false, r.errorf("unexpected end of input reading option tag")
	}
	value := r.data[r.offset]
	r.offset++
	switch value {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		r.offset--
		return false, r.errorf("invalid option tag 0x%02x", value)
	}
}

// Discriminant reads an enum variant index, encoded as a varint u32.
func (r *Reader) Discriminant() (uint32, error) {
	value, err := r.uvarint(32, maxVarintLen32)
	return uint32(value), err
}

// SeqLen reads a sequence, map, or byte-string element count (a usize,
// encoded as u64). Every encoded element occupies at least one byte,
// so a count larger than the remaining input cannot be satisfied and
// is rejected immediately rather than discovered element by element.
func (r *Reader) SeqLen() (int, error) {
	count, err := r.uvarint(64, maxVarintLen64)
	if err != nil {
		return 0, err
	}
	if count > uint64(r.Remaining()) {
		return 0, r.errorf("element count %d exceeds %d remaining bytes", count, r.Remaining())
	}
	return int(count), nil
}

// String reads a varint length prefix followed by that many bytes of
// UTF-8 data.
func (r *Reader) String() (string, error) {
	length, err := r.SeqLen()
	if err != nil {
		return "", err
	}
	data, err := r.take(length)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", r.errorf("invalid UTF-8 in string")
	}
	return string(data), nil
}

// Char reads a single Unicode scalar value, encoded as a one-rune
// string.
func (r *Reader) Char() (rune, error) {
	start := r.offset
	value, err := r.String()
	if err != nil {
		return 0, err
	}
	decoded, size := utf8.DecodeRuneInString(value)
	if size == 0 || size != len(value) {
		return 0, fmt.Errorf("offset %d: char must encode exactly one rune, got %q", start, value)
	}
	return decoded, nil
}

// Bytes reads a varint length prefix followed by that many raw bytes.
// The returned slice is a copy and remains valid after the input
// buffer is released.
func (r *Reader) Bytes() ([]byte, error) {
	length, err := r.SeqLen()
	if err != nil {
		return nil, err
	}
	data, err := r.take(length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, data)
	return out, nil
}

// FixedBytes reads exactly n raw bytes with no length prefix, as used
// by fixed-size tuple encodings. The returned slice is a copy.
func (r *Reader) FixedBytes(n int) ([]byte, error) {
	data, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, data)
	return out, nil
}

// take returns the next n bytes of the input without copying.
func (r *Reader) take(n int) ([]byte, error) {
	if n > r.Remaining() {
		return nil, r.errorf("unexpected end of input: need %d bytes, have %d", n, r.Remaining())
	}
	data := r.data[r.offset : r.offset+n]
	r.offset += n
	return data, nil
}

// uvarint decodes an LEB128 varint of the given bit width, enforcing
// the width's maximum encoded length and rejecting value bits beyond
// the width. Non-minimal encodings within those limits are accepted,
// matching the format's decode rules.
func (r *Reader) uvarint(width, maxBytes int) (uint64, error) {
	start := r.offset
	var value uint64
	for i := range maxBytes {
		if r.offset >= len(r.data) {
			return 0, fmt.Errorf("offset %d: unexpected end of input in varint", start)
		}
		encoded := r.data[r.offset]
		r.offset++
		shift := 7 * i
		value |= uint64(encoded&0x7f) << shift
		if encoded&0x80 == 0 {
			if shift+7 > width && encoded>>(width-shift) != 0 {
				return 0, fmt.Errorf("offset %d: varint overflows u%d", start, width)
			}
			return value, nil
		}
	}
	return 0, fmt.Errorf("offset %d: varint exceeds %d bytes", start, maxBytes)
}

// uvarint128 decodes an LEB128 varint of up to 128 bits, returned as
// low and high 64-bit halves.
func (r *Reader) uvarint128() (low, high uint64, err error) {
	start := r.offset
	for i := range maxVarintLen128 {
		if r.offset >= len(r.data) {
			return 0, 0, fmt.Errorf("offset %d: unexpected end of input in varint", start)
		}
		encoded := r.data[r.offset]
		r.offset++
		payload := uint64(encoded & 0x7f)
		shift := 7 * i
		if shift < 64 {
			low |= payload << shift
			if shift > 57 {
				high |= payload >> (64 - shift)
			}
		} else {
			high |= payload << (shift - 64)
		}
		if encoded&0x80 == 0 {
			if shift+7 > 128 && encoded>>(128-shift) != 0 {
				return 0, 0, fmt.Errorf("offset %d: varint overflows u128", start)
			}
			return low, high, nil
		}
	}
	return 0, 0, fmt.Errorf("offset %d: varint exceeds %d bytes", start, maxVarintLen128)
}

// errorf formats a decode error with the current offset.
func (r *Reader) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s", r.offset, fmt.Sprintf(format, args...))
}
