// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

// Package postcard decodes and encodes the postcard wire format
// (version 1), the compact non-self-describing serialization used for
// table commitment artifacts.
//
// The format has no framing and no type information on the wire: the
// caller must know the schema and read fields in order. Unsigned
// integers of 16 bits and wider are LEB128 varints with a
// width-dependent maximum encoded length; signed integers of 16 bits
// and wider are zigzag-encoded varints; u8 and i8 are single raw
// bytes. Structs and tuples are the concatenation of their fields.
// Sequences and maps carry a leading varint element count. Strings
// are a varint byte length followed by UTF-8 data. Options are a
// single presence byte (0x00 or 0x01) optionally followed by the
// value. Enum values are a varint u32 variant index followed by the
// variant's payload. usize values are encoded as u64, matching
// artifacts produced on 64-bit targets.
//
// [Reader] is strict: it rejects varints that exceed their width's
// maximum encoded length or carry value bits beyond the width,
// booleans and option tags outside {0x00, 0x01}, invalid UTF-8 in
// strings, and element counts larger than the remaining input. Callers
// use [Reader.Done] to reject trailing bytes after the final field.
//
// [Builder] produces encodings for the same subset of the format. It
// always emits minimal-length varints, which is the canonical form.
package postcard
