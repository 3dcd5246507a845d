// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package postcard

import (
	"bytes"
	"math/big"
	"testing"
)

func TestBuilderGoldenEncodings(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Builder)
		want  []byte
	}{
		{
			name:  "uint64 minimal",
			build: func(b *Builder) { b.AddUint64(576) },
			want:  []byte{0xc0, 0x04},
		},
		{
			name:  "int64 zigzag negative",
			build: func(b *Builder) { b.AddInt64(-2) },
			want:  []byte{0x03},
		},
		{
			name:  "int32 zigzag",
			build: func(b *Builder) { b.AddInt32(1) },
			want:  []byte{0x02},
		},
		{
			name:  "int16 zigzag negative",
			build: func(b *Builder) { b.AddInt16(-64) },
			want:  []byte{0x7f},
		},
		{
			name:  "int8 raw byte",
			build: func(b *Builder) { b.AddInt8(-1) },
			want:  []byte{0xff},
		},
		{
			name:  "bool pair",
			build: func(b *Builder) { b.AddBool(true); b.AddBool(false) },
			want:  []byte{0x01, 0x00},
		},
		{
			name:  "string",
			build: func(b *Builder) { b.AddString("id") },
			want:  []byte{0x02, 'i', 'd'},
		},
		{
			name:  "char multibyte",
			build: func(b *Builder) { b.AddChar('é') },
			want:  []byte{0x02, 0xc3, 0xa9},
		},
		{
			name:  "bytes length prefixed",
			build: func(b *Builder) { b.AddBytes([]byte{0xde, 0xad}) },
			want:  []byte{0x02, 0xde, 0xad},
		},
		{
			name:  "raw unprefixed",
			build: func(b *Builder) { b.AddRaw([]byte{0xde, 0xad}) },
			want:  []byte{0xde, 0xad},
		},
		{
			name:  "option absent",
			build: func(b *Builder) { b.AddOption(false) },
			want:  []byte{0x00},
		},
		{
			name:  "discriminant",
			build: func(b *Builder) { b.AddDiscriminant(9) },
			want:  []byte{0x09},
		},
		{
			name:  "seq len",
			build: func(b *Builder) { b.AddSeqLen(3) },
			want:  []byte{0x03},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var builder Builder
			test.build(&builder)
			if !bytes.Equal(builder.Data(), test.want) {
				t.Errorf("Data = %x, want %x", builder.Data(), test.want)
			}
		})
	}
}

func TestBuilderReaderRoundTrip(t *testing.T) {
	var builder Builder
	builder.AddSeqLen(2)
	builder.AddString("first")
	builder.AddOption(true)
	builder.AddChar('"')
	builder.AddString("second")
	builder.AddOption(false)
	builder.AddDiscriminant(5)
	builder.AddUint64(1000)
	builder.AddInt32(-3600)

	reader := NewReader(builder.Data())

	count, err := reader.SeqLen()
	if err != nil || count != 2 {
		t.Fatalf("SeqLen = %d, %v; want 2, nil", count, err)
	}
	first, err := reader.String()
	if err != nil || first != "first" {
		t.Fatalf("String = %q, %v; want %q, nil", first, err, "first")
	}
	present, err := reader.Option()
	if err != nil || !present {
		t.Fatalf("Option = %v, %v; want true, nil", present, err)
	}
	quote, err := reader.Char()
	if err != nil || quote != '"' {
		t.Fatalf("Char = %q, %v; want %q, nil", quote, err, '"')
	}
	second, err := reader.String()
	if err != nil || second != "second" {
		t.Fatalf("String = %q, %v; want %q, nil", second, err, "second")
	}
	present, err = reader.Option()
	if err != nil || present {
		t.Fatalf("Option = %v, %v; want false, nil", present, err)
	}
	discriminant, err := reader.Discriminant()
	if err != nil || discriminant != 5 {
		t.Fatalf("Discriminant = %d, %v; want 5, nil", discriminant, err)
	}
	length, err := reader.Uint64()
	if err != nil || length != 1000 {
		t.Fatalf("Uint64 = %d, %v; want 1000, nil", length, err)
	}
	offset, err := reader.Int32()
	if err != nil || offset != -3600 {
		t.Fatalf("Int32 = %d, %v; want -3600, nil", offset, err)
	}
	if err := reader.Done(); err != nil {
		t.Fatalf("Done: %v", err)
	}
}

func TestBuilderInt128OutOfRange(t *testing.T) {
	tooLarge := new(big.Int).Lsh(big.NewInt(1), 127)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range i128")
		}
	}()
	var builder Builder
	builder.AddInt128(tooLarge)
}

func TestBuilderInt128MinBoundary(t *testing.T) {
	minI128 := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))

	var builder Builder
	builder.AddInt128(minI128)

	// Zigzag maps the minimum to the maximum u128, which encodes as
	// nineteen bytes ending in 0x03.
	data := builder.Data()
	if len(data) != 19 {
		t.Fatalf("encoded length = %d, want 19", len(data))
	}
	if data[18] != 0x03 {
		t.Errorf("final byte = 0x%02x, want 0x03", data[18])
	}
}
