// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commitment

import (
	"math/big"
	"strings"
	"testing"

	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/lib/postcard"
)

func TestRenderIPA(t *testing.T) {
	decoded, err := Decode(SchemeInnerProductArgument, sampleIPAArtifact())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := "TableCommitment (InnerProductArgument)\n" +
		"range: [0, 3), 3 rows\n" +
		"\n" +
		"commitments (1, Ristretto):\n" +
		"  [0] " + strings.Repeat("ab", 32) + "\n" +
		"\n" +
		"columns (1):\n" +
		"  [0] balance\n" +
		"      type:   BigInt\n" +
		"      bounds: BigInt Empty\n"

	if got := decoded.Render(); got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderRichColumns(t *testing.T) {
	var builder postcard.Builder
	builder.AddSeqLen(3)
	builder.AddRaw(testElement(32, 0x01))
	builder.AddRaw(testElement(32, 0x02))
	builder.AddRaw(testElement(32, 0x03))
	builder.AddSeqLen(3)

	builder.AddString("recipient")
	builder.AddOption(true)
	builder.AddChar('"')
	builder.AddDiscriminant(uint32(TypeVarChar))
	builder.AddDiscriminant(uint32(BoundsNoOrder))

	builder.AddString("created_at")
	builder.AddOption(false)
	builder.AddDiscriminant(uint32(TypeTimestampTZ))
	builder.AddDiscriminant(uint32(TimeUnitNanosecond))
	builder.AddInt32(19800)
	builder.AddDiscriminant(uint32(BoundsTimestampTZ))
	builder.AddDiscriminant(uint32(BoundsSharp))
	builder.AddInt64(1000)
	builder.AddInt64(2000)

	builder.AddString("total")
	builder.AddOption(false)
	builder.AddDiscriminant(uint32(TypeInt128))
	builder.AddDiscriminant(uint32(BoundsInt128))
	builder.AddDiscriminant(uint32(BoundsBounded))
	builder.AddInt128(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 100)))
	builder.AddInt128(new(big.Int).Lsh(big.NewInt(1), 100))

	builder.AddUint64(10)
	builder.AddUint64(11)

	decoded, err := Decode(SchemeInnerProductArgument, builder.Data())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := "TableCommitment (InnerProductArgument)\n" +
		"range: [10, 11), 1 row\n" +
		"\n" +
		"commitments (3, Ristretto):\n" +
		"  [0] " + strings.Repeat("01", 32) + "\n" +
		"  [1] " + strings.Repeat("02", 32) + "\n" +
		"  [2] " + strings.Repeat("03", 32) + "\n" +
		"\n" +
		"columns (3):\n" +
		"  [0] \"recipient\"\n" +
		"      type:   VarChar\n" +
		"      bounds: NoOrder\n" +
		"  [1] created_at\n" +
		"      type:   TimestampTZ(Nanosecond, +05:30)\n" +
		"      bounds: TimestampTZ Sharp [1000, 2000]\n" +
		"  [2] total\n" +
		"      type:   Int128\n" +
		"      bounds: Int128 Bounded [-1267650600228229401496703205376, 1267650600228229401496703205376]\n"

	if got := decoded.Render(); got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderGTHexWrapping(t *testing.T) {
	decoded, err := Decode(SchemeDynamicDory, sampleDynamicDoryArtifact())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	rendered := decoded.Render()

	// A 576-byte element is 1152 hex characters: one prefixed line
	// plus seventeen continuation lines of 64 characters.
	first := "  [0] " + strings.Repeat("11", 32) + "\n"
	if !strings.Contains(rendered, first) {
		t.Error("missing first hex line of commitment 0")
	}
	continuation := "      " + strings.Repeat("11", 32) + "\n"
	if got := strings.Count(rendered, continuation); got != 17 {
		t.Errorf("commitment 0 continuation lines = %d, want 17", got)
	}
	if !strings.Contains(rendered, "commitments (2, GT):\n") {
		t.Error("missing GT commitments header")
	}
}

func TestRenderEmptyTable(t *testing.T) {
	var builder postcard.Builder
	builder.AddSeqLen(0)
	builder.AddSeqLen(0)
	builder.AddUint64(0)
	builder.AddUint64(0)

	decoded, err := Decode(SchemeDory, builder.Data())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := "TableCommitment (Dory)\n" +
		"range: [0, 0), 0 rows\n" +
		"\n" +
		"commitments (0, GT):\n" +
		"\n" +
		"columns (0):\n"

	if got := decoded.Render(); got != want {
		t.Errorf("Render mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderEndsWithSingleNewline(t *testing.T) {
	decoded, err := Decode(SchemeInnerProductArgument, sampleIPAArtifact())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	rendered := decoded.Render()
	if !strings.HasSuffix(rendered, "\n") {
		t.Error("rendering must end with a newline")
	}
	if strings.HasSuffix(rendered, "\n\n") {
		t.Error("rendering must not end with a blank line")
	}
}

func BenchmarkRenderDynamicDory(b *testing.B) {
	decoded, err := Decode(SchemeDynamicDory, sampleDynamicDoryArtifact())
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_ = decoded.Render()
	}
}
