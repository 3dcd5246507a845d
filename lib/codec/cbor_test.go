// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// sampleDocument is a representative export document fragment using
// the dual json/yaml tag convention of the document types.
type sampleDocument struct {
	Scheme string `json:"scheme" yaml:"scheme"`
	Rows   uint64 `json:"rows" yaml:"rows"`
}

// sampleColumn exercises omitempty through the json tag fallback.
type sampleColumn struct {
	Name  string `json:"name" yaml:"name"`
	Quote string `json:"quote,omitempty" yaml:"quote,omitempty"`
	Type  string `json:"type" yaml:"type"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleDocument{Scheme: "DynamicDory", Rows: 42}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleDocument
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalGoldenBytes(t *testing.T) {
	// Core Deterministic Encoding sorts map keys by their encoded
	// bytes, so "rows" precedes "scheme", and json tag names become
	// the CBOR map keys.
	data, err := Marshal(sampleDocument{Scheme: "ipa", Rows: 3})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := "a264726f77730366736368656d6563697061"
	if got := hex.EncodeToString(data); got != want {
		t.Errorf("encoding mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	// Go map iteration order is randomized, so repeated encodings only
	// agree if the encoder actually sorts keys.
	document := map[string]any{
		"scheme":      "Dory",
		"rows":        uint64(4),
		"start":       uint64(0),
		"end":         uint64(4),
		"commitments": []string{"aa", "bb"},
	}

	first, err := Marshal(document)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	for i := range 8 {
		again, err := Marshal(document)
		if err != nil {
			t.Fatalf("Marshal %d: %v", i, err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding violated on iteration %d: %x != %x", i, first, again)
		}
	}
}

func TestSmallestIntegerEncoding(t *testing.T) {
	tests := []struct {
		value uint64
		want  string
	}{
		{23, "17"},
		{24, "1818"},
		{576, "190240"},
	}
	for _, test := range tests {
		data, err := Marshal(test.value)
		if err != nil {
			t.Fatalf("Marshal(%d): %v", test.value, err)
		}
		if got := hex.EncodeToString(data); got != test.want {
			t.Errorf("Marshal(%d) = %s, want %s", test.value, got, test.want)
		}
	}
}

func TestOmitemptyRespected(t *testing.T) {
	data, err := Marshal(sampleColumn{Name: "balance", Type: "BigInt"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var fields map[string]any
	if err := Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, present := fields["quote"]; present {
		t.Error("zero-value omitempty field \"quote\" should be absent")
	}
	if fields["name"] != "balance" {
		t.Errorf("name = %v, want balance", fields["name"])
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var document sampleDocument
	if err := Unmarshal([]byte{0xff, 0xfe, 0xfd}, &document); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestUnmarshalAnyUsesStringKeyedMaps(t *testing.T) {
	data, err := Marshal(sampleDocument{Scheme: "Dory", Rows: 7})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var generic any
	if err := Unmarshal(data, &generic); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	fields, ok := generic.(map[string]any)
	if !ok {
		t.Fatalf("decoded type %T, want map[string]any", generic)
	}
	if fields["scheme"] != "Dory" {
		t.Errorf("scheme = %v, want Dory", fields["scheme"])
	}
}

func BenchmarkMarshal(b *testing.B) {
	document := sampleDocument{Scheme: "DynamicDory", Rows: 42}

	b.ReportAllocs()
	for b.Loop() {
		Marshal(document)
	}
}
