// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commitment

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("underlying")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"open input file",
			OpenInputFileError("in.bin", cause),
			"failed to open input file 'in.bin'",
		},
		{
			"read input file",
			ReadInputFileError("in.bin", cause),
			"failed to read from input file 'in.bin'",
		},
		{
			"read stdin",
			ReadStdinError(cause),
			"failed to read from stdin",
		},
		{
			"unknown scheme",
			UnknownSchemeError("KZG"),
			"unknown scheme: 'KZG'",
		},
		{
			"deserialization",
			DeserializationError(cause),
			"failed to deserialize commitment",
		},
		{
			"create output file",
			CreateOutputFileError("out.txt", cause),
			"failed to create output file 'out.txt'",
		},
		{
			"write output file",
			WriteOutputFileError("out.txt", cause),
			"failed to write to output file 'out.txt'",
		},
		{
			"write stdout",
			WriteStdoutError(cause),
			"failed to write to stdout",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.err.Error(); got != test.want {
				t.Errorf("Error = %q, want %q", got, test.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := ReadStdinError(io.ErrUnexpectedEOF)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is does not reach the cause")
	}

	// The cause stays off the operator-facing message.
	if got := err.Error(); got != "failed to read from stdin" {
		t.Errorf("Error = %q, cause must not leak into the message", got)
	}
}

func TestIsKind(t *testing.T) {
	err := DeserializationError(errors.New("bad varint"))

	if !IsKind(err, ErrDeserialization) {
		t.Error("IsKind(ErrDeserialization) = false, want true")
	}
	if IsKind(err, ErrReadStdin) {
		t.Error("IsKind(ErrReadStdin) = true, want false")
	}
	if IsKind(nil, ErrDeserialization) {
		t.Error("IsKind(nil) = true, want false")
	}
	if IsKind(errors.New("plain"), ErrDeserialization) {
		t.Error("IsKind(plain error) = true, want false")
	}

	// Classification survives further wrapping.
	wrapped := fmt.Errorf("inspect: %w", err)
	if !IsKind(wrapped, ErrDeserialization) {
		t.Error("IsKind through a wrapper = false, want true")
	}
}
