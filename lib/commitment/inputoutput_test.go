// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commitment

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("pipe broke")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe broke")
}

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifact.bin")
	want := []byte{0x01, 0x02, 0x03}
	if err := os.WriteFile(path, want, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := ReadInput(path, nil)
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadInput = %x, want %x", got, want)
	}
}

func TestReadInputFromStdin(t *testing.T) {
	want := []byte{0xaa, 0xbb}
	got, err := ReadInput("", bytes.NewReader(want))
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadInput = %x, want %x", got, want)
	}
}

func TestReadInputMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.bin")
	_, err := ReadInput(path, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsKind(err, ErrOpenInputFile) {
		t.Errorf("error kind = %v, want ErrOpenInputFile", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("message %q does not name the path", err)
	}
}

func TestReadInputStdinFailure(t *testing.T) {
	_, err := ReadInput("", failingReader{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsKind(err, ErrReadStdin) {
		t.Errorf("error kind = %v, want ErrReadStdin", err)
	}
}

func TestWriteOutputToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	want := []byte("rendered\n")

	if err := WriteOutput(path, nil, want); err != nil {
		t.Fatalf("WriteOutput: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("file contents = %q, want %q", got, want)
	}
}

func TestWriteOutputTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("a much longer previous rendering"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := WriteOutput(path, nil, []byte("short")); err != nil {
		t.Fatalf("WriteOutput: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "short" {
		t.Errorf("file contents = %q, want %q", got, "short")
	}
}

func TestWriteOutputToStdout(t *testing.T) {
	var stdout bytes.Buffer
	if err := WriteOutput("", &stdout, []byte("rendered\n")); err != nil {
		t.Fatalf("WriteOutput: %v", err)
	}
	if stdout.String() != "rendered\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "rendered\n")
	}
}

func TestWriteOutputCreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")
	err := WriteOutput(path, nil, []byte("x"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsKind(err, ErrCreateOutputFile) {
		t.Errorf("error kind = %v, want ErrCreateOutputFile", err)
	}
}

func TestWriteOutputStdoutFailure(t *testing.T) {
	err := WriteOutput("", failingWriter{}, []byte("x"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsKind(err, ErrWriteStdout) {
		t.Errorf("error kind = %v, want ErrWriteStdout", err)
	}
}
