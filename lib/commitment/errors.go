// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commitment

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the tool reports. The set is
// closed: each operation maps any failure onto exactly one kind, and
// each kind renders exactly one operator-facing message. Scripts that
// need to distinguish failure classes match on the kind via [IsKind]
// rather than parsing message text.
type ErrorKind uint8

const (
	// ErrOpenInputFile: the input file could not be opened.
	ErrOpenInputFile ErrorKind = iota

	// ErrReadInputFile: the input file was opened but reading or
	// preprocessing its contents failed.
	ErrReadInputFile

	// ErrReadStdin: reading or preprocessing standard input failed.
	ErrReadStdin

	// ErrUnknownScheme: the scheme name matched no supported scheme.
	ErrUnknownScheme

	// ErrDeserialization: the artifact bytes are not a well-formed
	// commitment for the selected scheme.
	ErrDeserialization

	// ErrCreateOutputFile: the output file could not be created.
	ErrCreateOutputFile

	// ErrWriteOutputFile: the output file was created but writing to
	// it failed. The partially written file is left on disk; the
	// returned error is the authoritative outcome.
	ErrWriteOutputFile

	// ErrWriteStdout: writing to standard output failed.
	ErrWriteStdout
)

// Error is a classified failure carrying the context its message
// needs: the file path for file errors, the original scheme spelling
// for scheme errors. The message for each kind is fixed; underlying
// causes travel on the error chain via Unwrap, not in the message.
type Error struct {
	Kind   ErrorKind
	Path   string // input or output file path, for the file kinds
	Scheme string // scheme name exactly as the user supplied it
	Err    error  // underlying cause, nil for ErrUnknownScheme
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrOpenInputFile:
		return fmt.Sprintf("failed to open input file '%s'", e.Path)
	case ErrReadInputFile:
		return fmt.Sprintf("failed to read from input file '%s'", e.Path)
	case ErrReadStdin:
		return "failed to read from stdin"
	case ErrUnknownScheme:
		return fmt.Sprintf("unknown scheme: '%s'", e.Scheme)
	case ErrDeserialization:
		return "failed to deserialize commitment"
	case ErrCreateOutputFile:
		return fmt.Sprintf("failed to create output file '%s'", e.Path)
	case ErrWriteOutputFile:
		return fmt.Sprintf("failed to write to output file '%s'", e.Path)
	case ErrWriteStdout:
		return "failed to write to stdout"
	default:
		return fmt.Sprintf("error kind %d", e.Kind)
	}
}

// Unwrap returns the underlying cause, allowing errors.Is and
// errors.As to walk the full chain.
func (e *Error) Unwrap() error { return e.Err }

// OpenInputFileError classifies a failure to open the input file.
func OpenInputFileError(path string, cause error) *Error {
	return &Error{Kind: ErrOpenInputFile, Path: path, Err: cause}
}

// ReadInputFileError classifies a failure to read or preprocess the
// input file's contents.
func ReadInputFileError(path string, cause error) *Error {
	return &Error{Kind: ErrReadInputFile, Path: path, Err: cause}
}

// ReadStdinError classifies a failure to read or preprocess standard
// input.
func ReadStdinError(cause error) *Error {
	return &Error{Kind: ErrReadStdin, Err: cause}
}

// UnknownSchemeError classifies an unrecognized scheme name. The
// original spelling is preserved for the message, not the lowercased
// form used for matching.
func UnknownSchemeError(original string) *Error {
	return &Error{Kind: ErrUnknownScheme, Scheme: original}
}

// DeserializationError classifies malformed artifact bytes.
func DeserializationError(cause error) *Error {
	return &Error{Kind: ErrDeserialization, Err: cause}
}

// CreateOutputFileError classifies a failure to create the output file.
func CreateOutputFileError(path string, cause error) *Error {
	return &Error{Kind: ErrCreateOutputFile, Path: path, Err: cause}
}

// WriteOutputFileError classifies a failure to write the output file.
func WriteOutputFileError(path string, cause error) *Error {
	return &Error{Kind: ErrWriteOutputFile, Path: path, Err: cause}
}

// WriteStdoutError classifies a failure to write standard output.
func WriteStdoutError(cause error) *Error {
	return &Error{Kind: ErrWriteStdout, Err: cause}
}

// IsKind reports whether err is, or wraps, an [Error] of the given
// kind.
func IsKind(err error, kind ErrorKind) bool {
	var classified *Error
	return errors.As(err, &classified) && classified.Kind == kind
}
