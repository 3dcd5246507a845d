// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/spaceandtimefdn/sxt-proof-of-sql-go/lib/commitment"
)

// compressionKind identifies the optional compression wrapping of an
// input artifact.
type compressionKind uint8

const (
	compressionNone compressionKind = iota
	compressionZstd
	compressionLZ4
)

// parseCompression parses the --compression flag value. The empty
// string is treated as "none" so that callers sharing the flag default
// behave identically.
func parseCompression(name string) (compressionKind, error) {
	switch name {
	case "", "none":
		return compressionNone, nil
	case "zstd":
		return compressionZstd, nil
	case "lz4":
		return compressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (expected none, zstd, or lz4)", name)
	}
}

// acquireInput obtains the raw artifact bytes: read from the input
// file (or stdin when path is empty), then optionally hex-decode and
// decompress. Hex decoding and decompression failures are read
// failures of the input source: the bytes could not be brought into
// the form the artifact contract expects.
func acquireInput(path string, hexInput bool, kind compressionKind) ([]byte, error) {
	data, err := commitment.ReadInput(path, os.Stdin)
	if err != nil {
		return nil, err
	}

	if hexInput {
		decoded, err := decodeHexInput(data)
		if err != nil {
			return nil, readError(path, err)
		}
		data = decoded
	}

	if kind != compressionNone {
		expanded, err := decompressInput(data, kind)
		if err != nil {
			return nil, readError(path, err)
		}
		data = expanded
	}

	return data, nil
}

// readError classifies a post-read acquisition failure against the
// input source it came from.
func readError(path string, err error) error {
	if path == "" {
		return commitment.ReadStdinError(err)
	}
	return commitment.ReadInputFileError(path, err)
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it to binary bytes. Whitespace between hex digit pairs is allowed
// (e.g., "0100 0003" or "01000003").
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// zstdDecoder is reused across calls to avoid repeated initialization
// overhead. zstd.Decoder is safe for concurrent use.
var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("commands: zstd decoder initialization failed: " + err.Error())
	}
}

// decompressInput expands a compressed artifact. Both codecs use their
// standard self-describing framing, so no expected size is needed.
func decompressInput(data []byte, kind compressionKind) ([]byte, error) {
	switch kind {
	case compressionZstd:
		expanded, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return expanded, nil

	case compressionLZ4:
		expanded, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return expanded, nil

	default:
		return data, nil
	}
}
