// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// exported commitment documents.
//
// The export pipeline serves three formats with a clear boundary:
//
//   - JSON and YAML for human-readable output, via encoding/json and
//     gopkg.in/yaml.v3 directly.
//   - CBOR for compact binary output, via this package.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every caller encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. The same commitment document always produces
// identical bytes, which keeps exports diffable and content-addressable.
//
//	data, err := codec.Marshal(document)
//	err = codec.Unmarshal(data, &document)
//
// # Struct Tag Rules
//
// Document types carry `json` and `yaml` tags. fxamacker/cbor v2 reads
// `json` tags as fallback when `cbor` tags are absent, so the single
// `json` tag controls field naming and omitempty for both JSON and
// CBOR. Never add a separate `cbor` tag to a document type; it would
// only obscure which tag governs the encoding.
package codec
