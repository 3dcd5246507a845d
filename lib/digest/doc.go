// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest identifies commitment artifacts by content hash.
//
// Commitment artifacts move between provers, databases, and archives as
// opaque byte blobs. Hashing the exact bytes gives operators a
// scheme-independent identity for an artifact: two systems hold the
// same commitment exactly when their digests agree, with no need to
// decode either copy.
//
// Both BLAKE3 and SHA-256 are computed. BLAKE3 is the fast default for
// new records; SHA-256 covers systems that only speak the older hash.
// The hashes are unkeyed, so output matches the b3sum and sha256sum
// tools on the same bytes.
package digest
