// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Report holds the digest set identifying one commitment artifact.
type Report struct {
	BLAKE3 [32]byte
	SHA256 [32]byte
	Size   int
}

// Compute returns the digests of data. The hashes are unkeyed, so the
// values match the b3sum and sha256sum command line tools byte for
// byte and can be correlated with records produced outside this tool.
func Compute(data []byte) Report {
	return Report{
		BLAKE3: blake3.Sum256(data),
		SHA256: sha256.Sum256(data),
		Size:   len(data),
	}
}

// Format returns the canonical lowercase hex representation of a
// digest, the form used in tool output and logs.
func Format(digest [32]byte) string {
	return hex.EncodeToString(digest[:])
}
