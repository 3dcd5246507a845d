// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the commit-utility command tree.
//
// The root command runs the decode-and-render pipeline directly, so
// the common invocation stays short:
//
//	commit-utility --scheme ipa -i commitment.bin
//
// Subcommands expose the same pipeline explicitly (inspect), plus
// structured exports (export), content hashing (digest), the scheme
// table (schemes), and version information (version). All commands
// share the input conveniences: file or stdin input, --hex decoding,
// and --compression for zstd or lz4 wrapped artifacts.
package commands
