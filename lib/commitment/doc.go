// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

// Package commitment decodes serialized table commitment artifacts
// and renders them for inspection.
//
// A table commitment is the cryptographic summary a proof system
// keeps per table: one group element per committed column, per-column
// metadata (SQL type and min/max bounds), and the half-open row range
// the commitment covers. Artifacts are postcard-encoded by the
// producing system; the encoding does not record which commitment
// scheme produced it, so decoding requires the caller to name the
// scheme, which fixes how the per-column group elements are read.
//
// The package deliberately stops at structure: it validates the wire
// layout, not the cryptography. Commitment values are carried and
// displayed as opaque bytes, never decompressed onto a curve or
// checked for group membership.
//
// Every failure surfaces as an [Error] with a closed set of kinds,
// one fixed message per kind. [ReadInput] and [WriteOutput] classify
// I/O failures by source and stage; [ParseScheme] and [Decode] cover
// scheme resolution and artifact malformation.
package commitment
