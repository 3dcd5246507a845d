// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commitment

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Render produces the deterministic text representation of a decoded
// commitment: header with scheme and row range, then the commitment
// values in lowercase hex, then the column metadata entries, all in
// artifact order. Identical decoded artifacts produce byte-identical
// text. The output ends with a single trailing newline.
func (t *TableCommitment) Render() string {
	var out strings.Builder

	fmt.Fprintf(&out, "TableCommitment (%s)\n", t.Scheme)
	fmt.Fprintf(&out, "range: [%d, %d), %s\n", t.Range.Start, t.Range.End, formatRowCount(t.Range.Rows()))
	out.WriteByte('\n')

	fmt.Fprintf(&out, "commitments (%d, %s):\n", len(t.Commitments), t.Scheme.LeafLabel())
	for i, element := range t.Commitments {
		writeHexEntry(&out, i, element)
	}
	out.WriteByte('\n')

	fmt.Fprintf(&out, "columns (%d):\n", len(t.Columns))
	for i, column := range t.Columns {
		fmt.Fprintf(&out, "  [%d] %s\n", i, column.Name)
		fmt.Fprintf(&out, "      type:   %s\n", column.Type)
		fmt.Fprintf(&out, "      bounds: %s\n", column.Bounds)
	}

	return out.String()
}

func formatRowCount(n uint64) string {
	if n == 1 {
		return "1 row"
	}
	return fmt.Sprintf("%d rows", n)
}

// writeHexEntry writes one indexed commitment value in hex, wrapped
// at 32 bytes per line with continuation lines indented.
func writeHexEntry(out *strings.Builder, index int, data []byte) {
	const lineHexChars = 64
	encoded := hex.EncodeToString(data)
	if encoded == "" {
		fmt.Fprintf(out, "  [%d]\n", index)
		return
	}
	prefix := fmt.Sprintf("  [%d] ", index)
	for start := 0; start < len(encoded); start += lineHexChars {
		end := min(start+lineHexChars, len(encoded))
		out.WriteString(prefix)
		out.WriteString(encoded[start:end])
		out.WriteByte('\n')
		prefix = strings.Repeat(" ", len(prefix))
	}
}
