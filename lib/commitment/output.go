// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commitment

import (
	"io"
	"os"
)

// WriteOutput writes data to the file at path, or to stdout when path
// is empty. Failures are classified by stage: creating the file,
// writing the file, or writing stdout. When creation succeeds but a
// later write or close fails, the partially written file is left on
// disk; the returned error is the authoritative outcome.
func WriteOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return WriteStdoutError(err)
		}
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return CreateOutputFileError(path, err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return WriteOutputFileError(path, err)
	}
	if err := file.Close(); err != nil {
		return WriteOutputFileError(path, err)
	}
	return nil
}
