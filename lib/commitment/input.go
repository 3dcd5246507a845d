// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package commitment

import (
	"io"
	"os"
)

// ReadInput returns the artifact bytes from the file at path, or from
// stdin when path is empty. Failures are classified by source:
// opening the file, reading the file, or reading stdin.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, ReadStdinError(err)
		}
		return data, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, OpenInputFileError(path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, ReadInputFileError(path, err)
	}
	return data, nil
}
