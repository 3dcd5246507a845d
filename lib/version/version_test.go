// Copyright 2026 The SxT Proof of SQL Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfoCleanBuild(t *testing.T) {
	info := Info()
	if !strings.Contains(info, Version) {
		t.Errorf("Info() = %q, should contain version %q", info, Version)
	}
	if !strings.Contains(info, GitCommit) {
		t.Errorf("Info() = %q, should contain commit %q", info, GitCommit)
	}
	if strings.Contains(info, "-dirty") {
		t.Errorf("Info() = %q, should not report dirty for GitDirty=%q", info, GitDirty)
	}
}

func TestInfoDirtyBuild(t *testing.T) {
	saved := GitDirty
	GitDirty = "true"
	defer func() { GitDirty = saved }()

	if info := Info(); !strings.Contains(info, "-dirty") {
		t.Errorf("Info() = %q, should report dirty build", info)
	}
}

func TestFullIncludesPlatform(t *testing.T) {
	full := Full()
	if !strings.Contains(full, "Go: ") {
		t.Errorf("Full() = %q, should include Go version", full)
	}
	if !strings.Contains(full, "Platform: ") {
		t.Errorf("Full() = %q, should include platform", full)
	}
}

func TestShort(t *testing.T) {
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}
