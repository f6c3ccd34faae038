// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_String(t *testing.T) {
	b := Build{Version: "1.2.3", Commit: "abcdef0", Date: "2026-01-01T00:00:00Z", Go: "go1.24.0"}
	assert.Equal(t, "schemagen version 1.2.3 (commit: abcdef0, built: 2026-01-01T00:00:00Z, go: go1.24.0)", b.String())
}

func TestFromBuildInfo_KeepsLdflags(t *testing.T) {
	b := fromBuildInfo(Build{Version: "1.2.3", Commit: "abcdef0", Date: "today"})
	assert.Equal(t, "1.2.3", b.Version)
	assert.Equal(t, "abcdef0", b.Commit)
	assert.Equal(t, "today", b.Date)
}

func TestGenerator(t *testing.T) {
	assert.Equal(t, "schemagen "+Short(), Generator())
	assert.Contains(t, Info(), "schemagen version")
}
