// Copyright 2024 The semverkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pre is a test helper constructing metadata from a pre-release tag.
func pre(t *testing.T, s string) metadata {
	t.Helper()
	m, err := parsePreRelease(s)
	require.NoError(t, err, "parsePreRelease(%q)", s)
	return m
}

func TestMetadataCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"alpha", "alpha", 0},
		{"alpha", "beta", -1},
		{"alpha", "alpha.1", -1},   // A prefix ranks lower.
		{"2", "11", -1},            // Numbers compare numerically.
		{"alpha.2", "alpha.11", -1},
		{"rc.1", "rc.1.0", -1},
		{"Z", "a", -1},             // ASCII ordering.
		// A mixed pair compares as ASCII strings, not number-first.
		{"1", "alpha", -1},
		{"-a", "1", -1},
		{"1a", "2", -1},
	}
	for _, test := range tests {
		a, b := pre(t, test.a), pre(t, test.b)
		assert.Equal(t, test.want, a.compare(b), "compare(%q, %q)", test.a, test.b)
		assert.Equal(t, -test.want, b.compare(a), "compare(%q, %q)", test.b, test.a)
	}
}

func TestMetadataAbsent(t *testing.T) {
	assert.True(t, noMetadata.absent())
	assert.False(t, pre(t, "alpha").absent())
	assert.Equal(t, "", noMetadata.String())

	// Absent ranks above any concrete tag, the pre-release rule.
	assert.Equal(t, 1, noMetadata.compare(pre(t, "alpha")))
	assert.Equal(t, -1, pre(t, "alpha").compare(noMetadata))
	assert.Equal(t, 0, noMetadata.compare(noMetadata))
}

func TestMetadataIncrement(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"alpha", "alpha.1"},
		{"alpha.1", "alpha.2"},
		{"alpha.1.sha", "alpha.1.sha.1"},
		{"9", "10"},
	}
	for _, test := range tests {
		m, err := pre(t, test.in).increment()
		require.NoError(t, err, "increment(%q)", test.in)
		assert.Equal(t, test.want, m.String(), "increment(%q)", test.in)
	}

	_, err := noMetadata.increment()
	assert.ErrorIs(t, err, ErrNoMetadata)
}

func TestMetadataIncrementCopies(t *testing.T) {
	m := pre(t, "alpha.1")
	_, err := m.increment()
	require.NoError(t, err)
	assert.Equal(t, "alpha.1", m.String())
}
