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

func TestDifference(t *testing.T) {
	tests := []struct {
		a, b string
		cmp  int
		diff Diff
	}{
		{"1.2.3", "1.2.3", 0, Same},
		{"1", "1.0.0", 0, Same},
		{"1.2.3", "2.2.3", -1, DiffMajor},
		{"2.0.0", "1.9.9", 1, DiffMajor},
		{"1.2.3", "1.3.3", -1, DiffMinor},
		{"1.2.3", "1.2.4", -1, DiffPatch},
		{"1.0.0-alpha", "1.0.0", -1, DiffPreRelease},
		{"1.0.0-alpha", "1.0.0-beta", -1, DiffPreRelease},
		// Build tags differ but do not affect the comparison.
		{"1.0.0", "1.0.0+build", 0, DiffBuild},
		{"1.0.0+a", "1.0.0+b", 0, DiffBuild},
		// The most significant difference wins.
		{"1.0.0-alpha", "2.0.0", -1, DiffMajor},
		{"1.2.0+a", "1.3.0+b", -1, DiffMinor},
	}
	for _, test := range tests {
		c, d, err := Difference(test.a, test.b)
		require.NoError(t, err, "Difference(%q, %q)", test.a, test.b)
		assert.Equal(t, test.cmp, c, "Difference(%q, %q) comparison", test.a, test.b)
		assert.Equal(t, test.diff, d, "Difference(%q, %q) level", test.a, test.b)
	}
}

func TestDifferenceError(t *testing.T) {
	_, _, err := Difference("bogus", "1.0.0")
	assert.Error(t, err)
	_, _, err = Difference("1.0.0", "bogus")
	assert.Error(t, err)
}

func TestDiffString(t *testing.T) {
	assert.Equal(t, "Same", Same.String())
	assert.Equal(t, "Major", DiffMajor.String())
	assert.Equal(t, "Build", DiffBuild.String())
	assert.Equal(t, "unknown", Diff(42).String())
}
