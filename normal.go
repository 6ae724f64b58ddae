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
	"fmt"
	"strconv"
)

// NormalVersion is the numeric major[.minor[.patch]] core of a
// version. It remembers which numbers were actually given, so that
// "1", "1.0" and "1.0.0" render back the way they were written, but
// the flags play no part in comparison: all three compare equal.
// The zero value is version 0.
type NormalVersion struct {
	major, minor, patch  uint64
	minorSpec, patchSpec bool
}

// Major returns the major number.
func (n NormalVersion) Major() uint64 { return n.major }

// Minor returns the minor number; 0 if it was not specified.
func (n NormalVersion) Minor() uint64 { return n.minor }

// Patch returns the patch number; 0 if it was not specified.
func (n NormalVersion) Patch() uint64 { return n.patch }

// MinorSpecified reports whether the minor number was textually
// present when the version was parsed or constructed.
func (n NormalVersion) MinorSpecified() bool { return n.minorSpec }

// PatchSpecified reports whether the patch number was textually
// present when the version was parsed or constructed.
func (n NormalVersion) PatchSpecified() bool { return n.patchSpec }

// String renders the numbers that were specified: "1", "1.2" or
// "1.2.3".
func (n NormalVersion) String() string {
	switch {
	case n.patchSpec:
		return fmt.Sprintf("%d.%d.%d", n.major, n.minor, n.patch)
	case n.minorSpec:
		return fmt.Sprintf("%d.%d", n.major, n.minor)
	}
	return strconv.FormatUint(n.major, 10)
}

// Compare orders two normal versions numerically by (major, minor,
// patch). Unspecified numbers count as zero.
func (n NormalVersion) Compare(o NormalVersion) int {
	if c := sgnu64(n.major, o.major); c != 0 {
		return c
	}
	if c := sgnu64(n.minor, o.minor); c != 0 {
		return c
	}
	return sgnu64(n.patch, o.patch)
}

// IncrementMajor returns the next major version with minor and patch
// reset. The result renders as "N.0": the minor number is marked
// specified, the patch number is not.
func (n NormalVersion) IncrementMajor() NormalVersion {
	return NormalVersion{major: n.major + 1, minorSpec: true}
}

// IncrementMinor returns the next minor version with patch reset,
// rendering as "major.N".
func (n NormalVersion) IncrementMinor() NormalVersion {
	return NormalVersion{major: n.major, minor: n.minor + 1, minorSpec: true}
}

// IncrementPatch returns the next patch version, rendering with all
// three numbers.
func (n NormalVersion) IncrementPatch() NormalVersion {
	return NormalVersion{
		major: n.major, minor: n.minor, patch: n.patch + 1,
		minorSpec: true, patchSpec: true,
	}
}
