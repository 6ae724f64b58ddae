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

/*
Package semver parses, compares and range-matches version strings
following an extended form of the semver.org Version 2.0.0 grammar.

The package is deliberately more permissive than the standard,
honoring practice rather than the letter of the specification: version
strings found in the wild frequently omit numbers or attach metadata
in non-standard ways, and this package accepts those forms while
always rendering the strict form on output.

A version string is parsed as follows:

  - One, two or three dot-separated unsigned decimal numbers
    (major, minor, patch). Missing numbers are taken to be 0, but the
    version remembers which were actually present.
  - Numbers may not have a leading zero (a literal 0 is fine).
  - An optional pre-release tag, introduced by a hyphen or, as an
    extension, an underscore: dot-separated identifiers, each either
    alphanumeric/hyphen or a number with no leading zero.
  - An optional build tag, introduced by a plus sign: dot-separated
    alphanumeric/hyphen identifiers; leading zeroes are allowed here.

Extensions beyond semver.org, all accepted on input only:

  - Minor and patch numbers may be omitted: "1" and "4.1" are valid.
  - A dot directly after the numbers introduces a build tag, so
    "4.1.50.Final" and "4.5.4.201711221230-r" parse, with build tags
    "Final" and "201711221230-r".
  - If minor and patch were not both given, a run of letters or
    digits directly after the numbers is also a build tag: "4.1Final".
  - An underscore introduces a pre-release tag: "4.1_alpha".

Rendering through String is always the strict "normal[-pre][+build]"
form; the relaxed input forms are not reproduced.

Comparison follows semver.org precedence: numbers compare
numerically, pre-release identifiers compare numerically when both
are numbers and by ASCII ordering otherwise, any pre-release ranks
below the plain release, and build tags are ignored.
CompareWithBuilds additionally breaks ties on the build tag, where a
version carrying a build tag ranks above one without.

# Constraints

ParseConstraint parses a range expression into a boolean Expression
that can be evaluated against versions:

	expr  = "(" expr ")"
	      | "!" "(" expr ")"
	      | range (("&"|"|") expr)*
	range = "~" version            tilde: fixes the leftmost given number
	      | "^" version            caret: fixes the leftmost non-zero number
	      | version "-" version    inclusive hyphen range
	      | wildcard               "*", "1.*", "1.2.x"
	      | version                partial versions bound a range: "1", "1.2"
	      | op version             op is =, !=, >, >=, <, <=; = if omitted

The "&" and "|" combinators have equal precedence and fold strictly
left to right: "a & b | c" means "(a & b) | c". Parenthesize to get
any other grouping.
*/
package semver

import (
	"fmt"
	"strings"
)

// Version is an immutable parsed version: the numeric core plus
// optional pre-release and build metadata. All methods that derive a
// new version return a new instance.
type Version struct {
	norm  NormalVersion
	pre   metadata
	build metadata
}

// Parse parses the version string. The syntax is defined in the
// package comment. The error is ErrEmpty for an empty string, a
// *UnexpectedCharacterError for a grammar violation with a single
// offending character, or a *ParseError otherwise.
func Parse(str string) (*Version, error) {
	return parseVersion(str)
}

// MustParse is like Parse but panics if the string does not parse.
// It simplifies tests and initialization of variables.
func MustParse(str string) *Version {
	v, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return v
}

// New returns a Version built from one, two or three numbers: major,
// minor and patch, in that order. Numbers not supplied are zero and
// recorded as not specified, so New(1) renders as "1" while
// New(1, 0, 0) renders as "1.0.0". Negative numbers are rejected
// with ErrNegative.
func New(nums ...int64) (*Version, error) {
	if len(nums) == 0 || len(nums) > 3 {
		return nil, fmt.Errorf("semver: need 1 to 3 version numbers, have %d", len(nums))
	}
	for _, n := range nums {
		if n < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegative, n)
		}
	}
	var norm NormalVersion
	norm.major = uint64(nums[0])
	if len(nums) > 1 {
		norm.minor = uint64(nums[1])
		norm.minorSpec = true
	}
	if len(nums) > 2 {
		norm.patch = uint64(nums[2])
		norm.patchSpec = true
	}
	return &Version{norm: norm}, nil
}

// Normal returns the numeric core of the version.
func (v *Version) Normal() NormalVersion { return v.norm }

// Major returns the major version number.
func (v *Version) Major() uint64 { return v.norm.major }

// Minor returns the minor version number; 0 if it was not specified.
func (v *Version) Minor() uint64 { return v.norm.minor }

// Patch returns the patch version number; 0 if it was not specified.
func (v *Version) Patch() uint64 { return v.norm.patch }

// PreRelease returns the dot-joined pre-release identifiers, or the
// empty string if the version has no pre-release tag.
func (v *Version) PreRelease() string { return v.pre.String() }

// Build returns the dot-joined build identifiers, or the empty
// string if the version has no build tag.
func (v *Version) Build() string { return v.build.String() }

// IsPreRelease reports whether the version carries a pre-release tag.
func (v *Version) IsPreRelease() bool { return !v.pre.absent() }

// IsStable reports whether the version is a stable release: major
// number above zero and no pre-release tag.
func (v *Version) IsStable() bool { return v.norm.major > 0 && v.pre.absent() }

// String renders the version in the strict semver form
// normal[-preRelease][+build]. Relaxed input forms (underscore
// pre-release, trailing-dot build) are normalized away.
func (v *Version) String() string {
	var b strings.Builder
	b.WriteString(v.norm.String())
	if !v.pre.absent() {
		b.WriteByte('-')
		b.WriteString(v.pre.String())
	}
	if !v.build.absent() {
		b.WriteByte('+')
		b.WriteString(v.build.String())
	}
	return b.String()
}

// Compare returns -1, 0 or +1 according to whether v is an earlier,
// equal or later version than o, following semver.org precedence.
// Build metadata is ignored, as is whether minor and patch numbers
// were textually present: "1" compares equal to "1.0.0". A nil
// Version compares below a non-nil Version.
func (v *Version) Compare(o *Version) int {
	if v == o {
		return 0
	}
	if v == nil {
		return -1
	}
	if o == nil {
		return 1
	}
	if c := v.norm.Compare(o.norm); c != 0 {
		return c
	}
	return v.pre.compare(o.pre)
}

// CompareWithBuilds is like Compare but breaks ties on the build
// tag. Unlike a pre-release, a build tag ranks a version above its
// tag-free equivalent, so 1.0.0 < 1.0.0+build.
func (v *Version) CompareWithBuilds(o *Version) int {
	if c := v.Compare(o); c != 0 {
		return c
	}
	c := v.build.compare(o.build)
	if v.build.absent() != o.build.absent() {
		// The natural metadata order ranks absent above present,
		// which is the pre-release rule. Build tags rank the other
		// way around.
		c = -c
	}
	return c
}

// Equal reports whether the two versions are equal under Compare.
func (v *Version) Equal(o *Version) bool { return v.Compare(o) == 0 }

// GreaterThan reports whether v is a later version than o.
func (v *Version) GreaterThan(o *Version) bool { return v.Compare(o) > 0 }

// GreaterThanOrEqual reports whether v is no earlier than o.
func (v *Version) GreaterThanOrEqual(o *Version) bool { return v.Compare(o) >= 0 }

// LessThan reports whether v is an earlier version than o.
func (v *Version) LessThan(o *Version) bool { return v.Compare(o) < 0 }

// LessThanOrEqual reports whether v is no later than o.
func (v *Version) LessThanOrEqual(o *Version) bool { return v.Compare(o) <= 0 }

// IsMajorCompatible reports whether the two versions share a major
// number.
func (v *Version) IsMajorCompatible(o *Version) bool {
	return v.norm.major == o.norm.major
}

// IsMinorCompatible reports whether the two versions share major and
// minor numbers.
func (v *Version) IsMinorCompatible(o *Version) bool {
	return v.norm.major == o.norm.major && v.norm.minor == o.norm.minor
}

// Satisfies parses the constraint string and reports whether v
// matches it. For repeated matching, parse once with ParseConstraint
// and use Expression.Match.
func (v *Version) Satisfies(constraint string) (bool, error) {
	e, err := ParseConstraint(constraint)
	if err != nil {
		return false, err
	}
	return e.Match(v), nil
}

// IncrementMajor returns the next major version. Pre-release and
// build tags are dropped. The result renders with an explicit minor
// number: "1.2.3" becomes "2.0".
func (v *Version) IncrementMajor() *Version {
	return &Version{norm: v.norm.IncrementMajor()}
}

// IncrementMinor returns the next minor version, dropping
// pre-release and build tags.
func (v *Version) IncrementMinor() *Version {
	return &Version{norm: v.norm.IncrementMinor()}
}

// IncrementPatch returns the next patch version, dropping
// pre-release and build tags.
func (v *Version) IncrementPatch() *Version {
	return &Version{norm: v.norm.IncrementPatch()}
}

// IncrementMajorPre is IncrementMajor with the given pre-release
// tag, parsed under the pre-release grammar, attached to the result.
func (v *Version) IncrementMajorPre(pre string) (*Version, error) {
	m, err := parsePreRelease(pre)
	if err != nil {
		return nil, err
	}
	return &Version{norm: v.norm.IncrementMajor(), pre: m}, nil
}

// IncrementMinorPre is IncrementMinor with the given pre-release tag
// attached to the result.
func (v *Version) IncrementMinorPre(pre string) (*Version, error) {
	m, err := parsePreRelease(pre)
	if err != nil {
		return nil, err
	}
	return &Version{norm: v.norm.IncrementMinor(), pre: m}, nil
}

// IncrementPatchPre is IncrementPatch with the given pre-release tag
// attached to the result.
func (v *Version) IncrementPatchPre(pre string) (*Version, error) {
	m, err := parsePreRelease(pre)
	if err != nil {
		return nil, err
	}
	return &Version{norm: v.norm.IncrementPatch(), pre: m}, nil
}

// IncrementPreRelease returns a version with the pre-release tag
// incremented: a numeric final identifier is incremented, otherwise
// ".1" is appended. The build tag is dropped. It returns
// ErrNoMetadata if the version has no pre-release tag.
func (v *Version) IncrementPreRelease() (*Version, error) {
	m, err := v.pre.increment()
	if err != nil {
		return nil, err
	}
	return &Version{norm: v.norm, pre: m}, nil
}

// IncrementBuild returns a version with the build tag incremented,
// keeping the pre-release tag. It returns ErrNoMetadata if the
// version has no build tag.
func (v *Version) IncrementBuild() (*Version, error) {
	m, err := v.build.increment()
	if err != nil {
		return nil, err
	}
	return &Version{norm: v.norm, pre: v.pre, build: m}, nil
}

// WithPreRelease returns a version with the same numbers and the
// given pre-release tag, parsed under the pre-release grammar. The
// build tag is dropped.
func (v *Version) WithPreRelease(pre string) (*Version, error) {
	m, err := parsePreRelease(pre)
	if err != nil {
		return nil, err
	}
	return &Version{norm: v.norm, pre: m}, nil
}

// WithBuild returns a version with the same numbers and pre-release
// tag and the given build tag, parsed under the build grammar.
func (v *Version) WithBuild(build string) (*Version, error) {
	m, err := parseBuild(build)
	if err != nil {
		return nil, err
	}
	return &Version{norm: v.norm, pre: v.pre, build: m}, nil
}

// sgnu64 returns the signum of (unsigned) a-b.
func sgnu64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// sgnStr returns the signum of the string "subtraction" a-b.
func sgnStr(a, b string) int {
	if a > b {
		return 1
	}
	if a < b {
		return -1
	}
	return 0
}
