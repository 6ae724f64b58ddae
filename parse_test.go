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

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		normal string
		pre    string
		build  string
		str    string // Rendering; in when empty.
	}{
		{"0.0.0", "0.0.0", "", "", ""},
		{"1.2.3", "1.2.3", "", "", ""},
		{"1.0.0-alpha", "1.0.0", "alpha", "", ""},
		{"1.0.0-alpha.1", "1.0.0", "alpha.1", "", ""},
		{"1.0.0-x.7.z.92", "1.0.0", "x.7.z.92", "", ""},
		{"1.0.0-alpha+001", "1.0.0", "alpha", "001", ""},
		{"1.0.0+20130313144700", "1.0.0", "", "20130313144700", ""},
		{"1.0.0-beta+exp.sha.5114f85", "1.0.0", "beta", "exp.sha.5114f85", ""},
		{"1.0.0--", "1.0.0", "-", "", ""},
		{"1.0.0-0.3.7", "1.0.0", "0.3.7", "", ""},

		// Omitted minor and patch numbers.
		{"1", "1", "", "", ""},
		{"4.1", "4.1", "", "", ""},
		{"2-alpha", "2", "alpha", "", ""},
		{"4.1+build", "4.1", "", "build", ""},

		// A dot after the numbers introduces a build tag.
		{"4.1.50.Final", "4.1.50", "", "Final", "4.1.50+Final"},
		{"4.5.4.201711221230-r", "4.5.4", "", "201711221230-r", "4.5.4+201711221230-r"},

		// Letters or digits directly after an incomplete core are a
		// build tag too.
		{"4.1Final", "4.1", "", "Final", "4.1+Final"},
		{"2b3", "2", "", "b3", "2+b3"},

		// An underscore introduces a pre-release tag.
		{"4.1_alpha", "4.1", "alpha", "", "4.1-alpha"},
		{"1.0.0_rc.1+b", "1.0.0", "rc.1", "b", "1.0.0-rc.1+b"},
	}
	for _, test := range tests {
		v, err := Parse(test.in)
		require.NoError(t, err, "Parse(%q)", test.in)
		assert.Equal(t, test.normal, v.Normal().String(), "Parse(%q) normal", test.in)
		assert.Equal(t, test.pre, v.PreRelease(), "Parse(%q) pre-release", test.in)
		assert.Equal(t, test.build, v.Build(), "Parse(%q) build", test.in)
		str := test.str
		if str == "" {
			str = test.in
		}
		assert.Equal(t, str, v.String(), "Parse(%q) rendering", test.in)
	}
}

func TestParseNumbers(t *testing.T) {
	v, err := Parse("11.22.33")
	require.NoError(t, err)
	assert.Equal(t, uint64(11), v.Major())
	assert.Equal(t, uint64(22), v.Minor())
	assert.Equal(t, uint64(33), v.Patch())
	assert.True(t, v.Normal().MinorSpecified())
	assert.True(t, v.Normal().PatchSpecified())

	v, err = Parse("7")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v.Major())
	assert.Equal(t, uint64(0), v.Minor())
	assert.False(t, v.Normal().MinorSpecified())
	assert.False(t, v.Normal().PatchSpecified())
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		in   string
		char rune // eof for end of input.
		pos  int
		want []CharType
	}{
		{"a.b.c", 'a', 0, []CharType{CharDigit}},
		{"-1.0.0", '-', 0, []CharType{CharDigit}},
		{".1.0", '.', 0, []CharType{CharDigit}},
		{"1.2.", eof, 4, []CharType{CharDigit}},
		{"1..2", '.', 2, []CharType{CharDigit}},
		{"1.0.0-", eof, 6, []CharType{CharDigit, CharLetter, CharHyphen}},
		{"1.0.0-alpha.", eof, 12, []CharType{CharDigit, CharLetter, CharHyphen}},
		{"1.0.0+", eof, 6, []CharType{CharDigit}},
		{"1.0.0-alpha!", '!', 11, []CharType{CharEOF}},
		{"1.0.0 ", ' ', 5, []CharType{CharHyphen, CharPlus, CharUnderscore, CharDot, CharEOF}},
		{"1.0.0abc", 'a', 5, []CharType{CharHyphen, CharPlus, CharUnderscore, CharDot, CharEOF}},
	}
	for _, test := range tests {
		_, err := Parse(test.in)
		require.Error(t, err, "Parse(%q)", test.in)
		var cerr *UnexpectedCharacterError
		require.ErrorAs(t, err, &cerr, "Parse(%q)", test.in)
		assert.Equal(t, test.in, cerr.Input, "Parse(%q) input", test.in)
		assert.Equal(t, test.char, cerr.Char, "Parse(%q) character", test.in)
		assert.Equal(t, test.pos, cerr.Position, "Parse(%q) position", test.in)
		assert.Equal(t, test.want, cerr.Expected, "Parse(%q) expectations", test.in)
	}
}

func TestParseLeadingZero(t *testing.T) {
	tests := []string{
		"01.1.0",
		"1.01.0",
		"1.1.00",
		"1.2.007",
		"1.0.0-alpha.012",
	}
	for _, test := range tests {
		_, err := Parse(test)
		require.Error(t, err, "Parse(%q)", test)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, "Parse(%q)", test)
		assert.Contains(t, perr.Error(), "leading zero", "Parse(%q)", test)
	}

	// Leading zeroes are fine in build identifiers, and a bare zero is
	// fine anywhere.
	for _, ok := range []string{"0.0.0", "1.0.0-0", "1.0.0+001", "1.0.0+0.0.7"} {
		_, err := Parse(ok)
		assert.NoError(t, err, "Parse(%q)", ok)
	}
}

func TestParseOutOfRange(t *testing.T) {
	_, err := Parse("99999999999999999999.0.0")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "out of range")
}

func TestParseErrorRendering(t *testing.T) {
	_, err := Parse("1.2.")
	require.Error(t, err)
	assert.Equal(t, "unexpected end of input at position 4 in `1.2.`; want digit", err.Error())

	_, err = Parse("a.b.c")
	require.Error(t, err)
	assert.Equal(t, "unexpected letter 'a' at position 0 in `a.b.c`; want digit", err.Error())
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "1.2.3", MustParse("1.2.3").String())
	assert.Panics(t, func() { MustParse("bogus") })
}
