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
)

func TestTypeOfChar(t *testing.T) {
	tests := []struct {
		r    rune
		want CharType
	}{
		{'0', CharDigit},
		{'9', CharDigit},
		{'a', CharLetter},
		{'z', CharLetter},
		{'A', CharLetter},
		{'Z', CharLetter},
		{' ', CharSpace},
		{'\t', CharSpace},
		{'.', CharDot},
		{'-', CharHyphen},
		{'+', CharPlus},
		{'_', CharUnderscore},
		{eof, CharEOF},
		{'!', CharIllegal},
		{'é', CharIllegal}, // The grammar is ASCII-only.
	}
	for _, test := range tests {
		assert.Equal(t, test.want, typeOfChar(test.r), "typeOfChar(%q)", test.r)
		assert.True(t, test.want.match(test.r), "%s.match(%q)", test.want, test.r)
	}
}

func TestCharTypeString(t *testing.T) {
	assert.Equal(t, "digit", CharDigit.String())
	assert.Equal(t, "end of input", CharEOF.String())
	assert.Equal(t, "illegal character", CharIllegal.String())
	assert.Equal(t, "unknown", CharType(99).String())
}

func TestCharPredicates(t *testing.T) {
	assert.True(t, isAlphanumericOrHyphen('-'))
	assert.True(t, isAlphanumericOrHyphen('a'))
	assert.True(t, isAlphanumericOrHyphen('7'))
	assert.False(t, isAlphanumericOrHyphen('.'))
	assert.False(t, isAlphanumeric('-'))
	assert.False(t, isAlpha('0'))
	assert.False(t, isDigit('a'))
}
