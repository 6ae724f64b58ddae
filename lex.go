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

const eof rune = -1

// CharType classifies a character of a version string for the
// version grammar. The classification drives the recursive-descent
// parser and appears in UnexpectedCharacterError expectations.
type CharType int

// Character classes of the version grammar. Any character not in one
// of the named classes is CharIllegal; the end of the input is
// CharEOF.
const (
	CharDigit CharType = iota
	CharLetter
	CharSpace
	CharDot
	CharHyphen
	CharPlus
	CharUnderscore
	CharEOF
	CharIllegal
)

var charNames = [...]string{
	CharDigit:      "digit",
	CharLetter:     "letter",
	CharSpace:      "space",
	CharDot:        "dot",
	CharHyphen:     "hyphen",
	CharPlus:       "plus",
	CharUnderscore: "underscore",
	CharEOF:        "end of input",
	CharIllegal:    "illegal character",
}

func (t CharType) String() string {
	if t < 0 || int(t) >= len(charNames) {
		return "unknown"
	}
	return charNames[t]
}

// match makes CharType an elementType over runes.
func (t CharType) match(r rune) bool { return typeOfChar(r) == t }

// typeOfChar classifies a rune. The grammar is ASCII-only; any rune
// outside the recognized set is CharIllegal.
func typeOfChar(r rune) CharType {
	switch {
	case r == eof:
		return CharEOF
	case isDigit(r):
		return CharDigit
	case isAlpha(r):
		return CharLetter
	case r == ' ' || r == '\t':
		return CharSpace
	case r == '.':
		return CharDot
	case r == '-':
		return CharHyphen
	case r == '+':
		return CharPlus
	case r == '_':
		return CharUnderscore
	}
	return CharIllegal
}

// isAlphanumericOrHyphen reports whether rune is a letter, digit or hyphen.
func isAlphanumericOrHyphen(r rune) bool {
	return r == '-' || isAlphanumeric(r)
}

// isAlphanumeric reports whether rune is a letter or digit.
func isAlphanumeric(r rune) bool {
	return isDigit(r) || isAlpha(r)
}

// isAlpha reports whether rune is a letter.
func isAlpha(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isDigit reports whether rune is a digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
