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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty is returned when a parser entry point is given an
	// empty string.
	ErrEmpty = errors.New("semver: empty input")

	// ErrNegative is returned by New when given a negative number.
	ErrNegative = errors.New("semver: negative version number")

	// ErrNoMetadata is returned when incrementing the pre-release or
	// build tag of a version that has none. It signals a caller
	// error, not a parse failure.
	ErrNoMetadata = errors.New("semver: no metadata to increment")
)

// A ParseError reports a grammar violation with no single offending
// character or token, such as a numeric identifier with a leading
// zero.
type ParseError struct {
	Input string // Full input to the parser.
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s in %#q", e.Msg, e.Input)
}

// An UnexpectedCharacterError reports the character that stopped the
// version parser, its 0-based position in the input, and the
// character types that would have been accepted there. At end of
// input, Char is -1.
type UnexpectedCharacterError struct {
	Input    string
	Char     rune
	Position int
	Expected []CharType
}

func (e *UnexpectedCharacterError) Error() string {
	what := CharEOF.String()
	if e.Char != eof {
		what = fmt.Sprintf("%s %q", typeOfChar(e.Char), e.Char)
	}
	return fmt.Sprintf("unexpected %s at position %d in %#q; want %s",
		what, e.Position, e.Input, joinNames(charTypeNames(e.Expected)))
}

// An UnexpectedTokenError reports the token that stopped the
// constraint parser and the token types that would have been
// accepted there.
type UnexpectedTokenError struct {
	Input    string
	Token    Token
	Expected []TokenType
}

func (e *UnexpectedTokenError) Error() string {
	what := TokenEOF.String()
	if e.Token.Type != TokenEOF {
		what = fmt.Sprintf("%s %q", e.Token.Type, e.Token.Lexeme)
	}
	return fmt.Sprintf("unexpected %s at position %d in %#q; want %s",
		what, e.Token.Position, e.Input, joinNames(tokenTypeNames(e.Expected)))
}

// A LexError reports input the constraint tokenizer could not match:
// the residual substring from the first unmatchable character to the
// end of the input.
type LexError struct {
	Input    string
	Residual string
	Position int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("cannot tokenize %#q at position %d in %#q",
		e.Residual, e.Position, e.Input)
}

func charTypeNames(types []CharType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

func tokenTypeNames(types []TokenType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

func joinNames(names []string) string {
	return strings.Join(names, " or ")
}
