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

import "regexp"

// TokenType classifies the tokens of the constraint language.
// The parser uses the type to guide the parse.
type TokenType int

// Token types.
const (
	TokenNumeric TokenType = iota
	TokenDot
	TokenHyphen
	TokenEqual
	TokenNotEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual
	TokenTilde
	TokenCaret
	TokenWildcard
	TokenAnd
	TokenOr
	TokenNot
	TokenLeftParen
	TokenRightParen
	TokenWhitespace
	TokenEOF
)

var tokenNames = [...]string{
	TokenNumeric:      "numeric",
	TokenDot:          "dot",
	TokenHyphen:       "hyphen",
	TokenEqual:        "equal",
	TokenNotEqual:     "not-equal",
	TokenGreater:      "greater",
	TokenGreaterEqual: "greater-or-equal",
	TokenLess:         "less",
	TokenLessEqual:    "less-or-equal",
	TokenTilde:        "tilde",
	TokenCaret:        "caret",
	TokenWildcard:     "wildcard",
	TokenAnd:          "and",
	TokenOr:           "or",
	TokenNot:          "not",
	TokenLeftParen:    "opening parenthesis",
	TokenRightParen:   "closing parenthesis",
	TokenWhitespace:   "whitespace",
	TokenEOF:          "end of input",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "unknown"
	}
	return tokenNames[t]
}

// match makes TokenType an elementType over Tokens.
func (t TokenType) match(tok Token) bool { return tok.Type == t }

// A Token is one lexical element of a constraint string. Tokens are
// immutable values compared structurally.
type Token struct {
	Type     TokenType
	Lexeme   string // The matched text; empty for end of input.
	Position int    // 0-based byte offset in the constraint string.
}

// tokenPatterns drives the tokenizer: the first pattern in
// declaration order that matches a non-empty prefix of the remaining
// input wins. Two-character operators are declared before the
// one-character operators they start with, so ">=" is never read as
// ">" "=", and "!=" never as "!" "=".
var tokenPatterns = []struct {
	typ TokenType
	re  *regexp.Regexp
}{
	{TokenNumeric, regexp.MustCompile(`^(0|[1-9][0-9]*)`)},
	{TokenDot, regexp.MustCompile(`^\.`)},
	{TokenHyphen, regexp.MustCompile(`^-`)},
	{TokenNotEqual, regexp.MustCompile(`^!=`)},
	{TokenEqual, regexp.MustCompile(`^=`)},
	{TokenGreaterEqual, regexp.MustCompile(`^>=`)},
	{TokenGreater, regexp.MustCompile(`^>`)},
	{TokenLessEqual, regexp.MustCompile(`^<=`)},
	{TokenLess, regexp.MustCompile(`^<`)},
	{TokenTilde, regexp.MustCompile(`^~`)},
	{TokenWildcard, regexp.MustCompile(`^[*xX]`)},
	{TokenCaret, regexp.MustCompile(`^\^`)},
	{TokenAnd, regexp.MustCompile(`^&`)},
	{TokenOr, regexp.MustCompile(`^\|`)},
	{TokenNot, regexp.MustCompile(`^!`)},
	{TokenLeftParen, regexp.MustCompile(`^\(`)},
	{TokenRightParen, regexp.MustCompile(`^\)`)},
	{TokenWhitespace, regexp.MustCompile(`^\s+`)},
}

// tokenize turns a constraint string into tokens, discarding
// whitespace and ending with a TokenEOF token at the position after
// the last consumed byte. Input that no pattern matches is a
// *LexError carrying the residual substring.
func tokenize(input string) ([]Token, error) {
	var toks []Token
	pos := 0
	for pos < len(input) {
		rest := input[pos:]
		matched := false
		for _, pat := range tokenPatterns {
			m := pat.re.FindString(rest)
			if m == "" {
				continue
			}
			if pat.typ != TokenWhitespace {
				toks = append(toks, Token{Type: pat.typ, Lexeme: m, Position: pos})
			}
			pos += len(m)
			matched = true
			break
		}
		if !matched {
			return nil, &LexError{Input: input, Residual: rest, Position: pos}
		}
	}
	return append(toks, Token{Type: TokenEOF, Position: pos}), nil
}
