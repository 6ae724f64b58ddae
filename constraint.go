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
	"math"
	"strconv"
	"strings"
)

// constraintParser is a recursive-descent parser over a token
// stream. Like versionParser, it owns one parse call and reports the
// first error.
type constraintParser struct {
	str    string
	tokens *stream[Token]
	err    error
}

// ParseConstraint parses a constraint string into an evaluable
// Expression. The syntax is defined in the package comment. The
// error is ErrEmpty for a blank string, a *LexError when the input
// cannot be tokenized, or a *UnexpectedTokenError for a grammar
// violation.
func ParseConstraint(str string) (Expression, error) {
	if strings.TrimSpace(str) == "" {
		return nil, ErrEmpty
	}
	toks, err := tokenize(str)
	if err != nil {
		return nil, err
	}
	p := &constraintParser{
		str:    str,
		tokens: newStream(toks, toks[len(toks)-1]),
	}
	e := p.expression()
	if p.err == nil {
		p.expect(TokenEOF)
	}
	if p.err != nil {
		return nil, p.err
	}
	return e, nil
}

func (p *constraintParser) setError(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

// unexpected records an UnexpectedTokenError for the token at the
// cursor.
func (p *constraintParser) unexpected(want ...TokenType) {
	p.setError(&UnexpectedTokenError{
		Input:    p.str,
		Token:    p.tokens.peek(),
		Expected: want,
	})
}

// expect consumes the next token if its type is one of want, and
// records an error otherwise.
func (p *constraintParser) expect(want ...TokenType) Token {
	if p.err != nil {
		return Token{Type: TokenEOF}
	}
	types := make([]elementType[Token], len(want))
	for i, t := range want {
		types[i] = t
	}
	tok, ok := p.tokens.expect(types...)
	if !ok {
		p.unexpected(want...)
	}
	return tok
}

// accept consumes the next token if its type is t.
func (p *constraintParser) accept(t TokenType) bool {
	if p.err != nil {
		return false
	}
	_, ok := p.tokens.expect(t)
	return ok
}

func (p *constraintParser) peekIs(t TokenType) bool {
	return t.match(p.tokens.peek())
}

// expression parses a primary and then folds "&" and "|" strictly
// left to right with equal precedence: "a & b | c" is "(a & b) | c".
func (p *constraintParser) expression() Expression {
	e := p.primary()
	for p.err == nil {
		switch {
		case p.accept(TokenAnd):
			e = And(e, p.primary())
		case p.accept(TokenOr):
			e = Or(e, p.primary())
		default:
			return e
		}
	}
	return e
}

// primary parses a parenthesized expression, a negation, or a range.
func (p *constraintParser) primary() Expression {
	switch {
	case p.accept(TokenNot):
		p.expect(TokenLeftParen)
		e := p.expression()
		p.expect(TokenRightParen)
		return Not(e)
	case p.accept(TokenLeftParen):
		e := p.expression()
		p.expect(TokenRightParen)
		return e
	}
	return p.rangeExpr()
}

// rangeExpr parses one range. Tilde and caret announce themselves;
// wildcard, hyphen and partial-version ranges all start with the
// same numeric/dot run and are told apart by looking ahead to the
// first token after that run.
func (p *constraintParser) rangeExpr() Expression {
	switch {
	case p.peekIs(TokenTilde):
		return p.tildeRange()
	case p.peekIs(TokenCaret):
		return p.caretRange()
	case p.versionFollowedBy(TokenWildcard):
		return p.wildcardRange()
	case p.versionFollowedBy(TokenHyphen):
		return p.hyphenRange()
	case p.partialAhead():
		return p.partialRange()
	}
	return p.comparisonRange()
}

// versionFollowedBy reports whether the run of numeric and dot
// tokens at the cursor (possibly empty) is followed directly by a
// token of type t.
func (p *constraintParser) versionFollowedBy(t TokenType) bool {
	i := 1
	for TokenNumeric.match(p.tokens.lookahead(i)) || TokenDot.match(p.tokens.lookahead(i)) {
		i++
	}
	return t.match(p.tokens.lookahead(i))
}

// tokenNotIn matches any token whose type is not in the set.
type tokenNotIn []TokenType

func (s tokenNotIn) match(tok Token) bool {
	for _, t := range s {
		if t.match(tok) {
			return false
		}
	}
	return true
}

// partialAhead reports whether the cursor sits on a partial version
// such as "1" or "1.2": a numeric token whose numeric/dot run ends
// within the next five tokens. A full three-number version occupies
// five tokens, so its run cannot end inside the window.
func (p *constraintParser) partialAhead() bool {
	if !p.peekIs(TokenNumeric) {
		return false
	}
	return p.tokens.lookaheadUntil(5, tokenNotIn{TokenNumeric, TokenDot})
}

// comparisonRange parses an optional comparison operator and a
// version; a bare version means equality.
func (p *constraintParser) comparisonRange() Expression {
	switch {
	case p.accept(TokenEqual):
		return Eq(p.version())
	case p.accept(TokenNotEqual):
		return Neq(p.version())
	case p.accept(TokenGreaterEqual):
		return Gte(p.version())
	case p.accept(TokenGreater):
		return Gt(p.version())
	case p.accept(TokenLessEqual):
		return Lte(p.version())
	case p.accept(TokenLess):
		return Lt(p.version())
	}
	return Eq(p.version())
}

// tildeRange parses "~version": at least the given version, below
// the next minor (or major, if only the major was given).
func (p *constraintParser) tildeRange() Expression {
	p.expect(TokenTilde)
	major := p.number()
	if !p.accept(TokenDot) {
		return rangeFrom(at(major, 0, 0), at(p.inc(major), 0, 0))
	}
	minor := p.number()
	if !p.accept(TokenDot) {
		return rangeFrom(at(major, minor, 0), at(major, p.inc(minor), 0))
	}
	patch := p.number()
	return rangeFrom(at(major, minor, patch), at(major, p.inc(minor), 0))
}

// caretRange parses "^version": the leftmost non-zero number stays
// fixed. "^0.0.0" matches only itself.
func (p *constraintParser) caretRange() Expression {
	p.expect(TokenCaret)
	major := p.number()
	var minor, patch uint64
	if p.accept(TokenDot) {
		minor = p.number()
		if p.accept(TokenDot) {
			patch = p.number()
		}
	}
	v := at(major, minor, patch)
	switch {
	case major > 0:
		return rangeFrom(v, at(p.inc(major), 0, 0))
	case minor > 0:
		return rangeFrom(v, at(0, p.inc(minor), 0))
	case patch > 0:
		return rangeFrom(v, at(0, 0, p.inc(patch)))
	}
	return Eq(v)
}

// wildcardRange parses "*", "major.*" or "major.minor.*", bounding a
// range by the fixed prefix. The wildcard character is *, x or X.
func (p *constraintParser) wildcardRange() Expression {
	if p.accept(TokenWildcard) {
		return Gte(at(0, 0, 0))
	}
	major := p.number()
	p.expect(TokenDot)
	if p.accept(TokenWildcard) {
		return rangeFrom(at(major, 0, 0), at(p.inc(major), 0, 0))
	}
	minor := p.number()
	p.expect(TokenDot)
	p.expect(TokenWildcard)
	return rangeFrom(at(major, minor, 0), at(major, p.inc(minor), 0))
}

// hyphenRange parses "version - version", inclusive on both ends.
func (p *constraintParser) hyphenRange() Expression {
	lo := p.version()
	p.expect(TokenHyphen)
	hi := p.version()
	return And(Gte(lo), Lte(hi))
}

// partialRange parses a bare partial version, bounding a range by
// the given prefix: "1" matches 1.x.x, "1.2" matches 1.2.x.
func (p *constraintParser) partialRange() Expression {
	major := p.number()
	if !p.accept(TokenDot) {
		return rangeFrom(at(major, 0, 0), at(p.inc(major), 0, 0))
	}
	minor := p.number()
	return rangeFrom(at(major, minor, 0), at(major, p.inc(minor), 0))
}

// version parses major[.minor[.patch]]; omitted numbers are zero.
func (p *constraintParser) version() *Version {
	var norm NormalVersion
	norm.major = p.number()
	if p.accept(TokenDot) {
		norm.minor = p.number()
		norm.minorSpec = true
		if p.accept(TokenDot) {
			norm.patch = p.number()
			norm.patchSpec = true
		}
	}
	return &Version{norm: norm}
}

// inc returns n+1, the exclusive upper bound a range production
// derives from n. A bound above the largest representable number is
// out of range like any other unrepresentable number.
func (p *constraintParser) inc(n uint64) uint64 {
	if n == math.MaxUint64 {
		p.setError(&ParseError{
			Input: p.str,
			Msg:   fmt.Sprintf("version number above %d out of range", n),
		})
		return n
	}
	return n + 1
}

// number parses one numeric token.
func (p *constraintParser) number() uint64 {
	tok := p.expect(TokenNumeric)
	if p.err != nil {
		return 0
	}
	n, err := strconv.ParseUint(tok.Lexeme, 10, 64)
	if err != nil {
		p.setError(&ParseError{
			Input: p.str,
			Msg:   fmt.Sprintf("version number %s out of range", tok.Lexeme),
		})
		return 0
	}
	return n
}

// at builds a fully specified version value for range bounds.
func at(major, minor, patch uint64) *Version {
	return &Version{norm: NormalVersion{
		major: major, minor: minor, patch: patch,
		minorSpec: true, patchSpec: true,
	}}
}

// rangeFrom is the half-open interval [lo, hi).
func rangeFrom(lo, hi *Version) Expression {
	return And(Gte(lo), Lt(hi))
}
