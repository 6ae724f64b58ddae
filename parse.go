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

// versionParser is a recursive-descent parser over a character
// stream. It owns one parse call; the first error stops the parse
// and is the one reported.
type versionParser struct {
	str   string
	runes []rune
	chars *stream[rune]
	err   error
}

func newVersionParser(str string) *versionParser {
	runes := []rune(str)
	return &versionParser{
		str:   str,
		runes: runes,
		chars: newStream(runes, eof),
	}
}

func parseVersion(str string) (*Version, error) {
	if str == "" {
		return nil, ErrEmpty
	}
	p := newVersionParser(str)
	v := p.validSemVer()
	if p.err != nil {
		return nil, p.err
	}
	return v, nil
}

// parsePreRelease parses a bare pre-release tag, as given to
// WithPreRelease and the increment family.
func parsePreRelease(str string) (metadata, error) {
	return parseMetadata(str, false)
}

// parseBuild parses a bare build tag.
func parseBuild(str string) (metadata, error) {
	return parseMetadata(str, true)
}

func parseMetadata(str string, build bool) (metadata, error) {
	if str == "" {
		return noMetadata, ErrEmpty
	}
	p := newVersionParser(str)
	m := p.metadataIdents(build)
	if p.err == nil {
		p.expect(CharEOF)
	}
	if p.err != nil {
		return noMetadata, p.err
	}
	return m, nil
}

// setError remembers the first error that occurs.
func (p *versionParser) setError(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

// unexpected records an UnexpectedCharacterError for the character
// at the cursor.
func (p *versionParser) unexpected(want ...CharType) {
	p.setError(&UnexpectedCharacterError{
		Input:    p.str,
		Char:     p.chars.peek(),
		Position: p.chars.pos(),
		Expected: want,
	})
}

// expect consumes the next character if its class is one of want,
// and records an error otherwise.
func (p *versionParser) expect(want ...CharType) rune {
	types := make([]elementType[rune], len(want))
	for i, t := range want {
		types[i] = t
	}
	c, ok := p.chars.expect(types...)
	if !ok {
		p.unexpected(want...)
	}
	return c
}

// accept consumes the next character if its class is t.
func (p *versionParser) accept(t CharType) bool {
	if p.err != nil {
		return false
	}
	_, ok := p.chars.expect(t)
	return ok
}

// text returns the input consumed since start.
func (p *versionParser) text(start int) string {
	return string(p.runes[start:p.chars.pos()])
}

// validSemVer parses the whole version string:
//
//	version core, then one of
//	  "-" or "_" pre-release, optionally "+" build
//	  "+" build
//	  "." build                      (relaxed: "4.1.50.Final")
//	  letters/digits build           (relaxed: "4.1Final", only when the
//	                                  core was not fully specified)
//	  end of input
func (p *versionParser) validSemVer() *Version {
	norm := p.versionCore()
	pre, build := noMetadata, noMetadata
	switch typeOfChar(p.chars.peek()) {
	case CharEOF:
		// Nothing after the core.
	case CharHyphen, CharUnderscore:
		p.chars.next()
		pre = p.metadataIdents(false)
		if p.accept(CharPlus) {
			build = p.metadataIdents(true)
		}
	case CharPlus:
		p.chars.next()
		build = p.metadataIdents(true)
	case CharDot:
		p.chars.next()
		build = p.metadataIdents(true)
	case CharDigit, CharLetter:
		if norm.minorSpec && norm.patchSpec {
			p.unexpected(CharHyphen, CharPlus, CharUnderscore, CharDot, CharEOF)
			break
		}
		build = p.metadataIdents(true)
	default:
		p.unexpected(CharHyphen, CharPlus, CharUnderscore, CharDot, CharEOF)
	}
	if p.err == nil {
		p.expect(CharEOF)
	}
	return &Version{norm: norm, pre: pre, build: build}
}

// versionCore parses major, then minor and patch when each is
// introduced by a dot directly followed by a digit. A dot followed
// by anything else is left for validSemVer to treat as a build
// separator.
func (p *versionParser) versionCore() NormalVersion {
	var n NormalVersion
	n.major = p.number()
	if p.dotNumberAhead() {
		p.chars.next()
		n.minor = p.number()
		n.minorSpec = true
		if p.dotNumberAhead() {
			p.chars.next()
			n.patch = p.number()
			n.patchSpec = true
		}
	}
	return n
}

// dotNumberAhead reports whether the next characters are a dot
// directly followed by a digit.
func (p *versionParser) dotNumberAhead() bool {
	if p.err != nil {
		return false
	}
	return CharDot.match(p.chars.peek()) && CharDigit.match(p.chars.lookahead(2))
}

// number parses one version-core number.
func (p *versionParser) number() uint64 {
	text := p.numericIdent()
	if p.err != nil {
		return 0
	}
	val, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		p.setError(&ParseError{
			Input: p.str,
			Msg:   fmt.Sprintf("version number %s out of range", text),
		})
		return 0
	}
	return val
}

// numericIdent parses a run of digits with no leading zero.
func (p *versionParser) numericIdent() string {
	start := p.chars.pos()
	p.expect(CharDigit)
	if p.err != nil {
		return ""
	}
	for p.accept(CharDigit) {
	}
	text := p.text(start)
	if len(text) > 1 && text[0] == '0' {
		p.setError(&ParseError{
			Input: p.str,
			Msg:   fmt.Sprintf("numeric identifier %#q has a leading zero", text),
		})
		return ""
	}
	return text
}

// metadataIdents parses the dot-separated identifiers of a
// pre-release or build tag.
func (p *versionParser) metadataIdents(build bool) metadata {
	var ids []string
	for {
		id := p.identifier(build)
		if p.err != nil {
			return noMetadata
		}
		ids = append(ids, id)
		if !p.dotIdentAhead() {
			break
		}
		p.chars.next()
	}
	return metadata{ids: ids}
}

// dotIdentAhead reports whether a dot continuing the identifier list
// is next. A trailing dot is left unconsumed so the identifier parse
// reports the error at the character after it.
func (p *versionParser) dotIdentAhead() bool {
	return p.err == nil && CharDot.match(p.chars.peek())
}

// metaBoundary delimits a single metadata identifier.
var metaBoundary = []elementType[rune]{CharDot, CharPlus, CharEOF}

// identifier parses one metadata identifier. An identifier with a
// letter or hyphen before the next boundary is an alphanumeric
// identifier; otherwise it must be digits, with the no-leading-zero
// rule applying to pre-release but not build identifiers.
func (p *versionParser) identifier(build bool) string {
	if !build {
		switch typeOfChar(p.chars.peek()) {
		case CharDot, CharPlus, CharEOF:
			// Identifiers must not be empty.
			p.unexpected(CharDigit, CharLetter, CharHyphen)
			return ""
		}
	}
	if p.chars.lookaheadBefore(metaBoundary, CharLetter, CharHyphen) {
		return p.alphanumericIdent()
	}
	if build {
		return p.digits()
	}
	return p.numericIdent()
}

// alphanumericIdent parses a run of letters, digits and hyphens.
func (p *versionParser) alphanumericIdent() string {
	start := p.chars.pos()
	p.expect(CharDigit, CharLetter, CharHyphen)
	if p.err != nil {
		return ""
	}
	for isAlphanumericOrHyphen(p.chars.peek()) {
		p.chars.next()
	}
	return p.text(start)
}

// digits parses a run of digits; leading zeroes are allowed.
func (p *versionParser) digits() string {
	start := p.chars.pos()
	p.expect(CharDigit)
	if p.err != nil {
		return ""
	}
	for p.accept(CharDigit) {
	}
	return p.text(start)
}
