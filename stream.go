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

// Both parsers in this package walk a stream of elements with
// arbitrary lookahead and single-element push-back: the version
// parser a stream of runes classified by CharType, the constraint
// parser a stream of Tokens classified by TokenType. The stream is an
// explicit cursor over a slice rather than an iterator, so lookahead
// and rollback are plain index arithmetic.

// An elementType identifies a class of stream elements.
type elementType[E any] interface {
	match(e E) bool
}

// A stream is a cursor over a slice of elements. Reading past the
// last element yields the end element; the cursor does not advance
// past the end.
type stream[E any] struct {
	elems  []E
	offset int
	end    E
	wid    int // 1 after a consuming read, 0 otherwise; bounds back().
}

func newStream[E any](elems []E, end E) *stream[E] {
	return &stream[E]{elems: elems, end: end}
}

// pos returns the 0-based position of the next element.
func (s *stream[E]) pos() int { return s.offset }

// next returns the next element and advances.
func (s *stream[E]) next() E {
	if s.offset >= len(s.elems) {
		s.wid = 0
		return s.end
	}
	e := s.elems[s.offset]
	s.offset++
	s.wid = 1
	return e
}

// back backs up over the previous element. It can back up only one
// element.
func (s *stream[E]) back() {
	s.offset -= s.wid
	s.wid = 0
}

// peek returns the next element without advancing.
func (s *stream[E]) peek() E { return s.lookahead(1) }

// lookahead returns the n-th upcoming element without advancing;
// lookahead(1) is the next element. Positions beyond the last
// element yield the end element.
func (s *stream[E]) lookahead(n int) E {
	i := s.offset + n - 1
	if i >= len(s.elems) {
		return s.end
	}
	return s.elems[i]
}

// expect consumes and returns the next element if it matches one of
// the types. Otherwise it leaves the cursor alone and returns the
// offending element with ok false; the caller owns error reporting.
func (s *stream[E]) expect(types ...elementType[E]) (e E, ok bool) {
	e = s.peek()
	for _, t := range types {
		if t.match(e) {
			return s.next(), true
		}
	}
	return e, false
}

// lookaheadBefore reports whether an element matching one of want
// appears before the first element matching one of stop. The scan is
// bounded by the end of the stream.
func (s *stream[E]) lookaheadBefore(stop []elementType[E], want ...elementType[E]) bool {
	for i := 1; i <= len(s.elems)-s.offset+1; i++ {
		e := s.lookahead(i)
		for _, t := range stop {
			if t.match(e) {
				return false
			}
		}
		for _, t := range want {
			if t.match(e) {
				return true
			}
		}
	}
	return false
}

// lookaheadUntil reports whether any of the next n elements matches
// one of want.
func (s *stream[E]) lookaheadUntil(n int, want ...elementType[E]) bool {
	for i := 1; i <= n; i++ {
		e := s.lookahead(i)
		for _, t := range want {
			if t.match(e) {
				return true
			}
		}
	}
	return false
}
