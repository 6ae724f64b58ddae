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
	"strconv"
	"strings"
)

// metadata holds the dot-separated identifiers of a pre-release or
// build tag. A nil identifier slice is the absent tag; the zero
// value is therefore "no metadata".
type metadata struct {
	ids []string
}

// noMetadata is the absent tag.
var noMetadata = metadata{}

func (m metadata) absent() bool { return m.ids == nil }

// String returns the dot-joined identifiers; empty for an absent tag.
func (m metadata) String() string { return strings.Join(m.ids, ".") }

// compare orders two metadata values under the semver.org
// pre-release rules: identifier by identifier, numerically when both
// identifiers are numbers and by ASCII ordering otherwise, with more
// identifiers ranking higher when one list is a prefix of the other.
// An absent tag ranks above any concrete identifiers; for the build
// slot, where presence ranks higher instead, CompareWithBuilds flips
// the sign.
func (m metadata) compare(o metadata) int {
	switch {
	case m.absent() && o.absent():
		return 0
	case m.absent():
		return 1
	case o.absent():
		return -1
	}
	for i, id := range m.ids {
		if i >= len(o.ids) {
			return 1
		}
		if c := compareIdent(id, o.ids[i]); c != 0 {
			return c
		}
	}
	if len(m.ids) < len(o.ids) {
		return -1
	}
	return 0
}

// compareIdent compares two identifiers. When both are numbers they
// compare numerically; any other pair compares as ASCII strings.
func compareIdent(a, b string) int {
	na, aNum := identNum(a)
	nb, bNum := identNum(b)
	if aNum && bNum {
		return sgnu64(na, nb)
	}
	return sgnStr(a, b)
}

// identNum reports the numeric value of an identifier consisting
// only of digits. Values beyond 64 bits fall back to string
// comparison.
func identNum(s string) (uint64, bool) {
	for _, c := range s {
		if !isDigit(c) {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// increment returns metadata with the final identifier incremented
// when it is a number, or with a new identifier "1" appended
// otherwise. Incrementing an absent tag returns ErrNoMetadata.
func (m metadata) increment() (metadata, error) {
	if m.absent() {
		return noMetadata, ErrNoMetadata
	}
	ids := make([]string, len(m.ids), len(m.ids)+1)
	copy(ids, m.ids)
	last := len(ids) - 1
	if n, ok := identNum(ids[last]); ok {
		ids[last] = strconv.FormatUint(n+1, 10)
	} else {
		ids = append(ids, "1")
	}
	return metadata{ids: ids}, nil
}
