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

import "strings"

// A Builder assembles a version from its textual parts. Build
// concatenates the parts and parses the result, so a built version
// is subject to exactly the same grammar and errors as Parse.
// The zero value is ready to use.
type Builder struct {
	normal string
	pre    string
	build  string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// SetNormal sets the numeric core, e.g. "1.2.3".
func (b *Builder) SetNormal(s string) *Builder {
	b.normal = s
	return b
}

// SetPreRelease sets the pre-release tag, e.g. "alpha.1".
func (b *Builder) SetPreRelease(s string) *Builder {
	b.pre = s
	return b
}

// SetBuild sets the build tag, e.g. "build.42".
func (b *Builder) SetBuild(s string) *Builder {
	b.build = s
	return b
}

// Build assembles "normal[-pre][+build]" from the non-empty parts
// and parses it.
func (b *Builder) Build() (*Version, error) {
	var s strings.Builder
	s.WriteString(b.normal)
	if b.pre != "" {
		s.WriteByte('-')
		s.WriteString(b.pre)
	}
	if b.build != "" {
		s.WriteByte('+')
		s.WriteString(b.build)
	}
	return Parse(s.String())
}
