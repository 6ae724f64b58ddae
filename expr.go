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

import "fmt"

// An Expression is an immutable boolean predicate over versions,
// built by ParseConstraint or the Eq/Gt/.../And/Or/Not constructors.
type Expression interface {
	// Match reports whether the version satisfies the expression.
	// Leaf comparisons use Version.Compare, so build metadata is
	// ignored.
	Match(v *Version) bool

	// String renders the expression in constraint syntax.
	String() string
}

// VersionLike is the operand type accepted by the expression
// constructors: a parsed *Version or its string form.
type VersionLike interface {
	*Version | string
}

// versionOf resolves a constructor operand. A malformed version
// string is a programming error and panics, like MustParse.
func versionOf(v any) *Version {
	switch v := v.(type) {
	case *Version:
		return v
	case string:
		return MustParse(v)
	}
	panic(fmt.Sprintf("semver: invalid expression operand %v", v))
}

type (
	eqExpr  struct{ v *Version }
	neqExpr struct{ v *Version }
	gtExpr  struct{ v *Version }
	gteExpr struct{ v *Version }
	ltExpr  struct{ v *Version }
	lteExpr struct{ v *Version }
	andExpr struct{ lhs, rhs Expression }
	orExpr  struct{ lhs, rhs Expression }
	notExpr struct{ expr Expression }
)

func (e eqExpr) Match(v *Version) bool  { return v.Compare(e.v) == 0 }
func (e neqExpr) Match(v *Version) bool { return v.Compare(e.v) != 0 }
func (e gtExpr) Match(v *Version) bool  { return v.Compare(e.v) > 0 }
func (e gteExpr) Match(v *Version) bool { return v.Compare(e.v) >= 0 }
func (e ltExpr) Match(v *Version) bool  { return v.Compare(e.v) < 0 }
func (e lteExpr) Match(v *Version) bool { return v.Compare(e.v) <= 0 }
func (e andExpr) Match(v *Version) bool { return e.lhs.Match(v) && e.rhs.Match(v) }
func (e orExpr) Match(v *Version) bool  { return e.lhs.Match(v) || e.rhs.Match(v) }
func (e notExpr) Match(v *Version) bool { return !e.expr.Match(v) }

func (e eqExpr) String() string  { return "=" + e.v.String() }
func (e neqExpr) String() string { return "!=" + e.v.String() }
func (e gtExpr) String() string  { return ">" + e.v.String() }
func (e gteExpr) String() string { return ">=" + e.v.String() }
func (e ltExpr) String() string  { return "<" + e.v.String() }
func (e lteExpr) String() string { return "<=" + e.v.String() }
func (e andExpr) String() string { return "(" + e.lhs.String() + " & " + e.rhs.String() + ")" }
func (e orExpr) String() string  { return "(" + e.lhs.String() + " | " + e.rhs.String() + ")" }
func (e notExpr) String() string { return "!(" + e.expr.String() + ")" }

// Eq matches versions equal to v.
func Eq[T VersionLike](v T) Expression { return eqExpr{versionOf(v)} }

// Neq matches versions not equal to v.
func Neq[T VersionLike](v T) Expression { return neqExpr{versionOf(v)} }

// Gt matches versions later than v.
func Gt[T VersionLike](v T) Expression { return gtExpr{versionOf(v)} }

// Gte matches versions no earlier than v.
func Gte[T VersionLike](v T) Expression { return gteExpr{versionOf(v)} }

// Lt matches versions earlier than v.
func Lt[T VersionLike](v T) Expression { return ltExpr{versionOf(v)} }

// Lte matches versions no later than v.
func Lte[T VersionLike](v T) Expression { return lteExpr{versionOf(v)} }

// And matches versions satisfying both expressions.
func And(a, b Expression) Expression { return andExpr{a, b} }

// Or matches versions satisfying either expression.
func Or(a, b Expression) Expression { return orExpr{a, b} }

// Not matches versions not satisfying the expression.
func Not(e Expression) Expression { return notExpr{e} }
