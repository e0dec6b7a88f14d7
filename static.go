/*
	Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package adhocerr

// Literal is the constraint satisfied by per-callsite message tags.
//
// A tag is an empty struct type whose Text method returns the fixed message
// of exactly one call site:
//
//	type errNoGitRoot struct{}
//
//	func (errNoGitRoot) Text() string { return "unable to find .git/ in parent directories" }
//
// The ~struct{} term restricts tags to zero-size types, so the error values
// built from them (Static, Wrapped) carry no data for the message. Two call
// sites MUST use two different tag types, even for identical text: the tag
// is what makes their errors independently identifiable.
//
// Tags are usually generated by cmd/adhocgen from //adhocerr:literal
// directives, but may be written by hand.
type Literal interface {
	~struct{}
	Text() string
}

// Static is the static ad-hoc error for the call site identified by T.
//
// Static has zero size: converting it to error or Reportable does not
// allocate, and its message lives in T's Text method rather than in memory.
// Static[A] and Static[B] are distinct types for distinct tags, so
//
//	var target adhocerr.Static[errNoGitRoot]
//	errors.As(err, &target)
//
// only matches errors produced at the call site that owns errNoGitRoot.
type Static[T Literal] struct{}

// Err returns the static ad-hoc error for tag T. It never allocates.
func Err[T Literal]() Static[T] {
	return Static[T]{}
}

func (Static[T]) Error() string   { return T{}.Text() }
func (Static[T]) Message() string { return T{}.Text() }
func (Static[T]) Cause() error    { return nil }
func (Static[T]) Unwrap() error   { return nil }

// Const is the fallback static representation: the message is carried as
// data instead of as a type.
//
// Const values can be declared as constants and converting a constant Const
// to an interface does not allocate. The trade-off against Static is
// identity: a Const is a string header in size, and two Const values with
// the same text compare equal, so errors.Is can not tell their call sites
// apart. Prefer Static when call sites must stay distinguishable.
//
//	const ErrClosed adhocerr.Const = "connection closed"
type Const string

func (c Const) Error() string   { return string(c) }
func (c Const) Message() string { return string(c) }
func (c Const) Cause() error    { return nil }
func (c Const) Unwrap() error   { return nil }

var _ Reportable = Const("")
