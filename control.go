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

// The helpers below are the early-return forms of the constructors. Go has
// no statement macros, so the early return itself stays in the caller:
//
//	if err := adhocerr.Ensure[errNotRoot](user == 0); err != nil {
//	    return err
//	}
//
//	if depth > maxDepth {
//	    return adhocerr.Bailf[int]("recursion limit %d exceeded", maxDepth)
//	}
//
// Each helper comes in two flavours. The plain one returns the narrow
// Reportable. The Box one additionally converts the failure into the broad
// *Boxed container before returning it, for callers whose error slot
// aggregates heterogeneous errors. The conversion is the only difference:
// both flavours fail, or succeed, under exactly the same conditions.

// Ensure returns nil when ok holds and the static ad-hoc error for T
// otherwise. It never allocates.
func Ensure[T Literal](ok bool) Reportable {
	if ok {
		return nil
	}
	return Static[T]{}
}

// Ensuref returns nil when ok holds and a dynamic ad-hoc error otherwise.
//
// args are only formatted on failure: a Stringer or Formatter among them
// is not invoked on the success path. They are still evaluated and, since
// they reach fmt on failure, non-pointer arguments are moved to the heap on
// every call. On hot paths prefer the guarded form, which allocates nothing
// when cond holds:
//
//	if !cond {
//	    return adhocerr.Errorf("n=%d path=%s", n, path)
//	}
func Ensuref(ok bool, format string, args ...any) Reportable {
	if ok {
		return nil
	}
	return Errorf(format, args...)
}

// EnsureBox is Ensure followed by Box.
func EnsureBox[T Literal](ok bool) error {
	if ok {
		return nil
	}
	return Box(Static[T]{})
}

// EnsurefBox is Ensuref followed by Box. Its arguments cost the same as
// those of Ensuref on the success path.
func EnsurefBox(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return Box(Errorf(format, args...))
}

// Bail returns the zero value of R together with the static ad-hoc error
// for T, so that a function returning (R, error) can fail in one statement:
//
//	return adhocerr.Bail[*Config, errNoConfig]()
func Bail[R any, T Literal]() (R, Reportable) {
	var zero R
	return zero, Static[T]{}
}

// Bailf returns the zero value of R together with a dynamic ad-hoc error.
func Bailf[R any](format string, args ...any) (R, Reportable) {
	var zero R
	return zero, Errorf(format, args...)
}

// BailBox is Bail with the error converted by Box.
func BailBox[R any, T Literal]() (R, error) {
	var zero R
	return zero, Box(Static[T]{})
}

// BailfBox is Bailf with the error converted by Box.
func BailfBox[R any](format string, args ...any) (R, error) {
	var zero R
	return zero, Box(Errorf(format, args...))
}
