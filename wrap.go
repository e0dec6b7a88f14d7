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

import "fmt"

// Wrapped is the static wrapping error for the call site identified by T.
//
// Its only field is the cause, so a Wrapped[T, E] has exactly the size of E:
// wrapping a pointer-shaped cause adds neither memory nor an allocation. The
// message is T's literal text and NEVER includes the text of the cause; the
// cause is reachable through Cause, Unwrap and Source only.
type Wrapped[T Literal, E error] struct {
	cause E
}

// Wrap returns the deferred constructor for tag T, for use where the cause
// is not known yet, typically as an error-mapping step:
//
//	if err := os.WriteFile(".success", data, 0o644); err != nil {
//	    return adhocerr.Wrap[errSaveResults]()(err)
//	}
//
// Use WrapOf when the cause has a concrete type worth preserving.
func Wrap[T Literal]() func(error) Wrapped[T, error] {
	return WrapErr[T, error]
}

// WrapOf is like Wrap but keeps the concrete cause type E, so the resulting
// value is the size of E and Source returns E without a type assertion.
func WrapOf[T Literal, E error]() func(E) Wrapped[T, E] {
	return WrapErr[T, E]
}

// WrapErr wraps cause immediately. E is inferred from the argument:
//
//	adhocerr.WrapErr[errSaveResults](pathErr)
func WrapErr[T Literal, E error](cause E) Wrapped[T, E] {
	return Wrapped[T, E]{cause: cause}
}

func (w Wrapped[T, E]) Error() string   { return T{}.Text() }
func (w Wrapped[T, E]) Message() string { return T{}.Text() }
func (w Wrapped[T, E]) Cause() error    { return w.cause }
func (w Wrapped[T, E]) Unwrap() error   { return w.cause }

// Source returns the cause with its concrete type.
func (w Wrapped[T, E]) Source() E { return w.cause }

// formatWrapped is the single shared representation of every dynamic
// wrapping error.
type formatWrapped[E error] struct {
	msg   string
	cause E
}

// Wrapf returns a deferred constructor that wraps its argument in a dynamic
// wrapping error:
//
//	if err := os.WriteFile(path, data, 0o644); err != nil {
//	    return adhocerr.Wrapf("failed to save results to %s", path)(err)
//	}
//
// Nothing is formatted until the returned function is called. Each call
// formats the message once and owns the result; args are read at that
// moment, not when Wrapf is called.
func Wrapf(format string, args ...any) func(error) Reportable {
	return WrapfOf[error](format, args...)
}

// WrapfOf is like Wrapf but keeps the concrete cause type E inside the
// error value.
func WrapfOf[E error](format string, args ...any) func(E) Reportable {
	return func(cause E) Reportable {
		return &formatWrapped[E]{msg: fmt.Sprintf(format, args...), cause: cause}
	}
}

func (e *formatWrapped[E]) Error() string   { return e.msg }
func (e *formatWrapped[E]) Message() string { return e.msg }
func (e *formatWrapped[E]) Cause() error    { return e.cause }
func (e *formatWrapped[E]) Unwrap() error   { return e.cause }

// constWrapped is the wrapping counterpart of Const.
type constWrapped struct {
	msg   Const
	cause error
}

// Wrap returns the deferred constructor wrapping a cause under c's text.
func (c Const) Wrap() func(error) Reportable {
	return func(cause error) Reportable {
		return &constWrapped{msg: c, cause: cause}
	}
}

func (e *constWrapped) Error() string   { return string(e.msg) }
func (e *constWrapped) Message() string { return string(e.msg) }
func (e *constWrapped) Cause() error    { return e.cause }
func (e *constWrapped) Unwrap() error   { return e.cause }

// Is reports whether target is the Const this error was built from, so
// errors.Is(err, ErrClosed) matches both ErrClosed and ErrClosed.Wrap()(x).
func (e *constWrapped) Is(target error) bool {
	c, ok := target.(Const)
	return ok && c == e.msg
}

var (
	_ Reportable = (*formatWrapped[error])(nil)
	_ Reportable = (*constWrapped)(nil)
)
