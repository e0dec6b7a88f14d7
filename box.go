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

import (
	"errors"

	"go.uber.org/multierr"
)

// Boxed is the broad any-error container targeted by the Box conversion.
//
// A Boxed holds exactly one inner error, which may itself be a multi-error
// aggregate built by go.uber.org/multierr. Boxing is transparent:
//
//   - Error and Message report the inner error's text;
//   - Cause reports the inner error's cause, so a Cause walk does not see
//     the box as an extra link;
//   - Unwrap returns the inner error, so errors.As can still recover the
//     original concrete kind (and every member of an aggregate).
//
// Boxed values are immutable. Append returns a new box. The zero Boxed is
// an empty box: it has an empty message, no cause and no errors.
type Boxed struct {
	err error
}

// Box converts err into a *Boxed.
//
// Box(nil) returns nil (an untyped nil error, never a nil *Boxed), and an
// error that already is a *Boxed is returned unchanged, so boxing twice is
// a no-op.
func Box(err error) error {
	if err == nil {
		return nil
	}
	if b, ok := err.(*Boxed); ok {
		return b
	}
	return &Boxed{err: err}
}

func (b *Boxed) Error() string {
	if b.err == nil {
		return ""
	}
	return b.err.Error()
}

func (b *Boxed) Message() string {
	if b.err == nil {
		return ""
	}
	return message(b.err)
}

func (b *Boxed) Cause() error  { return Cause(b.err) }
func (b *Boxed) Unwrap() error { return b.err }

// Append returns a new box aggregating the receiver's errors and err.
//
// A nil err returns the receiver itself. Appending a *Boxed merges its inner
// error rather than nesting boxes. Aggregation semantics (flattening and
// ordering) are those of multierr.Append.
func (b *Boxed) Append(err error) *Boxed {
	if err == nil {
		return b
	}
	return &Boxed{err: multierr.Append(b.err, unbox(err))}
}

// Errors returns the individual errors held by the box. A box around a
// single error returns a one-element slice.
//
// The returned slice MUST be treated as read-only.
func (b *Boxed) Errors() []error {
	return multierr.Errors(b.err)
}

// Len returns the number of individual errors held by the box.
func (b *Boxed) Len() int {
	return len(b.Errors())
}

func unbox(err error) error {
	if b, ok := err.(*Boxed); ok {
		return b.err
	}
	return err
}

// Combine merges errs into a single boxed error.
//
// Nil arguments are ignored. If all arguments are nil, Combine returns nil.
// Otherwise the result is a *Boxed whose inner error is built by
// multierr.Combine: a single non-nil error is kept as-is, several are
// aggregated.
func Combine(errs ...error) error {
	opened := make([]error, len(errs))
	for i, err := range errs {
		opened[i] = unbox(err)
	}
	return Box(multierr.Combine(opened...))
}

// Append combines left and right into a single boxed error, following the
// same rules as Combine.
func Append(left, right error) error {
	return Box(multierr.Append(unbox(left), unbox(right)))
}

// Errors returns the individual errors contained in err.
//
// If err is nil, Errors returns nil. Boxes are opened first, so the errors
// returned are never *Boxed themselves. A non-aggregate error yields a
// one-element slice. The returned slice MUST be treated as read-only.
func Errors(err error) []error {
	return multierr.Errors(unbox(err))
}

// AppendInto appends err into the error pointed to by dst and reports
// whether err was non-nil.
//
// A non-nil result always leaves *dst boxed, which makes AppendInto the
// aggregating counterpart of the Box helpers:
//
//	var err error
//	adhocerr.AppendInto(&err, adhocerr.Ensure[errNoName](cfg.Name != ""))
//	adhocerr.AppendInto(&err, adhocerr.Ensuref(cfg.Port > 0, "invalid port %d", cfg.Port))
//	return err
//
// If dst is nil, AppendInto panics, as multierr.AppendInto does.
func AppendInto(dst *error, err error) bool {
	if dst == nil {
		// Let multierr produce its own panic message.
		return multierr.AppendInto(dst, err)
	}
	inner := unbox(*dst)
	if !multierr.AppendInto(&inner, unbox(err)) {
		return false
	}
	*dst = Box(inner)
	return true
}

// AppendFunc calls fn and appends its error into dst, which is convenient
// for best-effort cleanup in deferred calls:
//
//	defer adhocerr.AppendFunc(&err, f.Close)
//
// Panics in fn are not recovered.
func AppendFunc(dst *error, fn func() error) {
	AppendInto(dst, fn())
}

// IsBoxed reports whether err, or any error in its Unwrap tree, is a *Boxed.
func IsBoxed(err error) bool {
	var b *Boxed
	return errors.As(err, &b)
}

var _ Reportable = (*Boxed)(nil)
