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
	"iter"
)

// Reportable is the capability every error kind in this package satisfies:
// a human-readable message and at most one direct cause.
//
// Callers SHOULD depend on Reportable (or plain error) rather than on the
// concrete kinds. The dynamic kinds are unexported precisely so that their
// representation can not leak into caller code.
//
// For every kind, Error() and Message() return the same text, and Unwrap()
// returns the same value as Cause(), so the standard errors.Is / errors.As
// traversal and the Cause walk in this package agree with each other.
type Reportable interface {
	error

	// Message returns the text supplied at the call site. It NEVER includes
	// the text of the cause.
	Message() string

	// Cause returns the direct cause, or nil for ad-hoc errors.
	Cause() error
}

// causer is the minimal contract Cause looks for on foreign errors.
type causer interface {
	Cause() error
}

// Cause returns the direct cause of err.
//
// Errors exposing a Cause() error method (every Reportable, and many third
// party error types) are asked directly. Any other error falls back to
// errors.Unwrap, so chains built with fmt.Errorf("...: %w", err) are walked
// as well. Cause returns nil for a nil err.
func Cause(err error) error {
	if err == nil {
		return nil
	}
	if c, ok := err.(causer); ok {
		return c.Cause()
	}
	return errors.Unwrap(err)
}

// Chain returns an iterator over err and each of its causes, outermost first.
//
// The sequence is empty for a nil err. Because every wrapping error is built
// from an already complete cause, the chain is finite.
func Chain(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		for e := err; e != nil; e = Cause(e) {
			if !yield(e) {
				return
			}
		}
	}
}

// Causes returns the causes of err as a slice, excluding err itself.
// It returns nil when err is nil or has no cause.
func Causes(err error) []error {
	var out []error
	for e := range Chain(Cause(err)) {
		out = append(out, e)
	}
	return out
}

// Root returns the innermost error of the chain, i.e. the ad-hoc error that
// started it. Root(nil) is nil; an error without a cause is its own root.
func Root(err error) error {
	var root error
	for e := range Chain(err) {
		root = e
	}
	return root
}

// message returns the display text of err without its causes.
func message(err error) string {
	if r, ok := err.(interface{ Message() string }); ok {
		return r.Message()
	}
	return err.Error()
}
