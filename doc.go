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


// Package adhocerr builds per-callsite error values that cost nothing when
// the message is fixed and a single string allocation when it is not.
//
// # Overview
//
// Most Go code reaches for errors.New or fmt.Errorf at every failure site.
// Both allocate, and both produce values that are indistinguishable from
// every other call site using the same representation. Package adhocerr
// gives each failure site its own error value instead, and selects the
// cheapest representation for it at compile time:
//
//   - a fixed message becomes a zero-size type, whose text lives in code;
//   - an interpolated message is formatted once into a shared, unexported
//     representation, hidden behind the Reportable interface.
//
// # Error kinds
//
// Two shapes are crossed with two message modes:
//
//	                 ad-hoc (no cause)         wrapping (one cause)
//	static message   Err[T]()      Static[T]   Wrap[T]()(cause)   Wrapped[T, E]
//	dynamic message  Errorf(f, a...)           Wrapf(f, a...)(cause)
//
// Static kinds are parameterized by a literal tag T, an empty struct whose
// Text method returns the message (see Literal). Each call site owns its
// own tag, which makes its errors a distinct type:
//
//	//adhocerr:literal errNoGitRoot unable to find .git/ in parent directories
//
//	func gitRoot(start string) (string, error) {
//	    for dir := start; ; dir = filepath.Dir(dir) {
//	        if isDir(filepath.Join(dir, ".git")) {
//	            return dir, nil
//	        }
//	        if dir == filepath.Dir(dir) {
//	            return "", adhocerr.Err[errNoGitRoot]()
//	        }
//	    }
//	}
//
// The directive above is expanded into the tag type by cmd/adhocgen
// (typically through //go:generate adhocgen). When a type per call site is
// not worth it, Const carries the message as data instead, at the price of
// call-site identity.
//
// Wrapping constructors are deferred: they return a function from the cause
// to the error, because the cause only exists once something upstream has
// failed. The wrapper's message NEVER includes the cause's text; the cause
// is reachable through Cause, errors.Unwrap and the %+v verb.
//
// # Early return
//
// Ensure, Ensuref, Bail and Bailf are the early-return forms. Ensure fails
// only when its condition is false and formats nothing otherwise; Bail
// always fails and returns the zero value of the caller's result type next
// to the error. The Box variants additionally convert the failure into the
// broad *Boxed container.
//
// # Boxing and aggregation
//
// Box converts any error into a *Boxed, the container used by code that
// collects heterogeneous errors. Aggregation is delegated to
// go.uber.org/multierr: Combine, Append, Errors, AppendInto, AppendFunc and
// Collector are thin, boxed wrappers around the corresponding multierr
// primitives, and every aggregate they build can be inspected with multierr
// directly after Unwrap.
//
// # Cause chains
//
// Every error has at most one direct cause. Cause, Chain, Causes, Root and
// ChainString walk the chain; foreign errors are followed through
// errors.Unwrap, so chains mixing adhocerr and fmt.Errorf("%w") values are
// walked end to end.
//
// # Concurrency considerations
//
// Construction is synchronous and touches only its own inputs, and every
// error value is immutable, so errors can be built, shared and reported
// from any number of goroutines. Collector is the exception: it MUST NOT be
// used concurrently without external synchronization.
package adhocerr
