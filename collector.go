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

import "go.uber.org/multierr"

// Collector accumulates the failures of a pass that must not stop at the
// first one, such as validating every field of a configuration, and exposes
// them as a single boxed error.
//
// The ensure helpers return nil on success, so they feed a Collector
// directly:
//
//	c := adhocerr.NewCollector()
//	c.Append(adhocerr.Ensure[errNoName](cfg.Name != ""))
//	c.Append(adhocerr.Ensuref(cfg.Port > 0, "invalid port %d", cfg.Port))
//	if err := c.Err(); err != nil {
//	    return err
//	}
//
// # Concurrency
//
// Collector is NOT safe for concurrent use. Collect per goroutine and merge
// the final errors with Append or Combine, or guard the Collector with a
// mutex.
type Collector struct {
	err   error // multierr aggregate of everything appended so far
	count int   // number of non-nil errors appended
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Append adds err to the collector. A nil err, including a nil Reportable
// returned by a passing Ensure, is ignored.
//
// A *Boxed err contributes its inner errors, not the box.
func (c *Collector) Append(err error) {
	if err == nil {
		return
	}
	err = unbox(err)
	c.err = multierr.Append(c.err, err)
	c.count += len(multierr.Errors(err))
}

// AppendFunc calls fn and appends its returned error. Panics in fn are not
// recovered.
func (c *Collector) AppendFunc(fn func() error) {
	c.Append(fn())
}

// Err returns the aggregate as a *Boxed, or nil when nothing failed.
//
// Err does not reset the collector; call Reset to reuse it. Errors returned
// earlier are not affected by later appends or by Reset.
func (c *Collector) Err() error {
	return Box(c.err)
}

// Len returns the number of errors collected so far.
func (c *Collector) Len() int {
	return c.count
}

// HasError reports whether at least one error has been collected.
func (c *Collector) HasError() bool {
	return c.count > 0
}

// Reset clears the collector for reuse.
func (c *Collector) Reset() {
	c.err = nil
	c.count = 0
}

// Errors returns the collected errors in append order, or nil if there are
// none. The returned slice SHOULD be treated as read-only.
func (c *Collector) Errors() []error {
	if c.err == nil {
		return nil
	}
	return multierr.Errors(c.err)
}
