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

// formatted is the single shared representation of every dynamic ad-hoc
// error. It is never exposed: Errorf returns it behind Reportable.
type formatted struct {
	msg string
}

// Errorf returns a dynamic ad-hoc error whose message is format interpolated
// with args, as by fmt.Sprintf.
//
// The message is computed exactly once, here, and owned by the returned
// value. Unlike fmt.Errorf, Errorf does not support %w (go vet reports it):
// the result never has a cause. Use Wrapf to attach one.
func Errorf(format string, args ...any) Reportable {
	return &formatted{msg: fmt.Sprintf(format, args...)}
}

func (e *formatted) Error() string   { return e.msg }
func (e *formatted) Message() string { return e.msg }
func (e *formatted) Cause() error    { return nil }
func (e *formatted) Unwrap() error   { return nil }

var _ Reportable = (*formatted)(nil)
