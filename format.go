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
	"fmt"
	"io"
	"strings"
)

// causedByPrefix starts every cause line of the verbose %+v form.
const causedByPrefix = "\n    caused by: "

// format renders r for the fmt verbs:
//
//	%s, %v   message only (same as Error)
//	%q       quoted message
//	%+v      message, then one "caused by:" line per cause in the chain
func format(s fmt.State, verb rune, r Reportable) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, r.Message())
			for e := range Chain(r.Cause()) {
				io.WriteString(s, causedByPrefix)
				io.WriteString(s, message(e))
			}
			return
		}
		io.WriteString(s, r.Message())
	case 's':
		io.WriteString(s, r.Message())
	case 'q':
		fmt.Fprintf(s, "%q", r.Message())
	default:
		fmt.Fprintf(s, "%%!%c(%s)", verb, r.Message())
	}
}

func (e Static[T]) Format(s fmt.State, verb rune)     { format(s, verb, e) }
func (w Wrapped[T, E]) Format(s fmt.State, verb rune) { format(s, verb, w) }
func (c Const) Format(s fmt.State, verb rune)         { format(s, verb, c) }

func (e *formatted) Format(s fmt.State, verb rune)        { format(s, verb, e) }
func (e *formatWrapped[E]) Format(s fmt.State, verb rune) { format(s, verb, e) }
func (e *constWrapped) Format(s fmt.State, verb rune)     { format(s, verb, e) }
func (b *Boxed) Format(s fmt.State, verb rune)            { format(s, verb, b) }

// ChainString renders err and its causes on one line, outermost first:
//
//	adhocerr.ChainString(err)                            // "failed to write report: disk full"
//	adhocerr.ChainString(err, adhocerr.WithSeparator(" <- "))
//
// Each link contributes its own message only. With a depth limit, links
// beyond it are replaced by a single ellipsis. ChainString(nil) is "".
func ChainString(err error, opts ...ChainOption) string {
	o := newChainOptions(opts...)

	var sb strings.Builder
	depth := 0
	for e := range Chain(err) {
		if depth > 0 {
			sb.WriteString(o.separator)
		}
		if o.maxDepth > 0 && depth == o.maxDepth {
			sb.WriteString(o.ellipsis)
			break
		}
		sb.WriteString(message(e))
		depth++
	}
	return sb.String()
}
