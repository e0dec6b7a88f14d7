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

// Defaults used by ChainString.
const (
	DefaultSeparator = ": "
	DefaultEllipsis  = "..."
)

// ChainOption configures ChainString.
type ChainOption func(*chainOptions)

type chainOptions struct {
	separator string
	ellipsis  string
	maxDepth  int
}

func newChainOptions(opts ...ChainOption) chainOptions {
	o := chainOptions{
		separator: DefaultSeparator,
		ellipsis:  DefaultEllipsis,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeparator sets the text written between two links of the chain.
func WithSeparator(sep string) ChainOption {
	return func(o *chainOptions) { o.separator = sep }
}

// WithMaxDepth limits the number of links rendered. Values <= 0 disable the
// limit, which is the default.
func WithMaxDepth(n int) ChainOption {
	return func(o *chainOptions) { o.maxDepth = n }
}

// WithEllipsis sets the marker written in place of the links dropped by
// WithMaxDepth.
func WithEllipsis(s string) ChainOption {
	return func(o *chainOptions) { o.ellipsis = s }
}
