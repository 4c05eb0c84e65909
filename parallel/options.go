// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"
	"runtime"
)

// FallbackMaxTasks is used when the hardware parallelism cannot be detected.
const FallbackMaxTasks = 8

// Option configures the size of the in-flight window.
type Option func(*Options)

// Options holds the resolved settings.
type Options struct {
	maxTasks int
}

// WithMaxTasks bounds the number of concurrently running tasks.
// Zero selects the default. Panics if n is negative.
func WithMaxTasks(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("parallel: WithMaxTasks(%d): negative task count", n))
	}

	return func(o *Options) { o.maxTasks = n }
}

// DefaultMaxTasks returns runtime.NumCPU, or FallbackMaxTasks when that is
// not positive.
func DefaultMaxTasks() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}

	return FallbackMaxTasks
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.maxTasks == 0 {
		o.maxTasks = DefaultMaxTasks()
	}

	return o
}

// MaxTasks resolves opts to the window size they describe.
func MaxTasks(opts ...Option) int { return gatherOptions(opts...).maxTasks }
