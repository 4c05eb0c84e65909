// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/linalg/kernel"
)

// Option configures an Engine.
type Option func(*Options)

// Options holds the resolved engine settings.
type Options struct {
	implementation kernel.Implementation
	maxTasks       int
}

// WithImplementation selects the backend. Panics on an unknown value.
func WithImplementation(impl kernel.Implementation) Option {
	if impl != kernel.Native && impl != kernel.Optimized {
		panic(fmt.Sprintf("ops: WithImplementation(%s): unknown backend", impl))
	}

	return func(o *Options) { o.implementation = impl }
}

// WithNative selects the portable loop backend.
func WithNative() Option { return WithImplementation(kernel.Native) }

// WithOptimized selects the BLAS backend.
func WithOptimized() Option { return WithImplementation(kernel.Optimized) }

// WithMaxTasks bounds the fan-out of the Parallel* operations.
// Zero keeps the parallel package default. Panics if n is negative.
func WithMaxTasks(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("ops: WithMaxTasks(%d): negative task count", n))
	}

	return func(o *Options) { o.maxTasks = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{implementation: DefaultImplementation}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
