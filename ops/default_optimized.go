// SPDX-License-Identifier: MIT

//go:build !lvlath_native

package ops

import "github.com/katalvlaran/linalg/kernel"

// DefaultImplementation is the backend used by Default and by New without options.
const DefaultImplementation = kernel.Optimized
