// SPDX-License-Identifier: MIT

//go:build !lvlath_release

package strided

// BoundsChecked enables element index validation in At/Set across the
// module. Build with -tags lvlath_release to compile the checks out.
const BoundsChecked = true
