// SPDX-License-Identifier: MIT

//go:build lvlath_release

package strided

// BoundsChecked enables element index validation in At/Set across the
// module. Release builds rely on the runtime's own slice checks only.
const BoundsChecked = false
