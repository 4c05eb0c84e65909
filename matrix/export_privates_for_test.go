// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for unexported options and layout policies.
//
// Purpose:
//   - Expose the resolved print Options and the layout policy arithmetic to
//     matrix_test ONLY, without widening the production API.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with Options. If a field is added, extend
//     snapshotOf accordingly (tests will catch drift).

// OptionsSnapshot is a read-only copy of the resolved print options.
type OptionsSnapshot struct {
	Indent      int
	MaxElements int
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{Indent: o.indent, MaxElements: o.maxElements}
}

// DefaultOptionsSnapshot_TestOnly resolves an empty option list.
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(gatherOptions()) }

// GatherOptionsSnapshot_TestOnly resolves opts exactly as Print does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicIndentInvalid_TestOnly      = panicIndentInvalid
	PanicMaxElementsInvalid_TestOnly = panicMaxElementsInvalid
)

// PolicyIncrements_TestOnly returns the row and column increments a layout
// assigns to storage with the given major increment.
func PolicyIncrements_TestOnly(layout Layout, increment int) (row, col int) {
	p := layout.policy()
	return p.RowIncrement(increment), p.ColumnIncrement(increment)
}
