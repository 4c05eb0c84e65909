// SPDX-License-Identifier: MIT

package matrix

import (
	"io"
	"strings"

	"github.com/katalvlaran/linalg/vector"
)

// Print writes one line per row, each rendered by vector.Print with the
// configured indent and element cap. A matrix without rows prints "[ ]".
func Print[E Float](w io.Writer, m ConstRef[E], opts ...Option) error {
	o := gatherOptions(opts...)
	if _, err := io.WriteString(w, Sprint(m, o.indent, o.maxElements)); err != nil {
		return matrixErrorf("Print", err)
	}

	return nil
}

// Sprint renders m like Print.
func Sprint[E Float](m ConstRef[E], indent, maxElements int) string {
	var b strings.Builder
	if m.rows == 0 {
		b.WriteString(strings.Repeat(" ", max(indent, 0)))
		b.WriteString("[ ]\n")
		return b.String()
	}
	for i := 0; i < m.rows; i++ {
		b.WriteString(vector.Sprint(m.row(i), indent, maxElements))
		b.WriteByte('\n')
	}

	return b.String()
}
