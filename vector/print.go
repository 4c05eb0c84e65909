// SPDX-License-Identifier: MIT

package vector

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/errs"
)

// Literals used when rendering vectors.
const (
	openBracket  = "["
	closeBracket = "]"
	separator    = ", "
	ellipsis     = "..."
	emptyVector  = "[ ]"
)

// Print writes v as "[a, b, c]" preceded by indent spaces. When v holds more
// than maxElements elements, the first maxElements-2 are printed, then
// "...", then the last element. maxElements below 3 is rejected.
func Print[E Float](w io.Writer, v ConstRef[E], indent, maxElements int) error {
	if maxElements < 3 {
		return refErrorf("Print", errs.New(errs.InvalidArgument, "maxElements %d is below 3", maxElements))
	}
	if _, err := io.WriteString(w, Sprint(v, indent, maxElements)); err != nil {
		return refErrorf("Print", err)
	}

	return nil
}

// Sprint renders v like Print; caps below 3 are raised to 3.
func Sprint[E Float](v ConstRef[E], indent, maxElements int) string {
	maxElements = max(maxElements, 3)
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", max(indent, 0)))

	n := v.Size()
	if n == 0 {
		b.WriteString(emptyVector)
		return b.String()
	}

	b.WriteString(openBracket)
	if n <= maxElements {
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString(separator)
			}
			b.WriteString(formatElement(v.view.Get(i)))
		}
	} else {
		for i := 0; i < maxElements-2; i++ {
			b.WriteString(formatElement(v.view.Get(i)))
			b.WriteString(separator)
		}
		b.WriteString(ellipsis)
		b.WriteString(separator)
		b.WriteString(formatElement(v.view.Get(n - 1)))
	}
	b.WriteString(closeBracket)

	return b.String()
}

func formatElement[E Float](x E) string {
	bits := 64
	if _, ok := any(x).(float32); ok {
		bits = 32
	}

	return strconv.FormatFloat(float64(x), 'g', -1, bits)
}
