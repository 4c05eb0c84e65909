// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/strided"
)

// Float is the element constraint (float32 or float64).
type Float = strided.Float

// DefaultTolerance is the elementwise tolerance used by Equal.
const DefaultTolerance = 1e-8

// ConstRef is a read-only oriented view of a vector.
type ConstRef[E Float] struct {
	view        strided.View[E]
	orientation Orientation
}

// NewConstRef builds a read-only view over data; element i lives at
// data[offset+i*increment].
func NewConstRef[E Float](data []E, offset, size, increment int, o Orientation) (ConstRef[E], error) {
	v, err := strided.New(data, offset, size, increment)
	if err != nil {
		return ConstRef[E]{}, refErrorf("NewConstRef", err)
	}

	return ConstRef[E]{view: v, orientation: o}, nil
}

// FromView tags an existing strided view with an orientation.
func FromView[E Float](v strided.View[E], o Orientation) ConstRef[E] {
	return ConstRef[E]{view: v, orientation: o}
}

// Size returns the number of elements.
func (c ConstRef[E]) Size() int { return c.view.Len() }

// Increment returns the storage distance between consecutive elements.
func (c ConstRef[E]) Increment() int { return c.view.Stride() }

// Orientation reports whether c is a row or a column.
func (c ConstRef[E]) Orientation() Orientation { return c.orientation }

// View exposes the underlying strided window for kernels.
func (c ConstRef[E]) View() strided.View[E] { return c.view }

// IsContiguous reports whether the elements are adjacent in storage.
func (c ConstRef[E]) IsContiguous() bool { return c.view.IsContiguous() }

// At returns element i, validated only when bounds checks are compiled in.
func (c ConstRef[E]) At(i int) (E, error) {
	x, err := c.view.At(i)
	if err != nil {
		return 0, refErrorf("At", err)
	}

	return x, nil
}

// Do calls f for each element in order until f returns false.
func (c ConstRef[E]) Do(f func(i int, x E) bool) { c.view.Do(f) }

// Iterator returns a forward cursor over the elements.
func (c ConstRef[E]) Iterator() *strided.Iterator[E] { return c.view.Iterator() }

// Aggregate sums mapper(x) over every element; 0 for an empty vector.
func (c ConstRef[E]) Aggregate(mapper func(E) E) E {
	var sum E
	v := c.view
	for i := 0; i < v.Len(); i++ {
		sum += mapper(v.Get(i))
	}

	return sum
}

// Norm0 counts the non-zero elements.
func (c ConstRef[E]) Norm0() E {
	return c.Aggregate(func(x E) E {
		if x != 0 {
			return 1
		}
		return 0
	})
}

// Norm1 returns the sum of absolute values.
func (c ConstRef[E]) Norm1() E {
	return c.Aggregate(func(x E) E { return E(math.Abs(float64(x))) })
}

// Norm2 returns the Euclidean norm.
func (c ConstRef[E]) Norm2() E {
	return E(math.Sqrt(float64(c.Norm2Squared())))
}

// Norm2Squared returns the sum of squares.
func (c ConstRef[E]) Norm2Squared() E {
	return c.Aggregate(func(x E) E { return x * x })
}

// NormInfinity returns the largest absolute value; 0 for an empty vector.
func (c ConstRef[E]) NormInfinity() E {
	var m E
	c.view.Do(func(_ int, x E) bool {
		if a := E(math.Abs(float64(x))); a > m {
			m = a
		}
		return true
	})

	return m
}

// ToArray copies the elements into a new slice.
func (c ConstRef[E]) ToArray() []E {
	out := make([]E, c.Size())
	c.view.Do(func(i int, x E) bool {
		out[i] = x
		return true
	})

	return out
}

// GetSubVector returns elements [offset, offset+size) sharing storage with c.
func (c ConstRef[E]) GetSubVector(offset, size int) (ConstRef[E], error) {
	v, err := c.view.Sub(offset, size)
	if err != nil {
		return ConstRef[E]{}, refErrorf("GetSubVector", err)
	}

	return ConstRef[E]{view: v, orientation: c.orientation}, nil
}

// Transpose returns the same elements with the opposite orientation.
func (c ConstRef[E]) Transpose() ConstRef[E] {
	return ConstRef[E]{view: c.view, orientation: c.orientation.Transposed()}
}

// IsEqual reports whether other has the same orientation and size and every
// pair of elements differs by at most tolerance.
func (c ConstRef[E]) IsEqual(other ConstRef[E], tolerance E) bool {
	if c.orientation != other.orientation || c.Size() != other.Size() {
		return false
	}
	for i := 0; i < c.Size(); i++ {
		d := c.view.Get(i) - other.view.Get(i)
		if d > tolerance || -d > tolerance || d != d {
			return false
		}
	}

	return true
}

// Equal is IsEqual with DefaultTolerance. Vectors of opposite orientation
// are never equal.
func (c ConstRef[E]) Equal(other ConstRef[E]) bool {
	return c.IsEqual(other, E(DefaultTolerance))
}

// String renders every element, see Print.
func (c ConstRef[E]) String() string {
	return Sprint(c, 0, math.MaxInt)
}

// checkSameShape validates c against other, tagging the error with method.
func (c ConstRef[E]) checkSameShape(method string, other ConstRef[E]) error {
	if err := ValidateSameShape(c, other); err != nil {
		return refErrorf(method, err)
	}

	return nil
}

// sameSizeOrFail reports a size-mismatch error when got differs from want.
func sameSizeOrFail(method string, got, want int) error {
	if got != want {
		return refErrorf(method, errs.New(errs.SizeMismatch, "sizes %d and %d", got, want))
	}

	return nil
}
