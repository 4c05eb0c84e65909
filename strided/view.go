// SPDX-License-Identifier: MIT

package strided

import (
	"fmt"

	"github.com/katalvlaran/linalg/errs"
)

// Float is the element constraint shared by every numeric package.
// The set is closed (no ~) so kernels can recover the concrete slice type.
type Float interface {
	float32 | float64
}

// View is a non-owning strided window: element i lives at
// data[offset+i*stride]. The zero View is a valid empty sequence.
type View[E Float] struct {
	data   []E
	offset int
	length int
	stride int
}

// viewErrorf tags an error with the View method that produced it.
func viewErrorf(method string, err error) error {
	return fmt.Errorf("View.%s: %w", method, err)
}

// New builds a view over data. Every addressed element must lie inside data;
// stride may be negative but never zero.
func New[E Float](data []E, offset, length, stride int) (View[E], error) {
	if stride == 0 {
		return View[E]{}, viewErrorf("New", errs.New(errs.InvalidArgument, "stride must be non-zero"))
	}
	if length < 0 || offset < 0 {
		return View[E]{}, viewErrorf("New", errs.New(errs.InvalidSize, "offset %d, length %d", offset, length))
	}
	if length > 0 {
		last := offset + (length-1)*stride
		if offset >= len(data) || last < 0 || last >= len(data) {
			return View[E]{}, viewErrorf("New", errs.New(errs.IndexOutOfRange,
				"elements [%d..%d] exceed storage of %d", offset, last, len(data)))
		}
	}

	return View[E]{data: data, offset: offset, length: length, stride: stride}, nil
}

// Contiguous wraps the whole slice with stride 1.
func Contiguous[E Float](data []E) View[E] {
	return View[E]{data: data, length: len(data), stride: 1}
}

// Len returns the number of elements.
func (v View[E]) Len() int { return v.length }

// Stride returns the distance in storage between consecutive elements.
func (v View[E]) Stride() int {
	if v.stride == 0 {
		return 1
	}

	return v.stride
}

// Offset returns the storage position of element 0.
func (v View[E]) Offset() int { return v.offset }

// Data returns the backing slice.
func (v View[E]) Data() []E { return v.data }

// IsContiguous reports whether consecutive elements are adjacent in storage.
func (v View[E]) IsContiguous() bool { return v.Stride() == 1 }

// Index maps an element index to its storage position.
func (v View[E]) Index(i int) int { return v.offset + i*v.stride }

// At returns element i. The index is validated only when BoundsChecked.
func (v View[E]) At(i int) (E, error) {
	if BoundsChecked && (i < 0 || i >= v.length) {
		return 0, viewErrorf("At", errs.New(errs.IndexOutOfRange, "index %d, length %d", i, v.length))
	}

	return v.data[v.offset+i*v.stride], nil
}

// Set writes element i. The index is validated only when BoundsChecked.
func (v View[E]) Set(i int, x E) error {
	if BoundsChecked && (i < 0 || i >= v.length) {
		return viewErrorf("Set", errs.New(errs.IndexOutOfRange, "index %d, length %d", i, v.length))
	}
	v.data[v.offset+i*v.stride] = x

	return nil
}

// Get returns element i without validation; callers own the index.
func (v View[E]) Get(i int) E { return v.data[v.offset+i*v.stride] }

// Put writes element i without validation; callers own the index.
func (v View[E]) Put(i int, x E) { v.data[v.offset+i*v.stride] = x }

// Sub returns elements [first, first+length) of v as a view sharing storage.
func (v View[E]) Sub(first, length int) (View[E], error) {
	if first < 0 || length < 0 || first+length > v.length {
		return View[E]{}, viewErrorf("Sub", errs.New(errs.IndexOutOfRange,
			"window [%d, %d) exceeds length %d", first, first+length, v.length))
	}

	return View[E]{data: v.data, offset: v.offset + first*v.Stride(), length: length, stride: v.Stride()}, nil
}

// Reverse returns the same elements traversed back to front.
func (v View[E]) Reverse() View[E] {
	if v.length == 0 {
		return v
	}

	return View[E]{
		data:   v.data,
		offset: v.offset + (v.length-1)*v.stride,
		length: v.length,
		stride: -v.stride,
	}
}

// Do calls f for each element in order until f returns false.
func (v View[E]) Do(f func(i int, x E) bool) {
	for i, p := 0, v.offset; i < v.length; i, p = i+1, p+v.stride {
		if !f(i, v.data[p]) {
			return
		}
	}
}

// BLAS returns the slice and increment in the reference-BLAS convention:
// for a negative increment the slice starts at the lowest addressed element
// and element 0 is found at the far end.
func (v View[E]) BLAS() ([]E, int) {
	if v.length == 0 {
		return nil, 1
	}
	if v.stride > 0 {
		return v.data[v.offset:], v.stride
	}

	return v.data[v.offset+(v.length-1)*v.stride:], v.stride
}

// Iterator returns a forward cursor positioned on element 0.
func (v View[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{view: v}
}

// Iterator walks a View front to back.
type Iterator[E Float] struct {
	view View[E]
	pos  int
}

// IsValid reports whether Get may be called.
func (it *Iterator[E]) IsValid() bool { return it.pos < it.view.length }

// Get returns the current element.
func (it *Iterator[E]) Get() E { return it.view.Get(it.pos) }

// Next advances the cursor.
func (it *Iterator[E]) Next() { it.pos++ }

// Index returns the position of the cursor.
func (it *Iterator[E]) Index() int { return it.pos }
