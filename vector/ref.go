// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/linalg/strided"
)

// Ref is a mutable oriented view. It embeds the read-only surface and adds
// writers; Ref values are cheap to copy and alias the same storage.
type Ref[E Float] struct {
	ConstRef[E]
}

// NewRef builds a mutable view over data; element i lives at
// data[offset+i*increment].
func NewRef[E Float](data []E, offset, size, increment int, o Orientation) (Ref[E], error) {
	c, err := NewConstRef(data, offset, size, increment, o)
	if err != nil {
		return Ref[E]{}, refErrorf("NewRef", err)
	}

	return Ref[E]{ConstRef: c}, nil
}

// RefFromView tags a strided view as a mutable vector.
func RefFromView[E Float](v strided.View[E], o Orientation) Ref[E] {
	return Ref[E]{ConstRef: FromView(v, o)}
}

// Const returns the read-only surface.
func (r Ref[E]) Const() ConstRef[E] { return r.ConstRef }

// Set writes element i, validated only when bounds checks are compiled in.
func (r Ref[E]) Set(i int, x E) error {
	if err := r.view.Set(i, x); err != nil {
		return refErrorf("Set", err)
	}

	return nil
}

// Fill sets every element to x.
func (r Ref[E]) Fill(x E) {
	v := r.view
	for i := 0; i < v.Len(); i++ {
		v.Put(i, x)
	}
}

// Reset sets every element to zero.
func (r Ref[E]) Reset() { r.Fill(0) }

// Generate assigns gen() to each element in order, calling gen exactly once per element.
func (r Ref[E]) Generate(gen func() E) {
	v := r.view
	for i := 0; i < v.Len(); i++ {
		v.Put(i, gen())
	}
}

// Transform replaces each element x with fn(x).
func (r Ref[E]) Transform(fn func(E) E) {
	v := r.view
	for i := 0; i < v.Len(); i++ {
		v.Put(i, fn(v.Get(i)))
	}
}

// CopyFrom copies src into r. Orientation and size are validated before any write.
func (r Ref[E]) CopyFrom(src ConstRef[E]) error {
	if err := r.checkSameShape("CopyFrom", src); err != nil {
		return err
	}
	copyView(r.view, src.view)

	return nil
}

// GetSubVector returns elements [offset, offset+size) as a mutable view.
func (r Ref[E]) GetSubVector(offset, size int) (Ref[E], error) {
	c, err := r.ConstRef.GetSubVector(offset, size)
	if err != nil {
		return Ref[E]{}, err
	}

	return Ref[E]{ConstRef: c}, nil
}

// Transpose returns a mutable view of the same storage with the opposite orientation.
func (r Ref[E]) Transpose() Ref[E] {
	return Ref[E]{ConstRef: r.ConstRef.Transpose()}
}

// Swap exchanges the views held by r and other; no elements move.
func (r *Ref[E]) Swap(other *Ref[E]) {
	*r, *other = *other, *r
}

// Convert copies src into dst across element types, e.g. float64 into float32.
func Convert[D, S Float](dst Ref[D], src ConstRef[S]) error {
	if err := ValidateSameShape(dst.ConstRef, src); err != nil {
		return refErrorf("Convert", err)
	}
	d, s := dst.view, src.view
	for i := 0; i < s.Len(); i++ {
		d.Put(i, D(s.Get(i)))
	}

	return nil
}

func copyView[E Float](dst, src strided.View[E]) {
	if dst.IsContiguous() && src.IsContiguous() {
		copy(dst.Data()[dst.Offset():dst.Offset()+dst.Len()], src.Data()[src.Offset():src.Offset()+src.Len()])
		return
	}
	for i := 0; i < src.Len(); i++ {
		dst.Put(i, src.Get(i))
	}
}
