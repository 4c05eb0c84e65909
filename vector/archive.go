// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/linalg/archive"
)

// Write stores the elements of v under name.
func Write[E Float](v ConstRef[E], name string, a archive.Archiver) error {
	values := make([]float64, v.Size())
	v.Do(func(i int, x E) bool {
		values[i] = float64(x)
		return true
	})
	if err := a.WriteFloats(name, values); err != nil {
		return refErrorf("Write", err)
	}

	return nil
}

// Read loads the array stored under name into a new vector of orientation o.
func Read[E Float](name string, u archive.Unarchiver, o Orientation) (*Vector[E], error) {
	values, err := u.ReadFloats(name)
	if err != nil {
		return nil, refErrorf("Read", err)
	}
	data := make([]E, len(values))
	for i, x := range values {
		data[i] = E(x)
	}

	return Adopt(data, o), nil
}

// ReadInto loads the array stored under name into dst, which must already
// have the stored size.
func ReadInto[E Float](dst Ref[E], name string, u archive.Unarchiver) error {
	values, err := u.ReadFloats(name)
	if err != nil {
		return refErrorf("ReadInto", err)
	}
	if err = sameSizeOrFail("ReadInto", dst.Size(), len(values)); err != nil {
		return err
	}
	for i, x := range values {
		dst.view.Put(i, E(x))
	}

	return nil
}
