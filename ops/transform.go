// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/linalg/transform"
	"github.com/katalvlaran/linalg/vector"
)

// AddTransformedUpdate sets b[i] += fn(a[i]) for the transformed view t = fn(a).
// This is where a lazy transform is materialized; fn runs once per element.
func (e *Engine[E]) AddTransformedUpdate(t transform.Transformed[E], b vector.Ref[E]) error {
	if err := sameShape(t.Source(), b.Const()); err != nil {
		return opErrorf(opAddTransformedUpdate, err)
	}
	w := b.View()
	t.Do(func(i int, x E) bool {
		w.Put(i, w.Get(i)+x)
		return true
	})

	return nil
}

// TransformUpdate sets v[i] = fn(v[i]).
func (e *Engine[E]) TransformUpdate(fn transform.Func[E], v vector.Ref[E]) {
	v.Transform(fn)
}

// TransformSet sets out[i] = fn(a[i]).
func (e *Engine[E]) TransformSet(fn transform.Func[E], a vector.ConstRef[E], out vector.Ref[E]) error {
	if err := sameShape(a, out.Const()); err != nil {
		return opErrorf(opTransformSet, err)
	}
	w := out.View()
	a.Do(func(i int, x E) bool {
		w.Put(i, fn(x))
		return true
	})

	return nil
}
