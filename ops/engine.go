// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath/cpu"
	"go.uber.org/zap"

	"github.com/katalvlaran/linalg/kernel"
	"github.com/katalvlaran/linalg/logger"
	"github.com/katalvlaran/linalg/strided"
	"github.com/katalvlaran/linalg/vector"
)

// Float is the element constraint shared with vector and matrix.
type Float = strided.Float

// Operation names used to tag errors.
const (
	opAddScalarUpdate      = "AddScalarUpdate"
	opAddUpdate            = "AddUpdate"
	opAddScalarSet         = "AddScalarSet"
	opAddSet               = "AddSet"
	opSubtractUpdate       = "SubtractUpdate"
	opScaleSet             = "ScaleSet"
	opDivideScalarUpdate   = "DivideScalarUpdate"
	opMultiplySet          = "ElementwiseMultiplySet"
	opScaleAddUpdate       = "ScaleAddUpdate"
	opScaleAddUpdateOne    = "ScaleAddUpdateOne"
	opOneAddUpdate         = "OneAddUpdate"
	opScaleAddSet          = "ScaleAddSet"
	opScaleAddSetOne       = "ScaleAddSetOne"
	opOneAddSet            = "OneAddSet"
	opOnesScaleAddSet      = "OnesScaleAddSet"
	opDot                  = "Dot"
	opOuterProduct         = "OuterProduct"
	opAddTransformedUpdate = "AddTransformedUpdate"
	opTransformSet         = "TransformSet"
	opMultiplyScaleAdd     = "MultiplyScaleAddUpdate"
	opMatrixMultiply       = "MatrixMultiplyScaleAddUpdate"
	opMatrixScaleAdd       = "MatrixScaleAddUpdate"
	opRowwiseSum           = "RowwiseSum"
	opColumnwiseSum        = "ColumnwiseSum"
	opParallelTransform    = "ParallelTransformUpdate"
)

// opErrorf tags err with the operation that rejected its operands.
func opErrorf(op string, err error) error {
	return fmt.Errorf("ops.%s: %w", op, err)
}

// Engine runs vector and matrix arithmetic on one backend. An Engine is
// stateless beyond its configuration and safe for concurrent use; callers
// synchronize access to the operands.
type Engine[E Float] struct {
	k        kernel.Kernel[E]
	maxTasks int
}

// New builds an engine; without options it uses DefaultImplementation.
func New[E Float](opts ...Option) *Engine[E] {
	o := gatherOptions(opts...)
	e := &Engine[E]{k: kernel.For[E](o.implementation), maxTasks: o.maxTasks}

	f := cpu.DetectFeatures()
	logger.Logger().Debug("ops engine ready",
		zap.Stringer("implementation", o.implementation),
		zap.Int("elementBits", elementBits[E]()),
		zap.Bool("avx2", f.HasAVX2),
		zap.Bool("sse2", f.HasSSE2),
		zap.Bool("forceGeneric", f.ForceGeneric),
	)

	return e
}

var (
	default64 = New[float64]()
	default32 = New[float32]()
)

// Default returns the shared engine for E built on DefaultImplementation.
func Default[E Float]() *Engine[E] {
	var zero E
	if _, ok := any(zero).(float32); ok {
		return any(default32).(*Engine[E])
	}

	return any(default64).(*Engine[E])
}

func elementBits[E Float]() int {
	var zero E
	if _, ok := any(zero).(float32); ok {
		return 32
	}

	return 64
}

// Implementation reports the backend in use.
func (e *Engine[E]) Implementation() kernel.Implementation { return e.k.Implementation() }

// Kernel exposes the backend for callers composing their own routines.
func (e *Engine[E]) Kernel() kernel.Kernel[E] { return e.k }

// sameShape validates a list of operands against the first one.
func sameShape[E Float](vs ...vector.ConstRef[E]) error {
	for _, v := range vs[1:] {
		if err := vector.ValidateSameShape(vs[0], v); err != nil {
			return err
		}
	}

	return nil
}

// sameWindow reports whether a and b address exactly the same elements.
func sameWindow[E Float](a, b strided.View[E]) bool {
	if a.Len() != b.Len() || a.Offset() != b.Offset() || a.Stride() != b.Stride() {
		return false
	}
	da, db := a.Data(), b.Data()
	if len(da) == 0 || len(db) == 0 {
		return len(da) == len(db)
	}

	return &da[0] == &db[0]
}

// addScalar adds s to every element of v.
func addScalar[E Float](s E, v strided.View[E]) {
	for i := 0; i < v.Len(); i++ {
		v.Put(i, v.Get(i)+s)
	}
}
