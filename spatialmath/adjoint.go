package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// The ChangeFrame family re-expresses a quantity known in the frame of t's child in the
// frame of t's parent. Six-dimensional quantities have their linear and angular halves
// rotated independently by the rotation block of t; the translation of t is not used.
// The Transpose variants apply R^T instead and are the exact inverses.

// ChangeFrameVelocity6D returns (R v_linear; R v_angular).
func ChangeFrameVelocity6D(t Transform, in Velocity6D) Velocity6D {
	var out Velocity6D
	out.SetChangeFrame(t, in)
	return out
}

// SetChangeFrame is the in-place form of ChangeFrameVelocity6D.
func (v *Velocity6D) SetChangeFrame(t Transform, in Velocity6D) {
	*v = NewVelocity6D(t.rot.Apply(in.Linear()), t.rot.Apply(in.Angular()))
}

// ChangeFrameTransposeVelocity6D returns (R^T v_linear; R^T v_angular).
func ChangeFrameTransposeVelocity6D(t Transform, in Velocity6D) Velocity6D {
	var out Velocity6D
	out.SetChangeFrameTranspose(t, in)
	return out
}

// SetChangeFrameTranspose is the in-place form of ChangeFrameTransposeVelocity6D.
func (v *Velocity6D) SetChangeFrameTranspose(t Transform, in Velocity6D) {
	rt := t.rot.Transpose()
	*v = NewVelocity6D(rt.Apply(in.Linear()), rt.Apply(in.Angular()))
}

// ChangeFramePosition6D returns (R p_linear; R p_angular).
func ChangeFramePosition6D(t Transform, in Position6D) Position6D {
	var out Position6D
	out.SetChangeFrame(t, in)
	return out
}

// SetChangeFrame is the in-place form of ChangeFramePosition6D.
func (p *Position6D) SetChangeFrame(t Transform, in Position6D) {
	*p = NewPosition6D(t.rot.Apply(in.Linear()), t.rot.Apply(in.Angular()))
}

// ChangeFrameTransposePosition6D returns (R^T p_linear; R^T p_angular).
func ChangeFrameTransposePosition6D(t Transform, in Position6D) Position6D {
	var out Position6D
	out.SetChangeFrameTranspose(t, in)
	return out
}

// SetChangeFrameTranspose is the in-place form of ChangeFrameTransposePosition6D.
func (p *Position6D) SetChangeFrameTranspose(t Transform, in Position6D) {
	rt := t.rot.Transpose()
	*p = NewPosition6D(rt.Apply(in.Linear()), rt.Apply(in.Angular()))
}

// ChangeFramePosition3D returns R p.
func ChangeFramePosition3D(t Transform, in Position3D) Position3D {
	var out Position3D
	out.SetChangeFrame(t, in)
	return out
}

// SetChangeFrame is the in-place form of ChangeFramePosition3D.
func (p *Position3D) SetChangeFrame(t Transform, in Position3D) {
	*p = Position3D(t.rot.Apply(in.Vector()))
}

// ChangeFrameTransposePosition3D returns R^T p.
func ChangeFrameTransposePosition3D(t Transform, in Position3D) Position3D {
	var out Position3D
	out.SetChangeFrameTranspose(t, in)
	return out
}

// SetChangeFrameTranspose is the in-place form of ChangeFrameTransposePosition3D.
func (p *Position3D) SetChangeFrameTranspose(t Transform, in Position3D) {
	*p = Position3D(t.rot.Transpose().Apply(in.Vector()))
}

// ChangeFrameTransform returns t * in.
func ChangeFrameTransform(t, in Transform) Transform {
	var out Transform
	out.SetChangeFrame(t, in)
	return out
}

// SetChangeFrame is the in-place form of ChangeFrameTransform.
func (t *Transform) SetChangeFrame(frame, in Transform) {
	*t = frame.Mul(in)
}

// ChangeFrameTransposeTransform returns t^-1 * in.
func ChangeFrameTransposeTransform(t, in Transform) Transform {
	var out Transform
	out.SetChangeFrameTranspose(t, in)
	return out
}

// SetChangeFrameTranspose is the in-place form of ChangeFrameTransposeTransform.
func (t *Transform) SetChangeFrameTranspose(frame, in Transform) {
	*t = frame.Inverse().Mul(in)
}

// AdjointVelocity6D applies the full SE(3) adjoint of t to a screw: unlike
// ChangeFrameVelocity6D it also moves the reference point by the translation of t,
// so w' = R w and v' = R v + p x (R w).
func AdjointVelocity6D(t Transform, in Velocity6D) Velocity6D {
	w := t.rot.Apply(in.Angular())
	v := t.rot.Apply(in.Linear()).Add(t.trans.Vector().Cross(w))
	return NewVelocity6D(v, w)
}

// AdjointInverseVelocity6D applies the adjoint of t^-1; it undoes AdjointVelocity6D.
func AdjointInverseVelocity6D(t Transform, in Velocity6D) Velocity6D {
	rt := t.rot.Transpose()
	w := in.Angular()
	v := in.Linear().Sub(t.trans.Vector().Cross(w))
	return NewVelocity6D(rt.Apply(v), rt.Apply(w))
}

// Adjoint returns the 6x6 matrix of AdjointVelocity6D for screws ordered (v; w):
//
//	| R  [p]x R |
//	| 0    R    |
func Adjoint(t Transform) *mat.Dense {
	adj := mat.NewDense(6, 6, nil)
	coupling := skew(t.trans.Vector()).Mul(t.rot)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r := t.rot.At(i, j)
			adj.Set(i, j, r)
			adj.Set(i, j+3, coupling.At(i, j))
			adj.Set(i+3, j+3, r)
		}
	}
	return adj
}

// skew returns the cross-product matrix [v]x, stored in a Rotation for convenience.
func skew(v r3.Vector) Rotation {
	return NewRotation(
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	)
}
