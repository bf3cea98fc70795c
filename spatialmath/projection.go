package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// AxisRotationProjection returns the rotation about axis that is closest to r in the
// Frobenius norm, i.e. the projection of r onto the one-parameter subgroup of rotations
// about axis. The axis need not be unit length but must not be zero.
func AxisRotationProjection(r Rotation, axis Position3D) (Rotation, error) {
	out := r
	if err := out.ProjectOntoAxis(axis); err != nil {
		return Rotation{}, err
	}
	return out, nil
}

// ProjectOntoAxis is the in-place form of AxisRotationProjection. r is left untouched on error.
func (r *Rotation) ProjectOntoAxis(axis Position3D) error {
	a, err := axis.Normalize()
	if err != nil {
		return err
	}
	*r = RotationFromAxisAngle(a.Vector(), sweptAngle(*r, a.Vector()))
	return nil
}

// AxisRotationProjectionTransform applies AxisRotationProjection to the rotation block of t;
// the translation is kept.
func AxisRotationProjectionTransform(t Transform, axis Position3D) (Transform, error) {
	out := t
	if err := out.ProjectOntoAxis(axis); err != nil {
		return Transform{}, err
	}
	return out, nil
}

// ProjectOntoAxis is the in-place form of AxisRotationProjectionTransform.
func (t *Transform) ProjectOntoAxis(axis Position3D) error {
	return t.rot.ProjectOntoAxis(axis)
}

// sweptAngle returns the angle about the unit axis a that r sweeps the plane orthogonal
// to a through. Two orthonormal reference vectors u, w of that plane are pushed through r
// and their images projected back onto the plane; summing the sine and cosine components
// of both gives the angle maximizing trace(Rot(a, angle)^T r).
func sweptAngle(r Rotation, a r3.Vector) float64 {
	u, w := planeBasis(a)
	ru := r.Apply(u)
	rw := r.Apply(w)

	s := a.Dot(u.Cross(ru)) + a.Dot(w.Cross(rw))
	c := u.Dot(ru) + w.Dot(rw)
	if math.Hypot(s, c) >= AxisEpsilon {
		return math.Atan2(s, c)
	}

	// r folds the plane onto the axis; fall back to the secondary reference alone.
	proj := rw.Sub(a.Mul(a.Dot(rw)))
	if proj.Norm() < AxisEpsilon {
		return 0
	}
	return math.Atan2(a.Dot(w.Cross(proj)), w.Dot(proj))
}

// planeBasis returns two unit vectors u, w such that (u, w, a) is a right-handed
// orthonormal frame. u is built from the x axis unless a is nearly parallel to it.
func planeBasis(a r3.Vector) (r3.Vector, r3.Vector) {
	u := a.Cross(r3.Vector{X: 1})
	if u.Norm() < 0.1 {
		u = a.Cross(r3.Vector{Y: 1})
	}
	u = u.Normalize()
	return u, a.Cross(u)
}
