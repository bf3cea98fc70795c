package spatialmath

import (
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// DualQuaternion returns the unit dual quaternion of t. The real part is the rotation
// quaternion r and the dual part is 0.5 * p * r.
func (t Transform) DualQuaternion() dualquat.Number {
	r := t.rot.Quaternion()
	p := t.trans
	return dualquat.Number{
		Real: r,
		Dual: quat.Mul(quat.Number{Imag: p.X / 2, Jmag: p.Y / 2, Kmag: p.Z / 2}, r),
	}
}

// TransformFromDualQuaternion returns the transform encoded by d. The real part is
// normalized first, scaling the dual part along with it. A zero real part gives the identity.
func TransformFromDualQuaternion(d dualquat.Number) Transform {
	n := quat.Abs(d.Real)
	if n == 0 {
		return IdentityTransform()
	}
	r := quat.Scale(1/n, d.Real)
	dual := quat.Scale(1/n, d.Dual)
	// p = 2 * dual * conj(real)
	p := quat.Scale(2, quat.Mul(dual, quat.Conj(r)))
	return Transform{
		rot:   RotationFromQuaternion(r),
		trans: NewPosition3D(p.Imag, p.Jmag, p.Kmag),
	}
}

// DualQuaternionTranslation returns the translation carried by a unit dual quaternion.
func DualQuaternionTranslation(d dualquat.Number) Position3D {
	return TransformFromDualQuaternion(d).trans
}

// ComposeDualQuaternions composes a and b with dualquat.Mul, so that the result acts
// like a.Mul(b) on transforms.
func ComposeDualQuaternions(a, b dualquat.Number) dualquat.Number {
	if n := quat.Abs(b.Real); n != 0 && n != 1 {
		b = dualquat.Scale(1/n, b)
	}
	return dualquat.Mul(a, b)
}
