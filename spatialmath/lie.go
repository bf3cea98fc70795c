package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/se3/utils"
)

// TransformLogarithm returns the se(3) screw whose exponential is t: the angular part is
// the rotation vector of t (axis times angle, right-handed) and the linear part is the
// translation mapped through the inverse of the left Jacobian of SO(3).
//
// The rotation angle of t must not exceed MaxLogarithmAngle; beyond it the axis is
// numerically undetermined and a *DomainError is returned.
func TransformLogarithm(t Transform) (Velocity6D, error) {
	var v Velocity6D
	if err := v.SetLogarithm(t); err != nil {
		return Velocity6D{}, err
	}
	return v, nil
}

// SetLogarithm is the in-place form of TransformLogarithm. v is left untouched on error.
func (v *Velocity6D) SetLogarithm(t Transform) error {
	theta := rotationAngle(t.rot)
	if theta > MaxLogarithmAngle {
		return NewDomainError("transform logarithm", theta, MaxLogarithmAngle)
	}
	p := t.trans.Vector()
	if theta < SmallAngleEpsilon {
		*v = NewVelocity6D(p, r3.Vector{})
		return nil
	}

	sinT, cosT := math.Sincos(theta)
	w := t.rot.vee().Mul(theta / (2 * sinT))

	// V^-1 = I - 1/2 [w]x + (1 - theta sin(theta) / (2 (1 - cos(theta)))) / theta^2 [w]x^2
	k := (1 - theta*sinT/(2*(1-cosT))) / (theta * theta)
	wxp := w.Cross(p)
	linear := p.Sub(wxp.Mul(0.5)).Add(w.Cross(wxp).Mul(k))

	*v = NewVelocity6D(linear, w)
	return nil
}

// VelocityExponential integrates the screw v over one unit of time and returns the
// resulting displacement. The rotation block follows Rodrigues' formula and the
// translation is the linear part mapped through the left Jacobian of SO(3). For
// |w| < SmallAngleEpsilon both use their first-order expansions.
func VelocityExponential(v Velocity6D) Transform {
	var t Transform
	t.SetExponential(v)
	return t
}

// SetExponential is the in-place form of VelocityExponential.
func (t *Transform) SetExponential(v Velocity6D) {
	w := v.Angular()
	u := v.Linear()
	theta := w.Norm()
	wxu := w.Cross(u)

	if theta < SmallAngleEpsilon {
		t.rot = rodrigues(w, 1, 0)
		t.trans = Position3D(u.Add(wxu.Mul(0.5)))
		return
	}

	sinT, cosT := math.Sincos(theta)
	theta2 := theta * theta
	a := sinT / theta
	b := (1 - cosT) / theta2
	c := (theta - sinT) / (theta2 * theta)

	t.rot = rodrigues(w, a, b)
	t.trans = Position3D(u.Add(wxu.Mul(b)).Add(w.Cross(wxu).Mul(c)))
}

// TransformMean interpolates along the geodesic from t1 (alpha = 0) to t2 (alpha = 1):
// t1 * exp(alpha * log(t1^-1 * t2)). The relative rotation between t1 and t2 must be
// inside the logarithm's domain.
func TransformMean(t1, t2 Transform, alpha float64) (Transform, error) {
	var t Transform
	if err := t.SetMean(t1, t2, alpha); err != nil {
		return Transform{}, err
	}
	return t, nil
}

// SetMean is the in-place form of TransformMean. t is left untouched on error.
func (t *Transform) SetMean(t1, t2 Transform, alpha float64) error {
	screw, err := TransformLogarithm(t1.Inverse().Mul(t2))
	if err != nil {
		return errors.Wrap(err, "cannot interpolate between transforms")
	}
	*t = t1.Mul(VelocityExponential(screw.Mul(alpha)))
	return nil
}

// TransformMidpoint is TransformMean with alpha = DefaultMeanAlpha.
func TransformMidpoint(t1, t2 Transform) (Transform, error) {
	return TransformMean(t1, t2, DefaultMeanAlpha)
}

// RotationAngle returns the angle in [0, pi] of the rotation r.
func RotationAngle(r Rotation) float64 {
	return rotationAngle(r)
}

func rotationAngle(r Rotation) float64 {
	return math.Acos(utils.Clamp((r.Trace()-1)/2, -1, 1))
}
