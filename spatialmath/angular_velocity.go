package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// AngularVelocity contains angular velocity in rad/s across x/y/z axes.
type AngularVelocity r3.Vector

// OrientationToAngularVel calculates an angular velocity based on an orientation change over a time difference.
func OrientationToAngularVel(diff Orientation, dt float64) (AngularVelocity, error) {
	if dt == 0 {
		return AngularVelocity{}, ErrDivisionByZero
	}
	return AngularVelocity(diff.RotationMatrix().AxisAngles().ToR3().Mul(1 / dt)), nil
}

// QuatToAngVel calculates an angular velocity based on an orientation change expressed in quaternions
// over a time difference.
func QuatToAngVel(diffQ quat.Number, dt float64) (AngularVelocity, error) {
	if dt == 0 {
		return AngularVelocity{}, ErrDivisionByZero
	}
	return OrientationToAngularVel(RotationFromQuaternion(diffQ), dt)
}

// VelocityBetween returns the constant body-frame twist that carries from onto to in dt,
// log(from^-1 * to) / dt.
func VelocityBetween(from, to Transform, dt float64) (Velocity6D, error) {
	if dt == 0 {
		return Velocity6D{}, ErrDivisionByZero
	}
	v, err := TransformLogarithm(from.Inverse().Mul(to))
	if err != nil {
		return Velocity6D{}, err
	}
	return v.Mul(1 / dt), nil
}
