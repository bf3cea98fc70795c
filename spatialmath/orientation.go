package spatialmath

import (
	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations of the orientation
// of a rigid object or a frame of reference in 3D Euclidean space.
type Orientation interface {
	Quaternion() quat.Number
	RotationMatrix() Rotation
}

// RotationMatrix returns r.
func (r Rotation) RotationMatrix() Rotation { return r }

// Quaternion returns the unit quaternion of r4.
func (r4 R4AA) Quaternion() quat.Number { return r4.ToQuat() }

// RotationMatrix returns the rotation of r4.
func (r4 R4AA) RotationMatrix() Rotation { return r4.Rotation() }

// Quaternion returns the unit quaternion of ov.
func (ov OrientationVec) Quaternion() quat.Number { return ov.ToQuat() }

// RotationMatrix returns the rotation of ov.
func (ov OrientationVec) RotationMatrix() Rotation { return ov.Rotation() }

// Quaternion returns the unit quaternion of rpy.
func (rpy Rotation3D) Quaternion() quat.Number { return RotationFromRotation3D(rpy).Quaternion() }

// RotationMatrix returns the rotation of rpy.
func (rpy Rotation3D) RotationMatrix() Rotation { return RotationFromRotation3D(rpy) }

// NewZeroOrientation returns an orientation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return IdentityRotation()
}

// OrientationAlmostEqual will return a bool describing whether 2 poses have approximately the same orientation.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

// OrientationBetween returns the orientation representing the difference between the two given Orientations.
func OrientationBetween(o1, o2 Orientation) Rotation {
	return o2.RotationMatrix().Mul(o1.RotationMatrix().Transpose())
}
