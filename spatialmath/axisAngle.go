package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// An orientation is expressed by an axis, i.e. a line from the origin to a point (rx, ry, rz)
// on the unit sphere, and a rotation theta around that axis. These four numbers can be used
// as-is (R4), or converted to R3 by multiplying theta into the axis, giving the rotation
// vector that forms the angular half of TransformLogarithm's result.

// R4AA represents an R4 axis angle.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA returns the zero rotation about +z.
func NewR4AA() R4AA {
	return R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// Axis returns (rx, ry, rz).
func (r4 R4AA) Axis() r3.Vector {
	return r3.Vector{X: r4.RX, Y: r4.RY, Z: r4.RZ}
}

// ToR3 converts an R4 angle axis to a rotation vector.
func (r4 R4AA) ToR3() r3.Vector {
	return r4.Axis().Mul(r4.Theta)
}

// Rotation returns the rotation matrix of r4.
func (r4 R4AA) Rotation() Rotation {
	return RotationFromAxisAngle(r4.Axis(), r4.Theta)
}

// ToQuat converts an R4 axis angle to a unit quaternion.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (r4 R4AA) ToQuat() quat.Number {
	r4, err := r4.Normalize()
	if err != nil {
		return quat.Number{Real: 1}
	}
	sinA, cosA := math.Sincos(r4.Theta / 2)
	return quat.Number{Real: cosA, Imag: r4.RX * sinA, Jmag: r4.RY * sinA, Kmag: r4.RZ * sinA}
}

// Normalize scales the axis of r4 onto the unit sphere.
func (r4 R4AA) Normalize() (R4AA, error) {
	norm := r4.Axis().Norm()
	if norm < AxisEpsilon {
		return R4AA{}, ErrZeroAxis
	}
	return R4AA{r4.Theta, r4.RX / norm, r4.RY / norm, r4.RZ / norm}, nil
}

// AxisAngles returns the axis angle representation of r.
func (r Rotation) AxisAngles() R4AA {
	return QuatToR4AA(r.Quaternion())
}

// R3ToR4 converts a rotation vector to an R4 axis angle.
func R3ToR4(aa r3.Vector) R4AA {
	theta := aa.Norm()
	if theta < SmallAngleEpsilon {
		return NewR4AA()
	}
	return R4AA{theta, aa.X / theta, aa.Y / theta, aa.Z / theta}
}

// QuatToR4AA converts a quat to an R4 axis angle in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToR4AA(q quat.Number) R4AA {
	denom := Norm(q)

	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}

	if denom == 0 {
		return R4AA{0, 1, 0, 0}
	}
	return R4AA{angle, q.Imag / denom, q.Jmag / denom, q.Kmag / denom}
}
