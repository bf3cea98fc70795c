package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/se3/utils"
)

// OrientationVec is an orientation expressed as the direction the local +Z axis points,
// (OX, OY, OZ), and a rotation Theta about that direction, in radians.
type OrientationVec struct {
	Theta float64 `json:"th"`
	OX    float64 `json:"x"`
	OY    float64 `json:"y"`
	OZ    float64 `json:"z"`
}

// OrientationVecDegrees is an OrientationVec with Theta in degrees.
type OrientationVecDegrees struct {
	Theta float64 `json:"th"`
	OX    float64 `json:"x"`
	OY    float64 `json:"y"`
	OZ    float64 `json:"z"`
}

// NewOrientationVec returns the orientation vector of no rotation.
func NewOrientationVec() OrientationVec {
	return OrientationVec{OZ: 1}
}

// Degrees converts ov to degrees.
func (ov OrientationVec) Degrees() OrientationVecDegrees {
	return OrientationVecDegrees{Theta: utils.RadToDeg(ov.Theta), OX: ov.OX, OY: ov.OY, OZ: ov.OZ}
}

// Radians converts ovd to radians.
func (ovd OrientationVecDegrees) Radians() OrientationVec {
	return OrientationVec{Theta: utils.DegToRad(ovd.Theta), OX: ovd.OX, OY: ovd.OY, OZ: ovd.OZ}
}

// Normalize scales (OX, OY, OZ) onto the unit sphere. The zero direction becomes +Z.
func (ov OrientationVec) Normalize() OrientationVec {
	norm := math.Sqrt(ov.OX*ov.OX + ov.OY*ov.OY + ov.OZ*ov.OZ)
	if norm < AxisEpsilon {
		return OrientationVec{Theta: ov.Theta, OZ: 1}
	}
	return OrientationVec{Theta: ov.Theta, OX: ov.OX / norm, OY: ov.OY / norm, OZ: ov.OZ / norm}
}

// ToQuat converts ov to a unit quaternion. The direction is treated as a point on the sphere
// at longitude atan2(OY, OX) and colatitude acos(OZ), and the result is the ZYZ euler
// rotation (lon, lat, theta).
func (ov OrientationVec) ToQuat() quat.Number {
	ov = ov.Normalize()
	lat := math.Acos(utils.Clamp(ov.OZ, -1, 1))
	lon := math.Atan2(ov.OY, ov.OX)
	q := mgl64.AnglesToQuat(lon, lat, ov.Theta, mgl64.ZYZ)
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// Rotation returns the rotation matrix of ov.
func (ov OrientationVec) Rotation() Rotation {
	return RotationFromQuaternion(ov.ToQuat())
}

// OrientationVector returns the orientation vector of r. The direction is the local +Z
// axis (the third column of r) and Theta is what remains of r once the ZYZ rotation
// (lon, lat, 0) taking +Z onto that direction is undone.
func (r Rotation) OrientationVector() OrientationVec {
	z := r.Col(2)
	lat := math.Acos(utils.Clamp(z.Z, -1, 1))
	lon := math.Atan2(z.Y, z.X)
	m := RotationY(lat).Transpose().Mul(RotationZ(lon).Transpose()).Mul(r)
	return OrientationVec{Theta: math.Atan2(m.At(1, 0), m.At(0, 0)), OX: z.X, OY: z.Y, OZ: z.Z}
}

// QuatToOV converts a quaternion to an orientation vector.
func QuatToOV(q quat.Number) OrientationVec {
	return RotationFromQuaternion(q).OrientationVector()
}
