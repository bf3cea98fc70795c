package spatialmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Rotation is a 3x3 orthonormal matrix stored row-major. Entry r{i}c{j} of the usual
// notation is At(i-1, j-1). Rotations compose by matrix product; callers that
// accumulate many products should re-orthonormalize with Normalize. The zero value is the
// zero matrix, not a rotation; use IdentityRotation.
type Rotation struct {
	mat [9]float64
}

// IdentityRotation returns the rotation that does nothing.
func IdentityRotation() Rotation {
	return Rotation{[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// NewRotation returns the rotation with the given entries, row by row.
// No orthonormality check is made; see Transform.Validate.
func NewRotation(r1c1, r1c2, r1c3, r2c1, r2c2, r2c3, r3c1, r3c2, r3c3 float64) Rotation {
	return Rotation{[9]float64{r1c1, r1c2, r1c3, r2c1, r2c2, r2c3, r3c1, r3c2, r3c3}}
}

// NewRotationFromRows returns the rotation whose rows are r1, r2 and r3.
func NewRotationFromRows(r1, r2, r3 r3.Vector) Rotation {
	return NewRotation(r1.X, r1.Y, r1.Z, r2.X, r2.Y, r2.Z, r3.X, r3.Y, r3.Z)
}

// NewRotationFromSlice builds a rotation from nine row-major values.
func NewRotationFromSlice(s []float64) (Rotation, error) {
	if len(s) != 9 {
		return Rotation{}, newInvalidLengthError("Rotation", 9, len(s))
	}
	var r Rotation
	copy(r.mat[:], s)
	return r, nil
}

// RotationX returns the rotation of theta radians about the x axis.
func RotationX(theta float64) Rotation {
	s, c := math.Sincos(theta)
	return NewRotation(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// RotationY returns the rotation of theta radians about the y axis.
func RotationY(theta float64) Rotation {
	s, c := math.Sincos(theta)
	return NewRotation(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// RotationZ returns the rotation of theta radians about the z axis.
func RotationZ(theta float64) Rotation {
	s, c := math.Sincos(theta)
	return NewRotation(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// RotationFromAxisAngle returns the rotation of theta radians about axis using Rodrigues'
// formula. The axis is normalized first; a zero axis gives the identity.
func RotationFromAxisAngle(axis r3.Vector, theta float64) Rotation {
	n := axis.Norm()
	if n < AxisEpsilon {
		return IdentityRotation()
	}
	return rodrigues(axis.Mul(1/n), math.Sin(theta), 1-math.Cos(theta))
}

// rodrigues returns I + a*[k]x + b*[k]x^2.
func rodrigues(k r3.Vector, a, b float64) Rotation {
	x, y, z := k.X, k.Y, k.Z
	return NewRotation(
		1-b*(y*y+z*z), -a*z+b*x*y, a*y+b*x*z,
		a*z+b*x*y, 1-b*(x*x+z*z), -a*x+b*y*z,
		-a*y+b*x*z, a*x+b*y*z, 1-b*(x*x+y*y),
	)
}

// At returns the entry at the given 0-based row and column.
func (r Rotation) At(row, col int) float64 {
	return r.mat[row*3+col]
}

// Row returns the given 0-based row.
func (r Rotation) Row(row int) r3.Vector {
	return r3.Vector{X: r.mat[row*3], Y: r.mat[row*3+1], Z: r.mat[row*3+2]}
}

// Col returns the given 0-based column.
func (r Rotation) Col(col int) r3.Vector {
	return r3.Vector{X: r.mat[col], Y: r.mat[3+col], Z: r.mat[6+col]}
}

// Mul returns the product r * o, i.e. o applied first.
func (r Rotation) Mul(o Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.mat[i*3+j] = r.mat[i*3]*o.mat[j] + r.mat[i*3+1]*o.mat[3+j] + r.mat[i*3+2]*o.mat[6+j]
		}
	}
	return out
}

// Transpose returns r transposed.
func (r Rotation) Transpose() Rotation {
	m := r.mat
	return NewRotation(m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8])
}

// Inverse returns the inverse rotation, which for an orthonormal matrix is its transpose.
func (r Rotation) Inverse() Rotation {
	return r.Transpose()
}

// Apply returns r * v.
func (r Rotation) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: r.Row(0).Dot(v),
		Y: r.Row(1).Dot(v),
		Z: r.Row(2).Dot(v),
	}
}

// Trace returns the sum of the diagonal entries.
func (r Rotation) Trace() float64 {
	return r.mat[0] + r.mat[4] + r.mat[8]
}

// Determinant returns det(r); +1 for a proper rotation.
func (r Rotation) Determinant() float64 {
	return r.Row(0).Dot(r.Row(1).Cross(r.Row(2)))
}

// IsNear reports whether every entry of r is within epsilon of o's.
func (r Rotation) IsNear(o Rotation, epsilon float64) bool {
	return slicesNear(r.mat[:], o.mat[:], epsilon)
}

// IsOrthonormal reports whether r * r^T is the identity to within tol.
func (r Rotation) IsOrthonormal(tol float64) bool {
	return r.Mul(r.Transpose()).IsNear(IdentityRotation(), tol)
}

// ToSlice returns the nine entries, row by row.
func (r Rotation) ToSlice() []float64 {
	out := make([]float64, 9)
	copy(out, r.mat[:])
	return out
}

// Dense returns r as a gonum matrix.
func (r Rotation) Dense() *mat.Dense {
	return mat.NewDense(3, 3, r.ToSlice())
}

// RotationFromDense reads the top-left 3x3 block of m.
func RotationFromDense(m mat.Matrix) Rotation {
	var r Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.mat[i*3+j] = m.At(i, j)
		}
	}
	return r
}

// Normalize returns the orthonormal matrix closest to r in the Frobenius norm, computed
// from the singular value decomposition r = U S V^T as U V^T. This undoes the drift
// accumulated by long chains of products.
func (r Rotation) Normalize() Rotation {
	var svd mat.SVD
	if ok := svd.Factorize(r.Dense(), mat.SVDFull); !ok {
		return r
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	var closest mat.Dense
	closest.Mul(&u, v.T())
	if mat.Det(&closest) < 0 {
		// Reflection; flip the direction of the least significant singular vector.
		for i := 0; i < 3; i++ {
			u.Set(i, 2, -u.At(i, 2))
		}
		closest.Mul(&u, v.T())
	}
	return RotationFromDense(&closest)
}

// Mat3 returns r as a column-major mathgl matrix.
func (r Rotation) Mat3() mgl64.Mat3 {
	var m mgl64.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, r.At(i, j))
		}
	}
	return m
}

// RotationFromMat3 converts a mathgl matrix.
func RotationFromMat3(m mgl64.Mat3) Rotation {
	var r Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.mat[i*3+j] = m.At(i, j)
		}
	}
	return r
}

// String implements fmt.Stringer.
func (r Rotation) String() string {
	return fmt.Sprintf("[[%.6f %.6f %.6f] [%.6f %.6f %.6f] [%.6f %.6f %.6f]]",
		r.mat[0], r.mat[1], r.mat[2], r.mat[3], r.mat[4], r.mat[5], r.mat[6], r.mat[7], r.mat[8])
}

// vee returns the axial vector of the skew-symmetric part of r: (r32-r23, r13-r31, r21-r12).
func (r Rotation) vee() r3.Vector {
	return r3.Vector{
		X: r.At(2, 1) - r.At(1, 2),
		Y: r.At(0, 2) - r.At(2, 0),
		Z: r.At(1, 0) - r.At(0, 1),
	}
}

func (r Rotation) isFinite() bool {
	for _, v := range r.mat {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// almostEqual is the scalar comparison used by tests and validation.
func almostEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}
