package spatialmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Transform is a 4x4 homogeneous rigid transform: a rotation block, a translation column
// and the fixed bottom row (0, 0, 0, 1). The bottom row is implied by the representation
// and cannot be set. The zero value has a zero rotation block and is not a rigid
// transform; use IdentityTransform. Functions returning an error also return the zero
// value, which must not be used.
type Transform struct {
	rot   Rotation
	trans Position3D
}

// IdentityTransform returns the transform that does nothing.
func IdentityTransform() Transform {
	return Transform{rot: IdentityRotation()}
}

// NewTransform returns the transform that rotates by rot then translates by trans.
func NewTransform(rot Rotation, trans Position3D) Transform {
	return Transform{rot: rot, trans: trans}
}

// Rotation returns the top-left 3x3 block.
func (t Transform) Rotation() Rotation {
	return t.rot
}

// Translation returns the translation column.
func (t Transform) Translation() Position3D {
	return t.trans
}

// SetRotation replaces the rotation block and keeps the translation.
func (t *Transform) SetRotation(r Rotation) {
	t.rot = r
}

// SetTranslation replaces the translation and keeps the rotation block.
func (t *Transform) SetTranslation(p Position3D) {
	t.trans = p
}

// At returns the entry of the 4x4 matrix at the given 0-based row and column.
func (t Transform) At(row, col int) float64 {
	switch {
	case row == 3:
		if col == 3 {
			return 1
		}
		return 0
	case col == 3:
		switch row {
		case 0:
			return t.trans.X
		case 1:
			return t.trans.Y
		default:
			return t.trans.Z
		}
	default:
		return t.rot.At(row, col)
	}
}

// Mul returns the composition t * o: o is applied first, then t.
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		rot:   t.rot.Mul(o.rot),
		trans: t.Apply(o.trans),
	}
}

// Inverse returns the rigid inverse (R^T, -R^T p).
func (t Transform) Inverse() Transform {
	rt := t.rot.Transpose()
	return Transform{rot: rt, trans: Position3D(rt.Apply(t.trans.Vector()).Mul(-1))}
}

// Apply maps a point through t: it is rotated, then translated.
func (t Transform) Apply(p Position3D) Position3D {
	return Position3D(t.rot.Apply(p.Vector()).Add(t.trans.Vector()))
}

// Translated returns a copy of t whose translation has p added to it.
func (t Transform) Translated(p Position3D) Transform {
	t.TranslateInPlace(p)
	return t
}

// TranslateInPlace adds p to the translation of t.
func (t *Transform) TranslateInPlace(p Position3D) {
	t.trans = t.trans.Add(p)
}

// Determinant returns the determinant of the 4x4 matrix, which equals that of the rotation block.
func (t Transform) Determinant() float64 {
	return t.rot.Determinant()
}

// DistanceSquared returns the squared distance between the translations of t and o.
func (t Transform) DistanceSquared(o Transform) float64 {
	return t.trans.Sub(o.trans).Vector().Norm2()
}

// Distance returns the distance between the translations of t and o.
func (t Transform) Distance(o Transform) float64 {
	return math.Sqrt(t.DistanceSquared(o))
}

// IsNear reports whether every entry of t is within epsilon of o's.
func (t Transform) IsNear(o Transform, epsilon float64) bool {
	return t.rot.IsNear(o.rot, epsilon) && t.trans.IsNear(o.trans, epsilon)
}

// Validate checks that t is a proper rigid transform to within tol. Every violated
// condition is reported.
func (t Transform) Validate(tol float64) error {
	var err error
	if !t.rot.isFinite() || !t.trans.isFinite() {
		err = multierr.Append(err, errors.New("transform has non-finite entries"))
	}
	if !t.rot.IsOrthonormal(tol) {
		err = multierr.Append(err, errors.Errorf("rotation block is not orthonormal to within %g", tol))
	}
	if det := t.rot.Determinant(); !almostEqual(det, 1, tol) {
		err = multierr.Append(err, errors.Errorf("rotation block determinant is %.6f, not 1", det))
	}
	return err
}

// Normalize returns t with its rotation block re-orthonormalized.
func (t Transform) Normalize() Transform {
	return Transform{rot: t.rot.Normalize(), trans: t.trans}
}

// Mat4 returns t as a column-major mathgl matrix.
func (t Transform) Mat4() mgl64.Mat4 {
	var m mgl64.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, t.At(i, j))
		}
	}
	return m
}

// TransformFromMat4 converts a mathgl homogeneous matrix. The bottom row is ignored.
func TransformFromMat4(m mgl64.Mat4) Transform {
	col := m.Col(3)
	return Transform{
		rot:   RotationFromMat3(m.Mat3()),
		trans: Position3D{X: col[0], Y: col[1], Z: col[2]},
	}
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("{rotation: %s, translation: (%.6f, %.6f, %.6f)}", t.rot, t.trans.X, t.trans.Y, t.trans.Z)
}

func (p Position3D) isFinite() bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
