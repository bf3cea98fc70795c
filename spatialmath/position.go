package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Position3D is a pure translation in 3D space.
type Position3D r3.Vector

// NewPosition3D returns the position (x, y, z).
func NewPosition3D(x, y, z float64) Position3D {
	return Position3D{X: x, Y: y, Z: z}
}

// Vector returns p as an r3.Vector.
func (p Position3D) Vector() r3.Vector {
	return r3.Vector(p)
}

// Add returns p + o.
func (p Position3D) Add(o Position3D) Position3D {
	return Position3D(p.Vector().Add(o.Vector()))
}

// Sub returns p - o.
func (p Position3D) Sub(o Position3D) Position3D {
	return Position3D(p.Vector().Sub(o.Vector()))
}

// Mul returns p scaled by s.
func (p Position3D) Mul(s float64) Position3D {
	return Position3D(p.Vector().Mul(s))
}

// Dot returns the dot product of p and o.
func (p Position3D) Dot(o Position3D) float64 {
	return p.Vector().Dot(o.Vector())
}

// Cross returns the cross product p x o.
func (p Position3D) Cross(o Position3D) Position3D {
	return Position3D(p.Vector().Cross(o.Vector()))
}

// Norm returns the euclidean length of p.
func (p Position3D) Norm() float64 {
	return p.Vector().Norm()
}

// Distance returns the euclidean distance between p and o.
func (p Position3D) Distance(o Position3D) float64 {
	return p.Vector().Distance(o.Vector())
}

// Normalize returns p scaled to unit length.
func (p Position3D) Normalize() (Position3D, error) {
	n := p.Norm()
	if n < AxisEpsilon {
		return Position3D{}, ErrZeroAxis
	}
	return p.Mul(1 / n), nil
}

// IsNear reports whether every component of p is within epsilon of o's.
func (p Position3D) IsNear(o Position3D, epsilon float64) bool {
	return scalar.EqualWithinAbs(p.X, o.X, epsilon) &&
		scalar.EqualWithinAbs(p.Y, o.Y, epsilon) &&
		scalar.EqualWithinAbs(p.Z, o.Z, epsilon)
}

// ToSlice returns [x, y, z].
func (p Position3D) ToSlice() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

// Position3DFromSlice builds a Position3D from exactly three values.
func Position3DFromSlice(s []float64) (Position3D, error) {
	if len(s) != 3 {
		return Position3D{}, newInvalidLengthError("Position3D", 3, len(s))
	}
	return Position3D{s[0], s[1], s[2]}, nil
}

// Position6D is a translation together with a roll/pitch/yaw orientation delta.
type Position6D struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
	WX float64 `json:"wx"`
	WY float64 `json:"wy"`
	WZ float64 `json:"wz"`
}

// NewPosition6D returns a Position6D from its linear and angular halves.
func NewPosition6D(linear, angular r3.Vector) Position6D {
	return Position6D{linear.X, linear.Y, linear.Z, angular.X, angular.Y, angular.Z}
}

// Linear returns (x, y, z).
func (p Position6D) Linear() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// Angular returns (wx, wy, wz).
func (p Position6D) Angular() r3.Vector {
	return r3.Vector{X: p.WX, Y: p.WY, Z: p.WZ}
}

// Add returns the component-wise sum p + o.
func (p Position6D) Add(o Position6D) Position6D {
	return NewPosition6D(p.Linear().Add(o.Linear()), p.Angular().Add(o.Angular()))
}

// Sub returns the component-wise difference p - o.
func (p Position6D) Sub(o Position6D) Position6D {
	return NewPosition6D(p.Linear().Sub(o.Linear()), p.Angular().Sub(o.Angular()))
}

// Mul returns every component of p scaled by s.
func (p Position6D) Mul(s float64) Position6D {
	return NewPosition6D(p.Linear().Mul(s), p.Angular().Mul(s))
}

// Norm returns the euclidean norm of all six components.
func (p Position6D) Norm() float64 {
	return math.Sqrt(p.Linear().Norm2() + p.Angular().Norm2())
}

// IsNear reports whether every component of p is within epsilon of o's.
func (p Position6D) IsNear(o Position6D, epsilon float64) bool {
	return slicesNear(p.ToSlice(), o.ToSlice(), epsilon)
}

// ToSlice returns [x, y, z, wx, wy, wz].
func (p Position6D) ToSlice() []float64 {
	return []float64{p.X, p.Y, p.Z, p.WX, p.WY, p.WZ}
}

// Position6DFromSlice builds a Position6D from exactly six values.
func Position6DFromSlice(s []float64) (Position6D, error) {
	if len(s) != 6 {
		return Position6D{}, newInvalidLengthError("Position6D", 6, len(s))
	}
	return Position6D{s[0], s[1], s[2], s[3], s[4], s[5]}, nil
}

// Rotation3D is a roll (WX), pitch (WY), yaw (WZ) decomposition of a rotation,
// composed as Rz(WZ) * Ry(WY) * Rx(WX).
type Rotation3D struct {
	WX float64 `json:"wx"`
	WY float64 `json:"wy"`
	WZ float64 `json:"wz"`
}

// IsNear reports whether every angle of r is within epsilon of o's.
func (r Rotation3D) IsNear(o Rotation3D, epsilon float64) bool {
	return scalar.EqualWithinAbs(r.WX, o.WX, epsilon) &&
		scalar.EqualWithinAbs(r.WY, o.WY, epsilon) &&
		scalar.EqualWithinAbs(r.WZ, o.WZ, epsilon)
}

func slicesNear(a, b []float64, epsilon float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}
