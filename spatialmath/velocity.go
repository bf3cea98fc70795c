package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// Velocity6D is a kinematic screw: a linear velocity (XD, YD, ZD) stacked on an angular
// velocity (WXD, WYD, WZD), both expressed in the same reference frame. Integrated over
// one unit of time it is also the se(3) element produced by TransformLogarithm.
type Velocity6D struct {
	XD  float64 `json:"xd"`
	YD  float64 `json:"yd"`
	ZD  float64 `json:"zd"`
	WXD float64 `json:"wxd"`
	WYD float64 `json:"wyd"`
	WZD float64 `json:"wzd"`
}

// NewVelocity6D returns a screw from its linear and angular halves.
func NewVelocity6D(linear, angular r3.Vector) Velocity6D {
	return Velocity6D{linear.X, linear.Y, linear.Z, angular.X, angular.Y, angular.Z}
}

// Linear returns (xd, yd, zd).
func (v Velocity6D) Linear() r3.Vector {
	return r3.Vector{X: v.XD, Y: v.YD, Z: v.ZD}
}

// Angular returns (wxd, wyd, wzd).
func (v Velocity6D) Angular() r3.Vector {
	return r3.Vector{X: v.WXD, Y: v.WYD, Z: v.WZD}
}

// Add returns the component-wise sum v + o.
func (v Velocity6D) Add(o Velocity6D) Velocity6D {
	return NewVelocity6D(v.Linear().Add(o.Linear()), v.Angular().Add(o.Angular()))
}

// Sub returns the component-wise difference v - o.
func (v Velocity6D) Sub(o Velocity6D) Velocity6D {
	return NewVelocity6D(v.Linear().Sub(o.Linear()), v.Angular().Sub(o.Angular()))
}

// Mul returns every component of v scaled by s, e.g. a velocity times a duration.
func (v Velocity6D) Mul(s float64) Velocity6D {
	return NewVelocity6D(v.Linear().Mul(s), v.Angular().Mul(s))
}

// Neg returns -v.
func (v Velocity6D) Neg() Velocity6D {
	return v.Mul(-1)
}

// Norm returns the euclidean norm of all six components.
func (v Velocity6D) Norm() float64 {
	return math.Sqrt(v.Linear().Norm2() + v.Angular().Norm2())
}

// IsNear reports whether every component of v is within epsilon of o's.
func (v Velocity6D) IsNear(o Velocity6D, epsilon float64) bool {
	return slicesNear(v.ToSlice(), o.ToSlice(), epsilon)
}

// ToSlice returns [xd, yd, zd, wxd, wyd, wzd].
func (v Velocity6D) ToSlice() []float64 {
	return []float64{v.XD, v.YD, v.ZD, v.WXD, v.WYD, v.WZD}
}

// Velocity6DFromSlice builds a Velocity6D from exactly six values.
func Velocity6DFromSlice(s []float64) (Velocity6D, error) {
	if len(s) != 6 {
		return Velocity6D{}, newInvalidLengthError("Velocity6D", 6, len(s))
	}
	return Velocity6D{s[0], s[1], s[2], s[3], s[4], s[5]}, nil
}
