package spatialmath

import (
	"math"

	"go.viam.com/se3/utils"
)

// Pose2D is a planar pose: a position (X, Y) and a heading Theta in radians.
type Pose2D struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

// Pose2DFromSlice builds a pose from [x, y, theta].
func Pose2DFromSlice(s []float64) (Pose2D, error) {
	if len(s) != 3 {
		return Pose2D{}, newInvalidLengthError("Pose2D", 3, len(s))
	}
	return Pose2D{s[0], s[1], s[2]}, nil
}

// ToSlice returns [x, y, theta].
func (p Pose2D) ToSlice() []float64 {
	return []float64{p.X, p.Y, p.Theta}
}

// Add returns the component-wise sum p + o.
func (p Pose2D) Add(o Pose2D) Pose2D {
	return Pose2D{p.X + o.X, p.Y + o.Y, p.Theta + o.Theta}
}

// Sub returns the component-wise difference p - o.
func (p Pose2D) Sub(o Pose2D) Pose2D {
	return Pose2D{p.X - o.X, p.Y - o.Y, p.Theta - o.Theta}
}

// Neg returns -p component-wise.
func (p Pose2D) Neg() Pose2D {
	return Pose2D{-p.X, -p.Y, -p.Theta}
}

// Compose returns the pose o expressed in p's frame moved into p's parent frame:
// o's position is rotated by p's heading and offset by p's position, and the headings add.
func (p Pose2D) Compose(o Pose2D) Pose2D {
	out := p
	out.ComposeInPlace(o)
	return out
}

// ComposeInPlace is the in-place form of Compose.
func (p *Pose2D) ComposeInPlace(o Pose2D) {
	s, c := math.Sincos(p.Theta)
	p.X += c*o.X - s*o.Y
	p.Y += s*o.X + c*o.Y
	p.Theta += o.Theta
}

// Mul returns every component of p scaled by s.
func (p Pose2D) Mul(s float64) Pose2D {
	return Pose2D{p.X * s, p.Y * s, p.Theta * s}
}

// Div returns every component of p divided by s.
func (p Pose2D) Div(s float64) (Pose2D, error) {
	if s == 0 {
		return Pose2D{}, ErrDivisionByZero
	}
	return p.Mul(1 / s), nil
}

// DistanceSquared returns the squared planar distance between p and o; headings are ignored.
func (p Pose2D) DistanceSquared(o Pose2D) float64 {
	return utils.Square(p.X-o.X) + utils.Square(p.Y-o.Y)
}

// Distance returns the planar distance between p and o; headings are ignored.
func (p Pose2D) Distance(o Pose2D) float64 {
	return math.Sqrt(p.DistanceSquared(o))
}

// IsNear reports whether every component of p is within epsilon of o's.
func (p Pose2D) IsNear(o Pose2D, epsilon float64) bool {
	return utils.Float64AlmostEqual(p.X, o.X, epsilon) &&
		utils.Float64AlmostEqual(p.Y, o.Y, epsilon) &&
		utils.Float64AlmostEqual(p.Theta, o.Theta, epsilon)
}

// Normalized returns p with its heading wrapped onto (-pi, pi].
func (p Pose2D) Normalized() Pose2D {
	p.Theta = utils.WrapAngle(p.Theta)
	return p
}

// Inverse returns the pose q such that p.Compose(q) is the zero pose.
func (p Pose2D) Inverse() Pose2D {
	theta := -p.Theta
	s, c := math.Sincos(theta)
	return Pose2D{
		X:     -(p.X*c - p.Y*s),
		Y:     -(p.Y*c + p.X*s),
		Theta: theta,
	}
}
