package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// Axis identifies one of the three frame axes. The integer values are part of the
// external contract and must not change.
type Axis int

// The frame axes.
const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// Every conversion below comes in two forms with identical semantics: a function that
// returns the result, and a method that writes the result into its receiver.

// TransformFromPosition3DAndRotation places r in the rotation block and (x, y, z) in the
// translation column.
func TransformFromPosition3DAndRotation(x, y, z float64, r Rotation) Transform {
	var t Transform
	t.SetFromPosition3DAndRotation(x, y, z, r)
	return t
}

// SetFromPosition3DAndRotation is the in-place form of TransformFromPosition3DAndRotation.
func (t *Transform) SetFromPosition3DAndRotation(x, y, z float64, r Rotation) {
	t.rot = r
	t.trans = Position3D{X: x, Y: y, Z: z}
}

// TransformFromRotationAndPosition3D places r in the rotation block and p in the
// translation column.
func TransformFromRotationAndPosition3D(r Rotation, p Position3D) Transform {
	return TransformFromPosition3DAndRotation(p.X, p.Y, p.Z, r)
}

// TransformFromPosition3D returns a pure translation by p.
func TransformFromPosition3D(p Position3D) Transform {
	var t Transform
	t.SetFromPosition3D(p)
	return t
}

// SetFromPosition3D is the in-place form of TransformFromPosition3D; the rotation block
// is reset to the identity. Use SetTranslation to keep the rotation.
func (t *Transform) SetFromPosition3D(p Position3D) {
	t.rot = IdentityRotation()
	t.trans = p
}

// RotationToTransform returns a pure rotation by r.
func RotationToTransform(r Rotation) Transform {
	var t Transform
	t.SetFromRotation(r)
	return t
}

// SetFromRotation is the in-place form of RotationToTransform; the translation is
// reset to zero. Use SetRotation to keep the translation.
func (t *Transform) SetFromRotation(r Rotation) {
	t.rot = r
	t.trans = Position3D{}
}

// RotationFromTransform extracts the rotation block of t.
func RotationFromTransform(t Transform) Rotation {
	var r Rotation
	r.SetFromTransform(t)
	return r
}

// SetFromTransform is the in-place form of RotationFromTransform.
func (r *Rotation) SetFromTransform(t Transform) {
	*r = t.rot
}

// TransformToPosition3D extracts the translation column of t.
func TransformToPosition3D(t Transform) Position3D {
	var p Position3D
	p.SetFromTransform(t)
	return p
}

// Position3DFromTransform extracts the translation column of t.
func Position3DFromTransform(t Transform) Position3D {
	return TransformToPosition3D(t)
}

// SetFromTransform is the in-place form of TransformToPosition3D.
func (p *Position3D) SetFromTransform(t Transform) {
	*p = t.trans
}

// Position6DFromTransform returns the translation of t together with the roll/pitch/yaw
// decomposition of its rotation block.
func Position6DFromTransform(t Transform) Position6D {
	var p Position6D
	p.SetFromTransform(t)
	return p
}

// SetFromTransform is the in-place form of Position6DFromTransform.
func (p *Position6D) SetFromTransform(t Transform) {
	rpy := Rotation3DFromRotation(t.rot)
	*p = Position6D{t.trans.X, t.trans.Y, t.trans.Z, rpy.WX, rpy.WY, rpy.WZ}
}

// TransformFromPosition6D is the inverse of Position6DFromTransform.
func TransformFromPosition6D(p Position6D) Transform {
	var t Transform
	t.SetFromPosition6D(p)
	return t
}

// SetFromPosition6D is the in-place form of TransformFromPosition6D.
func (t *Transform) SetFromPosition6D(p Position6D) {
	t.rot = RotationFromRotation3D(Rotation3D{p.WX, p.WY, p.WZ})
	t.trans = Position3D{X: p.X, Y: p.Y, Z: p.Z}
}

// Rotation3DFromRotation extracts roll, pitch and yaw from r such that
// r = Rz(yaw) * Ry(pitch) * Rx(roll). At gimbal lock (pitch = +-pi/2) only the sum or
// difference of roll and yaw is observable; the yaw is then reported as zero and the
// whole angle is attributed to the roll.
func Rotation3DFromRotation(r Rotation) Rotation3D {
	var out Rotation3D
	out.SetFromRotation(r)
	return out
}

// SetFromRotation is the in-place form of Rotation3DFromRotation.
func (out *Rotation3D) SetFromRotation(r Rotation) {
	sy := math.Hypot(r.At(0, 0), r.At(1, 0))
	if sy < GimbalLockEpsilon {
		out.WX = math.Atan2(-r.At(1, 2), r.At(1, 1))
		out.WY = math.Atan2(-r.At(2, 0), sy)
		out.WZ = 0
		return
	}
	out.WX = math.Atan2(r.At(2, 1), r.At(2, 2))
	out.WY = math.Atan2(-r.At(2, 0), sy)
	out.WZ = math.Atan2(r.At(1, 0), r.At(0, 0))
}

// Rotation3DFromTransform extracts roll, pitch and yaw from the rotation block of t.
func Rotation3DFromTransform(t Transform) Rotation3D {
	var out Rotation3D
	out.SetFromTransform(t)
	return out
}

// SetFromTransform is the in-place form of Rotation3DFromTransform.
func (out *Rotation3D) SetFromTransform(t Transform) {
	out.SetFromRotation(t.rot)
}

// RotationFromRotation3D returns Rz(yaw) * Ry(pitch) * Rx(roll).
func RotationFromRotation3D(rpy Rotation3D) Rotation {
	var r Rotation
	r.SetFromRotation3D(rpy)
	return r
}

// SetFromRotation3D is the in-place form of RotationFromRotation3D.
func (r *Rotation) SetFromRotation3D(rpy Rotation3D) {
	*r = RotationZ(rpy.WZ).Mul(RotationY(rpy.WY)).Mul(RotationX(rpy.WX))
}

// TransformFromRotation3D returns a pure rotation built from roll, pitch and yaw.
func TransformFromRotation3D(rpy Rotation3D) Transform {
	var t Transform
	t.SetFromRotation3D(rpy)
	return t
}

// SetFromRotation3D is the in-place form of TransformFromRotation3D.
func (t *Transform) SetFromRotation3D(rpy Rotation3D) {
	t.SetFromRotation(RotationFromRotation3D(rpy))
}

// TransformFromPose2D embeds a planar pose: a rotation of theta about z and a
// translation of (x, y, 0).
func TransformFromPose2D(p Pose2D) Transform {
	var t Transform
	t.SetFromPose2D(p)
	return t
}

// SetFromPose2D is the in-place form of TransformFromPose2D.
func (t *Transform) SetFromPose2D(p Pose2D) {
	t.rot = RotationZ(p.Theta)
	t.trans = Position3D{X: p.X, Y: p.Y}
}

// Pose2DFromTransform projects t onto the horizontal plane: the translation's x and y,
// and the heading atan2(r21, r11).
func Pose2DFromTransform(t Transform) Pose2D {
	var p Pose2D
	p.SetFromTransform(t)
	return p
}

// SetFromTransform is the in-place form of Pose2DFromTransform.
func (p *Pose2D) SetFromTransform(t Transform) {
	p.X = t.trans.X
	p.Y = t.trans.Y
	p.Theta = math.Atan2(t.rot.At(1, 0), t.rot.At(0, 0))
}

// RotationFromAxis returns the rotation of theta radians about one of the frame axes.
func RotationFromAxis(axis Axis, theta float64) (Rotation, error) {
	switch axis {
	case AxisX:
		return RotationX(theta), nil
	case AxisY:
		return RotationY(theta), nil
	case AxisZ:
		return RotationZ(theta), nil
	default:
		return Rotation{}, ErrInvalidAxis
	}
}

// RotVecToTransform returns the transform rotating theta radians about axis, followed by
// a translation of p.
func RotVecToTransform(axis Axis, theta float64, p Position3D) (Transform, error) {
	var t Transform
	if err := t.SetFromAxisRotation(axis, theta, p); err != nil {
		return Transform{}, err
	}
	return t, nil
}

// SetFromAxisRotation is the in-place form of RotVecToTransform. t is left untouched on error.
func (t *Transform) SetFromAxisRotation(axis Axis, theta float64, p Position3D) error {
	r, err := RotationFromAxis(axis, theta)
	if err != nil {
		return err
	}
	t.rot = r
	t.trans = p
	return nil
}

// RotationVectorToTransform returns the pure rotation whose rotation vector (axis scaled by
// angle in radians) is p.
func RotationVectorToTransform(p Position3D) Transform {
	var t Transform
	t.SetFromRotationVector(p)
	return t
}

// SetFromRotationVector is the in-place form of RotationVectorToTransform. The translation
// is reset to zero.
func (t *Transform) SetFromRotationVector(p Position3D) {
	t.rot = R3ToR4(p.Vector()).Rotation()
	t.trans = Position3D{}
}

// TransformDiffToPosition returns the small 6D displacement that moves current onto
// target, both expressed in the base frame. The linear part is the difference of
// translations; the angular part is half the sum of the cross products of matching
// rotation columns, which is the rotation vector of target * current^-1 to first order.
func TransformDiffToPosition(current, target Transform) Position6D {
	var p Position6D
	p.SetTransformDiff(current, target)
	return p
}

// SetTransformDiff is the in-place form of TransformDiffToPosition.
func (p *Position6D) SetTransformDiff(current, target Transform) {
	var w r3.Vector
	for col := 0; col < 3; col++ {
		w = w.Add(current.rot.Col(col).Cross(target.rot.Col(col)))
	}
	*p = NewPosition6D(target.trans.Sub(current.trans).Vector(), w.Mul(0.5))
}
