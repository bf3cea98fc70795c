package spatialmath

import (
	commonpb "go.viam.com/api/common/v1"
)

// TransformToProtobuf converts t to the API pose message. The orientation is written as an
// orientation vector with Theta in degrees; the translation is passed through unchanged.
func TransformToProtobuf(t Transform) *commonpb.Pose {
	ov := t.rot.OrientationVector().Degrees()
	return &commonpb.Pose{
		X:     t.trans.X,
		Y:     t.trans.Y,
		Z:     t.trans.Z,
		OX:    ov.OX,
		OY:    ov.OY,
		OZ:    ov.OZ,
		Theta: ov.Theta,
	}
}

// TransformFromProtobuf converts an API pose message to a transform. A nil pose is the identity.
func TransformFromProtobuf(p *commonpb.Pose) Transform {
	if p == nil {
		return IdentityTransform()
	}
	ov := OrientationVecDegrees{Theta: p.Theta, OX: p.OX, OY: p.OY, OZ: p.OZ}.Radians()
	return NewTransform(ov.Rotation(), NewPosition3D(p.X, p.Y, p.Z))
}
