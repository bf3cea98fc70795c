package spatialmath

import "math"

// Numerical thresholds shared by the logarithm, exponential, mean and projection operators.
const (
	// SmallAngleEpsilon is the rotation angle (radians) below which the logarithm and
	// exponential maps switch to their first-order approximations.
	SmallAngleEpsilon = 1e-6

	// LogarithmAngleMargin is how far from pi the rotation angle must stay for the
	// logarithm to be defined.
	LogarithmAngleMargin = 0.001

	// MaxLogarithmAngle is the largest rotation angle accepted by the logarithm map.
	MaxLogarithmAngle = math.Pi - LogarithmAngleMargin

	// GimbalLockEpsilon bounds hypot(r11, r21) below which roll/pitch/yaw extraction
	// treats the pitch as +-pi/2.
	GimbalLockEpsilon = 1e-6

	// AxisEpsilon is the norm below which an axis or a projected vector is considered zero.
	AxisEpsilon = 1e-6

	// DefaultMeanAlpha is the interpolation parameter of TransformMidpoint.
	DefaultMeanAlpha = 0.5

	// DefaultTolerance is the per-entry tolerance used by validation helpers.
	DefaultTolerance = 1e-4
)
