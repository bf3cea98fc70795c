package cli

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"go.viam.com/se3/logging"
	"go.viam.com/se3/spatialmath"
)

func loadRequest(c *cli.Context) (*Request, error) {
	path := c.Args().First()
	if path == "" {
		return nil, errors.Errorf("%s requires a request file, or - to read from stdin", c.Command.Name)
	}
	return readRequest(path, c.App.Reader)
}

// checkRigid warns when t is not a rigid transform. The operation still runs on it.
func checkRigid(c *cli.Context, logger logging.Logger, field string, t spatialmath.Transform) {
	tol := c.Float64(generalFlagTolerance)
	if err := t.Validate(tol); err != nil {
		logger.Warnw("input is not a rigid transform", "field", field, "tolerance", tol, "error", err)
		warningf(c.App.ErrWriter, "%q is not a rigid transform: %v", field, err)
	}
}

func loadTransform(c *cli.Context, logger logging.Logger, cfg *TransformConfig, field string) (spatialmath.Transform, error) {
	t, err := requiredTransform(cfg, field)
	if err != nil {
		return spatialmath.Transform{}, err
	}
	logger.Debugw("decoded transform", "field", field, "transform", t.String())
	checkRigid(c, logger, field, t)
	return t, nil
}

// LogCommand prints the twist whose exponential is the request's transform.
func LogCommand(c *cli.Context) error {
	logger := commandLogger(c)
	req, err := loadRequest(c)
	if err != nil {
		return err
	}
	t, err := loadTransform(c, logger, req.Transform, "transform")
	if err != nil {
		return err
	}
	v, err := spatialmath.TransformLogarithm(t)
	if err != nil {
		return errors.Wrap(err, "cannot take the logarithm")
	}
	logger.Debugw("logarithm", "angle", spatialmath.RotationAngle(t.Rotation()))
	return printJSON(c.App.Writer, v)
}

// ExpCommand prints the exponential of the request's velocity.
func ExpCommand(c *cli.Context) error {
	logger := commandLogger(c)
	req, err := loadRequest(c)
	if err != nil {
		return err
	}
	if req.Velocity == nil {
		return errors.New(`request is missing "velocity"`)
	}
	logger.Debugw("decoded velocity", "velocity", *req.Velocity)
	return printTransform(c, spatialmath.VelocityExponential(*req.Velocity))
}

// MeanCommand prints the point at --alpha along the geodesic from the request's from to its to.
func MeanCommand(c *cli.Context) error {
	logger := commandLogger(c)
	req, err := loadRequest(c)
	if err != nil {
		return err
	}
	from, err := loadTransform(c, logger, req.From, "from")
	if err != nil {
		return err
	}
	to, err := loadTransform(c, logger, req.To, "to")
	if err != nil {
		return err
	}
	alpha := c.Float64(meanFlagAlpha)
	mean, err := spatialmath.TransformMean(from, to, alpha)
	if err != nil {
		return err
	}
	logger.Debugw("mean", "alpha", alpha)
	return printTransform(c, mean)
}

// ProjectCommand replaces the rotation of the request's transform with the closest rotation
// about --axis.
func ProjectCommand(c *cli.Context) error {
	logger := commandLogger(c)
	axis, err := spatialmath.ParsePosition3D(c.String(projectFlagAxis))
	if err != nil {
		return errors.Wrapf(err, "invalid --%s", projectFlagAxis)
	}
	req, err := loadRequest(c)
	if err != nil {
		return err
	}
	t, err := loadTransform(c, logger, req.Transform, "transform")
	if err != nil {
		return err
	}
	projected, err := spatialmath.AxisRotationProjectionTransform(t, axis)
	if err != nil {
		return errors.Wrap(err, "cannot project rotation")
	}
	logger.Debugw("projected", "axis", axis.ToSlice(), "angle", spatialmath.RotationAngle(projected.Rotation()))
	return printTransform(c, projected)
}

// RPYCommand prints the roll, pitch and yaw of the request's transform.
func RPYCommand(c *cli.Context) error {
	logger := commandLogger(c)
	req, err := loadRequest(c)
	if err != nil {
		return err
	}
	t, err := loadTransform(c, logger, req.Transform, "transform")
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, spatialmath.Rotation3DFromTransform(t))
}

// Pose2DCommand projects the request's transform onto the plane, or embeds its pose2d.
func Pose2DCommand(c *cli.Context) error {
	logger := commandLogger(c)
	req, err := loadRequest(c)
	if err != nil {
		return err
	}
	switch {
	case req.Pose2D != nil && req.Transform != nil:
		return errors.New(`request may contain only one of "pose2d" and "transform"`)
	case req.Pose2D != nil:
		logger.Debugw("decoded pose", "pose2d", *req.Pose2D)
		return printTransform(c, spatialmath.TransformFromPose2D(*req.Pose2D))
	default:
		t, err := loadTransform(c, logger, req.Transform, "transform")
		if err != nil {
			return err
		}
		return printJSON(c.App.Writer, spatialmath.Pose2DFromTransform(t))
	}
}

// ChangeFrameCommand re-expresses the request's velocity, position, position6d or transform
// in its frame. Screws and positions are rotated only; transforms are composed with the frame.
func ChangeFrameCommand(c *cli.Context) error {
	logger := commandLogger(c)
	req, err := loadRequest(c)
	if err != nil {
		return err
	}
	frame, err := loadTransform(c, logger, req.Frame, "frame")
	if err != nil {
		return err
	}

	given := lo.Count([]bool{req.Velocity != nil, req.Position != nil, req.Position6D != nil, req.Transform != nil}, true)
	if given != 1 {
		return errors.New(`request must contain exactly one of "velocity", "position", "position6d" or "transform"`)
	}

	transpose := c.Bool(changeFrameFlagInverse)
	logger.Debugw("changing frame", "transpose", transpose)
	switch {
	case req.Velocity != nil:
		if transpose {
			return printJSON(c.App.Writer, spatialmath.ChangeFrameTransposeVelocity6D(frame, *req.Velocity))
		}
		return printJSON(c.App.Writer, spatialmath.ChangeFrameVelocity6D(frame, *req.Velocity))
	case req.Position != nil:
		p, err := spatialmath.Position3DFromSlice(req.Position)
		if err != nil {
			return errors.Wrap(err, `invalid "position"`)
		}
		if transpose {
			return printJSON(c.App.Writer, spatialmath.ChangeFrameTransposePosition3D(frame, p).ToSlice())
		}
		return printJSON(c.App.Writer, spatialmath.ChangeFramePosition3D(frame, p).ToSlice())
	case req.Position6D != nil:
		p, err := spatialmath.Position6DFromSlice(req.Position6D)
		if err != nil {
			return errors.Wrap(err, `invalid "position6d"`)
		}
		if transpose {
			return printJSON(c.App.Writer, spatialmath.ChangeFrameTransposePosition6D(frame, p))
		}
		return printJSON(c.App.Writer, spatialmath.ChangeFramePosition6D(frame, p))
	default:
		t, err := loadTransform(c, logger, req.Transform, "transform")
		if err != nil {
			return err
		}
		if transpose {
			return printTransform(c, spatialmath.ChangeFrameTransposeTransform(frame, t))
		}
		return printTransform(c, spatialmath.ChangeFrameTransform(frame, t))
	}
}

// ValidateCommand checks that the request's transform is rigid. With --normalize, an invalid
// transform is repaired and printed instead of failing the command.
func ValidateCommand(c *cli.Context) error {
	logger := commandLogger(c)
	req, err := loadRequest(c)
	if err != nil {
		return err
	}
	t, err := requiredTransform(req.Transform, "transform")
	if err != nil {
		return err
	}

	tol := c.Float64(generalFlagTolerance)
	validateErr := t.Validate(tol)
	out := ValidateOutput{Valid: validateErr == nil, Errors: []string{}}
	for _, e := range multierr.Errors(validateErr) {
		out.Errors = append(out.Errors, e.Error())
	}
	logger.Debugw("validated", "tolerance", tol, "valid", out.Valid, "errors", len(out.Errors))

	normalize := c.Bool(validateFlagNormalize)
	if validateErr != nil && normalize {
		if out.Normalized, err = encodeTransform(c.Bool(generalFlagProto), t.Normalize()); err != nil {
			return errors.Wrap(err, "cannot encode transform")
		}
	}
	if err := printJSON(c.App.Writer, out); err != nil {
		return err
	}
	if validateErr != nil && !normalize {
		return errors.Wrap(validateErr, "transform is not rigid")
	}
	return nil
}

// SchemaCommand prints the JSON schema that request files are decoded against.
func SchemaCommand(c *cli.Context) error {
	data, err := json.MarshalIndent(jsonschema.Reflect(&Request{}), "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot encode schema")
	}
	printf(c.App.Writer, "%s", data)
	return nil
}
