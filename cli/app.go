// Package cli contains all business logic needed by the se3 command line tool.
package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"go.viam.com/se3/logging"
	"go.viam.com/se3/spatialmath"
)

const (
	generalFlagDebug     = "debug"
	generalFlagTolerance = "tolerance"
	generalFlagProto     = "proto"
	generalFlagTable     = "table"
	generalFlagLogLevel  = "log-level"

	meanFlagAlpha          = "alpha"
	projectFlagAxis        = "axis"
	changeFrameFlagInverse = "transpose"
	validateFlagNormalize  = "normalize"

	rootLoggerName = "se3"
)

var app = &cli.App{
	Name:            "se3",
	Usage:           "rigid transform algebra: logarithms, exponentials, interpolation and frame changes",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    generalFlagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
		&cli.Float64Flag{
			Name:  generalFlagTolerance,
			Value: spatialmath.DefaultTolerance,
			Usage: "per-entry tolerance used when checking that input transforms are rigid",
		},
		&cli.BoolFlag{
			Name:  generalFlagProto,
			Usage: "print transforms as API pose messages (orientation vector, degrees)",
		},
		&cli.BoolFlag{
			Name:  generalFlagTable,
			Usage: "print transforms as a table of translation and roll, pitch, yaw in degrees",
		},
		&cli.StringSliceFlag{
			Name:  generalFlagLogLevel,
			Usage: "set logger levels by pattern, e.g. se3.mean=debug",
		},
	},
	Before: before,
	Commands: []*cli.Command{
		{
			Name:      "log",
			Usage:     "print the screw whose exponential is the given transform",
			ArgsUsage: "<request.json|request.yaml|->",
			Action:    LogCommand,
		},
		{
			Name:      "exp",
			Usage:     "print the transform reached by integrating a screw over one unit of time",
			ArgsUsage: "<request.json|request.yaml|->",
			Action:    ExpCommand,
		},
		{
			Name:      "mean",
			Usage:     "interpolate along the geodesic between two transforms",
			ArgsUsage: "<request.json|request.yaml|->",
			Flags: []cli.Flag{
				&cli.Float64Flag{
					Name:  meanFlagAlpha,
					Value: spatialmath.DefaultMeanAlpha,
					Usage: "interpolation parameter, 0 gives the first transform and 1 the second",
				},
			},
			Action: MeanCommand,
		},
		{
			Name:      "project",
			Usage:     "replace the rotation of a transform with the closest rotation about an axis",
			ArgsUsage: "<request.json|request.yaml|->",
			Flags: []cli.Flag{
				&AliasStringFlag{
					cli.StringFlag{
						Name:    projectFlagAxis,
						Aliases: []string{"a"},
						Value:   "0,0,1",
						Usage:   "axis of rotation as `X,Y,Z`",
					},
				},
			},
			Action: ProjectCommand,
		},
		{
			Name:      "rpy",
			Usage:     "print the roll, pitch and yaw of a transform",
			ArgsUsage: "<request.json|request.yaml|->",
			Action:    RPYCommand,
		},
		{
			Name:      "pose2d",
			Usage:     "project a transform onto the plane, or embed a planar pose",
			ArgsUsage: "<request.json|request.yaml|->",
			Action:    Pose2DCommand,
		},
		{
			Name:      "change-frame",
			Usage:     "re-express a velocity, position or transform in another frame",
			ArgsUsage: "<request.json|request.yaml|->",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  changeFrameFlagInverse,
					Usage: "apply the inverse frame change",
				},
			},
			Action: ChangeFrameCommand,
		},
		{
			Name:      "validate",
			Usage:     "check that a transform is rigid",
			ArgsUsage: "<request.json|request.yaml|->",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  validateFlagNormalize,
					Usage: "print the closest rigid transform instead of failing",
				},
			},
			Action: ValidateCommand,
		},
		{
			Name:   "schema",
			Usage:  "print the JSON schema of request files",
			Action: SchemaCommand,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}

func before(c *cli.Context) error {
	if c.Bool(generalFlagProto) && c.Bool(generalFlagTable) {
		return errors.Errorf("--%s and --%s cannot be used together", generalFlagProto, generalFlagTable)
	}
	return setupLogging(c)
}

func setupLogging(c *cli.Context) error {
	if c.Bool(generalFlagDebug) {
		logging.GlobalLogLevel.SetLevel(zap.DebugLevel)
	} else {
		logging.GlobalLogLevel.SetLevel(zap.InfoLevel)
	}

	root := logging.GetOrNewLogger(rootLoggerName)
	logging.ReplaceGlobal(root)
	for _, cmd := range c.App.Commands {
		root.Sublogger(cmd.Name)
	}

	patterns := c.StringSlice(generalFlagLogLevel)
	if len(patterns) == 0 {
		return nil
	}
	configs := make([]logging.LoggerPatternConfig, 0, len(patterns))
	for _, p := range patterns {
		cfg, err := logging.ParseLoggerPatternConfig(p)
		if err != nil {
			return err
		}
		configs = append(configs, cfg)
	}
	return logging.UpdateConfig(configs, root)
}

func commandLogger(c *cli.Context) logging.Logger {
	return logging.GetOrNewLogger(rootLoggerName).Sublogger(c.Command.Name)
}
