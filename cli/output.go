package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"google.golang.org/protobuf/encoding/protojson"

	"go.viam.com/se3/spatialmath"
	"go.viam.com/se3/utils"
)

// TransformOutput is the JSON form of a transform: the rotation block as rows and the
// translation column.
type TransformOutput struct {
	Rotation    [3][3]float64 `json:"rotation"`
	Translation [3]float64    `json:"translation"`
}

func newTransformOutput(t spatialmath.Transform) TransformOutput {
	var out TransformOutput
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Rotation[i][j] = t.At(i, j)
		}
		out.Translation[i] = t.At(i, 3)
	}
	return out
}

// Transform converts the output back into a transform.
func (out TransformOutput) Transform() spatialmath.Transform {
	rot := spatialmath.NewRotation(
		out.Rotation[0][0], out.Rotation[0][1], out.Rotation[0][2],
		out.Rotation[1][0], out.Rotation[1][1], out.Rotation[1][2],
		out.Rotation[2][0], out.Rotation[2][1], out.Rotation[2][2],
	)
	return spatialmath.NewTransform(rot, spatialmath.NewPosition3D(out.Translation[0], out.Translation[1], out.Translation[2]))
}

// ValidateOutput is printed by the validate command.
type ValidateOutput struct {
	Valid      bool            `json:"valid"`
	Errors     []string        `json:"errors"`
	Normalized json.RawMessage `json:"normalized,omitempty"`
}

// encodeTransform marshals t either as a TransformOutput or, with --proto, as an API pose.
func encodeTransform(asProto bool, t spatialmath.Transform) ([]byte, error) {
	if asProto {
		return protojson.Marshal(spatialmath.TransformToProtobuf(t))
	}
	return json.Marshal(newTransformOutput(t))
}

// transformTable renders t as its translation and roll, pitch and yaw in degrees.
func transformTable(t spatialmath.Transform) string {
	p := t.Translation()
	rpy := spatialmath.Rotation3DFromTransform(t)
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"X", "Y", "Z", "Roll", "Pitch", "Yaw"})
	tw.AppendRow(table.Row{
		fmt.Sprintf("%.6f", p.X),
		fmt.Sprintf("%.6f", p.Y),
		fmt.Sprintf("%.6f", p.Z),
		fmt.Sprintf("%.6f", utils.RadToDeg(rpy.WX)),
		fmt.Sprintf("%.6f", utils.RadToDeg(rpy.WY)),
		fmt.Sprintf("%.6f", utils.RadToDeg(rpy.WZ)),
	})
	return tw.Render()
}

func printTransform(c *cli.Context, t spatialmath.Transform) error {
	if c.Bool(generalFlagTable) {
		printf(c.App.Writer, "%s", transformTable(t))
		return nil
	}
	data, err := encodeTransform(c.Bool(generalFlagProto), t)
	if err != nil {
		return errors.Wrap(err, "cannot encode transform")
	}
	printf(c.App.Writer, "%s", data)
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "cannot encode output")
	}
	printf(w, "%s", data)
	return nil
}

// printf prints a message with a newline appended.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

func warningf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, color.New(color.FgYellow, color.Bold).Sprint("Warning: ")+format+"\n", a...)
}
