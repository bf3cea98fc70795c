package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/num/quat"
	"gopkg.in/yaml.v3"

	"go.viam.com/se3/spatialmath"
)

const stdinPath = "-"

// QuaternionConfig is a unit quaternion given by its scalar W and vector (X, Y, Z) parts.
type QuaternionConfig struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// TransformConfig describes a rigid transform in a request file. At most one rotation
// form may be given; none means identity. A missing translation means zero.
type TransformConfig struct {
	Translation []float64               `json:"translation,omitempty"`
	Rotation    []float64               `json:"rotation,omitempty"`
	RPY         *spatialmath.Rotation3D `json:"rpy,omitempty"`
	AxisAngle   *spatialmath.R4AA       `json:"axis_angle,omitempty"`
	Quaternion  *QuaternionConfig       `json:"quaternion,omitempty"`
}

// Transform converts the config into a Transform.
func (cfg *TransformConfig) Transform() (spatialmath.Transform, error) {
	rot, err := cfg.rotation()
	if err != nil {
		return spatialmath.Transform{}, err
	}
	trans := spatialmath.Position3D{}
	if len(cfg.Translation) != 0 {
		if trans, err = spatialmath.Position3DFromSlice(cfg.Translation); err != nil {
			return spatialmath.Transform{}, errors.Wrap(err, "invalid translation")
		}
	}
	return spatialmath.NewTransform(rot, trans), nil
}

func (cfg *TransformConfig) rotation() (spatialmath.Rotation, error) {
	given := lo.Count([]bool{cfg.Rotation != nil, cfg.RPY != nil, cfg.AxisAngle != nil, cfg.Quaternion != nil}, true)
	if given > 1 {
		return spatialmath.Rotation{}, errors.New("only one of rotation, rpy, axis_angle or quaternion may be given")
	}

	switch {
	case cfg.Rotation != nil:
		rot, err := spatialmath.NewRotationFromSlice(cfg.Rotation)
		if err != nil {
			return spatialmath.Rotation{}, errors.Wrap(err, "invalid rotation")
		}
		return rot, nil
	case cfg.RPY != nil:
		return spatialmath.RotationFromRotation3D(*cfg.RPY), nil
	case cfg.AxisAngle != nil:
		aa, err := cfg.AxisAngle.Normalize()
		if err != nil {
			return spatialmath.Rotation{}, errors.Wrap(err, "invalid axis_angle")
		}
		return aa.Rotation(), nil
	case cfg.Quaternion != nil:
		q := cfg.Quaternion
		return spatialmath.RotationFromQuaternion(quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}), nil
	default:
		return spatialmath.IdentityRotation(), nil
	}
}

// Request is the body of a request file. Each command reads the fields it needs.
type Request struct {
	Transform  *TransformConfig        `json:"transform,omitempty"`
	From       *TransformConfig        `json:"from,omitempty"`
	To         *TransformConfig        `json:"to,omitempty"`
	Frame      *TransformConfig        `json:"frame,omitempty"`
	Velocity   *spatialmath.Velocity6D `json:"velocity,omitempty"`
	Position   []float64               `json:"position,omitempty"`
	Position6D []float64               `json:"position6d,omitempty"`
	Pose2D     *spatialmath.Pose2D     `json:"pose2d,omitempty"`
}

func requiredTransform(cfg *TransformConfig, field string) (spatialmath.Transform, error) {
	if cfg == nil {
		return spatialmath.Transform{}, errors.Errorf("request is missing %q", field)
	}
	t, err := cfg.Transform()
	if err != nil {
		return spatialmath.Transform{}, errors.Wrapf(err, "invalid %q", field)
	}
	return t, nil
}

// readRequest decodes the request at path. YAML files are converted to JSON first so
// that both formats share one set of field names.
func readRequest(path string, stdin io.Reader) (*Request, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinPath {
		data, err = io.ReadAll(stdin)
	} else {
		//nolint:gosec
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read request %q", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if data, err = yamlToJSON(data); err != nil {
			return nil, errors.Wrapf(err, "cannot parse request %q", path)
		}
	case ".json":
	default:
		if path != stdinPath {
			return nil, errors.Errorf("request %q must be a .json, .yaml or .yml file", path)
		}
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] != '{' {
			if data, err = yamlToJSON(data); err != nil {
				return nil, errors.Wrap(err, "cannot parse request from stdin")
			}
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var req Request
	if err := dec.Decode(&req); err != nil {
		return nil, errors.Wrapf(err, "cannot decode request %q", path)
	}
	return &req, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	return json.Marshal(raw)
}
