package spatialmath

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseFloats splits a comma or space delimited list such as "0,0,1" or "0 0 1" into floats.
func ParseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	converted := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot parse %q", s)
		}
		converted = append(converted, value)
	}
	return converted, nil
}

// ParsePosition3D parses three delimited values into a Position3D.
func ParsePosition3D(s string) (Position3D, error) {
	values, err := ParseFloats(s)
	if err != nil {
		return Position3D{}, err
	}
	return Position3DFromSlice(values)
}
