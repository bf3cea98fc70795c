package spatialmath

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfDomain is the root of every DomainError.
	ErrOutOfDomain = errors.New("input outside of the operation's valid domain")

	// ErrZeroAxis is returned when an axis of rotation has (near) zero length.
	ErrZeroAxis = errors.New("axis of rotation has zero length")

	// ErrInvalidAxis is returned for an axis code that is not AxisX, AxisY or AxisZ.
	ErrInvalidAxis = errors.New("axis code must be 0 (x), 1 (y) or 2 (z)")

	// ErrDivisionByZero is returned by scalar division of a pose by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidLength is returned when a slice cannot be converted into a fixed-size type.
	ErrInvalidLength = errors.New("slice has the wrong number of elements")
)

// DomainError reports a rotation angle outside the range an operation is defined on.
type DomainError struct {
	Op    string
	Angle float64
	Limit float64
}

// NewDomainError returns an error indicating that op was given a rotation of angle radians,
// beyond limit.
func NewDomainError(op string, angle, limit float64) error {
	return &DomainError{Op: op, Angle: angle, Limit: limit}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: rotation angle %.6f rad exceeds the valid limit of %.6f rad", e.Op, e.Angle, e.Limit)
}

// Unwrap makes errors.Is(err, ErrOutOfDomain) hold for every DomainError.
func (e *DomainError) Unwrap() error {
	return ErrOutOfDomain
}

// IsDomainError reports whether err, or anything it wraps, is a DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

func newInvalidLengthError(typ string, want, got int) error {
	return errors.Wrapf(ErrInvalidLength, "%s needs %d values, got %d", typ, want, got)
}
