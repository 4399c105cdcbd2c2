package internal

import "github.com/pkg/errors"

// Shapes never fail to produce a path. Invalid configuration is reported as an
// error value for logging and callers that want to check ahead of time, and
// the shape falls back to its default layout.

var ErrInvalidAngles = errors.New("angles do not form a triangle")

// Wrap ErrInvalidAngles with detail. errors.Cause and errors.Is both reach the
// sentinel.
func invalidAnglesf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidAngles, format, args...)
}

// Check that a and b can be the base angles of a triangle: both strictly
// positive, leaving a strictly positive angle for the apex.
func ValidateAngles(a, b Angle) error {
	if !a.IsFinite() || !b.IsFinite() {
		return invalidAnglesf("angles must be finite, got %v and %v", a, b)
	}
	if !a.Positive() || !b.Positive() {
		return invalidAnglesf("angles must be positive, got %v and %v", a, b)
	}
	if c := Straight.Sub(a).Sub(b); !c.Positive() {
		return invalidAnglesf("%v and %v leave %v for the apex", a, b, c)
	}
	return nil
}
