package raster

import (
	"github.com/pkg/errors"
)

// ErrInvalidArgument is wrapped by every construction, range and invariant
// failure in the editor core.
var ErrInvalidArgument = errors.New("invalid argument")

// Invalid returns an error wrapping ErrInvalidArgument with the given message.
func Invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
