package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for out of range months, quarters and
// weeks, malformed dates and unrecognized month selectors.
// Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

// IsInvalidArgument reports whether err was caused by a bad caller input.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func checkMonth(what string, month int) error {
	if month < 1 || month > 12 {
		return invalidArgument("%s month must be between 1 and 12, got %d", what, month)
	}
	return nil
}
