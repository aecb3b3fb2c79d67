package xmlgen

import (
	"errors"
	"fmt"

	"github.com/signadot/xmlgen/model"
)

// ErrAbsentRoot is returned when the entry point is given no root instance.
var ErrAbsentRoot = errors.New("root instance is absent")

// InstanceError reports an instance whose value does not fit its field.
type InstanceError struct {
	Class string
	Field string
	Err   error
}

func (e *InstanceError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("instance of %s: %v", e.Class, e.Err)
	}
	return fmt.Sprintf("instance of %s, field %s: %v", e.Class, e.Field, e.Err)
}

func (e *InstanceError) Unwrap() error {
	return e.Err
}

func configError(c *model.Class, f *model.Field, err error, format string, args ...any) *model.ConfigurationError {
	e := &model.ConfigurationError{Message: fmt.Sprintf(format, args...), Err: err}
	if c != nil {
		e.Class = c.Name
	}
	if f != nil {
		e.Field = f.Name
	}
	return e
}
