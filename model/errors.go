package model

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnsupportedFieldType is matched by every *UnsupportedFieldTypeError.
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)

// ConfigurationError reports a model that cannot be generated from.
type ConfigurationError struct {
	Class   string // Class name, if the problem is local to a class
	Field   string // Field name, if the problem is local to a field
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error%s: %s", location(e.Class, e.Field), e.Message)
}

func (e *ConfigurationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfiguration}
	}
	return []error{ErrConfiguration, e.Err}
}

// UnsupportedFieldTypeError reports a field whose type has no emission rule.
type UnsupportedFieldTypeError struct {
	Class string
	Field string
	Type  string
}

func (e *UnsupportedFieldTypeError) Error() string {
	return fmt.Sprintf("unsupported field type%s: %s", location(e.Class, e.Field), e.Type)
}

func (e *UnsupportedFieldTypeError) Unwrap() error {
	return ErrUnsupportedFieldType
}

func location(class, field string) string {
	switch {
	case class != "" && field != "":
		return " at " + class + "." + field
	case class != "":
		return " at " + class
	default:
		return ""
	}
}

func configErr(c *Class, f *Field, format string, args ...any) *ConfigurationError {
	e := &ConfigurationError{Message: fmt.Sprintf(format, args...)}
	if c != nil {
		e.Class = c.Name
	}
	if f != nil {
		e.Field = f.Name
	}
	return e
}
