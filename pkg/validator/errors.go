package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrNilValidator is returned when a schema field is given a nil validator.
	ErrNilValidator = errors.New("nil validator")

	// ErrEmptyKey is returned for a schema key without field names.
	ErrEmptyKey = errors.New("empty field key")

	// ErrDuplicateKey is returned when a schema declares the same key twice.
	ErrDuplicateKey = errors.New("duplicate field key")

	// ErrPluralResult is returned when a tuple validator does not return one
	// value per field.
	ErrPluralResult = errors.New("tuple validator must return one value per field")

	// ErrDecode is returned when a converted mapping cannot be decoded into the target.
	ErrDecode = errors.New("failed to decode converted data")
)

// ConfigError is the panic value of validator factories given unusable
// configuration.
type ConfigError struct {
	Validator string
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("validator %s: invalid configuration: %v", e.Validator, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configPanic(name string, err error) {
	panic(&ConfigError{Validator: name, Err: err})
}

func errBounds(min, max any) error {
	return fmt.Errorf("min %v is greater than max %v", min, max)
}
