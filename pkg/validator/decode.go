package validator

import (
	"context"
	"errors"

	"github.com/mitchellh/mapstructure"
)

// DecodeTag is the struct tag Decode reads field names from. Untagged
// fields match map keys case-insensitively by field name.
const DecodeTag = "form"

// Decode runs v against data and decodes the converted mapping into
// target, a pointer to a struct. Validation failures are returned
// unchanged; decoding problems wrap ErrDecode.
func Decode(ctx context.Context, v Validator, data any, target any) error {
	out, err := v.Validate(ctx, data)
	if err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          DecodeTag,
		Result:           target,
		ZeroFields:       true,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return errors.Join(ErrDecode, err)
	}
	if err := dec.Decode(out); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}

// DecodeInto is Decode into a new T.
func DecodeInto[T any](ctx context.Context, v Validator, data any) (T, error) {
	var target T
	err := Decode(ctx, v, data, &target)
	return target, err
}
