package validator

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// UUID converts strings in any format accepted by uuid.Parse to uuid.UUID.
// uuid.UUID values pass through.
func UUID(opts ...Option) Validator {
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		switch v := value.(type) {
		case uuid.UUID:
			return v, nil
		case string:
			id, err := uuid.Parse(strings.TrimSpace(v))
			if err != nil {
				return nil, s.Fail(ctx, "uuid", "Not a valid UUID.", nil).WithCause(err)
			}
			return id, nil
		default:
			return nil, s.Fail(ctx, "uuid", "Not a valid UUID.", nil)
		}
	})
}

// NonNilUUID rejects uuid.Nil. Use it after UUID.
func NonNilUUID(opts ...Option) Validator {
	s := NewSettings(opts...)
	return Func(func(ctx context.Context, value any) (any, error) {
		if id, ok := value.(uuid.UUID); ok && id != uuid.Nil {
			return id, nil
		}
		return nil, s.Fail(ctx, "uuid_not_nil", "UUID cannot be nil.", nil)
	})
}
