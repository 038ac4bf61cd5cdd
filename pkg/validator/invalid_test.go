package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestInvalid_Add(t *testing.T) {
	t.Run("appends entries for the same field", func(t *testing.T) {
		inv := validator.NewInvalid("")
		inv.AddMessage("password", "too short")
		inv.AddMessage("password", "missing digit")

		require.Len(t, inv.Get("password"), 2)
		assert.Equal(t, "too short", inv.Get("password")[0].Message)
		assert.Equal(t, "missing digit", inv.Get("password")[1].Message)
	})

	t.Run("keeps insertion order of fields", func(t *testing.T) {
		inv := validator.NewInvalid("")
		inv.AddMessage("b", "1")
		inv.AddMessage("a", "2")
		inv.AddMessage("b", "3")

		assert.Equal(t, []string{"b", "a"}, inv.Fields())
		assert.True(t, inv.HasErrors())
		assert.True(t, inv.Has("a"))
		assert.False(t, inv.Has("c"))
	})

	t.Run("ignores nil entries", func(t *testing.T) {
		inv := validator.NewInvalid("").Add("x", nil)
		assert.False(t, inv.HasErrors())
	})
}

func TestInvalid_Merge(t *testing.T) {
	t.Run("concatenates message lists", func(t *testing.T) {
		a := validator.NewInvalid("").AddMessage("email", "required")
		b := validator.NewInvalid("").AddMessage("email", "invalid").AddMessage("name", "required")

		a.Merge(b)

		assert.Equal(t, map[string][]string{
			"email": {"required", "invalid"},
			"name":  {"required"},
		}, a.UnpackErrors())
	})

	t.Run("keeps the other top-level message under no name", func(t *testing.T) {
		a := validator.NewInvalid("outer")
		a.Merge(validator.NewInvalid("inner"))

		assert.Equal(t, map[string][]string{"": {"outer", "inner"}}, a.UnpackErrors())
	})

	t.Run("merging itself is a no-op", func(t *testing.T) {
		a := validator.NewInvalid("").AddMessage("x", "1")
		a.Merge(a)
		assert.Equal(t, map[string][]string{"x": {"1"}}, a.UnpackErrors())
	})
}

func TestInvalid_Unpack(t *testing.T) {
	t.Run("returns the raw message without nested errors", func(t *testing.T) {
		msg, fields := validator.NewInvalid("not an integer").Unpack(false)
		assert.Equal(t, "not an integer", msg)
		assert.Nil(t, fields)
	})

	t.Run("forces a map with the message under no name", func(t *testing.T) {
		assert.Equal(t, map[string][]string{"": {"not an integer"}},
			validator.NewInvalid("not an integer").UnpackErrors())
	})

	t.Run("flattens nested failures into one map", func(t *testing.T) {
		nested := validator.NewInvalid("address problems").
			AddMessage("city", "required").
			AddMessage("zip", "too long")
		top := validator.NewInvalid("schema failed").
			AddMessage("name", "required").
			Add("address", nested)

		assert.Equal(t, map[string][]string{
			"":     {"schema failed", "address problems"},
			"name": {"required"},
			"city": {"required"},
			"zip":  {"too long"},
		}, top.UnpackErrors())
	})

	t.Run("never overwrites messages of the same field", func(t *testing.T) {
		nested := validator.NewInvalid("").AddMessage("name", "too short")
		top := validator.NewInvalid("").AddMessage("name", "required").Add("other", nested)

		assert.Equal(t, []string{"required", "too short"}, top.UnpackErrors()["name"])
	})

	t.Run("is stable under trivial wrapping", func(t *testing.T) {
		cases := []*validator.Invalid{
			validator.NewInvalid("plain"),
			validator.NewInvalid(""),
			validator.NewInvalid("top").AddMessage("a", "1").AddMessage("b", "2"),
			validator.NewInvalid("").Add("a", validator.NewInvalid("").AddMessage("c", "3")),
		}
		for i, inv := range cases {
			t.Run(fmt.Sprint(i), func(t *testing.T) {
				wrapped := validator.NewInvalid("").Add(validator.NoName, inv)
				assert.Equal(t, inv.UnpackErrors(), wrapped.UnpackErrors())
			})
		}
	})
}

func TestInvalid_Error(t *testing.T) {
	t.Run("returns message for plain failure", func(t *testing.T) {
		assert.Equal(t, "value below minimum", validator.NewInvalid("value below minimum").Error())
	})

	t.Run("has a fallback text", func(t *testing.T) {
		assert.Equal(t, "invalid value", validator.NewInvalid("").Error())
	})

	t.Run("lists field messages in name order", func(t *testing.T) {
		inv := validator.NewInvalid("Problems were found").
			AddMessage("username", "too long").
			AddMessage("age", "not an integer")

		assert.Equal(t, "Problems were found: age: not an integer; username: too long", inv.Error())
	})
}

func TestInvalid_Unwrap(t *testing.T) {
	cause := errors.New("parse failure")
	leaf := validator.NewInvalid("bad").WithCause(cause)
	top := validator.NewInvalid("").Add("when", leaf)

	assert.ErrorIs(t, top, cause)
	assert.Equal(t, cause, leaf.Cause())

	inv, ok := validator.AsInvalid(fmt.Errorf("wrapped: %w", top))
	require.True(t, ok)
	assert.Same(t, top, inv)

	assert.True(t, validator.IsInvalid(top))
	assert.False(t, validator.IsInvalid(cause))
	assert.False(t, validator.IsInvalid(nil))
}
