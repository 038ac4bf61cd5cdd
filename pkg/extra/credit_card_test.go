package extra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/extra"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestCheckCreditCard(t *testing.T) {
	t.Parallel()

	t.Run("valid numbers", func(t *testing.T) {
		tests := []struct {
			number   string
			cardType extra.CardType
		}{
			{"4111111111111111", extra.Visa},
			{"4222222222222", extra.Visa},
			{"5555 5555 5555 4444", extra.MasterCard},
			{"3782-822463-10005", extra.Amex},
			{"30569309025904", extra.DinersClub},
			{"30569309025904", extra.CarteBlanche},
			{"6011111111111117", extra.Discover},
			{"3530111333300000", extra.JCB},
			{"201400000000000", extra.EnRoute},
		}
		for _, tt := range tests {
			assert.NoError(t, extra.CheckCreditCard(tt.number, tt.cardType), tt.number)
			assert.NoError(t, extra.CheckCreditCard(tt.number, ""), tt.number)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		tests := []struct {
			number   string
			cardType extra.CardType
			want     error
		}{
			{"4111-1111-1111-111x", "", extra.ErrCardCharacters},
			{"", "", extra.ErrCardCharacters},
			{"9111111111111111", "", extra.ErrCardPrefix},
			{"4111111111111111", extra.MasterCard, extra.ErrCardType},
			{"411111111111111", "", extra.ErrCardLength},
			{"4111111111111112", "", extra.ErrCardCheckDigit},
			{"4111111111111111", "Monopoly Money", extra.ErrUnknownCardType},
		}
		for _, tt := range tests {
			assert.ErrorIs(t, extra.CheckCreditCard(tt.number, tt.cardType), tt.want, tt.number)
		}
	})
}

func TestCreditCard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("number only", func(t *testing.T) {
		v := extra.CreditCard(extra.CreditCardConfig{})
		out, err := v.Validate(ctx, "4111111111111111")
		require.NoError(t, err)
		assert.Equal(t, "4111111111111111", out)

		_, err = v.Validate(ctx, "4111111111111112")
		inv, ok := validator.AsInvalid(err)
		require.True(t, ok)
		assert.Equal(t, map[string][]string{"cc_number": {"Invalid credit card number."}}, inv.UnpackErrors())
		assert.ErrorIs(t, err, extra.ErrCardCheckDigit)
	})

	t.Run("number and type", func(t *testing.T) {
		v := extra.CreditCard(extra.CreditCardConfig{RequireType: true})

		value := []any{"4111111111111111", "Visa"}
		out, err := v.Validate(ctx, value)
		require.NoError(t, err)
		assert.Equal(t, value, out)

		_, err = v.Validate(ctx, []any{"4111111111111111", "MasterCard"})
		inv, _ := validator.AsInvalid(err)
		assert.Equal(t, map[string][]string{"cc_number": {"Invalid credit card number."}}, inv.UnpackErrors())
	})

	t.Run("missing type", func(t *testing.T) {
		v := extra.CreditCard(extra.CreditCardConfig{RequireType: true})
		for _, cardType := range []any{nil, validator.Missing, ""} {
			_, err := v.Validate(ctx, []any{"4111111111111111", cardType})
			inv, ok := validator.AsInvalid(err)
			require.True(t, ok)
			assert.Equal(t, map[string][]string{"cc_type": {"No credit card type specified."}}, inv.UnpackErrors())
		}
	})

	t.Run("reports number and type together", func(t *testing.T) {
		v := extra.CreditCard(extra.CreditCardConfig{
			Types:       []extra.CardType{extra.Visa, extra.MasterCard},
			NumberField: "number",
			TypeField:   "network",
		})
		_, err := v.Validate(ctx, []any{"1234", "American Express"})
		inv, ok := validator.AsInvalid(err)
		require.True(t, ok)
		assert.Equal(t, map[string][]string{
			"network": {"Unrecognized credit card type."},
			"number":  {"Invalid credit card number."},
		}, inv.UnpackErrors())
	})

	t.Run("per-field failures resolve like any other failure", func(t *testing.T) {
		v := extra.CreditCard(extra.CreditCardConfig{Types: []extra.CardType{extra.Visa}},
			validator.WithField("payment"),
			validator.WithMessage(validator.Messages{"credit_card.type_check": "We do not take %{type}"}),
		)
		_, err := v.Validate(ctx, []any{"4111111111111111", "JCB"})
		inv, ok := validator.AsInvalid(err)
		require.True(t, ok)
		assert.Equal(t, "payment", inv.Field)

		children := inv.Get("cc_type")
		require.Len(t, children, 1)
		assert.Equal(t, "credit_card.type_check", children[0].Key)
		assert.Equal(t, map[string]any{"type": "JCB"}, children[0].Params)
		assert.Equal(t, "We do not take JCB", children[0].Message)
		assert.Empty(t, children[0].Field)
		assert.False(t, inv.Has("cc_number"))
	})

	t.Run("bad input shape", func(t *testing.T) {
		v := extra.CreditCard(extra.CreditCardConfig{})
		for _, value := range []any{42, []any{"4111111111111111"}, []any{4111, "Visa"}, []any{"4111111111111111", 1}} {
			_, err := v.Validate(ctx, value)
			assert.Equal(t, "credit_card.invalid", failureKey(t, err), "%v", value)
		}
	})

	t.Run("unknown configured type", func(t *testing.T) {
		assert.Panics(t, func() {
			extra.CreditCard(extra.CreditCardConfig{Types: []extra.CardType{"Monopoly Money"}})
		})
	})

	t.Run("inside a schema", func(t *testing.T) {
		s := validator.MustSchema(
			validator.Field("cc_number", validator.Strip()),
			validator.Field("cc_type"),
			validator.Fields([]string{"cc_number", "cc_type"}, extra.CreditCard(extra.CreditCardConfig{RequireType: true})),
		)

		out, err := s.Evaluate(ctx, map[string]any{"cc_number": " 4111111111111111 ", "cc_type": "Visa"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"cc_number": "4111111111111111", "cc_type": "Visa"}, out)

		_, err = s.Evaluate(ctx, map[string]any{"cc_number": "4111111111111112", "cc_type": ""})
		inv, ok := validator.AsInvalid(err)
		require.True(t, ok)
		assert.Equal(t, map[string][]string{
			"":          {"Problems were found in the submitted data."},
			"cc_number": {"Invalid credit card number."},
			"cc_type":   {"No credit card type specified."},
		}, inv.UnpackErrors())
	})
}
