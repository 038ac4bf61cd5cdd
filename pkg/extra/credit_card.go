package extra

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// CardType names a card network.
type CardType string

const (
	MasterCard   CardType = "MasterCard"
	Visa         CardType = "Visa"
	Amex         CardType = "American Express"
	DinersClub   CardType = "Diners Club"
	CarteBlanche CardType = "Carte Blanche"
	Discover     CardType = "Discover"
	EnRoute      CardType = "En Route"
	JCB          CardType = "JCB"
)

// CardTypes lists every supported card type.
var CardTypes = []CardType{MasterCard, Visa, Amex, DinersClub, CarteBlanche, Discover, EnRoute, JCB}

type cardPrefix struct {
	prefix  string
	types   []CardType
	lengths []int
}

// Longest prefixes first, so the most specific one matches.
var cardPrefixes = sortPrefixes([]cardPrefix{
	{"51", []CardType{MasterCard}, []int{16}},
	{"52", []CardType{MasterCard}, []int{16}},
	{"53", []CardType{MasterCard}, []int{16}},
	{"54", []CardType{MasterCard}, []int{16}},
	{"55", []CardType{MasterCard}, []int{16}},
	{"4", []CardType{Visa}, []int{13, 16}},
	{"34", []CardType{Amex}, []int{15}},
	{"37", []CardType{Amex}, []int{15}},
	{"300", []CardType{DinersClub, CarteBlanche}, []int{14}},
	{"301", []CardType{DinersClub, CarteBlanche}, []int{14}},
	{"302", []CardType{DinersClub, CarteBlanche}, []int{14}},
	{"303", []CardType{DinersClub, CarteBlanche}, []int{14}},
	{"304", []CardType{DinersClub, CarteBlanche}, []int{14}},
	{"305", []CardType{DinersClub, CarteBlanche}, []int{14}},
	{"36", []CardType{DinersClub, CarteBlanche}, []int{14}},
	{"38", []CardType{DinersClub, CarteBlanche}, []int{14}},
	{"6011", []CardType{Discover}, []int{16}},
	{"65", []CardType{Discover}, []int{16}},
	{"2014", []CardType{EnRoute}, []int{15}},
	{"2149", []CardType{EnRoute}, []int{15}},
	{"3", []CardType{JCB}, []int{16}},
	{"2131", []CardType{JCB}, []int{15}},
	{"1800", []CardType{JCB}, []int{15}},
})

func sortPrefixes(prefixes []cardPrefix) []cardPrefix {
	slices.SortStableFunc(prefixes, func(a, b cardPrefix) int {
		return len(b.prefix) - len(a.prefix)
	})
	return prefixes
}

// CheckCreditCard verifies a card number: digits only once spaces and
// dashes are removed, a known prefix, a length valid for that prefix and the
// Luhn check digit (En Route numbers have none). A non-empty cardType must
// also match the prefix.
func CheckCreditCard(number string, cardType CardType) error {
	if cardType != "" && !slices.Contains(CardTypes, cardType) {
		return fmt.Errorf("%w: %q", ErrUnknownCardType, cardType)
	}

	digits := strings.NewReplacer("-", "", " ", "").Replace(number)
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return ErrCardCharacters
	}

	var match *cardPrefix
	for i := range cardPrefixes {
		if strings.HasPrefix(digits, cardPrefixes[i].prefix) {
			match = &cardPrefixes[i]
			break
		}
	}
	if match == nil {
		return ErrCardPrefix
	}
	if cardType != "" && !slices.Contains(match.types, cardType) {
		return fmt.Errorf("%w: expected %s", ErrCardType, cardType)
	}
	if !slices.Contains(match.lengths, len(digits)) {
		return ErrCardLength
	}
	if !slices.Contains(match.types, EnRoute) && !luhn(digits) {
		return ErrCardCheckDigit
	}
	return nil
}

func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// CreditCardConfig configures CreditCard.
type CreditCardConfig struct {
	// Types lists the accepted card types. Defaults to CardTypes.
	Types []CardType
	// RequireType fails when no card type is given.
	RequireType bool
	// NumberField names the field number failures are recorded under.
	// Defaults to "cc_number".
	NumberField string
	// TypeField names the field type failures are recorded under.
	// Defaults to "cc_type".
	TypeField string
}

// CreditCard validates a card number given as a string, or a number and
// card type given as a two-element []any, as produced for a
// Fields("cc_number", "cc_type") schema key. An absent or empty type counts
// as no type. Failures are reported per field, so a single call may fail
// both the number and the type. The value is returned unchanged.
func CreditCard(cfg CreditCardConfig, opts ...validator.Option) validator.Validator {
	types := cfg.Types
	if len(types) == 0 {
		types = CardTypes
	}
	for _, t := range types {
		if !slices.Contains(CardTypes, t) {
			panic(&validator.ConfigError{Validator: "credit_card", Err: fmt.Errorf("%w: %q", ErrUnknownCardType, t)})
		}
	}
	numberField := cmp.Or(cfg.NumberField, "cc_number")
	typeField := cmp.Or(cfg.TypeField, "cc_type")

	s := validator.NewSettings(opts...)
	// Per-field failures share the message override but not the field
	// override, which applies to the aggregate only.
	child := validator.Settings{Message: s.Message}
	return validator.Func(func(ctx context.Context, value any) (any, error) {
		number, cardType, ok := cardInput(value)
		if !ok {
			return nil, s.Fail(ctx, "credit_card.invalid", "Invalid credit card number.", nil)
		}

		failure := s.Fail(ctx, "credit_card", "", nil)
		typed := false
		switch {
		case cfg.RequireType && cardType == "":
			failure.Add(typeField, child.Fail(ctx, "credit_card.require_type", "No credit card type specified.", nil))
		case cardType != "" && !slices.Contains(types, CardType(cardType)):
			failure.Add(typeField, child.Fail(ctx, "credit_card.type_check", "Unrecognized credit card type.", map[string]any{"type": cardType}))
		default:
			typed = true
		}

		check := CardType("")
		if typed {
			check = CardType(cardType)
		}
		if err := CheckCreditCard(number, check); err != nil {
			failure.Add(numberField, child.Fail(ctx, "credit_card.invalid", "Invalid credit card number.", nil).WithCause(err))
		}

		if failure.HasErrors() {
			return nil, failure
		}
		return value, nil
	})
}

func cardInput(value any) (number, cardType string, ok bool) {
	switch v := value.(type) {
	case string:
		return v, "", true
	case []any:
		if len(v) != 2 {
			return "", "", false
		}
		number, ok = v[0].(string)
		if !ok {
			return "", "", false
		}
		switch t := v[1].(type) {
		case string:
			cardType = t
		case CardType:
			cardType = string(t)
		default:
			if !validator.IsAbsent(t) {
				return "", "", false
			}
		}
		return number, cardType, true
	default:
		return "", "", false
	}
}
