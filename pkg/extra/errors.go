package extra

import "errors"

// Reasons a card number is rejected by CheckCreditCard.
var (
	ErrCardCharacters  = errors.New("card number contains invalid characters")
	ErrCardPrefix      = errors.New("unknown card number prefix")
	ErrCardType        = errors.New("card number does not match card type")
	ErrCardLength      = errors.New("invalid card number length")
	ErrCardCheckDigit  = errors.New("wrong card number check digit")
	ErrUnknownCardType = errors.New("unknown card type")
)

// ErrNoRecords is the cause recorded when a domain has neither MX nor
// address records.
var ErrNoRecords = errors.New("no DNS records found")
