// Package extra provides validators commonly needed by web forms: email
// addresses, IP addresses, URLs and credit card numbers.
//
// They follow the validator package contract, so they compose with every
// combinator and run inside schemas:
//
//	schema := validator.MustSchema(
//		validator.Field("email", validator.Strip(), extra.Email()),
//		validator.Field("homepage", validator.Either(validator.Empty(), extra.URL(extra.URLConfig{}))),
//		validator.Fields([]string{"cc_number", "cc_type"}, extra.CreditCard(extra.CreditCardConfig{
//			RequireType: true,
//		})),
//	)
//
// Network-backed checks (EmailWithDNS, URLConfig.CheckExists) use the
// context passed to Validate, so cancelling a request stops them. A
// cancelled context is returned as is rather than reported as a validation
// failure.
//
// Message keys: email.format, email.username, email.domain,
// email.socket_error, email.domain_error, ip, url.format, url.schema,
// url.http_error, url.not_exists, credit_card.require_type,
// credit_card.type_check, credit_card.invalid.
package extra
