// Package validator converts and validates mappings of named input values,
// such as submitted form fields, and reports every problem in one
// structured error.
//
// A Validator turns one value into a converted value or fails with an
// *Invalid. Small validators are combined into pipelines with Compose,
// Either, Check and Excursion, and a Schema runs one pipeline per field
// against an input map. The schema never stops at the first failure: every
// field is evaluated and all failures are aggregated into a single *Invalid
// keyed by field name.
//
// # Architecture
//
// Core building blocks:
//   - Validator: single-method interface; Func adapts plain functions
//   - Missing: sentinel passed for absent input fields
//   - Invalid: recursive error: message, symbolic key, named children
//   - Schema: field keys -> validators plus shape constraints
//
// Leaf validators are grouped by family, one file each (`string_rules.go`,
// `numeric_rules.go`, `date_rules.go`, etc.). Every factory captures its
// configuration once and returns a stateless Validator, so validators and
// schemas are safe for concurrent use.
//
// # Usage
//
//	signup := validator.MustSchema(
//		validator.Field("username",
//			validator.Strip(),
//			validator.Regex(`[a-z][a-z0-9]+`),
//			validator.MaxLength(16),
//		),
//		validator.Field("age", validator.Either(validator.Empty(), validator.Integer())),
//		validator.Field("email", validator.NotEmpty()),
//		validator.Field("email_confirm"),
//		validator.Fields([]string{"email", "email_confirm"},
//			validator.FieldsEqual(validator.WithField("email_confirm")),
//		),
//	)
//
//	out, err := signup.Evaluate(ctx, data)
//	if inv, ok := validator.AsInvalid(err); ok {
//		errs := inv.UnpackErrors() // map[string][]string
//	}
//
// # Field keys
//
// A key is a single field name or a tuple of names. Tuple validators receive
// a []any with one value per name and must return a []any of the same
// length. Singular keys run first, so tuple validators observe the already
// converted values of their fields.
//
// # Messages
//
// Failure text is resolved by key ("min", "regex", "schema.missing"...):
// a WithMessage override on the validator wins, then the ambient table from
// the messages package (context table, then process default), then the
// validator's built-in text. Messages may use %{name} placeholders filled
// from the failure's Params.
//
// # Error Handling
//
// Data problems are reported as *Invalid. Any other error returned by a
// validator (for example a cancelled context in a validator doing network
// I/O) aborts schema evaluation and is returned as is. Invalid validator
// configuration panics with *ConfigError at construction time, the same
// convention as regexp.MustCompile.
package validator
