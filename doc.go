// Package formkit converts and validates submitted form data.
//
// A schema maps field names to validators. Evaluating a schema runs every
// validator, collects every failure instead of stopping at the first one, and
// returns either the converted values or a single error keyed by field name:
//
//	signup := validator.MustSchema(
//		validator.Field("username", validator.Strip(), validator.Regex(`[a-z][a-z0-9]+`)),
//		validator.Field("age", validator.Either(validator.Empty(), validator.Integer())),
//	)
//
//	out, err := signup.Evaluate(ctx, formdata.FromValues(r.PostForm))
//	if inv, ok := validator.AsInvalid(err); ok {
//		render(inv.UnpackErrors()) // map[field][]message
//	}
//
// Packages:
//
//   - pkg/validator: the validator contract, combinators, schemas and leaf validators
//   - pkg/messages: message tables, per-request overrides and language catalogs
//   - pkg/extra: email, IP, URL and credit card validators
//   - pkg/formdata: turning requests and url.Values into schema input
//   - pkg/config: environment-driven configuration
package formkit
