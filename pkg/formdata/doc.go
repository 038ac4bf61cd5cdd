// Package formdata shapes submitted form data into the map[string]any input
// consumed by validator schemas.
//
// Single-valued fields become strings and repeated fields become []string,
// so a schema sees "name" as a string and "tags" as a list. Uploaded files
// are exposed as *multipart.FileHeader (or a slice of them) under their
// field name.
//
//	data, err := formdata.FromRequest(r, formdata.DefaultMaxMemory)
//	if err != nil {
//		return err
//	}
//	out, err := signupSchema.Evaluate(r.Context(), data)
//
// Nest and Unnest convert between flat dotted keys ("user.email") and nested
// maps, which pairs with nested schemas:
//
//	nested, err := formdata.Nest(data, ".")
package formdata
