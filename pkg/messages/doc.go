// Package messages resolves symbolic validation message keys into
// human-readable text.
//
// A Table maps keys such as "min" or "schema.missing" to text. Tables are
// looked up in three places, in order: the table attached to a
// context.Context with WithTable, the process-wide default set with
// SetDefault or Override, and finally the caller's own hardcoded default.
// Context tables are request scoped, so concurrent validations carrying
// different tables never observe each other.
//
// # Tables
//
//   - Map: flat key -> text table
//   - Nested: nested map traversed with dot-separated keys
//   - Chain: layered tables, first hit wins
//   - Catalog: per-language tables loaded through an Adapter
//
// # Usage
//
//	ctx = messages.WithTable(ctx, messages.Map{
//		"integer": "Please enter a whole number",
//	})
//
//	// process-wide override with guaranteed restore
//	restore := messages.Override(messages.Map{"min": "too small"})
//	defer restore()
//
// # Catalogs
//
// Catalogs are loaded from JSON or YAML documents keyed by language:
//
//	en:
//	  integer: "not an integer"
//	  schema:
//	    missing: "missing fields: %{fields}"
//
//	catalog, err := messages.NewCatalog(ctx, messages.NewFSAdapter(fsys, "messages"),
//		messages.WithDefaultLanguage("en"),
//	)
//	ctx = catalog.Bind(messages.WithLanguage(ctx, "de-AT"))
//
// Language selection uses golang.org/x/text/language matching, so "de-AT"
// resolves to a "de" catalog when no exact match exists.
//
// # Placeholders
//
// Format substitutes named placeholders in the form %{name}. Unknown
// placeholders are left untouched.
package messages
