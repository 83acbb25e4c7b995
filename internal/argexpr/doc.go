// Package argexpr binds an argtable.Table to the HCL expression language.
//
// The table is exposed as a map(string) variable named "arg", keyed by the
// flag name without its leading dash, together with a small set of functions
// that apply the table's own lookup rules:
//
//	has("VRI")            -> bool
//	str("datadir", "~")   -> string, default when absent
//	int("port", 8333)     -> number, 0 when the value is not an integer
//	bool("VRI", false)    -> bool, false only for "0"
//	as("port", "number")  -> value converted to the given type, null when absent
//
// Names passed to these functions may be written with or without the dash.
package argexpr
