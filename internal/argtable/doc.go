// Package argtable turns a raw argument vector into an immutable table of
// canonical flag names and string values, and answers typed lookups against
// it. Negated flags of the form -noNAME are resolved during parsing; a
// positive occurrence of a flag always takes precedence over its negation.
package argtable
