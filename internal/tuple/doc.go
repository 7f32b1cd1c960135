// Package tuple holds the standard library tuples: immutable, fixed-arity
// groups of independently typed values. Arity 2 and 3 back the language's
// Pair and Triple; 4 through 6 back Tuple4, Tuple5 and Tuple6. Larger tuples
// are not supported.
//
// Every arity is generated from one template by generate.go, so equality,
// hashing and rendering behave identically across the family: fields are
// compared left to right, stopping at the first mismatch.
package tuple

//go:generate go run generate.go

const (
	MinArity = 2
	MaxArity = 6
)
