// Package primitives converts boxed kage primitives back to raw Go values.
// The language has three primitive types, INT, DEC and BOOL, represented as
// int, float64 and bool. Generic containers hold them boxed in an interface
// or behind a pointer.
package primitives

import (
	"gopkg.kagelang.org/stdlib.go/internal/exc"
)

type Primitive interface {
	~int | ~float64 | ~bool
}

// Box stores a primitive in an interface value.
func Box[T Primitive](v T) any {
	return v
}

// Unbox returns the raw value held by boxed, which must be a T or a non-nil
// *T. Any other input breaks the caller's typing and panics with a
// CodeUnboxMismatch exception.
func Unbox[T Primitive](boxed any) T {
	switch v := boxed.(type) {
	case T:
		return v
	case *T:
		if v != nil {
			return *v
		}
	}
	var zero T
	panic(exc.Newf(exc.CodeUnboxMismatch, "cannot unbox %T as %T", boxed, zero))
}

func UnboxInt(boxed any) int {
	return Unbox[int](boxed)
}

func UnboxDec(boxed any) float64 {
	return Unbox[float64](boxed)
}

func UnboxBool(boxed any) bool {
	return Unbox[bool](boxed)
}
