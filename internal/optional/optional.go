// Package optional implements the standard library Maybe type: a value that
// is either present or explicitly absent. Lookups that can fail return an
// Optional instead of a nil or an error, and callers unwrap it with Get,
// OrElse or an IsPresent check followed by Value.
package optional

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"gopkg.kagelang.org/stdlib.go/internal/exc"
	"gopkg.kagelang.org/stdlib.go/internal/structural"
)

// Optional is either Some(value) or None. The zero value is None. When T is
// comparable so is Optional[T], and every None of the same T is equal to
// every other.
type Optional[T any] struct {
	present bool
	value   T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

// Value returns the contained value. Calling Value on None is a programming
// error and panics with a CodeAbsentValue exception.
func (self Optional[T]) Value() T {
	if !self.present {
		panic(exc.Newf(exc.CodeAbsentValue, "Value called on %s", self))
	}
	return self.value
}

// Get returns the contained value and whether it was present.
func (self Optional[T]) Get() (T, bool) {
	return self.value, self.present
}

func (self Optional[T]) OrElse(other T) T {
	if self.present {
		return self.value
	}
	return other
}

// OrElseGet is OrElse with a lazily computed default.
func (self Optional[T]) OrElseGet(f func() T) T {
	if self.present {
		return self.value
	}
	return f()
}

func (self Optional[T]) Equal(other Optional[T]) bool {
	if self.present != other.present {
		return false
	}
	if !self.present {
		return true
	}
	return structural.Equal(self.value, other.value)
}

func (self Optional[T]) Hash() uint64 {
	if !self.present {
		return 0
	}
	return structural.Combine(1, structural.Hash(self.value))
}

func (self Optional[T]) String() string {
	if !self.present {
		return "None()"
	}
	return fmt.Sprintf("Some(%v)", self.value)
}

func (self Optional[T]) MarshalYAML() (interface{}, error) {
	if !self.present {
		return nil, nil
	}
	return self.value, nil
}

func (self *Optional[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*self = None[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*self = Some(v)
	return nil
}

// Map applies f to the contained value, if any.
func Map[T any, U any](o Optional[T], f func(T) U) Optional[U] {
	if o.present {
		return Some(f(o.value))
	}
	return None[U]()
}

// FlatMap applies f to the contained value, if any, without nesting the
// result.
func FlatMap[T any, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if o.present {
		return f(o.value)
	}
	return None[U]()
}
