// © 2026 The Kage Authors
//
// SPDX-License-Identifier: Apache-2.0

package collection

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"gopkg.kagelang.org/stdlib.go/internal/iter"
	"gopkg.kagelang.org/stdlib.go/internal/optional"
	"gopkg.kagelang.org/stdlib.go/internal/structural"
)

// Array is a fixed-size sequence. Its contents are set at construction and
// never change; the backing slice is never exposed.
type Array[T any] struct {
	items []T
	size  int
}

var _ Indexable[int, string] = Array[string]{}
var _ Sizer = Array[string]{}

// Of builds an Array holding a copy of items.
func Of[T any](items ...T) Array[T] {
	return FromSlice(items)
}

// FromSlice builds an Array holding a copy of items.
func FromSlice[T any](items []T) Array[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return Array[T]{
		items: cp,
		size:  len(cp),
	}
}

func (self Array[T]) Size() int {
	return self.size
}

// At returns the element at index, or None for any index outside
// [0, Size()).
func (self Array[T]) At(index int) optional.Optional[T] {
	if index >= 0 && index < self.size {
		return optional.Some(self.items[index])
	}
	return optional.None[T]()
}

// Slice returns a copy of the elements.
func (self Array[T]) Slice() []T {
	cp := make([]T, self.size)
	copy(cp, self.items)
	return cp
}

func (self Array[T]) Iterator() iter.Iterator[T] {
	return iter.NewSlice(self.items)
}

func (self Array[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for x, item := range self.items {
		if x > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", item)
	}
	sb.WriteString("]")
	return sb.String()
}

// Equal reports whether both arrays have the same size and pairwise equal
// elements. Elements are compared structurally, so arrays of arrays compare
// by content.
func (self Array[T]) Equal(other Array[T]) bool {
	if self.size != other.size {
		return false
	}
	for x := 0; x < self.size; x = x + 1 {
		if !structural.Equal(self.items[x], other.items[x]) {
			return false
		}
	}
	return true
}

func (self Array[T]) Hash() uint64 {
	h := uint64(1)
	for _, item := range self.items {
		h = structural.Combine(h, structural.Hash(item))
	}
	return structural.Combine(h, uint64(self.size))
}

func (self Array[T]) MarshalYAML() (interface{}, error) {
	return self.Slice(), nil
}

func (self *Array[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	*self = FromSlice(items)
	return nil
}
