package stdlib

import (
	"gopkg.kagelang.org/stdlib.go/internal/structural"
)

//go:generate stringer -type=Kind -trimprefix=Kind

type Kind int

const (
	KindUnknown Kind = iota
	KindMaybe
	KindVariant
	KindArray
	KindTuple
)

func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Type describes one standard library type as the compiler sees it. Arity is
// the number of type parameters the type takes.
type Type struct {
	Name      string `yaml:"name"`
	ClassName string `yaml:"class"`
	Kind      Kind   `yaml:"kind"`
	Arity     int    `yaml:"arity"`
}

func (self Type) Equal(other Type) bool {
	return self == other
}

func (self Type) Hash() uint64 {
	return structural.Hash(self.ClassName)
}

func (self Type) String() string {
	return self.ClassName
}
