package collection

import (
	"gopkg.kagelang.org/stdlib.go/internal/optional"
)

// Indexable is implemented by containers that support bounds-safe
// positional lookup. At must accept every possible index and signal a
// missing element only by returning an absent Optional.
type Indexable[I any, V any] interface {
	At(index I) optional.Optional[V]
}

type Sizer interface {
	Size() int
}
