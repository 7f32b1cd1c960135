// © 2026 The Kage Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package structural implements the equality and hashing contract shared by
// the standard library value types. Two values are equal when their contents
// are equal, recursively, and equal values always hash the same. NaN is
// equal to NaN, as DEC values are compared by content rather than by IEEE
// comparison.
package structural

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equaler is implemented by types that define their own equality. Equal
// methods are honored at every depth, not just at the top level.
//
// A type that defines Equal should also implement Hasher. Without a Hash
// method, Hash cannot know which values the Equal method treats as the same
// and returns one constant for every value of the type.
type Equaler[T any] interface {
	Equal(T) bool
}

// Hasher is implemented by types that define their own hash. A Hasher must
// return the same hash for any two values its Equal method accepts.
type Hasher interface {
	Hash() uint64
}

var options = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
}

// Equal reports whether a and b are structurally equal.
func Equal[T any](a T, b T) bool {
	if e, ok := any(a).(Equaler[T]); ok {
		return e.Equal(b)
	}
	return cmp.Equal(a, b, options)
}

// Combine folds v into the running hash h.
func Combine(h uint64, v uint64) uint64 {
	return 31*h + v
}

// Hash returns a structural hash of v. Cyclic values are supported: a
// reference already being hashed further up contributes a constant.
func Hash[T any](v T) uint64 {
	h := &hasher{active: make(map[visit]bool)}
	return h.hashAny(any(v))
}

const (
	hashCycle = 0x9e3779b97f4a7c15
	// canonicalNaN stands in for every NaN bit pattern.
	canonicalNaN = 0x7ff8000000000001
)

var boolType = reflect.TypeOf(false)

type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type hasher struct {
	active map[visit]bool
}

func (self *hasher) hashAny(v any) uint64 {
	switch x := v.(type) {
	case nil:
		return 0
	case Hasher:
		return x.Hash()
	case string:
		return xxhash.Sum64String(x)
	case []byte:
		return xxhash.Sum64(x)
	case bool:
		if x {
			return 1231
		}
		return 1237
	}
	return self.hashValue(reflect.ValueOf(v))
}

func (self *hasher) hashValue(rv reflect.Value) uint64 {
	if hasOwnEqual(rv.Type()) {
		return xxhash.Sum64String(rv.Type().String())
	}
	switch rv.Kind() {
	case reflect.Bool:
		return self.hashAny(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashWord(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashWord(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return hashFloat(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return Combine(hashFloat(real(c)), hashFloat(imag(c)))
	case reflect.String:
		return xxhash.Sum64String(rv.String())
	case reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return self.hashElem(rv.Elem())
	case reflect.Pointer:
		if rv.IsNil() {
			return 0
		}
		return self.enter(rv, 0, func() uint64 {
			return self.hashElem(rv.Elem())
		})
	case reflect.Slice:
		if rv.Len() == 0 {
			return 1
		}
		return self.enter(rv, rv.Len(), func() uint64 {
			return self.hashSeq(rv)
		})
	case reflect.Array:
		return self.hashSeq(rv)
	case reflect.Map:
		if rv.Len() == 0 {
			return 0
		}
		return self.enter(rv, 0, func() uint64 {
			// Map iteration order is random so entries are summed.
			var h uint64
			it := rv.MapRange()
			for it.Next() {
				h += Combine(self.hashElem(it.Key()), self.hashElem(it.Value()))
			}
			return h
		})
	case reflect.Struct:
		// Unexported fields are skipped; equal values still hash equal.
		h := uint64(1)
		for x := 0; x < rv.NumField(); x = x + 1 {
			f := rv.Field(x)
			if !f.CanInterface() {
				continue
			}
			h = Combine(h, self.hashElem(f))
		}
		return h
	default:
		// Functions and channels only compare equal when nil or identical.
		return 0
	}
}

// enter hashes a reference value unless it is already being hashed further
// up the current path.
func (self *hasher) enter(rv reflect.Value, n int, f func() uint64) uint64 {
	key := visit{ptr: rv.Pointer(), typ: rv.Type(), len: n}
	if self.active[key] {
		return hashCycle
	}
	self.active[key] = true
	defer delete(self.active, key)
	return f()
}

func (self *hasher) hashSeq(rv reflect.Value) uint64 {
	h := uint64(1)
	for x := 0; x < rv.Len(); x = x + 1 {
		h = Combine(h, self.hashElem(rv.Index(x)))
	}
	return h
}

func (self *hasher) hashElem(rv reflect.Value) uint64 {
	if rv.CanInterface() {
		return self.hashAny(rv.Interface())
	}
	return self.hashValue(rv)
}

// hasOwnEqual reports whether t defines an Equal method without a Hash
// method. Such types may consider values equal that differ field by field,
// so only the type can be hashed.
func hasOwnEqual(t reflect.Type) bool {
	if _, ok := t.MethodByName("Hash"); ok {
		return false
	}
	m, ok := t.MethodByName("Equal")
	if !ok {
		return false
	}
	mt := m.Type
	// Method types from reflect.Type include the receiver.
	return mt.NumIn() == 2 && mt.NumOut() == 1 && mt.Out(0) == boolType && t.AssignableTo(mt.In(1))
}

func hashFloat(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return hashWord(canonicalNaN)
	case f == 0:
		// -0 == +0
		return hashWord(0)
	}
	return hashWord(math.Float64bits(f))
}

func hashWord(u uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	return xxhash.Sum64(buf[:])
}
