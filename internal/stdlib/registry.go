// © 2026 The Kage Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package stdlib describes the standard library types the compiler emits
// code against. The types are declared as protobuf schemas embedded in the
// binary and compiled with protocompile when a Registry is built. Each
// message becomes one Type whose class name is its package path followed by
// its name, with nested messages joined by a dollar sign:
//
//	kage/lang/util/Maybe
//	kage/lang/util/Maybe$Some
//	kage/lang/tuple/Tuple4
package stdlib

import (
	"strconv"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"gopkg.kagelang.org/stdlib.go/internal/collection"
	"gopkg.kagelang.org/stdlib.go/internal/exc"
	"gopkg.kagelang.org/stdlib.go/internal/optional"
	"gopkg.kagelang.org/stdlib.go/internal/tuple"
)

type Option func(c *config) error

type config struct {
	Schemas  []schema
	Reporter exc.Reporter
}

// OptionWithSchema adds a schema to compile after the builtin ones. Path is
// the schema's import path, e.g. "kage/lang/text/rope.proto".
func OptionWithSchema(path string, body []byte) Option {
	return func(c *config) error {
		c.Schemas = append(c.Schemas, schema{path: path, body: body})
		return nil
	}
}

func OptionWithExcReporter(reporter exc.Reporter) Option {
	return func(c *config) error {
		c.Reporter = reporter
		return nil
	}
}

// Registry is the read-only table of standard library types. It is safe for
// concurrent use once New returns.
type Registry struct {
	types   collection.Array[Type]
	byClass map[string]int
	files   []*descriptorpb.FileDescriptorProto
}

func New(opts ...Option) (*Registry, error) {
	builtins, err := loadBuiltinSchemas()
	if err != nil {
		return nil, err
	}
	c := &config{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.Reporter == nil {
		c.Reporter = exc.NewReporter(nil)
	}

	var types []Type
	var files []*descriptorpb.FileDescriptorProto
	byClass := make(map[string]int)
	for _, s := range append(builtins, c.Schemas...) {
		fd, err := compileSchema(c.Reporter, s)
		if err != nil {
			return nil, err
		}
		files = append(files, fd)
		prefix := strings.ReplaceAll(fd.GetPackage(), ".", "/")
		for _, md := range fd.GetMessageType() {
			described, err := describe(prefix, md)
			if err != nil {
				if e := c.Reporter.Report(exc.Wrap(exc.Location{URI: s.path}, exc.CodeUnsupportedSchema, err)); e != nil {
					return nil, e
				}
				continue
			}
			for _, t := range described {
				if _, ok := byClass[t.ClassName]; ok {
					e := c.Reporter.Report(exc.New(exc.Location{URI: s.path}, exc.CodeDuplicateType, "duplicate type "+t.ClassName))
					if e != nil {
						return nil, e
					}
					continue
				}
				byClass[t.ClassName] = len(types)
				types = append(types, t)
			}
		}
	}
	return &Registry{
		types:   collection.FromSlice(types),
		byClass: byClass,
		files:   files,
	}, nil
}

// describe converts a message and its nested messages into Types.
func describe(prefix string, md *descriptorpb.DescriptorProto) ([]Type, error) {
	className := md.GetName()
	if prefix != "" {
		className = prefix + "/" + className
	}
	fields := md.GetField()
	t := Type{Name: md.GetName(), ClassName: className}
	switch {
	case len(md.GetOneofDecl()) > 0:
		t.Kind = KindMaybe
		t.Arity = 1
	case len(fields) > 0 && fields[0].GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED:
		t.Kind = KindArray
		t.Arity = 1
	case isTuple(fields):
		t.Kind = KindTuple
		t.Arity = len(fields)
	default:
		return nil, exc.Newf(exc.CodeUnsupportedSchema, "%s is not a Maybe, Array or tuple", className)
	}
	out := []Type{t}
	for _, nested := range md.GetNestedType() {
		out = append(out, Type{
			Name:      nested.GetName(),
			ClassName: className + "$" + nested.GetName(),
			Kind:      KindVariant,
			Arity:     len(nested.GetField()),
		})
	}
	return out, nil
}

// isTuple reports whether fields are exactly v1..vN for a supported N.
func isTuple(fields []*descriptorpb.FieldDescriptorProto) bool {
	if len(fields) < tuple.MinArity || len(fields) > tuple.MaxArity {
		return false
	}
	for x, f := range fields {
		if f.GetName() != "v"+strconv.Itoa(x+1) || f.GetNumber() != int32(x+1) {
			return false
		}
	}
	return true
}

// Types returns every registered type in schema order.
func (self *Registry) Types() collection.Array[Type] {
	return self.types
}

// ForClassName looks a type up by class name. Both "kage/lang/util/Maybe"
// and "kage.lang.util.Maybe" are accepted.
func (self *Registry) ForClassName(name string) optional.Optional[Type] {
	index, ok := self.byClass[strings.ReplaceAll(name, ".", "/")]
	if !ok {
		return optional.None[Type]()
	}
	return self.types.At(index)
}

// ForArity returns the tuple type used for a tuple literal with n items.
// Arities outside the supported range have no type.
func (self *Registry) ForArity(n int) optional.Optional[Type] {
	for x := 0; x < self.types.Size(); x = x + 1 {
		t := self.types.At(x).Value()
		if t.Kind == KindTuple && t.Arity == n {
			return optional.Some(t)
		}
	}
	return optional.None[Type]()
}

// FileDescriptorSet returns a copy of the compiled schemas.
func (self *Registry) FileDescriptorSet() *descriptorpb.FileDescriptorSet {
	fds := &descriptorpb.FileDescriptorSet{}
	for _, fd := range self.files {
		fds.File = append(fds.File, proto.Clone(fd).(*descriptorpb.FileDescriptorProto))
	}
	return fds
}
