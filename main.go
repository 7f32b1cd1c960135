package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"

	"gopkg.kagelang.org/stdlib.go/internal/collection"
	"gopkg.kagelang.org/stdlib.go/internal/exc"
	"gopkg.kagelang.org/stdlib.go/internal/optional"
	"gopkg.kagelang.org/stdlib.go/internal/stdlib"
)

type opts struct {
	Schemas          []string
	SchemaRoot       string
	Class            string
	Arity            int
	Format           string
	DescriptorSetOut string
}

func main() {
	op := &opts{}
	flags := pflag.NewFlagSet("kagestd", pflag.ExitOnError)
	flags.StringSliceVar(&op.Schemas, "schema", nil, "Additional schema files to register, resolved relative to --schema_root.")
	flags.StringVar(&op.SchemaRoot, "schema_root", ".", "Root directory for --schema paths.")
	flags.StringVar(&op.Class, "class", "", "Print the standard library type with this class name.")
	flags.IntVar(&op.Arity, "arity", 0, "Print the tuple type used for tuples of this arity.")
	flags.StringVar(&op.Format, "format", "text", "Output format: text or yaml.")
	flags.StringVar(&op.DescriptorSetOut, "descriptor_set_out", "", "Writes a protobuf FileDescriptorSet containing the standard library schemas to FILE")
	_ = flags.Parse(os.Args[1:])

	if op.Format != "text" && op.Format != "yaml" {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", op.Format)
		os.Exit(2)
	}

	reporter := exc.NewReporter(nil)
	ropts := make([]stdlib.Option, 0, len(op.Schemas)+1)
	ropts = append(ropts, stdlib.OptionWithExcReporter(reporter))
	for _, p := range op.Schemas {
		body, err := os.ReadFile(filepath.Join(op.SchemaRoot, p))
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		ropts = append(ropts, stdlib.OptionWithSchema(filepath.ToSlash(p), body))
	}

	r, err := stdlib.New(ropts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	warn(os.Stderr, reporter)

	if op.DescriptorSetOut != "" {
		b, err := proto.Marshal(r.FileDescriptorSet())
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		if err = os.WriteFile(op.DescriptorSetOut, b, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}

	types := r.Types()
	switch {
	case op.Class != "":
		types, err = single(r.ForClassName(op.Class), "class "+op.Class)
	case flags.Changed("arity"):
		types, err = single(r.ForArity(op.Arity), fmt.Sprintf("arity %d", op.Arity))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	out, err := render(types, op.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	fmt.Print(out)
}

// warn prints anything the reporter recorded without failing the load.
func warn(w io.Writer, r exc.Reporter) {
	err := exc.Join(r)
	if err == nil {
		return
	}
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(w, "warning: %s\n", line)
	}
}

func single(t optional.Optional[stdlib.Type], what string) (collection.Array[stdlib.Type], error) {
	v, ok := t.Get()
	if !ok {
		return collection.Array[stdlib.Type]{}, fmt.Errorf("no standard library type for %s", what)
	}
	return collection.Of(v), nil
}

func render(types collection.Array[stdlib.Type], format string) (string, error) {
	if format == "yaml" {
		b, err := yaml.Marshal(types)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	var sb strings.Builder
	for _, t := range types.Slice() {
		fmt.Fprintf(&sb, "%-32s %-8s %d\n", t.ClassName, t.Kind, t.Arity)
	}
	return sb.String(), nil
}
