package stdlib

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"sort"

	"github.com/bufbuild/protocompile/options"
	"github.com/bufbuild/protocompile/parser"
	"github.com/bufbuild/protocompile/reporter"
	"google.golang.org/protobuf/types/descriptorpb"

	"gopkg.kagelang.org/stdlib.go/internal/exc"
)

//go:embed schema
var builtinSchemas embed.FS

type schema struct {
	path string
	body []byte
}

func loadBuiltinSchemas() ([]schema, error) {
	var out []schema
	err := fs.WalkDir(builtinSchemas, "schema", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".proto" {
			return nil
		}
		body, err := builtinSchemas.ReadFile(p)
		if err != nil {
			return err
		}
		out = append(out, schema{path: p[len("schema/"):], body: body})
		return nil
	})
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{}, err)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].path < out[j].path
	})
	return out, nil
}

func compileSchema(r exc.Reporter, s schema) (*descriptorpb.FileDescriptorProto, error) {
	h := reporter.NewHandler(&protoReporter{Reporter: r})
	node, err := parser.Parse(s.path, bytes.NewReader(s.body), h)
	if err != nil {
		return nil, err
	}
	result, err := parser.ResultFromAST(node, true, h)
	if err != nil {
		return nil, err
	}
	_, err = options.InterpretUnlinkedOptions(result)
	if err != nil {
		return nil, err
	}
	return result.FileDescriptorProto(), nil
}

type protoReporter struct {
	Reporter exc.Reporter
}

func (self *protoReporter) Error(e reporter.ErrorWithPos) error {
	return self.report(exc.CodeSchemaParseError, e)
}

// Warning records e under CodeSchemaWarning, which is non-fatal unless a
// caller's Reporter says otherwise.
func (self *protoReporter) Warning(e reporter.ErrorWithPos) {
	_ = self.report(exc.CodeSchemaWarning, e)
}

func (self *protoReporter) report(code string, e reporter.ErrorWithPos) error {
	pos := e.GetPosition()
	loc := exc.Location{
		URI:    pos.Filename,
		Line:   int32(pos.Line),
		Column: int32(pos.Col),
		Offset: int64(pos.Offset),
	}
	if reported := self.Reporter.Report(exc.Wrap(loc, code, e)); reported != nil {
		return reported
	}
	return nil
}
