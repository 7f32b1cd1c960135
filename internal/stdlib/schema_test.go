package stdlib

import (
	"errors"
	"testing"

	"github.com/bufbuild/protocompile/ast"
	"github.com/stretchr/testify/require"

	"gopkg.kagelang.org/stdlib.go/internal/exc"
)

type posError struct {
	pos ast.SourcePos
	err error
}

func (e posError) Error() string              { return e.err.Error() }
func (e posError) Unwrap() error              { return e.err }
func (e posError) GetPosition() ast.SourcePos { return e.pos }
func (e posError) Start() ast.SourcePos       { return e.pos }
func (e posError) End() ast.SourcePos         { return e.pos }

func TestProtoReporter(t *testing.T) {
	t.Parallel()

	pos := ast.SourcePos{Filename: "kage/lang/geo/coords.proto", Line: 4, Col: 2}
	testCases := []struct {
		name     string
		report   func(pr *protoReporter, e posError) error
		code     string
		returned bool
	}{
		{
			name: "warning is recorded but not returned",
			report: func(pr *protoReporter, e posError) error {
				pr.Warning(e)
				return pr.report(exc.CodeSchemaWarning, e)
			},
			code:     exc.CodeSchemaWarning,
			returned: false,
		},
		{
			name: "error is recorded and returned",
			report: func(pr *protoReporter, e posError) error {
				return pr.Error(e)
			},
			code:     exc.CodeSchemaParseError,
			returned: true,
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			r := exc.NewReporter(nil)
			pr := &protoReporter{Reporter: r}
			err := testCase.report(pr, posError{pos: pos, err: errors.New("import unused")})
			if testCase.returned {
				require.Error(t, err)
				var e exc.Exception
				require.True(t, errors.As(err, &e))
				require.Equal(t, testCase.code, e.Code())
			} else {
				require.NoError(t, err)
			}
			reported := r.Reported()
			require.NotEmpty(t, reported)
			for _, e := range reported {
				require.Equal(t, testCase.code, e.Code())
				require.Equal(t, exc.Location{URI: "kage/lang/geo/coords.proto", Line: 4, Column: 2}, e.Location())
			}
		})
	}
}
