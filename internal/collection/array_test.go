package collection

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gopkg.kagelang.org/stdlib.go/internal/iter"
	"gopkg.kagelang.org/stdlib.go/internal/optional"
)

func TestAt(t *testing.T) {
	t.Parallel()

	items := []int{10, 20, 30, 40}
	a := FromSlice(items)
	require.Equal(t, len(items), a.Size())
	for x := -3; x < len(items)+3; x = x + 1 {
		t.Run(fmt.Sprintf("At(%d)", x), func(t *testing.T) {
			got := a.At(x)
			if x >= 0 && x < len(items) {
				require.True(t, got.IsPresent())
				require.Equal(t, items[x], got.Value())
			} else {
				require.False(t, got.IsPresent())
			}
		})
	}

	b := Of(1, 2, 3)
	require.Equal(t, optional.None[int](), b.At(5))
	require.Equal(t, optional.Some(2), b.At(1))
	require.False(t, b.At(b.Size()).IsPresent())
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	var zero Array[string]
	require.Equal(t, 0, zero.Size())
	require.False(t, zero.At(0).IsPresent())
	require.Equal(t, "[]", zero.String())
	require.True(t, zero.Equal(Of[string]()))
}

func TestIndexable(t *testing.T) {
	t.Parallel()

	lookup := func(ix Indexable[int, string], i int) string {
		return ix.At(i).OrElse("?")
	}
	a := Of("a", "b")
	require.Equal(t, "b", lookup(a, 1))
	require.Equal(t, "?", lookup(a, 2))
	require.Equal(t, "?", lookup(a, -1))
}

func TestConstructionCopies(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3}
	a := FromSlice(items)
	items[0] = 99
	require.Equal(t, 1, a.At(0).Value())

	s := a.Slice()
	s[1] = 99
	require.Equal(t, 2, a.At(1).Value())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		a     Array[int]
		b     Array[int]
		equal bool
	}{
		{name: "same contents", a: Of(1, 2, 3), b: Of(1, 2, 3), equal: true},
		{name: "shorter", a: Of(1, 2, 3), b: Of(1, 2), equal: false},
		{name: "different element", a: Of(1, 2, 3), b: Of(1, 2, 4), equal: false},
		{name: "both empty", a: Of[int](), b: FromSlice[int](nil), equal: true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.equal, testCase.a.Equal(testCase.b))
			require.Equal(t, testCase.equal, testCase.b.Equal(testCase.a))
			require.True(t, testCase.a.Equal(testCase.a))
			if testCase.equal {
				require.Equal(t, testCase.a.Hash(), testCase.b.Hash())
			}
		})
	}

	a, b, c := Of("x", "y"), Of("x", "y"), Of("x", "y")
	require.True(t, a.Equal(b) && b.Equal(c) && a.Equal(c))
}

func TestEqualIsDeep(t *testing.T) {
	t.Parallel()

	nested := Of(Of(1, 2), Of(3))
	require.True(t, nested.Equal(Of(Of(1, 2), Of(3))))
	require.False(t, nested.Equal(Of(Of(1, 2), Of(4))))
	require.Equal(t, nested.Hash(), Of(Of(1, 2), Of(3)).Hash())

	slices := Of([]int{1}, []int{2})
	require.True(t, slices.Equal(Of([]int{1}, []int{2})))

	maybes := Of(optional.Some(1), optional.None[int]())
	require.True(t, maybes.Equal(Of(optional.Some(1), optional.None[int]())))
	require.False(t, maybes.Equal(Of(optional.Some(1), optional.Some(2))))
}

func TestEqualNaN(t *testing.T) {
	t.Parallel()

	a := Of(1.5, math.NaN())
	require.True(t, a.Equal(a))
	require.True(t, a.Equal(Of(1.5, math.NaN())))
	require.Equal(t, a.Hash(), Of(1.5, math.NaN()).Hash())
	require.False(t, a.Equal(Of(1.5, 2.5)))

	s := optional.Some(math.NaN())
	require.True(t, s.Equal(s))
	require.True(t, Of(s).Equal(Of(optional.Some(math.NaN()))))
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[a, b]", Of("a", "b").String())
	require.Equal(t, "[1, 2, 3]", Of(1, 2, 3).String())
	require.Equal(t, "[[1], []]", Of(Of(1), Of[int]()).String())
	require.Equal(t, "[Some(1), None()]", Of(optional.Some(1), optional.None[int]()).String())
}

func TestIterator(t *testing.T) {
	t.Parallel()

	out, err := iter.Collect(context.Background(), Of(3, 1, 2).Iterator())
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2}, out)
}

func TestYAML(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(map[string]Array[int]{"xs": Of(1, 2)})
	require.NoError(t, err)
	require.Equal(t, "xs:\n    - 1\n    - 2\n", string(out))

	var in struct {
		Xs Array[string] `yaml:"xs"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("xs: [a, b, c]\n"), &in))
	require.True(t, in.Xs.Equal(Of("a", "b", "c")))
	require.Equal(t, 3, in.Xs.Size())
}
