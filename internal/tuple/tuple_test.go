package tuple

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gopkg.kagelang.org/stdlib.go/internal/optional"
)

func TestAccessors(t *testing.T) {
	t.Parallel()

	t6 := New6(1, "two", 3.0, true, []int{5}, optional.Some('6'))
	require.Equal(t, 1, t6.V1())
	require.Equal(t, "two", t6.V2())
	require.Equal(t, 3.0, t6.V3())
	require.Equal(t, true, t6.V4())
	require.Equal(t, []int{5}, t6.V5())
	require.Equal(t, optional.Some('6'), t6.V6())

	a, b, c, d := New4("a", 2, false, 4.5).Unpack()
	require.Equal(t, "a", a)
	require.Equal(t, 2, b)
	require.False(t, c)
	require.Equal(t, 4.5, d)
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "(1, x, true, 2.5)", New4(1, "x", true, 2.5).String())
	require.Equal(t, "(1, 2)", New2(1, 2).String())
	require.Equal(t, "(a, Some(1), None())", New3("a", optional.Some(1), optional.None[int]()).String())
	require.Equal(t, "(1, 2, 3, 4, 5)", New5(1, 2, 3, 4, 5).String())
	require.Equal(t, "(1, 2, 3, 4, 5, 6)", New6(1, 2, 3, 4, 5, 6).String())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	base := New5(1, "x", true, 2.5, []string{"y"})
	testCases := []struct {
		name  string
		other Tuple5[int, string, bool, float64, []string]
		equal bool
	}{
		{name: "same fields", other: New5(1, "x", true, 2.5, []string{"y"}), equal: true},
		{name: "first differs", other: New5(2, "x", true, 2.5, []string{"y"}), equal: false},
		{name: "middle differs", other: New5(1, "x", false, 2.5, []string{"y"}), equal: false},
		{name: "last differs", other: New5(1, "x", true, 2.5, []string{"z"}), equal: false},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.equal, base.Equal(testCase.other))
			require.Equal(t, testCase.equal, testCase.other.Equal(base))
			require.True(t, testCase.other.Equal(testCase.other))
			if testCase.equal {
				require.Equal(t, base.Hash(), testCase.other.Hash())
			}
		})
	}
}

type counted struct {
	v     int
	calls *int
}

func (c counted) Equal(o counted) bool {
	*c.calls = *c.calls + 1
	return c.v == o.v
}

func TestEqualStopsAtFirstMismatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		other    [4]int
		equal    bool
		compared int
	}{
		{name: "all equal", other: [4]int{1, 2, 3, 4}, equal: true, compared: 4},
		{name: "first", other: [4]int{9, 2, 3, 4}, equal: false, compared: 1},
		{name: "second", other: [4]int{1, 9, 3, 4}, equal: false, compared: 2},
		{name: "second and fourth", other: [4]int{1, 9, 3, 9}, equal: false, compared: 2},
		{name: "last", other: [4]int{1, 2, 3, 9}, equal: false, compared: 4},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			calls := 0
			c := func(v int) counted { return counted{v: v, calls: &calls} }
			a := New4(c(1), c(2), c(3), c(4))
			o := testCase.other
			b := New4(c(o[0]), c(o[1]), c(o[2]), c(o[3]))
			require.Equal(t, testCase.equal, a.Equal(b))
			require.Equal(t, testCase.compared, calls)
		})
	}
}

func TestEqualTransitive(t *testing.T) {
	t.Parallel()

	a := New6(1, 2, 3, "4", 5.0, optional.Some(6))
	b := New6(1, 2, 3, "4", 5.0, optional.Some(6))
	c := New6(1, 2, 3, "4", 5.0, optional.Some(6))
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(c))
	require.True(t, a.Equal(c))
	require.Equal(t, a.Hash(), c.Hash())
	require.False(t, a.Equal(New6(1, 2, 3, "4", 5.0, optional.None[int]())))
}

func TestComparableAsMapKey(t *testing.T) {
	t.Parallel()

	seen := map[Tuple3[int, string, bool]]int{}
	seen[New3(1, "a", true)] = seen[New3(1, "a", true)] + 1
	seen[New3(1, "a", true)] = seen[New3(1, "a", true)] + 1
	seen[New3(1, "a", false)] = seen[New3(1, "a", false)] + 1
	require.Len(t, seen, 2)
	require.Equal(t, 2, seen[New3(1, "a", true)])
}

func TestYAML(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(map[string]interface{}{"t": New4(1, "x", true, 2.5)})
	require.NoError(t, err)
	require.Equal(t, "t:\n    - 1\n    - x\n    - true\n    - 2.5\n", string(out))
}
