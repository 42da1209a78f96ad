package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternIdempotent(t *testing.T) {
	tbl := New[string](4)

	first := tbl.Intern("PB_DefaultBrick")
	second := tbl.Intern("PB_DefaultBrick")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, tbl.Len())
}

func TestInternFirstSeenOrder(t *testing.T) {
	var tbl Table[string]

	names := []string{"c", "a", "c", "b", "a", "d"}
	got := make([]int, 0, len(names))

	for _, n := range names {
		got = append(got, tbl.Intern(n))
	}

	assert.Equal(t, []int{0, 1, 0, 2, 1, 3}, got)
	assert.Equal(t, []string{"c", "a", "b", "d"}, tbl.Values())
}

func TestInternDistinctDense(t *testing.T) {
	tbl := New[int](0)

	for i := 0; i < 50; i++ {
		assert.Equal(t, i, tbl.Intern(i*7))
	}

	assert.Equal(t, 50, tbl.Len())
}

func TestAppendKeepsAlignment(t *testing.T) {
	tbl := New[string](3)

	assert.Equal(t, 0, tbl.Append("red"))
	assert.Equal(t, 1, tbl.Append("blue"))
	assert.Equal(t, 2, tbl.Append("red"))

	assert.Equal(t, 0, tbl.Intern("red"))
	assert.Equal(t, 3, tbl.Intern("green"))
	assert.Equal(t, []string{"red", "blue", "red", "green"}, tbl.Values())
}

func TestValuesIsCopy(t *testing.T) {
	tbl := New[string](1)
	tbl.Intern("x")

	vals := tbl.Values()
	vals[0] = "y"

	assert.Equal(t, []string{"x"}, tbl.Values())
}

func TestZeroValueTable(t *testing.T) {
	var tbl Table[string]

	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 0, tbl.Append("a"))
	assert.Equal(t, 0, tbl.Intern("a"))
}
