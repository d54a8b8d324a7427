package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// foldedString compares case-insensitively.
type foldedString string

func (s foldedString) Equals(other foldedString) bool {
	return strings.EqualFold(string(s), string(other))
}

type point struct {
	X, Y int
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Equals[foldedString](foldedString("Tim"), "TIM"))
	assert.False(t, Equals[foldedString](foldedString("Tim"), "John"))
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	eqInt := Builtin[int]()
	assert.True(t, eqInt(3, 3))
	assert.False(t, eqInt(3, 4))

	eqPoint := Builtin[point]()
	assert.True(t, eqPoint(point{1, 2}, point{1, 2}))
	assert.False(t, eqPoint(point{1, 2}, point{2, 1}))
}

func TestMethod(t *testing.T) {
	t.Parallel()

	eq := Method[foldedString]()
	assert.True(t, eq("abc", "ABC"))
	assert.False(t, eq("abc", "abd"))
}

func TestIndexFunc(t *testing.T) {
	t.Parallel()

	t.Run("finds first match", func(t *testing.T) {
		t.Parallel()

		items := []foldedString{"a", "B", "b"}
		assert.Equal(t, 1, IndexFunc(items, "b", Method[foldedString]()))
	})

	t.Run("missing returns -1", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, IndexFunc([]int{1, 2, 3}, 7, Builtin[int]()))
	})

	t.Run("empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, IndexFunc(nil, 0, Builtin[int]()))
	})
}
