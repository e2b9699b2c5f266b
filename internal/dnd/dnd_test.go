package dnd

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	keys  []string
	moves [][2]string
}

func (r *recorder) order() []string { return r.keys }

func (r *recorder) move(src, dst string) {
	r.moves = append(r.moves, [2]string{src, dst})
	from, to := slices.Index(r.keys, src), slices.Index(r.keys, dst)
	k := r.keys[from]
	r.keys = slices.Delete(r.keys, from, from+1)
	r.keys = slices.Insert(r.keys, to, k)
}

func newController(keys ...string) (*Controller[string], *recorder) {
	r := &recorder{keys: keys}
	return New(r.order, r.move), r
}

func TestDrop_MovesOncePerGesture(t *testing.T) {
	c, r := newController("a", "b", "c")
	c.Pick("a")
	c.Over("b")
	c.Over("c")
	assert.True(t, c.Drop())
	assert.Equal(t, [][2]string{{"a", "c"}}, r.moves)
	assert.Equal(t, []string{"b", "c", "a"}, r.keys)

	// A second drop without a new pick does nothing.
	assert.False(t, c.Drop())
	assert.Len(t, r.moves, 1)
}

func TestDrop_OnSourceIsNoop(t *testing.T) {
	c, r := newController("a", "b")
	c.Pick("a")
	c.Over("a")
	assert.False(t, c.Drop())
	assert.Empty(t, r.moves)
}

func TestDrop_WithoutTargetIsNoop(t *testing.T) {
	c, r := newController("a", "b")
	c.Pick("a")
	assert.False(t, c.Drop())

	c.Pick("a")
	c.Over("b")
	c.Leave()
	assert.False(t, c.Drop())

	c.Pick("a")
	c.Over("zzz")
	assert.False(t, c.Drop())
	assert.Empty(t, r.moves)
}

func TestPick_UnknownCancels(t *testing.T) {
	c, _ := newController("a")
	c.Pick("nope")
	_, active := c.Active()
	assert.False(t, active)
}

func TestCancel(t *testing.T) {
	c, r := newController("a", "b")
	c.Pick("a")
	c.Over("b")
	c.Cancel()
	assert.False(t, c.Drop())
	assert.Empty(t, r.moves)
}

func TestOver_IgnoredWhenIdle(t *testing.T) {
	c, _ := newController("a", "b")
	c.Over("b")
	_, ok := c.Target()
	assert.False(t, ok)
}

func TestStep(t *testing.T) {
	c, r := newController("a", "b", "c")

	assert.False(t, c.Step("a", -1))
	assert.True(t, c.Step("a", 1))
	assert.Equal(t, []string{"b", "a", "c"}, r.keys)
	assert.True(t, c.Step("a", 5))
	assert.Equal(t, []string{"b", "c", "a"}, r.keys)
	assert.False(t, c.Step("missing", 1))
	assert.Equal(t, [][2]string{{"a", "b"}, {"a", "c"}}, r.moves)
}

func TestClosestRow(t *testing.T) {
	tops := []int{3, 4, 5}
	assert.Equal(t, 0, ClosestRow(0, tops, 1))
	assert.Equal(t, 0, ClosestRow(3, tops, 1))
	assert.Equal(t, 1, ClosestRow(4, tops, 1))
	assert.Equal(t, 2, ClosestRow(5, tops, 1))
	assert.Equal(t, 2, ClosestRow(40, tops, 1))
	assert.Equal(t, -1, ClosestRow(4, nil, 1))

	// Two-line rows: line 6 is the bottom half of row 1 (tops 4,6 -> 4..5, 6..7).
	assert.Equal(t, 1, ClosestRow(6, []int{4, 6}, 2))
	assert.Equal(t, 0, ClosestRow(5, []int{4, 6}, 2))
}

func TestRowAt(t *testing.T) {
	tops := []int{3, 4, 5}
	assert.Equal(t, -1, RowAt(2, tops, 1))
	assert.Equal(t, 1, RowAt(4, tops, 1))
	assert.Equal(t, -1, RowAt(6, tops, 1))
}
