// Package dnd turns drag gestures over a rendered list into single-element
// moves. Pointer drags and keyboard stepping both end in the same move
// callback.
package dnd

// Controller tracks one gesture at a time. The renderer supplies the keys in
// display order; the owner of the list supplies the move.
type Controller[K comparable] struct {
	order func() []K
	move  func(src, dst K)

	source    K
	target    K
	active    bool
	hasTarget bool
}

func New[K comparable](order func() []K, move func(src, dst K)) *Controller[K] {
	return &Controller[K]{order: order, move: move}
}

// Pick starts a gesture on id. A gesture already in progress is abandoned.
func (c *Controller[K]) Pick(id K) {
	if !c.contains(id) {
		c.Cancel()
		return
	}
	c.source = id
	c.active = true
	c.hasTarget = false
}

// Over records the record currently under the dragged one.
func (c *Controller[K]) Over(id K) {
	if !c.active {
		return
	}
	if !c.contains(id) {
		c.hasTarget = false
		return
	}
	c.target = id
	c.hasTarget = true
}

// Leave clears the target, e.g. when the pointer leaves the list.
func (c *Controller[K]) Leave() { c.hasTarget = false }

// Drop ends the gesture. It calls move once and reports true only when a
// target was found and differs from the source.
func (c *Controller[K]) Drop() bool {
	if !c.active {
		return false
	}
	src, dst, ok := c.source, c.target, c.hasTarget
	c.Cancel()
	if !ok || src == dst {
		return false
	}
	c.move(src, dst)
	return true
}

func (c *Controller[K]) Cancel() {
	var zero K
	c.source, c.target = zero, zero
	c.active, c.hasTarget = false, false
}

// Active returns the dragged key while a gesture is in progress.
func (c *Controller[K]) Active() (K, bool) { return c.source, c.active }

func (c *Controller[K]) Target() (K, bool) { return c.target, c.active && c.hasTarget }

// Step is the keyboard equivalent of a short drag: it moves id by delta
// positions, clamped to the list, through the same move callback.
func (c *Controller[K]) Step(id K, delta int) bool {
	keys := c.order()
	i := indexOf(keys, id)
	if i < 0 || delta == 0 {
		return false
	}
	j := min(max(i+delta, 0), len(keys)-1)
	if j == i {
		return false
	}
	c.move(id, keys[j])
	return true
}

func (c *Controller[K]) contains(id K) bool { return indexOf(c.order(), id) >= 0 }

func indexOf[K comparable](keys []K, id K) int {
	for i, k := range keys {
		if k == id {
			return i
		}
	}
	return -1
}
