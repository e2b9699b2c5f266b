// Package list holds one page's records in display order.
//
// Every mutation referencing an unknown key is a no-op: keys only ever come
// from the list's own rendering, so a miss means stale input, not an error.
package list

import (
	"slices"
	"strings"

	"github.com/idilsaglam/organizer/internal/model"
)

type List[K comparable, R model.Record[K, R]] struct {
	items   []R
	nextKey func() K
	dirty   bool
}

// New returns an empty list. nextKey must keep returning fresh keys; Add
// skips any key already present.
func New[K comparable, R model.Record[K, R]](nextKey func() K) *List[K, R] {
	return &List[K, R]{items: []R{}, nextKey: nextKey}
}

func (l *List[K, R]) Len() int { return len(l.items) }

// Items returns a copy in display order.
func (l *List[K, R]) Items() []R { return slices.Clone(l.items) }

// Keys returns the keys in display order.
func (l *List[K, R]) Keys() []K {
	out := make([]K, len(l.items))
	for i, it := range l.items {
		out[i] = it.Key()
	}
	return out
}

func (l *List[K, R]) Index(k K) int {
	return slices.IndexFunc(l.items, func(r R) bool { return r.Key() == k })
}

func (l *List[K, R]) Get(k K) (R, bool) {
	if i := l.Index(k); i >= 0 {
		return l.items[i], true
	}
	var zero R
	return zero, false
}

// At returns the record at position i.
func (l *List[K, R]) At(i int) (R, bool) {
	if i < 0 || i >= len(l.items) {
		var zero R
		return zero, false
	}
	return l.items[i], true
}

// Add appends r under a fresh key with its flag cleared. It rejects r when
// the required field is blank.
func (l *List[K, R]) Add(r R) (R, bool) {
	if strings.TrimSpace(r.Label()) == "" {
		var zero R
		return zero, false
	}
	k := l.nextKey()
	for l.Index(k) >= 0 {
		k = l.nextKey()
	}
	r = r.WithKey(k).WithFlag(false)
	l.items = append(l.items, r)
	l.dirty = true
	return r, true
}

func (l *List[K, R]) Remove(k K) {
	i := l.Index(k)
	if i < 0 {
		return
	}
	l.items = slices.Delete(l.items, i, i+1)
	l.dirty = true
}

// Update replaces the record stored under k, keeping its position and key.
func (l *List[K, R]) Update(k K, r R) {
	i := l.Index(k)
	if i < 0 {
		return
	}
	l.items[i] = r.WithKey(k)
	l.dirty = true
}

func (l *List[K, R]) Toggle(k K) {
	i := l.Index(k)
	if i < 0 {
		return
	}
	l.items[i] = l.items[i].WithFlag(!l.items[i].Flag())
	l.dirty = true
}

// Reorder moves the record under src to the position held by dst, shifting
// the records in between by one.
func (l *List[K, R]) Reorder(src, dst K) {
	if src == dst {
		return
	}
	l.Move(l.Index(src), l.Index(dst))
}

// Move is Reorder by position. Out-of-range or equal positions are a no-op.
// Move(i, j) followed by Move(j, i) restores the original order.
func (l *List[K, R]) Move(from, to int) {
	n := len(l.items)
	if from == to || from < 0 || to < 0 || from >= n || to >= n {
		return
	}
	moved := l.items[from]
	l.items = slices.Delete(l.items, from, from+1)
	l.items = slices.Insert(l.items, to, moved)
	l.dirty = true
}

// MoveBy steps the record under k by delta positions, clamped to the list.
func (l *List[K, R]) MoveBy(k K, delta int) {
	i := l.Index(k)
	if i < 0 {
		return
	}
	j := min(max(i+delta, 0), len(l.items)-1)
	l.Reorder(k, l.items[j].Key())
}

func (l *List[K, R]) Clear() {
	l.items = []R{}
	l.dirty = true
}

// Replace swaps in a freshly loaded slice. The list is clean afterwards.
func (l *List[K, R]) Replace(items []R) {
	l.items = slices.Clone(items)
	if l.items == nil {
		l.items = []R{}
	}
	l.dirty = false
}

// Assign swaps in a new slice as a user edit; the list becomes dirty.
func (l *List[K, R]) Assign(items []R) {
	l.Replace(items)
	l.dirty = true
}

// Dirty reports whether the list changed since the last Replace or MarkSaved.
func (l *List[K, R]) Dirty() bool { return l.dirty }

func (l *List[K, R]) MarkSaved() { l.dirty = false }

// Count returns how many records have their flag set.
func (l *List[K, R]) Count() (flagged, rest int) {
	for _, it := range l.items {
		if it.Flag() {
			flagged++
		} else {
			rest++
		}
	}
	return
}
