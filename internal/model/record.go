package model

import (
	"strings"
	"time"
	"unicode"
)

// DateLayout is the ISO date format used by every date field.
const DateLayout = "2006-01-02"

// Record is what a list needs from an entry: a stable key, the required
// title-like field, and a completion-style flag.
type Record[K comparable, R any] interface {
	Key() K
	Label() string
	WithKey(K) R
	Flag() bool
	WithFlag(bool) R
}

// IDGen hands out unix-millisecond ids. Two calls in the same millisecond
// still get distinct, increasing values.
type IDGen struct {
	now  func() time.Time
	last int64
}

func NewIDGen(now func() time.Time) *IDGen {
	if now == nil {
		now = time.Now
	}
	return &IDGen{now: now}
}

func (g *IDGen) Next() int64 {
	n := g.now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return n
}

// StripDigits mirrors the unit/category inputs, which drop any digit typed.
func StripDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, s)
}
