// Package pages describes the five organizer lists: their record fields,
// storage keys, row text and footer summaries. The TUI and the CLI both
// drive a list through a Session built from one of these kinds.
package pages

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/organizer/internal/list"
	"github.com/idilsaglam/organizer/internal/model"
)

type Route string

const (
	Todo     Route = "todo"
	Shopping Route = "shopping"
	Expense  Route = "expense"
	Planning Route = "planning"
	Gym      Route = "gym"
)

var ErrUnknownPage = errors.New("unknown page")

type Info struct {
	Route Route
	Title string
	Blurb string
}

var routes = []Info{
	{Todo, "To-Do List", "Tasks for the day"},
	{Shopping, "Shopping List", "What to buy, how much, for how much"},
	{Expense, "Expense List", "Bills and spending by category"},
	{Planning, "Monthly Planning", "Events across the month"},
	{Gym, "Gym Workout List", "Today's workout from the catalog"},
}

// Routes returns every page in menu order.
func Routes() []Info { return routes }

func Lookup(name string) (Info, error) {
	for _, r := range routes {
		if string(r.Route) == strings.ToLower(strings.TrimSpace(name)) {
			return r, nil
		}
	}
	return Info{}, fmt.Errorf("%w: %q", ErrUnknownPage, name)
}

// Field is one input of the add/edit form. Name doubles as the CLI flag.
type Field struct {
	Name        string
	Placeholder string
	Default     func() string
	Suggestions []string
}

func (f Field) DefaultValue() string {
	if f.Default == nil {
		return ""
	}
	return f.Default()
}

type Export[R any] struct {
	File  string
	Write func(io.Writer, []R) error
}

// Kind describes one page. Fields[0] is always the required name-like field.
type Kind[K comparable, R model.Record[K, R]] struct {
	Route Route
	Title string
	Noun  string

	// StorageKey is empty for pages kept in memory only; OptionalKey is
	// used for those when every page is persisted.
	StorageKey  string
	OptionalKey string

	Fields     []Field
	CanAdd     bool
	CanEdit    bool
	FlagLabels [2]string
	Empty      string

	NewKey    func(*model.IDGen) func() K
	ParseKey  func(string) (K, error)
	FormatKey func(K) string
	Build     func(vals []string) (R, error)
	Values    func(R) []string
	Row       func(R) string
	Footer    func([]R) string
	Export    *Export[R]

	// Initial is the list shown before anything is loaded.
	Initial func() []R
}

// Key returns the storage key in effect, or "" when the page is not persisted.
func (k Kind[K, R]) Key(persistAll bool) string {
	if k.StorageKey != "" {
		return k.StorageKey
	}
	if persistAll {
		return k.OptionalKey
	}
	return ""
}

func (k Kind[K, R]) NewList(gen *model.IDGen) *list.List[K, R] {
	l := list.New[K, R](k.NewKey(gen))
	if k.Initial != nil {
		l.Replace(k.Initial())
	}
	return l
}

// Defaults returns the initial form values.
func (k Kind[K, R]) Defaults() []string {
	out := make([]string, len(k.Fields))
	for i, f := range k.Fields {
		out[i] = f.DefaultValue()
	}
	return out
}

// FlagLabel names the record's flag state, e.g. "Pending" or "Paid".
func (k Kind[K, R]) FlagLabel(r R) string {
	if r.Flag() {
		return k.FlagLabels[1]
	}
	return k.FlagLabels[0]
}

func int64Keys(gen *model.IDGen) func() int64 { return gen.Next }

func parseInt64Key(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return n, nil
}

func formatInt64Key(k int64) string { return strconv.FormatInt(k, 10) }

// pad grows vals to n entries so Build can index safely.
func pad(vals []string, n int) []string {
	for len(vals) < n {
		vals = append(vals, "")
	}
	return vals
}
