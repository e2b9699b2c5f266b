package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/organizer/internal/catalog"
	"github.com/idilsaglam/organizer/internal/export"
	"github.com/idilsaglam/organizer/internal/list"
	"github.com/idilsaglam/organizer/internal/model"
	"github.com/idilsaglam/organizer/internal/store"
)

var (
	ErrNotFound = errors.New("not found")
	ErrBlank    = errors.New("name is required")
)

// Session is one open page: its list plus the store it saves to. A nil
// store keeps the page in memory.
type Session[K comparable, R model.Record[K, R]] struct {
	Kind Kind[K, R]
	List *list.List[K, R]

	st  *store.Adapter
	key string
}

func NewSession[K comparable, R model.Record[K, R]](kind Kind[K, R], st *store.Adapter, gen *model.IDGen, persistAll bool) *Session[K, R] {
	key := kind.Key(persistAll)
	if st == nil {
		key = ""
	}
	return &Session[K, R]{Kind: kind, List: kind.NewList(gen), st: st, key: key}
}

// Persisted reports whether Save writes anywhere.
func (s *Session[K, R]) Persisted() bool { return s.key != "" }

// Load replaces the list with what is stored. Nothing usable stored leaves
// the initial list in place.
func (s *Session[K, R]) Load(ctx context.Context) bool {
	if !s.Persisted() {
		return false
	}
	items, ok := store.Load[R](ctx, s.st, s.key)
	if ok {
		s.List.Replace(items)
	}
	return ok
}

// Fetch is Load that reports a store read failure instead of falling back.
func (s *Session[K, R]) Fetch(ctx context.Context) (bool, error) {
	if !s.Persisted() {
		return false, nil
	}
	items, ok, err := store.Fetch[R](ctx, s.st, s.key)
	if err != nil {
		return false, fmt.Errorf("%s: %w", s.Kind.Route, err)
	}
	if ok {
		s.List.Replace(items)
	}
	return ok, nil
}

func (s *Session[K, R]) Save(ctx context.Context) error {
	if !s.Persisted() {
		return fmt.Errorf("%s: %w", s.Kind.Route, store.ErrNotPersisted)
	}
	if err := store.Save(ctx, s.st, s.key, s.List.Items()); err != nil {
		return err
	}
	s.List.MarkSaved()
	return nil
}

// Clear empties the list and, for persisted pages, the stored copy too.
func (s *Session[K, R]) Clear(ctx context.Context) error {
	s.List.Clear()
	if s.Persisted() {
		if err := s.st.ClearStored(ctx, s.key); err != nil {
			return err
		}
	}
	s.List.MarkSaved()
	return nil
}

// Add builds a record from form values and appends it.
func (s *Session[K, R]) Add(vals []string) (R, error) {
	var zero R
	if !s.Kind.CanAdd {
		return zero, fmt.Errorf("%s: adding is not supported", s.Kind.Route)
	}
	if len(vals) == 0 || strings.TrimSpace(vals[0]) == "" {
		return zero, ErrBlank
	}
	r, err := s.Kind.Build(vals)
	if err != nil {
		return zero, err
	}
	added, ok := s.List.Add(r)
	if !ok {
		return zero, ErrBlank
	}
	return added, nil
}

// Edit replaces the record k with one built from vals. The flag is kept.
func (s *Session[K, R]) Edit(k K, vals []string) error {
	if !s.Kind.CanEdit {
		return fmt.Errorf("%s: editing is not supported", s.Kind.Route)
	}
	old, ok := s.List.Get(k)
	if !ok {
		return fmt.Errorf("%s %s: %w", s.Kind.Noun, s.Kind.FormatKey(k), ErrNotFound)
	}
	if len(vals) == 0 || strings.TrimSpace(vals[0]) == "" {
		return ErrBlank
	}
	r, err := s.Kind.Build(vals)
	if err != nil {
		return err
	}
	s.List.Update(k, r.WithFlag(old.Flag()))
	return nil
}

// Resolve parses a user-typed id and checks it is in the list.
func (s *Session[K, R]) Resolve(id string) (K, error) {
	k, err := s.Kind.ParseKey(id)
	if err != nil {
		return k, err
	}
	if s.List.Index(k) < 0 {
		return k, fmt.Errorf("%s %s: %w", s.Kind.Noun, id, ErrNotFound)
	}
	return k, nil
}

// ExportTo writes the list as CSV into dir and returns the file path.
func (s *Session[K, R]) ExportTo(dir string) (string, error) {
	e := s.Kind.Export
	if e == nil {
		return "", fmt.Errorf("%s: export is not supported", s.Kind.Route)
	}
	items := s.List.Items()
	return export.ToFile(dir, e.File, func(w io.Writer) error { return e.Write(w, items) })
}

// Workout names the catalog workout the gym list currently matches.
func Workout(s *Session[int64, model.Exercise]) string {
	if w, ok := catalog.Identify(s.List.Items()); ok {
		return w.Name
	}
	return ""
}

// SelectWorkout swaps the gym list for a catalog workout with every exercise
// pending.
func SelectWorkout(s *Session[int64, model.Exercise], name string) (catalog.Workout, error) {
	w, ok := catalog.Lookup(name)
	if !ok {
		return catalog.Workout{}, fmt.Errorf("workout %q: %w", name, ErrNotFound)
	}
	s.List.Assign(w.ExerciseList())
	return w, nil
}
