package pages

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/organizer/internal/model"
	"github.com/idilsaglam/organizer/internal/store"
	"github.com/idilsaglam/organizer/internal/store/jsonstore"
)

func fixedClock() func() time.Time {
	t := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func tempStore(t *testing.T) (*store.Adapter, string) {
	t.Helper()
	dir := t.TempDir()
	kv, err := jsonstore.New(dir)
	require.NoError(t, err)
	return store.New(kv, nil), dir
}

func TestLookup(t *testing.T) {
	info, err := Lookup(" Shopping ")
	require.NoError(t, err)
	assert.Equal(t, Shopping, info.Route)

	_, err = Lookup("calendar")
	assert.ErrorIs(t, err, ErrUnknownPage)
	assert.Len(t, Routes(), 5)
}

func TestKey_PersistAll(t *testing.T) {
	assert.Equal(t, "todo-list-tasks", TodoKind().Key(false))
	assert.Equal(t, "", PlanningKind(nil).Key(false))
	assert.Equal(t, "monthly-planning-events", PlanningKind(nil).Key(true))
	assert.Equal(t, "", GymKind().Key(false))
	assert.Equal(t, "gym-workout-exercises", GymKind().Key(true))
}

func TestShoppingBuild(t *testing.T) {
	k := ShoppingKind()
	it, err := k.Build([]string{"Milk", "", "l2", "1,5"})
	require.NoError(t, err)
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, "l", it.Unit)
	assert.Equal(t, 1.5, it.Price)

	_, err = k.Build([]string{"Milk", "0"})
	assert.Error(t, err)
	_, err = k.Build([]string{"Milk", "1", "", "-2"})
	assert.Error(t, err)
}

func TestFooters(t *testing.T) {
	assert.Equal(t, "1 of 2 tasks completed", TodoKind().Footer([]model.Task{{Text: "a", Completed: true}, {Text: "b"}}))
	assert.Equal(t, "Congratulations! You did it!", TodoKind().Footer([]model.Task{{Text: "a", Completed: true}}))

	items := []model.ShoppingItem{
		{Name: "a", Quantity: 3, Price: 0.1},
		{Name: "b", Quantity: 1, Price: 12, Purchased: true},
	}
	assert.Equal(t, "Pending: 1   Completed: 1   Total Price: $12.30", ShoppingKind().Footer(items))

	exps := []model.Expense{{Name: "rent", Amount: 800, Paid: true}, {Name: "chai", Amount: 2.5}}
	assert.Equal(t, "Pending: 1   Paid: 1   Total Amount: $802.50", ExpenseKind().Footer(exps))

	assert.Equal(t, "Pending: 0   Completed: 0", PlanningKind(nil).Footer(nil))
}

func TestPlanningBuild_DefaultsToToday(t *testing.T) {
	k := PlanningKind(fixedClock())
	ev, err := k.Build([]string{"Dentist", ""})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", ev.Date)
	assert.Equal(t, []string{"", "2024-03-15"}, k.Defaults())

	_, err = k.Build([]string{"Dentist", "15/03/2024"})
	assert.Error(t, err)
}

func TestSession_AddEditSaveLoad(t *testing.T) {
	st, _ := tempStore(t)
	ctx := context.Background()
	gen := model.NewIDGen(fixedClock())

	s := NewSession(ShoppingKind(), st, gen, false)
	_, err := s.Add([]string{"  ", "2"})
	assert.ErrorIs(t, err, ErrBlank)
	a, err := s.Add([]string{"Bread", "2", "", "3"})
	require.NoError(t, err)
	b, err := s.Add([]string{"Eggs"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, s.List.Dirty())

	s.List.Toggle(a.ID)
	require.NoError(t, s.Edit(a.ID, []string{"Rye bread", "1", "", "4"}))
	got, _ := s.List.Get(a.ID)
	assert.Equal(t, "Rye bread", got.Name)
	assert.True(t, got.Purchased, "edit keeps the flag")
	assert.ErrorIs(t, s.Edit(a.ID, []string{""}), ErrBlank)
	assert.ErrorIs(t, s.Edit(12345, []string{"x"}), ErrNotFound)

	require.NoError(t, s.Save(ctx))
	assert.False(t, s.List.Dirty())

	again := NewSession(ShoppingKind(), st, gen, false)
	require.True(t, again.Load(ctx))
	assert.Equal(t, s.List.Items(), again.List.Items())
}

func TestSession_QuitWithoutSaveDiscards(t *testing.T) {
	st, _ := tempStore(t)
	ctx := context.Background()
	gen := model.NewIDGen(nil)

	s := NewSession(TodoKind(), st, gen, false)
	_, err := s.Add([]string{"Walk"})
	require.NoError(t, err)

	again := NewSession(TodoKind(), st, gen, false)
	assert.False(t, again.Load(ctx))
	assert.Zero(t, again.List.Len())
}

func TestSession_ClearPersistsImmediately(t *testing.T) {
	st, dir := tempStore(t)
	ctx := context.Background()
	s := NewSession(TodoKind(), st, model.NewIDGen(nil), false)
	_, err := s.Add([]string{"a"})
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx))

	require.NoError(t, s.Clear(ctx))
	assert.False(t, s.List.Dirty())
	b, err := os.ReadFile(filepath.Join(dir, "todo-list-tasks.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(b))
}

func TestExpenseBuild_StripsDigitsAndTrims(t *testing.T) {
	e, err := ExpenseKind().Build([]string{"Fuel", "40", "Petrol Exp 2024"})
	require.NoError(t, err)
	assert.Equal(t, "Petrol Exp", e.Category)

	it, err := ShoppingKind().Build([]string{"Rice", "2", " kg 5 ", ""})
	require.NoError(t, err)
	assert.Equal(t, "kg", it.Unit)
}

func TestSession_ExpenseClearWritesEmptyList(t *testing.T) {
	st, dir := tempStore(t)
	ctx := context.Background()
	s := NewSession(ExpenseKind(), st, model.NewIDGen(nil), false)
	for _, name := range []string{"X", "Y"} {
		_, err := s.Add([]string{name, "1"})
		require.NoError(t, err)
	}
	require.NoError(t, s.Save(ctx))

	require.NoError(t, s.Clear(ctx))
	assert.Zero(t, s.List.Len())
	b, err := os.ReadFile(filepath.Join(dir, "expense-list-items.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(b))
}

func TestSession_NotPersisted(t *testing.T) {
	st, _ := tempStore(t)
	s := NewSession(PlanningKind(nil), st, model.NewIDGen(nil), false)
	assert.False(t, s.Persisted())
	assert.ErrorIs(t, s.Save(context.Background()), store.ErrNotPersisted)
	assert.False(t, s.Load(context.Background()))
}

func TestSession_Resolve(t *testing.T) {
	s := NewSession(TodoKind(), nil, model.NewIDGen(fixedClock()), false)
	added, err := s.Add([]string{"a"})
	require.NoError(t, err)

	k, err := s.Resolve(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.ID, k)
	_, err = s.Resolve("task-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSession_Export(t *testing.T) {
	dir := t.TempDir()
	s := NewSession(TodoKind(), nil, model.NewIDGen(fixedClock()), false)
	_, err := s.Add([]string{"a", "10:00"})
	require.NoError(t, err)

	p, err := s.ExportTo(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "todo-list.csv"), p)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "ID,Text,Completed,Time\n")

	_, err = NewSession(ExpenseKind(), nil, model.NewIDGen(nil), false).ExportTo(dir)
	assert.Error(t, err)
}

func TestGym_DefaultsAndWorkoutSelection(t *testing.T) {
	st, _ := tempStore(t)
	ctx := context.Background()
	s := NewSession(GymKind(), st, model.NewIDGen(nil), true)
	assert.Equal(t, 8, s.List.Len())
	assert.Equal(t, "Chest", Workout(s))

	_, err := s.Add([]string{"Plank"})
	assert.Error(t, err)

	first := s.List.Keys()[0]
	s.List.Toggle(first)
	_, err = SelectWorkout(s, "legs")
	require.NoError(t, err)
	assert.Equal(t, "Legs", Workout(s))
	flagged, _ := s.List.Count()
	assert.Zero(t, flagged)
	assert.True(t, s.List.Dirty())

	_, err = SelectWorkout(s, "rest day")
	require.NoError(t, err)
	assert.Zero(t, s.List.Len())
	assert.Equal(t, "Rest day! No exercises planned.", s.Kind.Empty)

	_, err = SelectWorkout(s, "yoga")
	assert.ErrorIs(t, err, ErrNotFound)

	// nothing stored yet: the default workout stays
	fresh := NewSession(GymKind(), st, model.NewIDGen(nil), true)
	assert.False(t, fresh.Load(ctx))
	assert.Equal(t, "Chest", Workout(fresh))
}
