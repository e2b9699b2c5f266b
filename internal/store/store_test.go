package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/organizer/internal/model"
)

type memKV struct {
	data   map[string][]byte
	getErr error
}

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	b, ok := m.data[key]
	return b, ok, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Close() error { return nil }

func TestLoad_Missing(t *testing.T) {
	a := New(newMemKV(), nil)
	items, ok := Load[model.Task](context.Background(), a, "todo-list-tasks")
	assert.False(t, ok)
	assert.Nil(t, items)
}

func TestLoad_CorruptPayloadsAreIgnored(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"not json", "{", `{"id":1}`, `[{"id":"x"}]`, ""} {
		kv := newMemKV()
		kv.data["shopping-list-items"] = []byte(raw)
		items, ok := Load[model.ShoppingItem](ctx, New(kv, nil), "shopping-list-items")
		assert.False(t, ok, "payload %q", raw)
		assert.Empty(t, items)
	}
}

func TestLoad_ReadErrorIsIgnored(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("disk on fire")
	_, ok := Load[model.Expense](context.Background(), New(kv, nil), "expense-list-items")
	assert.False(t, ok)
}

func TestFetch_ReportsReadErrorOnly(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.getErr = errors.New("disk on fire")
	_, ok, err := Fetch[model.Expense](ctx, New(kv, nil), "expense-list-items")
	assert.False(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")

	kv = newMemKV()
	kv.data["expense-list-items"] = []byte("not json")
	_, ok, err = Fetch[model.Expense](ctx, New(kv, nil), "expense-list-items")
	assert.False(t, ok)
	assert.NoError(t, err, "an undecodable payload counts as nothing stored")
}

func TestLoad_NullIsEmptyList(t *testing.T) {
	kv := newMemKV()
	kv.data["k"] = []byte("null")
	items, ok := Load[model.Expense](context.Background(), New(kv, nil), "k")
	assert.True(t, ok)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	a := New(newMemKV(), nil)
	want := []model.ShoppingItem{
		{ID: 1718000000001, Name: "Milk", Quantity: 2, Unit: "l", Price: 1.19},
		{ID: 1718000000002, Name: "Eggs", Quantity: 12, Price: 0.3, Purchased: true},
		{ID: 1718000000003, Name: "Salt, coarse", Quantity: 1, Unit: "kg", Price: 0},
	}
	require.NoError(t, Save(ctx, a, "shopping-list-items", want))

	got, ok := Load[model.ShoppingItem](ctx, a, "shopping-list-items")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestSave_NilWritesEmptyArray(t *testing.T) {
	kv := newMemKV()
	require.NoError(t, Save[model.Task](context.Background(), New(kv, nil), "k", nil))
	assert.Equal(t, "[]", string(kv.data["k"]))
}

func TestSave_NoKey(t *testing.T) {
	a := New(newMemKV(), nil)
	err := Save(context.Background(), a, "", []model.Event{})
	assert.ErrorIs(t, err, ErrNotPersisted)
	assert.ErrorIs(t, a.ClearStored(context.Background(), ""), ErrNotPersisted)
}

func TestClearStored_WritesEmptyList(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	a := New(kv, nil)
	require.NoError(t, Save(ctx, a, "expense-list-items", []model.Expense{{ID: 1, Name: "X"}, {ID: 2, Name: "Y"}}))

	require.NoError(t, a.ClearStored(ctx, "expense-list-items"))

	got, ok := Load[model.Expense](ctx, a, "expense-list-items")
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestOpenKV_Backends(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for _, backend := range Backends() {
		kv, err := OpenKV(ctx, backend, dir, filepath.Join(dir, "organizer.db"))
		require.NoError(t, err, backend)

		a := New(kv, nil)
		want := []model.Task{{ID: "task-1", Text: "Buy milk"}}
		require.NoError(t, Save(ctx, a, "todo-list-tasks", want), backend)
		got, ok := Load[model.Task](ctx, a, "todo-list-tasks")
		assert.True(t, ok, backend)
		assert.Equal(t, want, got, backend)
		require.NoError(t, a.Close())
	}

	_, err := OpenKV(ctx, "redis", dir, "")
	assert.Error(t, err)
}
