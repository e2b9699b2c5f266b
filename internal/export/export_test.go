package export

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/organizer/internal/model"
)

func TestShopping(t *testing.T) {
	var buf bytes.Buffer
	err := Shopping(&buf, []model.ShoppingItem{
		{ID: 1, Name: "Milk", Quantity: 2, Unit: "l", Price: 1.25},
		{ID: 2, Name: "Salt, coarse", Quantity: 1, Unit: "kg", Price: 3, Purchased: true},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"ID,Name,Quantity,Unit,Price,Purchased\n"+
			"1,Milk,2,l,1.25,false\n"+
			"2,\"Salt, coarse\",1,kg,3,true\n",
		buf.String())
}

func TestShopping_EmptyHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Shopping(&buf, nil))
	assert.Equal(t, "ID,Name,Quantity,Unit,Price,Purchased\n", buf.String())
}

func TestTodo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Todo(&buf, []model.Task{{ID: "task-1", Text: "Buy milk", Completed: true, Time: "09:00"}}))
	assert.Equal(t, "ID,Text,Completed,Time\ntask-1,Buy milk,true,09:00\n", buf.String())
}

func TestToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	p, err := ToFile(dir, TodoFile, func(w io.Writer) error {
		return Todo(w, []model.Task{{ID: "task-2", Text: "Call mom"}})
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, TodoFile), p)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "ID,Text,Completed,Time\ntask-2,Call mom,false,\n", string(b))
}
