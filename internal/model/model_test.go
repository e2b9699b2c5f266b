package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGen_SameMillisecondStillUnique(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	g := NewIDGen(func() time.Time { return fixed })

	a, b, c := g.Next(), g.Next(), g.Next()
	assert.Equal(t, int64(1_700_000_000_000), a)
	assert.Equal(t, a+1, b)
	assert.Equal(t, b+1, c)
}

func TestIDGen_ClockGoingBackwards(t *testing.T) {
	now := time.UnixMilli(2000)
	g := NewIDGen(func() time.Time { return now })
	first := g.Next()
	now = time.UnixMilli(1000)
	assert.Greater(t, g.Next(), first)
}

func TestStripDigits(t *testing.T) {
	assert.Equal(t, "kg", StripDigits("2kg"))
	assert.Equal(t, "Petrol Exp ", StripDigits("Petrol Exp 2024"), "spacing is left to callers")
	assert.Equal(t, "", StripDigits("123"))
}

func TestTask_JSONShape(t *testing.T) {
	b, err := json.Marshal(Task{ID: TaskID(42), Text: "Buy milk"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"task-42","text":"Buy milk","completed":false}`, string(b))
}

func TestShoppingItem_JSONShape(t *testing.T) {
	b, err := json.Marshal(ShoppingItem{ID: 1, Name: "Milk", Quantity: 2, Unit: "l", Price: 1.25, Purchased: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Milk","quantity":2,"unit":"l","price":1.25,"purchased":true}`, string(b))
}

func TestRecord_WithFlagLeavesOtherFields(t *testing.T) {
	e := Expense{ID: 7, Name: "Rent", Amount: 900, Category: "Housing"}
	got := e.WithFlag(true)
	assert.True(t, got.Paid)
	got.Paid = false
	assert.Equal(t, e, got)
}
