package model

import "strconv"

const taskIDPrefix = "task-"

// Task is a to-do entry.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Time      string `json:"time,omitempty"`
}

func TaskID(n int64) string { return taskIDPrefix + strconv.FormatInt(n, 10) }

func (t Task) Key() string            { return t.ID }
func (t Task) Label() string          { return t.Text }
func (t Task) Flag() bool             { return t.Completed }
func (t Task) WithKey(id string) Task { t.ID = id; return t }
func (t Task) WithFlag(b bool) Task   { t.Completed = b; return t }
