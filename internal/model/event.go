package model

// Event is a monthly-planning entry. Date uses DateLayout.
type Event struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

func (e Event) Key() int64             { return e.ID }
func (e Event) Label() string          { return e.Name }
func (e Event) Flag() bool             { return e.Completed }
func (e Event) WithKey(id int64) Event { e.ID = id; return e }
func (e Event) WithFlag(b bool) Event  { e.Completed = b; return e }

// Exercise belongs to a workout from the catalog.
type Exercise struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

func (e Exercise) Key() int64                { return e.ID }
func (e Exercise) Label() string             { return e.Name }
func (e Exercise) Flag() bool                { return e.Completed }
func (e Exercise) WithKey(id int64) Exercise { e.ID = id; return e }
func (e Exercise) WithFlag(b bool) Exercise  { e.Completed = b; return e }
