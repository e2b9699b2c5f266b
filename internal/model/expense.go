package model

type Expense struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Paid     bool    `json:"paid"`
}

func (e Expense) Key() int64               { return e.ID }
func (e Expense) Label() string            { return e.Name }
func (e Expense) Flag() bool               { return e.Paid }
func (e Expense) WithKey(id int64) Expense { e.ID = id; return e }
func (e Expense) WithFlag(b bool) Expense  { e.Paid = b; return e }
