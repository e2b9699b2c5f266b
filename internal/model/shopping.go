package model

// ShoppingItem is one line of the shopping list. Price is per unit.
type ShoppingItem struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	Purchased bool    `json:"purchased"`
}

func (s ShoppingItem) Key() int64                    { return s.ID }
func (s ShoppingItem) Label() string                 { return s.Name }
func (s ShoppingItem) Flag() bool                    { return s.Purchased }
func (s ShoppingItem) WithKey(id int64) ShoppingItem { s.ID = id; return s }
func (s ShoppingItem) WithFlag(b bool) ShoppingItem  { s.Purchased = b; return s }
