package pages

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/idilsaglam/organizer/internal/catalog"
	"github.com/idilsaglam/organizer/internal/export"
	"github.com/idilsaglam/organizer/internal/model"
	"github.com/idilsaglam/organizer/internal/money"
)

func TodoKind() Kind[string, model.Task] {
	return Kind[string, model.Task]{
		Route:      Todo,
		Title:      "To-Do List",
		Noun:       "task",
		StorageKey: "todo-list-tasks",
		Fields: []Field{
			{Name: "text", Placeholder: "Add a new task"},
			{Name: "time", Placeholder: "Time (optional)"},
		},
		CanAdd:     true,
		CanEdit:    true,
		FlagLabels: [2]string{"Pending", "Completed"},
		Empty:      "No tasks yet.",
		NewKey: func(gen *model.IDGen) func() string {
			return func() string { return model.TaskID(gen.Next()) }
		},
		ParseKey: func(s string) (string, error) {
			s = strings.TrimSpace(s)
			if s == "" {
				return "", errors.New("empty id")
			}
			return s, nil
		},
		FormatKey: func(k string) string { return k },
		Build: func(vals []string) (model.Task, error) {
			vals = pad(vals, 2)
			return model.Task{Text: vals[0], Time: strings.TrimSpace(vals[1])}, nil
		},
		Values: func(t model.Task) []string { return []string{t.Text, t.Time} },
		Row: func(t model.Task) string {
			if t.Time != "" {
				return t.Text + "  " + t.Time
			}
			return t.Text
		},
		Footer: func(tasks []model.Task) string {
			if len(tasks) == 0 {
				return ""
			}
			done := 0
			for _, t := range tasks {
				if t.Completed {
					done++
				}
			}
			if done == len(tasks) {
				return "Congratulations! You did it!"
			}
			return fmt.Sprintf("%d of %d tasks completed", done, len(tasks))
		},
		Export: &Export[model.Task]{File: export.TodoFile, Write: export.Todo},
	}
}

func ShoppingKind() Kind[int64, model.ShoppingItem] {
	return Kind[int64, model.ShoppingItem]{
		Route:      Shopping,
		Title:      "Shopping List",
		Noun:       "item",
		StorageKey: "shopping-list-items",
		Fields: []Field{
			{Name: "name", Placeholder: "Enter item name"},
			{Name: "quantity", Placeholder: "Qty", Default: func() string { return "1" }},
			{Name: "unit", Placeholder: "Unit"},
			{Name: "price", Placeholder: "Price", Default: func() string { return "0" }},
		},
		CanAdd:     true,
		CanEdit:    true,
		FlagLabels: [2]string{"Pending", "Purchased"},
		Empty:      "Nothing to buy.",
		NewKey:     int64Keys,
		ParseKey:   parseInt64Key,
		FormatKey:  formatInt64Key,
		Build: func(vals []string) (model.ShoppingItem, error) {
			vals = pad(vals, 4)
			qty := 1
			if s := strings.TrimSpace(vals[1]); s != "" {
				n, err := strconv.Atoi(s)
				if err != nil || n < 1 {
					return model.ShoppingItem{}, fmt.Errorf("quantity must be a whole number of at least 1, got %q", s)
				}
				qty = n
			}
			price, err := money.Parse(vals[3])
			if err != nil {
				return model.ShoppingItem{}, fmt.Errorf("price %q: %w", vals[3], err)
			}
			return model.ShoppingItem{
				Name:     vals[0],
				Quantity: qty,
				Unit:     strings.TrimSpace(model.StripDigits(vals[2])),
				Price:    price,
			}, nil
		},
		Values: func(it model.ShoppingItem) []string {
			return []string{it.Name, strconv.Itoa(it.Quantity), it.Unit, strconv.FormatFloat(it.Price, 'f', -1, 64)}
		},
		Row: func(it model.ShoppingItem) string {
			qty := strconv.Itoa(it.Quantity)
			if it.Unit != "" {
				qty += " " + it.Unit
			}
			return fmt.Sprintf("%s  %s × %s", it.Name, qty, money.Format(money.FromFloat(it.Price)))
		},
		Footer: func(items []model.ShoppingItem) string {
			done := 0
			for _, it := range items {
				if it.Purchased {
					done++
				}
			}
			total := money.Sum(items, func(it model.ShoppingItem) decimal.Decimal {
				return money.FromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
			})
			return fmt.Sprintf("Pending: %d   Completed: %d   Total Price: %s", len(items)-done, done, money.Format(total))
		},
		Export: &Export[model.ShoppingItem]{File: export.ShoppingFile, Write: export.Shopping},
	}
}

// ExpenseCategories are the suggestions offered for the category field.
var ExpenseCategories = []string{
	"Housing", "Rent", "Mortgage", "Utilities", "Electricity", "Water", "Gas", "Internet", "Phone",
	"Food", "Groceries", "Restaurants", "Transportation", "Gasoline", "Public Transit", "Car Maintenance",
	"Insurance", "Health Insurance", "Car Insurance", "Home Insurance", "Debt Payments", "Student Loans",
	"Credit Card", "Personal Loans", "Entertainment", "Movies", "Concerts", "Subscriptions", "Gym",
	"Personal Care", "Toiletries", "Haircuts", "Clothing", "Technology", "Gifts", "Donations", "Travel",
	"Flights", "Hotels", "Childcare", "Pet Care", "Savings", "Investments", "Taxes", "Education", "Books",
	"Tuition", "Petrol Exp", "Chai", "Coffee", "Miscellaneous", "Other",
}

func ExpenseKind() Kind[int64, model.Expense] {
	return Kind[int64, model.Expense]{
		Route:      Expense,
		Title:      "Expense List",
		Noun:       "expense",
		StorageKey: "expense-list-items",
		Fields: []Field{
			{Name: "name", Placeholder: "Enter expense name"},
			{Name: "amount", Placeholder: "Amount", Default: func() string { return "0" }},
			{Name: "category", Placeholder: "Category", Suggestions: ExpenseCategories},
		},
		CanAdd:     true,
		CanEdit:    true,
		FlagLabels: [2]string{"Pending", "Paid"},
		Empty:      "No expenses recorded.",
		NewKey:     int64Keys,
		ParseKey:   parseInt64Key,
		FormatKey:  formatInt64Key,
		Build: func(vals []string) (model.Expense, error) {
			vals = pad(vals, 3)
			amount, err := money.Parse(vals[1])
			if err != nil {
				return model.Expense{}, fmt.Errorf("amount %q: %w", vals[1], err)
			}
			return model.Expense{
				Name:     vals[0],
				Amount:   amount,
				Category: strings.TrimSpace(model.StripDigits(vals[2])),
			}, nil
		},
		Values: func(e model.Expense) []string {
			return []string{e.Name, strconv.FormatFloat(e.Amount, 'f', -1, 64), e.Category}
		},
		Row: func(e model.Expense) string {
			s := e.Name + "  " + money.Format(money.FromFloat(e.Amount))
			if e.Category != "" {
				s += "  [" + e.Category + "]"
			}
			return s
		},
		Footer: func(items []model.Expense) string {
			paid := 0
			for _, e := range items {
				if e.Paid {
					paid++
				}
			}
			total := money.Sum(items, func(e model.Expense) decimal.Decimal { return money.FromFloat(e.Amount) })
			return fmt.Sprintf("Pending: %d   Paid: %d   Total Amount: %s", len(items)-paid, paid, money.Format(total))
		},
	}
}

func PlanningKind(now func() time.Time) Kind[int64, model.Event] {
	if now == nil {
		now = time.Now
	}
	return Kind[int64, model.Event]{
		Route:       Planning,
		Title:       "Monthly Planning",
		Noun:        "event",
		OptionalKey: "monthly-planning-events",
		Fields: []Field{
			{Name: "name", Placeholder: "Enter event name"},
			{Name: "date", Placeholder: model.DateLayout, Default: func() string { return now().Format(model.DateLayout) }},
		},
		CanAdd:     true,
		CanEdit:    true,
		FlagLabels: [2]string{"Pending", "Completed"},
		Empty:      "No events planned.",
		NewKey:     int64Keys,
		ParseKey:   parseInt64Key,
		FormatKey:  formatInt64Key,
		Build: func(vals []string) (model.Event, error) {
			vals = pad(vals, 2)
			date := strings.TrimSpace(vals[1])
			if date == "" {
				date = now().Format(model.DateLayout)
			}
			if _, err := time.Parse(model.DateLayout, date); err != nil {
				return model.Event{}, fmt.Errorf("date %q: want %s", date, model.DateLayout)
			}
			return model.Event{Name: vals[0], Date: date}, nil
		},
		Values: func(e model.Event) []string { return []string{e.Name, e.Date} },
		Row:    func(e model.Event) string { return e.Name + "  " + e.Date },
		Footer: func(events []model.Event) string {
			done := 0
			for _, e := range events {
				if e.Completed {
					done++
				}
			}
			return fmt.Sprintf("Pending: %d   Completed: %d", len(events)-done, done)
		},
	}
}

func GymKind() Kind[int64, model.Exercise] {
	return Kind[int64, model.Exercise]{
		Route:       Gym,
		Title:       "Gym Workout List",
		Noun:        "exercise",
		OptionalKey: "gym-workout-exercises",
		Fields:      []Field{{Name: "name", Placeholder: "Exercise"}},
		FlagLabels:  [2]string{"Pending", "Done"},
		Empty:       "Rest day! No exercises planned.",
		NewKey:      int64Keys,
		ParseKey:    parseInt64Key,
		FormatKey:   formatInt64Key,
		Values:      func(e model.Exercise) []string { return []string{e.Name} },
		Row:         func(e model.Exercise) string { return e.Name },
		Footer: func(exs []model.Exercise) string {
			if len(exs) == 0 {
				return ""
			}
			done := 0
			for _, e := range exs {
				if e.Completed {
					done++
				}
			}
			return fmt.Sprintf("Done: %d of %d exercises", done, len(exs))
		},
		Initial: func() []model.Exercise {
			w, _ := catalog.Lookup(catalog.Default)
			return w.ExerciseList()
		},
	}
}
