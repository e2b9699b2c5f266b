// Package export writes lists as CSV documents. It is one-way; nothing reads
// these files back.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/idilsaglam/organizer/internal/model"
)

const (
	ShoppingFile = "shopping-list.csv"
	TodoFile     = "todo-list.csv"
)

func Shopping(w io.Writer, items []model.ShoppingItem) error {
	rows := [][]string{{"ID", "Name", "Quantity", "Unit", "Price", "Purchased"}}
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatInt(it.ID, 10),
			it.Name,
			strconv.Itoa(it.Quantity),
			it.Unit,
			formatFloat(it.Price),
			strconv.FormatBool(it.Purchased),
		})
	}
	return writeAll(w, rows)
}

func Todo(w io.Writer, tasks []model.Task) error {
	rows := [][]string{{"ID", "Text", "Completed", "Time"}}
	for _, t := range tasks {
		rows = append(rows, []string{t.ID, t.Text, strconv.FormatBool(t.Completed), t.Time})
	}
	return writeAll(w, rows)
}

// ToFile creates dir/name and fills it with write. It returns the path.
func ToFile(dir, name string, write func(io.Writer) error) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", p, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", p, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", p, err)
	}
	return p, nil
}

func writeAll(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("csv: %w", err)
	}
	return nil
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
