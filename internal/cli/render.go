package cli

import (
	"fmt"
	"io"

	"github.com/idilsaglam/organizer/internal/model"
	"github.com/idilsaglam/organizer/internal/pages"
	"github.com/idilsaglam/organizer/internal/ui"
)

const maxRowWidth = 80

// renderList prints the page as a framed panel: header with counts,
// progress bar, rows, footer. extra lines go right under the header.
func renderList[K comparable, R model.Record[K, R]](w io.Writer, s *pages.Session[K, R], group bool, extra ...string) {
	k := s.Kind
	t := ui.Current()
	items := s.List.Items()
	done, pending := s.List.Count()

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, k.Title),
		ui.C(t.Success, t.SymDone), done,
		ui.C(t.Pending, t.SymUnchecked), pending,
		ui.C(t.Accent, "Total"), len(items),
	)

	lines := []string{header}
	lines = append(lines, extra...)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(done, done+pending, 28)), "")

	if group {
		lines = append(lines, groupLines(k, items)...)
	} else {
		lines = append(lines, flatLines(k, items)...)
	}
	if f := k.Footer(items); f != "" {
		lines = append(lines, "", ui.C(t.Accent, f))
	}
	if !s.Persisted() {
		lines = append(lines, "", ui.Dim("kept in memory only (persist_all is off)"))
	}
	ui.Panel(w, lines)
}

func flatLines[K comparable, R model.Record[K, R]](k pages.Kind[K, R], items []R) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, k.Empty)}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		color := ui.Current().Muted
		if it.Flag() {
			color = ui.Current().Success
		}
		row := []rune(k.Row(it))
		if len(row) > maxRowWidth {
			row = append(row[:maxRowWidth-3], []rune("...")...)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.Dim(k.FormatKey(it.Key())), ui.C(color, ui.Box(it.Flag())), string(row)))
	}
	return out
}

func groupLines[K comparable, R model.Record[K, R]](k pages.Kind[K, R], items []R) []string {
	var pend, done []R
	for _, it := range items {
		if it.Flag() {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	for i, g := range [][]R{pend, done} {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, ui.C(ui.Current().Accent, k.FlagLabels[i]))
		if len(g) == 0 {
			lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
			continue
		}
		lines = append(lines, flatLines(k, g)...)
	}
	return lines
}
