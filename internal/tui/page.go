package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/organizer/internal/dnd"
	"github.com/idilsaglam/organizer/internal/model"
	"github.com/idilsaglam/organizer/internal/pages"
	"github.com/idilsaglam/organizer/internal/store"
)

// page is one screen reachable from the menu.
type page interface {
	Update(tea.Msg) (page, tea.Cmd)
	View() string
	// Busy reports whether esc and q are consumed by the page itself,
	// i.e. a form is open or a row is being dragged.
	Busy() bool
	SetSize(w, h int) page
}

// headerLines is how many lines precede the first row in View.
const headerLines = 2

// listPage renders any page kind as a single-line-per-row list.
type listPage[K comparable, R model.Record[K, R]] struct {
	env  Env
	s    *pages.Session[K, R]
	drag *dnd.Controller[K]
	keys keyMap
	help help.Model

	cursor, offset int
	width, height  int
	date           time.Time

	form    []textinput.Model
	focus   int
	editing bool
	editKey K
	formErr string

	status    string
	statusErr bool

	subtitle func(date time.Time) string
	onKey    func(msg tea.KeyMsg) (status string, handled bool)
}

func newListPage[K comparable, R model.Record[K, R]](kind pages.Kind[K, R], env Env) listPage[K, R] {
	s := pages.NewSession(kind, env.Store, env.Gen, env.PersistAll)
	if s.Load(env.Ctx) {
		env.Log.Debug("page loaded", zap.String("page", string(kind.Route)), zap.Int("count", s.List.Len()))
	}
	return listPage[K, R]{
		env:  env,
		s:    s,
		drag: dnd.New(s.List.Keys, s.List.Reorder),
		keys: defaultKeys(),
		help: help.New(),
		date: env.Now(),
	}
}

func (p listPage[K, R]) Busy() bool {
	_, dragging := p.drag.Active()
	return p.form != nil || dragging
}

func (p listPage[K, R]) SetSize(w, h int) page {
	p.width, p.height = w, h
	p.help.Width = w
	p.scroll()
	return p
}

func (p listPage[K, R]) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return p.updateMouse(msg), nil
	case tea.KeyMsg:
		if p.form != nil {
			return p.updateForm(msg)
		}
		if _, ok := p.drag.Active(); ok {
			return p.updateDrag(msg), nil
		}
		return p.updateKeys(msg), nil
	}
	if p.form != nil {
		var cmd tea.Cmd
		p.form[p.focus], cmd = p.form[p.focus].Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p listPage[K, R]) updateKeys(msg tea.KeyMsg) page {
	if p.onKey != nil {
		if status, ok := p.onKey(msg); ok {
			p.setStatus(status, false)
			p.moveCursor(0)
			return p
		}
	}
	k := p.keys
	sel, hasSel := p.selected()
	switch {
	case key.Matches(msg, k.Up):
		p.moveCursor(-1)
	case key.Matches(msg, k.Down):
		p.moveCursor(1)
	case key.Matches(msg, k.Add):
		if p.s.Kind.CanAdd {
			return p.openForm(false)
		}
	case key.Matches(msg, k.Edit):
		if p.s.Kind.CanEdit && hasSel {
			return p.openForm(true)
		}
	case key.Matches(msg, k.Toggle):
		if hasSel {
			p.s.List.Toggle(sel.Key())
		}
	case key.Matches(msg, k.Delete):
		if hasSel && p.s.Kind.CanAdd {
			p.s.List.Remove(sel.Key())
			p.moveCursor(0)
		}
	case key.Matches(msg, k.Save):
		p.save()
	case key.Matches(msg, k.Clear):
		if !p.s.Kind.CanAdd {
			break
		}
		if err := p.s.Clear(p.env.Ctx); err != nil {
			p.fail("clear", err)
		} else {
			p.setStatus("Cleared", false)
		}
		p.moveCursor(0)
	case key.Matches(msg, k.Export):
		if p.s.Kind.Export != nil {
			if path, err := p.s.ExportTo(p.env.ExportDir); err != nil {
				p.fail("export", err)
			} else {
				p.setStatus("Exported to "+path, false)
			}
		}
	case key.Matches(msg, k.Pick):
		if hasSel {
			p.drag.Pick(sel.Key())
			p.drag.Over(sel.Key())
		}
	case key.Matches(msg, k.StepUp):
		if hasSel {
			p.step(sel.Key(), -1)
		}
	case key.Matches(msg, k.StepDown):
		if hasSel {
			p.step(sel.Key(), 1)
		}
	case key.Matches(msg, k.PrevDay):
		p.date = p.date.AddDate(0, 0, -1)
	case key.Matches(msg, k.NextDay):
		p.date = p.date.AddDate(0, 0, 1)
	case key.Matches(msg, k.Help):
		p.help.ShowAll = !p.help.ShowAll
	}
	return p
}

func (p *listPage[K, R]) step(id K, delta int) {
	if p.drag.Step(id, delta) {
		p.cursor = p.s.List.Index(id)
		p.scroll()
	}
}

func (p *listPage[K, R]) save() {
	err := p.s.Save(p.env.Ctx)
	switch {
	case errors.Is(err, store.ErrNotPersisted):
		p.setStatus("This page is kept in memory only (set persist_all to save it)", true)
	case err != nil:
		p.fail("save", err)
	default:
		p.setStatus("Saved", false)
	}
}

// updateDrag handles keys while a row is picked up: the cursor marks the
// drop target.
func (p listPage[K, R]) updateDrag(msg tea.KeyMsg) page {
	src, _ := p.drag.Active()
	k := p.keys
	switch {
	case key.Matches(msg, k.Up), key.Matches(msg, k.Down):
		d := 1
		if key.Matches(msg, k.Up) {
			d = -1
		}
		p.moveCursor(d)
		if r, ok := p.selected(); ok {
			p.drag.Over(r.Key())
		}
	case key.Matches(msg, k.Submit), key.Matches(msg, k.Pick):
		p.drag.Drop()
		p.cursor = p.s.List.Index(src)
		p.scroll()
	case key.Matches(msg, k.Cancel):
		p.drag.Cancel()
		p.cursor = p.s.List.Index(src)
		p.scroll()
	}
	return p
}

// updateMouse maps pointer rows to records. y is relative to the page
// content, so the first row sits at headerLines.
func (p listPage[K, R]) updateMouse(msg tea.MouseMsg) page {
	if p.form != nil {
		return p
	}
	tops := p.rowTops()
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		p.moveCursor(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		p.moveCursor(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		i := dnd.RowAt(msg.Y, tops, 1)
		if i < 0 {
			return p
		}
		p.cursor = p.offset + i
		if r, ok := p.selected(); ok {
			p.drag.Pick(r.Key())
			p.drag.Over(r.Key())
		}
	case msg.Action == tea.MouseActionMotion:
		if _, ok := p.drag.Active(); !ok {
			return p
		}
		if len(tops) == 0 || msg.Y < tops[0]-1 || msg.Y > tops[len(tops)-1]+1 {
			p.drag.Leave()
			return p
		}
		if i := dnd.ClosestRow(msg.Y, tops, 1); i >= 0 {
			p.cursor = p.offset + i
			if r, ok := p.selected(); ok {
				p.drag.Over(r.Key())
			}
		}
	case msg.Action == tea.MouseActionRelease:
		src, ok := p.drag.Active()
		if !ok {
			return p
		}
		p.drag.Drop()
		p.cursor = p.s.List.Index(src)
		p.scroll()
	}
	return p
}

func (p listPage[K, R]) openForm(edit bool) page {
	kind := p.s.Kind
	vals := kind.Defaults()
	if edit {
		r, _ := p.selected()
		vals = kind.Values(r)
		p.editKey = r.Key()
	} else {
		for i, f := range kind.Fields {
			if f.Name == "date" {
				vals[i] = p.date.Format(model.DateLayout)
			}
		}
	}
	p.editing = edit
	p.form = make([]textinput.Model, len(kind.Fields))
	for i, f := range kind.Fields {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("%-9s", f.Name+":")
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 200
		if len(f.Suggestions) > 0 {
			ti.ShowSuggestions = true
			ti.SetSuggestions(f.Suggestions)
			ti.KeyMap.AcceptSuggestion = p.keys.Complete
		}
		if i < len(vals) {
			ti.SetValue(vals[i])
		}
		p.form[i] = ti
	}
	p.focus = 0
	p.form[0].Focus()
	p.form[0].CursorEnd()
	p.formErr = ""
	return p
}

func (p *listPage[K, R]) closeForm() {
	p.form = nil
	p.editing = false
	p.formErr = ""
}

func (p listPage[K, R]) formValues() []string {
	out := make([]string, len(p.form))
	for i, ti := range p.form {
		out[i] = ti.Value()
	}
	return out
}

func (p listPage[K, R]) updateForm(msg tea.KeyMsg) (page, tea.Cmd) {
	k := p.keys
	switch {
	case key.Matches(msg, k.Cancel):
		p.closeForm()
		return p, nil
	case key.Matches(msg, k.NextField), key.Matches(msg, k.PrevField):
		d := 1
		if key.Matches(msg, k.PrevField) {
			d = -1
		}
		p.form[p.focus].Blur()
		p.focus = (p.focus + d + len(p.form)) % len(p.form)
		return p, p.form[p.focus].Focus()
	case key.Matches(msg, k.Submit):
		return p.submit(), nil
	}
	var cmd tea.Cmd
	p.form[p.focus], cmd = p.form[p.focus].Update(msg)
	return p, cmd
}

// submit applies the form. A blank name leaves the form open with its
// values untouched.
func (p listPage[K, R]) submit() page {
	vals := p.formValues()
	var err error
	if p.editing {
		err = p.s.Edit(p.editKey, vals)
	} else {
		_, err = p.s.Add(vals)
	}
	switch {
	case errors.Is(err, pages.ErrBlank):
		return p
	case err != nil:
		p.formErr = err.Error()
		return p
	}
	if !p.editing {
		p.cursor = p.s.List.Len() - 1
	}
	p.closeForm()
	p.scroll()
	return p
}

func (p listPage[K, R]) selected() (R, bool) { return p.s.List.At(p.cursor) }

func (p *listPage[K, R]) moveCursor(d int) {
	n := p.s.List.Len()
	p.cursor = min(max(p.cursor+d, 0), max(n-1, 0))
	p.scroll()
}

// visibleRows is how many rows fit; zero height means unknown, show all.
func (p listPage[K, R]) visibleRows() int {
	n := p.s.List.Len()
	if p.height <= 0 {
		return n
	}
	reserved := headerLines + 4
	if p.form != nil {
		reserved += len(p.form) + 3
	}
	return max(p.height-reserved, 1)
}

func (p *listPage[K, R]) scroll() {
	vis := p.visibleRows()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if vis > 0 && p.cursor >= p.offset+vis {
		p.offset = p.cursor - vis + 1
	}
	p.offset = min(max(p.offset, 0), max(p.s.List.Len()-vis, 0))
}

// rowTops returns the first line of every visible row.
func (p listPage[K, R]) rowTops() []int {
	end := min(p.offset+p.visibleRows(), p.s.List.Len())
	tops := make([]int, 0, max(end-p.offset, 0))
	for i := p.offset; i < end; i++ {
		tops = append(tops, headerLines+i-p.offset)
	}
	return tops
}

func (p *listPage[K, R]) setStatus(msg string, isErr bool) {
	p.status, p.statusErr = msg, isErr
}

func (p *listPage[K, R]) fail(op string, err error) {
	p.env.Log.Warn(op+" failed", zap.String("page", string(p.s.Kind.Route)), zap.Error(err))
	p.setStatus(op+": "+err.Error(), true)
}

func (p listPage[K, R]) View() string {
	kind := p.s.Kind
	var b strings.Builder

	state := successStyle.Render("✔ Saved")
	switch {
	case !p.s.Persisted():
		state = mutedStyle.Render("memory only")
	case p.s.List.Dirty():
		state = pendingStyle.Render("● Save")
	}
	fmt.Fprintf(&b, "%s   %s   %s\n",
		titleStyle.Render(kind.Title),
		accentStyle.Render(p.date.Format("Mon, Jan 2 2006")),
		state)
	if p.subtitle != nil {
		b.WriteString(p.subtitle(p.date))
	}
	b.WriteString("\n")

	src, dragging := p.drag.Active()
	dst, hasDst := p.drag.Target()
	end := min(p.offset+p.visibleRows(), p.s.List.Len())
	for i := p.offset; i < end; i++ {
		r, _ := p.s.List.At(i)
		text := kind.Row(r)
		if r.Flag() {
			text = doneStyle.Render(text)
		}
		prefix := "  "
		switch {
		case dragging && r.Key() == src:
			prefix = dragStyle.Render("≡ ")
			text = dragStyle.Render(kind.Row(r))
		case dragging && hasDst && r.Key() == dst:
			prefix = dragStyle.Render("→ ")
			text = dropStyle.Render(text)
		case i == p.cursor:
			prefix = selectedStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s %s\n", prefix, box(r.Flag()), text)
	}
	if p.s.List.Len() == 0 {
		b.WriteString(mutedStyle.Render(kind.Empty) + "\n")
	}

	b.WriteString("\n")
	if f := kind.Footer(p.s.List.Items()); f != "" {
		b.WriteString(accentStyle.Render(f) + "\n")
	}

	if p.form != nil {
		title := "Add " + kind.Noun
		if p.editing {
			title = "Edit " + kind.Noun
		}
		if p.formErr != "" {
			title += "  " + errorStyle.Render(p.formErr)
		}
		lines := []string{title}
		for _, ti := range p.form {
			lines = append(lines, ti.View())
		}
		b.WriteString(formStyle.Render(strings.Join(lines, "\n")) + "\n")
	}

	if p.status != "" {
		st := successStyle
		if p.statusErr {
			st = errorStyle
		}
		b.WriteString(st.Render(p.status) + "\n")
	}

	var hk help.KeyMap = p.keys
	switch {
	case p.form != nil:
		hk = formKeys{p.keys}
	case dragging:
		hk = dragKeys{p.keys}
	}
	b.WriteString(helpStyle.Render(p.help.View(hk)))
	return b.String()
}
