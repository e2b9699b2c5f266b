// Package tui is the Bubble Tea front end: a menu of pages, each a list
// with an add/edit form, keyboard and mouse reordering and explicit save.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/organizer/internal/model"
	"github.com/idilsaglam/organizer/internal/pages"
	"github.com/idilsaglam/organizer/internal/store"
)

// Env is what pages need from the outside world. A nil Store keeps every
// page in memory.
type Env struct {
	Ctx        context.Context
	Store      *store.Adapter
	Gen        *model.IDGen
	Now        func() time.Time
	PersistAll bool
	ExportDir  string
	Log        *zap.Logger
}

func (e Env) withDefaults() Env {
	if e.Ctx == nil {
		e.Ctx = context.Background()
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.Gen == nil {
		e.Gen = model.NewIDGen(e.Now)
	}
	if e.Log == nil {
		e.Log = zap.NewNop()
	}
	if e.ExportDir == "" {
		e.ExportDir = "."
	}
	return e
}

type menuItem struct{ info pages.Info }

func (i menuItem) Title() string       { return string(i.info.Route) + "  " + i.info.Title }
func (i menuItem) Description() string { return i.info.Blurb }
func (i menuItem) FilterValue() string { return string(i.info.Route) }

// App is the root model. It shows the menu until a page is opened; leaving
// a page drops it, so unsaved changes are discarded.
type App struct {
	env   Env
	keys  keyMap
	menu  list.Model
	page  page
	route pages.Route

	width, height int
}

// New builds the app. An empty start route opens the menu.
func New(env Env, start pages.Route) App {
	env = env.withDefaults()
	routes := pages.Routes()
	items := make([]list.Item, len(routes))
	for i, r := range routes {
		items[i] = menuItem{r}
	}
	m := list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.Title = "Organizer"
	m.Styles.Title = titleStyle
	m.SetShowStatusBar(false)
	m.SetFilteringEnabled(false)
	m.KeyMap.Quit.SetEnabled(false)
	open := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/1-5", "open"))
	m.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{open} }

	a := App{env: env, keys: defaultKeys(), menu: m}
	if start != "" {
		a.open(start)
	}
	return a
}

// Route is the open page, or "" on the menu.
func (a App) Route() pages.Route { return a.route }

func (a *App) open(r pages.Route) {
	var p page
	switch r {
	case pages.Todo:
		p = newListPage(pages.TodoKind(), a.env)
	case pages.Shopping:
		p = newListPage(pages.ShoppingKind(), a.env)
	case pages.Expense:
		p = newListPage(pages.ExpenseKind(), a.env)
	case pages.Planning:
		p = newListPage(pages.PlanningKind(a.env.Now), a.env)
	case pages.Gym:
		p = newGymPage(a.env)
	default:
		return
	}
	a.env.Log.Info("open page", zap.String("page", string(r)))
	a.page, a.route = p.SetSize(a.innerSize()), r
}

func (a App) innerSize() (int, int) {
	if a.width == 0 {
		return 0, 0
	}
	return max(a.width-4, 1), max(a.height-2, 1)
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		w, h := a.innerSize()
		a.menu.SetSize(w, h)
		if a.page != nil {
			a.page = a.page.SetSize(w, h)
		}
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.page != nil && !a.page.Busy() {
			switch {
			case key.Matches(msg, a.keys.Back):
				a.env.Log.Info("leave page", zap.String("page", string(a.route)))
				a.page, a.route = nil, ""
				return a, nil
			case key.Matches(msg, a.keys.Quit):
				return a, tea.Quit
			}
		}
		if a.page == nil {
			return a.updateMenu(msg)
		}
	case tea.MouseMsg:
		if a.page == nil {
			return a, nil
		}
		msg.Y -= frameTop
		var cmd tea.Cmd
		a.page, cmd = a.page.Update(msg)
		return a, cmd
	}
	if a.page == nil {
		var cmd tea.Cmd
		a.menu, cmd = a.menu.Update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

func (a App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	switch {
	case key.Matches(msg, a.keys.Quit), s == "esc":
		return a, tea.Quit
	case s == "enter":
		if it, ok := a.menu.SelectedItem().(menuItem); ok {
			a.open(it.info.Route)
		}
		return a, nil
	case len(s) == 1 && s[0] >= '1' && s[0] <= '9':
		routes := pages.Routes()
		if i := int(s[0] - '1'); i < len(routes) {
			a.open(routes[i].Route)
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a App) View() string {
	if a.page != nil {
		return frame(a.page.View())
	}
	return frame(a.menu.View())
}

// Run starts the program on start ("" for the menu) and blocks until quit.
// Nothing is saved on the way out.
func Run(env Env, start pages.Route) error {
	p := tea.NewProgram(New(env, start), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
