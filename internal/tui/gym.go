package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/organizer/internal/catalog"
	"github.com/idilsaglam/organizer/internal/model"
	"github.com/idilsaglam/organizer/internal/pages"
)

// newGymPage is the exercise list plus the weekday and workout picker.
func newGymPage(env Env) listPage[int64, model.Exercise] {
	p := newListPage(pages.GymKind(), env)
	s, keys := p.s, p.keys

	p.subtitle = func(d time.Time) string {
		day, _ := catalog.Weekday(d.Format(model.DateLayout))
		w := pages.Workout(s)
		if w == "" {
			w = "Custom"
		}
		return mutedStyle.Render(day) + "   " + accentStyle.Render("Workout: "+w) + mutedStyle.Render("  (w/W)")
	}
	p.onKey = func(msg tea.KeyMsg) (string, bool) {
		var delta int
		switch {
		case key.Matches(msg, keys.NextWorkout):
			delta = 1
		case key.Matches(msg, keys.PrevWorkout):
			delta = -1
		default:
			return "", false
		}
		cur := pages.Workout(s)
		if cur == "" {
			cur = catalog.Default
		}
		w, err := pages.SelectWorkout(s, catalog.Next(cur, delta).Name)
		if err != nil {
			return err.Error(), true
		}
		return "Workout: " + w.Name, true
	}
	return p
}
