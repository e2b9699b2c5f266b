package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/organizer/internal/catalog"
	"github.com/idilsaglam/organizer/internal/model"
	"github.com/idilsaglam/organizer/internal/pages"
	"github.com/idilsaglam/organizer/internal/ui"
)

func newGymCmd(app *App) *cobra.Command {
	p := pageCmd[int64, model.Exercise]{
		app:  app,
		kind: func(*App) pages.Kind[int64, model.Exercise] { return pages.GymKind() },
	}
	p.header = func(s *pages.Session[int64, model.Exercise]) []string {
		return []string{gymSubtitle(app, s)}
	}
	cmd := p.command()
	cmd.AddCommand(newWorkoutCmd(p))
	return cmd
}

func gymSubtitle(app *App, s *pages.Session[int64, model.Exercise]) string {
	day, _ := catalog.Weekday(app.now().Format(model.DateLayout))
	w := pages.Workout(s)
	if w == "" {
		w = "Custom"
	}
	return ui.Dim(day) + "  " + ui.C(ui.Current().Accent, "Workout: "+w)
}

func newWorkoutCmd(p pageCmd[int64, model.Exercise]) *cobra.Command {
	return &cobra.Command{
		Use:       "workout [name]",
		Short:     "Show the catalog, or switch to a workout with every exercise pending",
		Args:      usageArgs(cobra.ArbitraryArgs),
		ValidArgs: catalog.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return p.session(cmd.Context(), func(s *pages.Session[int64, model.Exercise]) error {
					cur := pages.Workout(s)
					for _, n := range catalog.Names() {
						mark := "  "
						if n == cur {
							mark = ui.C(ui.Current().Accent, "▸ ")
						}
						w, _ := catalog.Lookup(n)
						fmt.Fprintf(cmd.OutOrStdout(), "%s%s %s\n", mark, n, ui.Dim(fmt.Sprintf("(%d)", len(w.Exercises))))
					}
					return nil
				})
			}
			name := strings.Join(args, " ")
			if _, ok := catalog.Lookup(name); !ok {
				return usageErrorf(fmt.Sprintf("unknown workout %q: choose one of %s", name, strings.Join(catalog.Names(), ", ")))
			}
			return p.mutate(cmd, func(s *pages.Session[int64, model.Exercise]) (string, error) {
				w, err := pages.SelectWorkout(s, name)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("workout: %s (%d exercises)", w.Name, len(w.Exercises)), nil
			})
		},
	}
}
