package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/organizer/internal/model"
	"github.com/idilsaglam/organizer/internal/pages"
	"github.com/idilsaglam/organizer/internal/store"
	"github.com/idilsaglam/organizer/internal/ui"
)

type pageSummary struct {
	title         string
	done, pending int
	footer        string
	memory        bool
}

func summarize[K comparable, R model.Record[K, R]](ctx context.Context, app *App, st *store.Adapter, k pages.Kind[K, R]) (pageSummary, error) {
	if err := ctx.Err(); err != nil {
		return pageSummary{}, err
	}
	s := pages.NewSession(k, st, model.NewIDGen(app.now), app.cfg.PersistAll)
	if _, err := s.Fetch(ctx); err != nil {
		return pageSummary{}, err
	}
	done, pending := s.List.Count()
	return pageSummary{
		title:   k.Title,
		done:    done,
		pending: pending,
		footer:  k.Footer(s.List.Items()),
		memory:  !s.Persisted(),
	}, nil
}

// collect runs one summarize into rows[i].
func collect[K comparable, R model.Record[K, R]](ctx context.Context, g *errgroup.Group, app *App, st *store.Adapter, rows []pageSummary, i int, k pages.Kind[K, R]) {
	g.Go(func() error {
		r, err := summarize(ctx, app, st, k)
		if err != nil {
			return err
		}
		rows[i] = r
		return nil
	})
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "One line per page with its counts and footer",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			// Pages load independently; rows keep menu order.
			rows := make([]pageSummary, len(pages.Routes()))
			g, ctx := errgroup.WithContext(cmd.Context())
			collect(ctx, g, app, st, rows, 0, pages.TodoKind())
			collect(ctx, g, app, st, rows, 1, pages.ShoppingKind())
			collect(ctx, g, app, st, rows, 2, pages.ExpenseKind())
			collect(ctx, g, app, st, rows, 3, pages.PlanningKind(app.now))
			collect(ctx, g, app, st, rows, 4, pages.GymKind())
			if err := g.Wait(); err != nil {
				return fmt.Errorf("summary: %w", err)
			}

			t := ui.Current()
			lines := make([]string, 0, len(rows))
			for _, r := range rows {
				line := fmt.Sprintf("%s %s %s", ui.C(t.Title, fmt.Sprintf("%-18s", r.title)),
					ui.C(t.Muted, ui.ProgressBar(r.done, r.done+r.pending, 12)),
					fmt.Sprintf("%d/%d", r.done, r.done+r.pending))
				if r.footer != "" {
					line += "  " + ui.C(t.Accent, r.footer)
				}
				if r.memory {
					line += "  " + ui.Dim("(memory only)")
				}
				lines = append(lines, line)
			}
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}
