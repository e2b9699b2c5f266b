// Package cli is the cobra command tree. With no subcommand it starts the
// TUI; the page subcommands script the same operations, each invocation
// loading, changing and saving one list.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/organizer/internal/config"
	"github.com/idilsaglam/organizer/internal/logging"
	"github.com/idilsaglam/organizer/internal/model"
	"github.com/idilsaglam/organizer/internal/pages"
	"github.com/idilsaglam/organizer/internal/store"
	"github.com/idilsaglam/organizer/internal/tui"
	"github.com/idilsaglam/organizer/internal/ui"
)

type App struct {
	ConfigPath string
	DataDir    string
	Backend    string
	Theme      string
	LogLevel   string
	Color      string

	cfg *config.Config
	log *zap.Logger
	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	app := &App{now: time.Now}

	cmd := &cobra.Command{
		Use:           "organizer",
		Short:         "Personal organizer: to-do, shopping, expenses, planning and gym lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  organizer

  # Scriptable commands
  organizer todo add "Buy milk" --time 18:00
  organizer shopping add Eggs --quantity 12 --price 0.25
  organizer expense ls --group
  organizer summary
  organizer todo mv task-1718000000000 task-1718000000001
`),
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTUI(cmd.Context(), "")
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.log != nil {
			_ = app.log.Sync()
		}
		return nil
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	f := cmd.PersistentFlags()
	f.StringVar(&app.ConfigPath, "config", "", "Config file (default ~/.organizer/config.yaml)")
	f.StringVar(&app.DataDir, "data-dir", "", "Directory holding the stored lists")
	f.StringVar(&app.Backend, "backend", "", "Storage backend ("+strings.Join(store.Backends(), "|")+")")
	f.StringVar(&app.Theme, "theme", "", "Terminal theme ("+strings.Join(ui.Themes(), "|")+")")
	f.StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	f.StringVar(&app.Color, "color", "auto", "Colored output (auto|always|never)")

	cmd.AddCommand(newTUICmd(app))
	cmd.AddCommand(newDocsCmd())
	cmd.AddCommand(newSummaryCmd(app))
	cmd.AddCommand(newPageCmd(app, func(*App) pages.Kind[string, model.Task] { return pages.TodoKind() }))
	cmd.AddCommand(newPageCmd(app, func(*App) pages.Kind[int64, model.ShoppingItem] { return pages.ShoppingKind() }))
	cmd.AddCommand(newPageCmd(app, func(*App) pages.Kind[int64, model.Expense] { return pages.ExpenseKind() }))
	cmd.AddCommand(newPageCmd(app, func(a *App) pages.Kind[int64, model.Event] { return pages.PlanningKind(a.now) }))
	cmd.AddCommand(newGymCmd(app))

	return cmd
}

// setup loads .env and the config file, applies flags, then starts logging.
func (app *App) setup(cmd *cobra.Command) error {
	_ = godotenv.Load()

	flags := cmd.Flags()
	cfg, err := config.Load(app.ConfigPath, func(c *config.Config) {
		if flags.Changed("data-dir") {
			c.DataDir = app.DataDir
		}
		if flags.Changed("backend") {
			c.Backend = app.Backend
		}
		if flags.Changed("theme") {
			c.Theme = app.Theme
		}
		if flags.Changed("log-level") {
			c.LogLevel = app.LogLevel
		}
	})
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	ui.SetTheme(cfg.Theme)
	if err := ui.SetColorMode(app.Color); err != nil {
		return usageError{err}
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	app.cfg, app.log = cfg, log
	app.log.Debug("command", zap.String("path", cmd.CommandPath()), zap.String("backend", cfg.Backend))
	return nil
}

// openStore opens the configured backend. Callers close it.
func (app *App) openStore(ctx context.Context) (*store.Adapter, error) {
	kv, err := store.OpenKV(ctx, app.cfg.Backend, app.cfg.DataDir, app.cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	return store.New(kv, app.log), nil
}

func (app *App) runTUI(ctx context.Context, start pages.Route) error {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := app.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	return tui.Run(tui.Env{
		Ctx:        ctx,
		Store:      st,
		Gen:        model.NewIDGen(app.now),
		Now:        app.now,
		PersistAll: app.cfg.PersistAll,
		ExportDir:  app.cfg.ExportDir,
		Log:        app.log,
	}, start)
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "tui [page]",
		Short:     "Start the interactive TUI, optionally on a page",
		Args:      usageArgs(cobra.MaximumNArgs(1)),
		ValidArgs: routeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var start pages.Route
			if len(args) == 1 {
				info, err := pages.Lookup(args[0])
				if err != nil {
					return usageError{err}
				}
				start = info.Route
			}
			return app.runTUI(cmd.Context(), start)
		},
	}
}

func routeNames() []string {
	var out []string
	for _, r := range pages.Routes() {
		out = append(out, string(r.Route))
	}
	return out
}
