package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/organizer/internal/model"
	"github.com/idilsaglam/organizer/internal/pages"
	"github.com/idilsaglam/organizer/internal/ui"
)

// pageCmd builds the subcommands of one page. kind is resolved per run so
// pages that depend on the clock see the current time.
type pageCmd[K comparable, R model.Record[K, R]] struct {
	app  *App
	kind func(*App) pages.Kind[K, R]

	// header adds lines under the ls header.
	header func(s *pages.Session[K, R]) []string
}

func newPageCmd[K comparable, R model.Record[K, R]](app *App, kind func(*App) pages.Kind[K, R]) *cobra.Command {
	return pageCmd[K, R]{app: app, kind: kind}.command()
}

func (p pageCmd[K, R]) command() *cobra.Command {
	k := p.kind(p.app)
	var group bool
	cmd := &cobra.Command{
		Use:   string(k.Route),
		Short: k.Title + " (defaults to ls)",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return p.list(cmd, group)
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "Group by "+strings.ToLower(k.FlagLabels[0])+"/"+strings.ToLower(k.FlagLabels[1]))

	cmd.AddCommand(p.lsCmd())
	if k.CanAdd {
		cmd.AddCommand(p.addCmd())
	}
	if k.CanEdit {
		cmd.AddCommand(p.editCmd())
	}
	cmd.AddCommand(p.toggleCmd())
	if k.CanAdd {
		cmd.AddCommand(p.rmCmd())
		cmd.AddCommand(p.clearCmd())
	}
	cmd.AddCommand(p.mvCmd())
	if k.Export != nil {
		cmd.AddCommand(p.exportCmd())
	}
	return cmd
}

// session opens the store, loads the page and hands it to fn.
func (p pageCmd[K, R]) session(ctx context.Context, fn func(s *pages.Session[K, R]) error) error {
	st, err := p.app.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	s := pages.NewSession(p.kind(p.app), st, model.NewIDGen(p.app.now), p.app.cfg.PersistAll)
	s.Load(ctx)
	return fn(s)
}

// mutate runs fn against the stored list and saves the result. Every
// invocation is one explicit user action, so it always saves.
func (p pageCmd[K, R]) mutate(cmd *cobra.Command, fn func(s *pages.Session[K, R]) (string, error)) error {
	ctx := cmd.Context()
	return p.session(ctx, func(s *pages.Session[K, R]) error {
		if !s.Persisted() {
			return fmt.Errorf("%s is kept in memory only; set persist_all: true to change it from the command line", s.Kind.Route)
		}
		msg, err := fn(s)
		if err != nil {
			return err
		}
		if err := s.Save(ctx); err != nil {
			return err
		}
		p.app.log.Info("page changed", zap.String("page", string(s.Kind.Route)), zap.String("cmd", cmd.Name()), zap.Int("count", s.List.Len()))
		ui.OK(cmd.OutOrStdout(), msg)
		return nil
	})
}

// resolve turns a typed id into a key. Malformed ids are usage errors;
// unknown ones are plain not-found failures.
func resolve[K comparable, R model.Record[K, R]](s *pages.Session[K, R], id string) (K, error) {
	k, err := s.Resolve(id)
	if err != nil && !errors.Is(err, pages.ErrNotFound) {
		return k, usageError{err}
	}
	return k, err
}

func (p pageCmd[K, R]) list(cmd *cobra.Command, group bool) error {
	return p.session(cmd.Context(), func(s *pages.Session[K, R]) error {
		var extra []string
		if p.header != nil {
			extra = p.header(s)
		}
		renderList(cmd.OutOrStdout(), s, group, extra...)
		return nil
	})
}

func (p pageCmd[K, R]) lsCmd() *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List records",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return p.list(cmd, group)
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "Group by flag state")
	return cmd
}

// fieldFlags registers one string flag per secondary form field.
func fieldFlags(cmd *cobra.Command, fields []pages.Field) map[string]*string {
	out := make(map[string]*string, len(fields))
	for _, f := range fields[1:] {
		v := new(string)
		cmd.Flags().StringVar(v, f.Name, "", f.Placeholder)
		if len(f.Suggestions) > 0 {
			_ = cmd.RegisterFlagCompletionFunc(f.Name, cobra.FixedCompletions(f.Suggestions, cobra.ShellCompDirectiveNoFileComp))
		}
		out[f.Name] = v
	}
	return out
}

func (p pageCmd[K, R]) addCmd() *cobra.Command {
	k := p.kind(p.app)
	name := k.Fields[0].Name
	var vals map[string]*string
	cmd := &cobra.Command{
		Use:   "add <" + name + "...>",
		Short: "Add a " + k.Noun,
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := []string{strings.Join(args, " ")}
			for _, f := range k.Fields[1:] {
				in = append(in, *vals[f.Name])
			}
			if strings.TrimSpace(in[0]) == "" {
				return usageErrorf("add: empty " + name)
			}
			return p.mutate(cmd, func(s *pages.Session[K, R]) (string, error) {
				r, err := s.Add(in)
				if err != nil {
					return "", usageError{err}
				}
				return fmt.Sprintf("added %s %s", s.Kind.Noun, s.Kind.FormatKey(r.Key())), nil
			})
		},
	}
	vals = fieldFlags(cmd, k.Fields)
	return cmd
}

func (p pageCmd[K, R]) editCmd() *cobra.Command {
	k := p.kind(p.app)
	var vals map[string]*string
	cmd := &cobra.Command{
		Use:   "edit <id> [" + k.Fields[0].Name + "...]",
		Short: "Change a " + k.Noun + "; unset fields keep their value",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return p.mutate(cmd, func(s *pages.Session[K, R]) (string, error) {
				key, err := resolve(s, args[0])
				if err != nil {
					return "", err
				}
				cur, _ := s.List.Get(key)
				in := s.Kind.Values(cur)
				if len(args) > 1 {
					in[0] = strings.Join(args[1:], " ")
				}
				for i, f := range s.Kind.Fields[1:] {
					if cmd.Flags().Changed(f.Name) {
						in[i+1] = *vals[f.Name]
					}
				}
				if err := s.Edit(key, in); err != nil {
					return "", usageError{err}
				}
				return "updated " + args[0], nil
			})
		},
	}
	vals = fieldFlags(cmd, k.Fields)
	return cmd
}

func (p pageCmd[K, R]) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip the completion flag",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return p.mutate(cmd, func(s *pages.Session[K, R]) (string, error) {
				key, err := resolve(s, args[0])
				if err != nil {
					return "", err
				}
				s.List.Toggle(key)
				r, _ := s.List.Get(key)
				return args[0] + ": " + s.Kind.FlagLabel(r), nil
			})
		},
	}
}

func (p pageCmd[K, R]) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a record",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return p.mutate(cmd, func(s *pages.Session[K, R]) (string, error) {
				key, err := resolve(s, args[0])
				if err != nil {
					return "", err
				}
				s.List.Remove(key)
				return "removed " + args[0], nil
			})
		},
	}
}

func (p pageCmd[K, R]) mvCmd() *cobra.Command {
	var by int
	cmd := &cobra.Command{
		Use:   "mv <id> [target-id]",
		Short: "Move a record to the position of another, or --by n places",
		Args:  usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			stepping := cmd.Flags().Changed("by")
			if stepping == (len(args) == 2) {
				return usageErrorf("mv: give either a target id or --by")
			}
			return p.mutate(cmd, func(s *pages.Session[K, R]) (string, error) {
				src, err := resolve(s, args[0])
				if err != nil {
					return "", err
				}
				if stepping {
					s.List.MoveBy(src, by)
				} else {
					dst, err := resolve(s, args[1])
					if err != nil {
						return "", err
					}
					s.List.Reorder(src, dst)
				}
				return fmt.Sprintf("moved %s to position %d", args[0], s.List.Index(src)+1), nil
			})
		},
	}
	cmd.Flags().IntVar(&by, "by", 0, "Move by n positions (negative moves up)")
	return cmd
}

func (p pageCmd[K, R]) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every record",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return p.mutate(cmd, func(s *pages.Session[K, R]) (string, error) {
				if err := s.Clear(cmd.Context()); err != nil {
					return "", err
				}
				return "cleared " + string(s.Kind.Route), nil
			})
		},
	}
}

func (p pageCmd[K, R]) exportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the list as CSV",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("dir") {
				dir = p.app.cfg.ExportDir
			}
			return p.session(cmd.Context(), func(s *pages.Session[K, R]) error {
				path, err := s.ExportTo(dir)
				if err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "exported "+path)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (default export_dir)")
	return cmd
}
