package cli

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docsFS embed.FS

func docTopics() []string {
	entries, _ := docsFS.ReadDir("docs")
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".md"))
	}
	slices.Sort(out)
	return out
}

func newDocsCmd() *cobra.Command {
	var (
		raw   bool
		style string
		width int
	)
	cmd := &cobra.Command{
		Use:       "docs [topic]",
		Short:     "Show the key bindings and command guide",
		Args:      usageArgs(cobra.MaximumNArgs(1)),
		ValidArgs: docTopics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, t := range docTopics() {
					fmt.Fprintln(cmd.OutOrStdout(), t)
				}
				return nil
			}
			body, err := docsFS.ReadFile(path.Join("docs", args[0]+".md"))
			if err != nil {
				return usageErrorf(fmt.Sprintf("unknown docs topic %q (run `organizer docs` to list topics)", args[0]))
			}
			if raw {
				_, err := cmd.OutOrStdout().Write(body)
				return err
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle(style),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("markdown renderer: %w", err)
			}
			out, err := r.Render(string(body))
			if err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	cmd.Flags().StringVar(&style, "style", "auto", "glamour style (auto|dark|light|notty|ascii)")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")
	return cmd
}
