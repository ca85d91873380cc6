package commands

import (
	"errors"
	"fmt"

	"github.com/FengLee1113/sentry/internal/loader"
	"github.com/FengLee1113/sentry/internal/tui"
	"github.com/FengLee1113/sentry/pkg/core"
	"github.com/FengLee1113/sentry/pkg/privacy"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// BrowseOptions holds options for the browse command.
type BrowseOptions struct {
	RulesFile           string
	ShowNonContributing bool
}

// NewBrowseCommand creates the browse command.
func NewBrowseCommand() *cobra.Command {
	opts := &BrowseOptions{}
	cmd := &cobra.Command{
		Use:   "browse [grouping-file]",
		Short: "Browse grouping info and scrubbing rules interactively",
		Long: `Open an interactive browser over grouping info and scrubbing rules.

Keys:
  tab / shift+tab  cycle grouping variants
  n                toggle non-contributing components
  r                switch between grouping and rules
  j / k            move in the rules list
  e / d            inspect or delete the selected rule
  ?                full help
  q                quit

Deleted rules are listed on exit; files are never modified.`,
		Example: `  groupinfo browse event-grouping.json --rules rules.yaml`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.RulesFile, "rules", "", "Scrubbing rules file to browse")
	cmd.Flags().BoolVarP(&opts.ShowNonContributing, "show-non-contributing", "n", false, "Start with non-contributing components shown")

	return cmd
}

func runBrowse(cmd *cobra.Command, args []string, opts *BrowseOptions) error {
	cmdCtx, err := NewCommandContext(cmd, "")
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg

	groupingPath := cfg.GroupingFile
	if len(args) > 0 {
		groupingPath = args[0]
	}
	rulesPath := cfg.RulesFile
	if opts.RulesFile != "" {
		rulesPath = opts.RulesFile
	}
	if groupingPath == "" && rulesPath == "" {
		return errors.New("nothing to browse: pass a grouping info file or --rules")
	}
	if groupingPath == "-" && rulesPath == "-" {
		return errors.New("only one input can be read from stdin")
	}

	var (
		info  core.GroupingInfo
		rules []core.ScrubRule
		g     errgroup.Group
	)
	if groupingPath != "" {
		g.Go(func() error {
			var err error
			info, err = loader.ReadGroupingInfo(groupingPath, cmd.InOrStdin())
			return err
		})
	}
	if rulesPath != "" {
		g.Go(func() error {
			var err error
			rules, err = loader.ReadRules(rulesPath, cmd.InOrStdin())
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	cmdCtx.Logger.Debug("starting browser", "variants", len(info), "rules", len(rules))

	show := cfg.ShowNonContributing
	if cmd.Flags().Changed("show-non-contributing") {
		show = opts.ShowNonContributing
	}

	model := tui.New(tui.Options{
		Info:                info,
		Rules:               rules,
		Labels:              cmdCtx.Labels(),
		Printer:             privacy.NewPrinter(cfg.Language),
		ShowNonContributing: show,
		Styles:              cmdCtx.Renderer.Styles(),
	})

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(contextOrBackground(cmd.Context())),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	// Stdin was consumed by the input file; read keys from the terminal.
	if groupingPath == "-" || rulesPath == "-" {
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	final, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		return fmt.Errorf("browser: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		if deleted := m.Deleted(); len(deleted) > 0 {
			cmdCtx.Renderer.Printf("Deleted rules (not saved): %v\n", deleted)
		}
	}
	return nil
}
