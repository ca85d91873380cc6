package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/FengLee1113/sentry/internal/cli/output"
	"github.com/FengLee1113/sentry/internal/loader"
	"github.com/FengLee1113/sentry/internal/watch"
	"github.com/FengLee1113/sentry/pkg/core"
	"github.com/FengLee1113/sentry/pkg/grouping"
	"github.com/spf13/cobra"
)

// ErrUnknownVariant is returned when --variant names a variant that is not present.
var ErrUnknownVariant = errors.New("unknown variant")

// GroupingOptions holds options for the grouping command.
type GroupingOptions struct {
	ShowNonContributing bool
	Variant             string
	Watch               bool
	Stats               bool
	Format              string
}

// NewGroupingCommand creates the grouping command.
func NewGroupingCommand() *cobra.Command {
	opts := &GroupingOptions{}
	cmd := &cobra.Command{
		Use:   "grouping [file]",
		Short: "Render the grouping diagnostics of an event",
		Long: `Render the grouping info tree of an event.

The input is the grouping info JSON of an event (a map of variant key to
variant) or a single component tree. Use "-" to read from stdin.

Components that do not contribute to the fingerprint are hidden unless
--show-non-contributing is set. Components with no values and no hint are
never shown.

Output adapts to environment:
  - Terminal: Styled tree
  - Piped/Scripted: Markdown list
  - JSON/YAML: Machine-readable view tree`,
		Example: `  # Render contributing components only
  groupinfo grouping event-grouping.json

  # Include non-contributing components
  groupinfo grouping event-grouping.json --show-non-contributing

  # Render a single variant as JSON
  groupinfo grouping event-grouping.json --variant system -o json

  # Re-render whenever the file changes
  groupinfo grouping event-grouping.json --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrouping(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.ShowNonContributing, "show-non-contributing", "n", false, "Show non-contributing components and variants")
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "Only render the variant with this key")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-render when the input file changes")
	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "Print component counts per variant")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

// GroupingJSONOutput is the JSON output structure for the grouping command.
type GroupingJSONOutput struct {
	ShowNonContributing bool                       `json:"show_non_contributing" yaml:"show_non_contributing"`
	Variants            []grouping.RenderedVariant `json:"variants" yaml:"variants"`
	Stats               map[string]grouping.Stats  `json:"stats,omitempty" yaml:"stats,omitempty"`
}

func runGrouping(cmd *cobra.Command, args []string, opts *GroupingOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}

	show := cmdCtx.Cfg.ShowNonContributing
	if cmd.Flags().Changed("show-non-contributing") {
		show = opts.ShowNonContributing
	}

	path, err := inputPath(args, cmdCtx.Cfg.GroupingFile, "grouping info")
	if err != nil {
		return err
	}

	render := func(context.Context) error {
		info, err := loader.ReadGroupingInfo(path, cmd.InOrStdin())
		if err != nil {
			return err
		}
		cmdCtx.Logger.Debug("loaded grouping info", "path", path, "variants", len(info))
		return renderGrouping(cmdCtx.Renderer, info, opts.Variant, show, opts.Stats)
	}

	if err := render(cmd.Context()); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}
	if path == "-" {
		return fmt.Errorf("--watch needs a file, not stdin")
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt)
	defer stop()
	return watch.File(ctx, path, watch.Options{Logger: cmdCtx.Logger}, func(ctx context.Context) error {
		cmdCtx.Renderer.Println("")
		cmdCtx.Renderer.Muted("--- " + path + " changed ---")
		return render(ctx)
	})
}

// inputPath picks the positional argument or the configured default.
func inputPath(args []string, configured, what string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if configured != "" {
		return configured, nil
	}
	return "", fmt.Errorf("no %s file given (pass a path or \"-\" for stdin)", what)
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// selectVariants narrows info to the requested variant, if any.
func selectVariants(info core.GroupingInfo, key string) (core.GroupingInfo, error) {
	if key == "" {
		return info, nil
	}
	v, ok := info.Variant(key)
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownVariant, key, info.Keys())
	}
	return core.GroupingInfo{*v}, nil
}

func renderGrouping(r *output.Renderer, info core.GroupingInfo, variantKey string, show, withStats bool) error {
	selected, err := selectVariants(info, variantKey)
	if err != nil {
		return err
	}

	// An explicitly requested variant is rendered even when it does not contribute.
	var variants []grouping.RenderedVariant
	if variantKey != "" {
		variants = []grouping.RenderedVariant{grouping.RenderVariant(&selected[0], show)}
	} else {
		variants = grouping.RenderInfo(selected, show)
	}

	var stats map[string]grouping.Stats
	if withStats {
		stats = make(map[string]grouping.Stats, len(selected))
		for i := range selected {
			stats[selected[i].Key] = grouping.Count(selected[i].Component)
		}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(GroupingJSONOutput{ShowNonContributing: show, Variants: variants, Stats: stats})
	case output.ModeYAML:
		return r.YAML(GroupingJSONOutput{ShowNonContributing: show, Variants: variants, Stats: stats})
	case output.ModeMarkdown:
		renderGroupingMarkdown(r, variants, stats, len(selected)-len(variants))
	default:
		renderGroupingText(r, variants, stats, len(selected)-len(variants))
	}
	return nil
}
