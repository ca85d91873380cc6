package commands

import (
	"fmt"

	"github.com/FengLee1113/sentry/internal/cli/output"
	"github.com/FengLee1113/sentry/internal/loader"
	"github.com/FengLee1113/sentry/pkg/core"
	"github.com/FengLee1113/sentry/pkg/privacy"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	ID      string // Show a single rule
	Method  string // Filter by method
	Type    string // Filter by rule type
	Actions bool   // List the per-row actions
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [file]",
		Short: "List data scrubbing rules",
		Long: `List the data scrubbing rules of a project.

Each rule is summarized as "[method] [type] from [source]". Labels can be
overridden in groupinfo.yaml under labels.methods and labels.types, and the
summary is localized with --lang.

Output adapts to environment:
  - Terminal: Table
  - Piped/Scripted: Markdown list
  - JSON/YAML: Machine-readable format`,
		Example: `  # List all rules
  groupinfo rules rules.yaml

  # Only masking rules, in German
  groupinfo rules rules.yaml --method mask --lang de

  # Show one rule
  groupinfo rules rules.yaml --id 2

  # Output as JSON
  groupinfo rules rules.yaml --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRules(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "Show the rule with this ID")
	cmd.Flags().StringVar(&opts.Method, "method", "", "Filter by method: mask, remove, hash, replace")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Filter by rule type")
	cmd.Flags().BoolVar(&opts.Actions, "show-actions", false, "Show available row actions")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []privacy.Row `json:"rules" yaml:"rules"`
	Count int           `json:"count" yaml:"count"`
}

func listRules(cmd *cobra.Command, args []string, opts *RulesOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	path, err := inputPath(args, cmdCtx.Cfg.RulesFile, "rules")
	if err != nil {
		return err
	}
	rules, err := loader.ReadRules(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("loaded rules", "path", path, "count", len(rules))

	rules, err = filterRules(rules, opts)
	if err != nil {
		return err
	}

	var actions privacy.Actions
	if opts.Actions {
		actions = listedActions()
	}
	printer := privacy.NewPrinter(cmdCtx.Cfg.Language)
	rows := privacy.BuildList(rules, cmdCtx.Labels(), printer, actions)

	if opts.ID != "" {
		if len(rows) == 0 {
			return fmt.Errorf("rule %q not found", opts.ID)
		}
		return showRule(r, rules[0], rows[0])
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(RulesJSONOutput{Rules: rows, Count: len(rows)})
	case output.ModeYAML:
		return r.YAML(RulesJSONOutput{Rules: rows, Count: len(rows)})
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rows, opts.Actions)
	default:
		return listRulesText(r, rows, opts.Actions)
	}
}

// listedActions advertises edit and delete on every row. The list command
// never triggers them; browse binds the real callbacks.
func listedActions() privacy.Actions {
	noop := func(string) func() { return func() {} }
	return privacy.Actions{OnEdit: noop, OnDelete: noop}
}

func filterRules(rules []core.ScrubRule, opts *RulesOptions) ([]core.ScrubRule, error) {
	var method core.MethodType
	var ruleType core.RuleType
	var err error

	if opts.Method != "" {
		if method, err = core.ParseMethodType(opts.Method); err != nil {
			return nil, err
		}
	}
	if opts.Type != "" {
		if ruleType, err = core.ParseRuleType(opts.Type); err != nil {
			return nil, err
		}
	}

	filtered := make([]core.ScrubRule, 0, len(rules))
	for _, rule := range rules {
		if opts.ID != "" && rule.ID != opts.ID {
			continue
		}
		if method != "" && rule.Method != method {
			continue
		}
		if ruleType != "" && rule.Type != ruleType {
			continue
		}
		filtered = append(filtered, rule)
	}
	return filtered, nil
}

// listRulesText outputs rules as a table.
func listRulesText(r *output.Renderer, rows []privacy.Row, withActions bool) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Data Scrubbing Rules (%d)", len(rows))))
	r.Println("")

	if len(rows) == 0 {
		r.Println(styles.Muted.Render("  No rules"))
		r.Println("")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)

	header := table.Row{"ID", "Rule"}
	if withActions {
		header = append(header, "Actions")
	}
	t.AppendHeader(header)

	for _, row := range rows {
		line := table.Row{row.Key, row.Summary}
		if withActions {
			line = append(line, joinActions(row.Actions))
		}
		t.AppendRow(line)
	}
	t.Render()
	r.Println("")

	return nil
}

// listRulesMarkdown outputs rules as a markdown list.
func listRulesMarkdown(r *output.Renderer, rows []privacy.Row, withActions bool) error {
	r.Println(output.FormatHeader(1, "Data Scrubbing Rules"))
	r.Println("")

	if len(rows) == 0 {
		r.Println("_No rules_")
		return nil
	}

	for _, row := range rows {
		line := fmt.Sprintf("- `%s` %s", row.Key, row.Summary)
		if withActions && len(row.Actions) > 0 {
			line += " (" + joinActions(row.Actions) + ")"
		}
		r.Println(line)
	}
	r.Println("")
	return nil
}

// showRule displays one rule in detail.
func showRule(r *output.Renderer, rule core.ScrubRule, row privacy.Row) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(row)
	case output.ModeYAML:
		return r.YAML(row)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Rule "+row.Key))
		r.Println("")
		r.Println(row.Summary)
		r.Println("")
		r.Println(output.FormatKeyValue("Method", row.Method))
		r.Println(output.FormatKeyValue("Type", row.Type))
		r.Println(output.FormatKeyValue("Source", "`"+row.Source+"`"))
		if rule.Pattern != "" {
			r.Println(output.FormatKeyValue("Pattern", "`"+rule.Pattern+"`"))
		}
		if rule.Placeholder != "" {
			r.Println(output.FormatKeyValue("Placeholder", rule.Placeholder))
		}
		return nil
	}

	styles := r.Styles()
	r.Println("")
	r.Println(styles.Header1.Render("Rule " + row.Key))
	r.Println("")
	r.Println("  " + row.Summary)
	r.Println("")
	r.Printf("  %s: %s\n", styles.Bold.Render("Method"), row.Method)
	r.Printf("  %s: %s\n", styles.Bold.Render("Type"), row.Type)
	r.Printf("  %s: %s\n", styles.Bold.Render("Source"), row.Source)
	if rule.Pattern != "" {
		r.Printf("  %s: %s\n", styles.Bold.Render("Pattern"), rule.Pattern)
	}
	if rule.Placeholder != "" {
		r.Printf("  %s: %s\n", styles.Bold.Render("Placeholder"), rule.Placeholder)
	}
	r.Println("")
	return nil
}

func joinActions(actions []privacy.Action) string {
	out := ""
	for i, a := range actions {
		if i > 0 {
			out += ", "
		}
		out += string(a)
	}
	return out
}
