package commands

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FengLee1113/sentry/internal/cli/config"
	"github.com/FengLee1113/sentry/internal/cli/output"
	"github.com/FengLee1113/sentry/internal/loader"
	"github.com/FengLee1113/sentry/pkg/core"
	"github.com/FengLee1113/sentry/pkg/privacy"
	"github.com/spf13/cobra"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Format string // Output format: text, markdown, json, yaml
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the configured inputs for problems",
		Long: `Check the configuration, grouping info and scrubbing rules of a project.

The doctor command loads the files named in groupinfo.yaml and reports:
- whether the configuration and language are usable
- whether the grouping info parses and has a contributing variant
- rules with duplicate IDs or patterns that do not compile

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # Run all checks
  groupinfo doctor

  # Output as JSON
  groupinfo doctor --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

// Check statuses.
const (
	StatusPass  = "pass"
	StatusWarn  = "warn"
	StatusError = "error"
)

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	ConfigFile      string        `json:"config_file,omitempty" yaml:"config_file,omitempty"`
	HealthChecks    []HealthCheck `json:"health_checks" yaml:"health_checks"`
	Score           int           `json:"score" yaml:"score"`
	Recommendations []string      `json:"recommendations" yaml:"recommendations"`
	IssueCount      int           `json:"issue_count" yaml:"issue_count"`
}

// HealthCheck represents a single check result.
type HealthCheck struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Group      string   `json:"group" yaml:"group"`
	Status     string   `json:"status" yaml:"status"`
	IssueCount int      `json:"issue_count" yaml:"issue_count"`
	Details    []string `json:"details,omitempty" yaml:"details,omitempty"`
}

func (h *HealthCheck) fail(status, detail string) {
	if status == StatusError || h.Status == StatusPass {
		h.Status = status
	}
	h.IssueCount++
	h.Details = append(h.Details, detail)
}

func newCheck(id, name, group string) HealthCheck {
	return HealthCheck{ID: id, Name: name, Group: group, Status: StatusPass}
}

func runDoctor(cmd *cobra.Command, opts *DoctorOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	out := buildDoctorOutput(cmd, cmdCtx.Cfg)
	out.ConfigFile = config.GetConfigFileUsed()

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeYAML:
		return r.YAML(out)
	case output.ModeMarkdown:
		return renderDoctorMarkdown(r, out)
	default:
		return renderDoctorText(r, out)
	}
}

func buildDoctorOutput(cmd *cobra.Command, cfg *config.Config) *DoctorOutput {
	checks := []HealthCheck{
		checkLanguage(cfg),
	}
	checks = append(checks, checkGrouping(cmd, cfg)...)
	checks = append(checks, checkRules(cmd, cfg)...)

	sort.SliceStable(checks, func(i, j int) bool {
		if checks[i].Group != checks[j].Group {
			return checks[i].Group < checks[j].Group
		}
		return checks[i].ID < checks[j].ID
	})

	issues := 0
	for _, c := range checks {
		issues += c.IssueCount
	}

	return &DoctorOutput{
		HealthChecks:    checks,
		Score:           calculateHealthScore(checks),
		Recommendations: generateRecommendations(checks),
		IssueCount:      issues,
	}
}

func checkLanguage(cfg *config.Config) HealthCheck {
	c := newCheck("CF01", "Language has a translation", "config")
	tag, err := language.Parse(cfg.Language)
	if err != nil {
		c.fail(StatusWarn, fmt.Sprintf("language %q is not a valid tag, English is used", cfg.Language))
		return c
	}
	for _, supported := range privacy.SupportedLanguages {
		base, _ := tag.Base()
		sbase, _ := supported.Base()
		if base == sbase {
			return c
		}
	}
	c.fail(StatusWarn, fmt.Sprintf("no translation for %q, English is used", cfg.Language))
	return c
}

func checkGrouping(cmd *cobra.Command, cfg *config.Config) []HealthCheck {
	parses := newCheck("GI01", "Grouping info parses", "grouping")
	contributing := newCheck("GI02", "A variant contributes", "grouping")
	hashed := newCheck("GI03", "Contributing variants have a hash", "grouping")

	if cfg.GroupingFile == "" {
		parses.fail(StatusWarn, "grouping_file is not configured")
		return []HealthCheck{parses}
	}

	info, err := loader.ReadGroupingInfo(cfg.GroupingFile, cmd.InOrStdin())
	if err != nil {
		parses.fail(StatusError, err.Error())
		return []HealthCheck{parses}
	}

	found := false
	for _, v := range info {
		if !v.Contributes {
			continue
		}
		found = true
		if v.Hash == "" {
			hashed.fail(StatusWarn, fmt.Sprintf("variant %q has no hash", v.Key))
		}
	}
	if !found {
		contributing.fail(StatusWarn, fmt.Sprintf("none of %d variants contribute", len(info)))
	}

	return []HealthCheck{parses, contributing, hashed}
}

func checkRules(cmd *cobra.Command, cfg *config.Config) []HealthCheck {
	parses := newCheck("RL01", "Rules parse", "rules")
	unique := newCheck("RL02", "Rule IDs are unique", "rules")
	patterns := newCheck("RL03", "Patterns compile", "rules")

	if cfg.RulesFile == "" {
		parses.fail(StatusWarn, "rules_file is not configured")
		return []HealthCheck{parses}
	}

	rules, err := loader.ReadRules(cfg.RulesFile, cmd.InOrStdin())
	if err != nil {
		parses.fail(StatusError, err.Error())
		return []HealthCheck{parses}
	}

	seen := make(map[string]bool, len(rules))
	for _, rule := range rules {
		if seen[rule.ID] {
			unique.fail(StatusError, fmt.Sprintf("rule ID %q is used more than once", rule.ID))
		}
		seen[rule.ID] = true

		if rule.Type != core.RuleTypePattern {
			continue
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			patterns.fail(StatusError, fmt.Sprintf("rule %s: %v", rule.ID, err))
		}
	}

	return []HealthCheck{parses, unique, patterns}
}

// calculateHealthScore computes a score from 0-100.
// Errors cost twice as much as warnings.
func calculateHealthScore(checks []HealthCheck) int {
	const penalty = 10
	score := 100
	for _, check := range checks {
		switch check.Status {
		case StatusError:
			score -= check.IssueCount * penalty * 2
		case StatusWarn:
			score -= check.IssueCount * penalty
		}
	}
	return max(score, 0)
}

// generateRecommendations creates actionable recommendations based on findings.
func generateRecommendations(checks []HealthCheck) []string {
	var recommendations []string
	for _, check := range checks {
		if check.IssueCount == 0 {
			continue
		}
		if rec := getRecommendation(check.ID); rec != "" {
			recommendations = append(recommendations, rec)
		}
	}
	return recommendations
}

// getRecommendation returns a recommendation for a specific check.
func getRecommendation(id string) string {
	switch id {
	case "CF01":
		return "Set language to one of en, de, fr, es"
	case "GI01":
		return "Point grouping_file at the grouping info JSON of an event"
	case "GI02":
		return "Check the grouping config, no variant produces a fingerprint"
	case "GI03":
		return "Re-export the grouping info, hashes are missing"
	case "RL01":
		return "Fix the rules file, see the error for the failing rule"
	case "RL02":
		return "Give every rule a distinct id"
	case "RL03":
		return "Fix the regular expressions of pattern rules"
	default:
		return ""
	}
}

func statusIcon(styles output.Styles, status string) string {
	switch status {
	case StatusWarn:
		return styles.Warning.Render("!")
	case StatusError:
		return styles.Error.Render("✗")
	default:
		return styles.Success.Render("✓")
	}
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("groupinfo Health Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Println("")
	if out.ConfigFile != "" {
		r.Printf("   Config: %s\n\n", out.ConfigFile)
	}

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		line := fmt.Sprintf("%s %s: %s", statusIcon(styles, check.Status), check.ID, check.Name)
		if check.IssueCount > 0 {
			line += fmt.Sprintf(" (%d issues)", check.IssueCount)
		}
		r.Println("   " + line)

		for i, detail := range check.Details {
			if i >= 3 {
				r.Println(styles.Muted.Render(fmt.Sprintf("       ... and %d more", len(check.Details)-3)))
				break
			}
			r.Println(styles.Muted.Render("       - " + detail))
		}
	}
	r.Println("")

	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	scoreStyle := styles.Success
	if out.Score < 70 {
		scoreStyle = styles.Warning
	}
	if out.Score < 50 {
		scoreStyle = styles.Error
	}
	r.Printf("   Health Score: %s\n", scoreStyle.Render(fmt.Sprintf("%d/100", out.Score)))
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println(styles.Header2.Render("Recommendations"))
		for i, rec := range out.Recommendations {
			r.Printf("   %d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) error {
	r.Println("# groupinfo Health Report")
	r.Println("")
	if out.ConfigFile != "" {
		r.Println(output.FormatKeyValue("Config", "`"+out.ConfigFile+"`"))
		r.Println("")
	}

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println("## " + titleCaser.String(currentGroup))
			r.Println("")
		}

		r.Printf("- **[%s]** %s: %s", strings.ToUpper(check.Status), check.ID, check.Name)
		if check.IssueCount > 0 {
			r.Printf(" (%d issues)", check.IssueCount)
		}
		r.Println("")

		for _, detail := range check.Details {
			r.Printf("  - %s\n", detail)
		}
	}
	r.Println("")

	r.Println("## Health Score")
	r.Println("")
	r.Printf("**%d/100**\n", out.Score)
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println("## Recommendations")
		r.Println("")
		for i, rec := range out.Recommendations {
			r.Printf("%d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}
