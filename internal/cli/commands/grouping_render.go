package commands

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/FengLee1113/sentry/internal/cli/output"
	"github.com/FengLee1113/sentry/pkg/grouping"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func variantStatus(v grouping.RenderedVariant) string {
	if v.Contributes {
		return "contributing"
	}
	return "non-contributing"
}

// renderGroupingText outputs variants as styled trees.
func renderGroupingText(r *output.Renderer, variants []grouping.RenderedVariant, stats map[string]grouping.Stats, hidden int) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Grouping Info (%d variants)", len(variants))))
	r.Println("")

	for _, v := range variants {
		title := styles.Header2.Render(capitalizeFirst(v.Title))
		status := styles.Success.Render(variantStatus(v))
		if !v.Contributes {
			status = styles.Muted.Render(variantStatus(v))
		}
		r.Printf("%s  %s\n", title, status)

		if v.Hash != "" {
			r.Printf("  %s: %s\n", styles.Bold.Render("Hash"), v.Hash)
		}
		r.Printf("  %s: %s\n", styles.Bold.Render("Type"), v.Type)
		if v.Config != "" {
			r.Printf("  %s: %s\n", styles.Bold.Render("Config"), v.Config)
		}
		if v.Hint != "" {
			r.Println(styles.Hint.Render("  " + v.Hint))
		}
		if s, ok := stats[v.Key]; ok {
			r.Println(styles.Muted.Render(statsLine(s)))
		}

		if v.Tree != nil {
			r.Println("")
			for _, line := range strings.Split(strings.TrimRight(output.FormatTree(v.Tree, styles), "\n"), "\n") {
				r.Println("    " + line)
			}
		}
		r.Println("")
	}

	if hidden > 0 {
		r.Println(styles.Muted.Render(fmt.Sprintf("%d non-contributing variant(s) hidden, use --show-non-contributing to show them", hidden)))
		r.Println("")
	}
}

// renderGroupingMarkdown outputs variants as markdown sections with nested lists.
func renderGroupingMarkdown(r *output.Renderer, variants []grouping.RenderedVariant, stats map[string]grouping.Stats, hidden int) {
	r.Println(output.FormatHeader(1, "Grouping Info"))
	r.Println("")

	for _, v := range variants {
		r.Println(output.FormatHeader(2, capitalizeFirst(v.Title)))
		r.Println("")
		r.Println(output.FormatKeyValue("Key", "`"+v.Key+"`"))
		r.Println(output.FormatKeyValue("Status", variantStatus(v)))
		r.Println(output.FormatKeyValue("Type", v.Type))
		if v.Hash != "" {
			r.Println(output.FormatKeyValue("Hash", "`"+v.Hash+"`"))
		}
		if v.Config != "" {
			r.Println(output.FormatKeyValue("Config", v.Config))
		}
		if v.Hint != "" {
			r.Println(output.FormatKeyValue("Hint", v.Hint))
		}
		if s, ok := stats[v.Key]; ok {
			r.Println(output.FormatKeyValue("Components", strings.TrimSpace(statsLine(s))))
		}
		r.Println("")

		if v.Tree != nil {
			r.Printf("%s", output.FormatTreeMarkdown(v.Tree))
			r.Println("")
		}
	}

	if hidden > 0 {
		r.Printf("_%d non-contributing variant(s) hidden._\n", hidden)
	}
}

func statsLine(s grouping.Stats) string {
	return fmt.Sprintf("  %d contributing, %d non-contributing, %d empty, %d values, depth %d",
		s.Contributing, s.NonContributing, s.Dead, s.Leaves, s.Depth)
}

var upperCaser = cases.Upper(language.Und)

// capitalizeFirst upper-cases the first rune of s and keeps the rest as is.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upperCaser.String(s[:size]) + s[size:]
}
