package tui

import (
	"fmt"
	"strings"

	"github.com/FengLee1113/sentry/internal/cli/output"
	"github.com/FengLee1113/sentry/pkg/core"
	"github.com/FengLee1113/sentry/pkg/grouping"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.header())
	sb.WriteString("\n\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) header() string {
	tabs := []string{"grouping", "rules"}
	for i, t := range tabs {
		if Page(i) == m.page {
			tabs[i] = m.styles.Header2.Render("[" + titleCaser.String(t) + "]")
		} else {
			tabs[i] = m.styles.Muted.Render(" " + titleCaser.String(t) + " ")
		}
	}
	line := strings.Join(tabs, " ")

	if m.page == PageGrouping && len(m.info) > 0 {
		line += m.styles.Muted.Render(fmt.Sprintf("  variant %d/%d", m.variant+1, len(m.info)))
	}
	if m.show {
		line += m.styles.Muted.Render("  showing non-contributing")
	}
	return line
}

func (m Model) groupingContent() string {
	if len(m.info) == 0 {
		return m.styles.Muted.Render("No grouping info")
	}

	v := grouping.RenderVariant(&m.info[m.variant], m.show)

	var sb strings.Builder
	status := m.styles.Success.Render("contributing")
	if !v.Contributes {
		status = m.styles.Muted.Render("non-contributing")
	}
	fmt.Fprintf(&sb, "%s  %s\n", m.styles.Header1.Render(titleCaser.String(v.Title)), status)
	if v.Hash != "" {
		fmt.Fprintf(&sb, "%s: %s\n", m.styles.Bold.Render("Hash"), v.Hash)
	}
	fmt.Fprintf(&sb, "%s: %s\n", m.styles.Bold.Render("Type"), v.Type)
	if v.Config != "" {
		fmt.Fprintf(&sb, "%s: %s\n", m.styles.Bold.Render("Config"), v.Config)
	}
	if v.Hint != "" {
		sb.WriteString(m.styles.Hint.Render(v.Hint))
		sb.WriteString("\n")
	}
	if v.Tree != nil {
		sb.WriteString("\n")
		sb.WriteString(output.FormatTree(v.Tree, m.styles))
	}
	return sb.String()
}

func (m Model) rulesContent() string {
	rows := m.rows()
	if len(rows) == 0 {
		return m.styles.Muted.Render("No rules")
	}

	var sb strings.Builder
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Symbol.Render("> ")
		}
		fmt.Fprintf(&sb, "%s%s\n", cursor, row.Summary)
	}

	if id := m.state.inspected; id != "" {
		for _, rule := range m.state.rules {
			if rule.ID == id {
				sb.WriteString("\n")
				sb.WriteString(m.ruleDetail(rule))
				break
			}
		}
	}

	if n := len(m.state.deleted); n > 0 {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Warning.Render(fmt.Sprintf("%d rule(s) deleted in this session (not saved)", n)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) ruleDetail(rule core.ScrubRule) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header2.Render("Rule " + rule.ID))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %s: %s\n", m.styles.Bold.Render("Method"), m.labels.MethodLabel(rule.Method))
	fmt.Fprintf(&sb, "  %s: %s\n", m.styles.Bold.Render("Type"), m.labels.TypeLabel(rule.Type))
	fmt.Fprintf(&sb, "  %s: %s\n", m.styles.Bold.Render("Source"), rule.Source)
	if rule.Pattern != "" {
		fmt.Fprintf(&sb, "  %s: %s\n", m.styles.Bold.Render("Pattern"), rule.Pattern)
	}
	if rule.Placeholder != "" {
		fmt.Fprintf(&sb, "  %s: %s\n", m.styles.Bold.Render("Placeholder"), rule.Placeholder)
	}
	return sb.String()
}
