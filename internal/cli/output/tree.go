package output

import (
	"strings"

	"github.com/FengLee1113/sentry/pkg/grouping"
)

// treeIndent is the indentation of one tree level.
const treeIndent = "  "

// FormatTree formats a rendered grouping tree as styled text, one component
// per line. Inline components list their values after the label; block
// components put each value on its own line.
func FormatTree(node *grouping.RenderedNode, styles Styles) string {
	var sb strings.Builder
	writeTextNode(&sb, node, styles, 0)
	return sb.String()
}

func writeTextNode(sb *strings.Builder, node *grouping.RenderedNode, styles Styles, depth int) {
	if node == nil {
		return
	}
	indent := strings.Repeat(treeIndent, depth)

	label := node.Label
	if node.Contributing {
		label = styles.Bold.Render(label)
	} else {
		label = styles.NonContributing.Render(label)
	}
	sb.WriteString(indent)
	sb.WriteString(label)
	if node.Hint != "" {
		sb.WriteString(styles.Hint.Render(" (" + node.Hint + ")"))
	}

	if node.Layout == grouping.LayoutInline {
		for _, ch := range node.Children {
			if ch.Leaf == nil {
				continue
			}
			sb.WriteString(" ")
			sb.WriteString(leafText(ch.Leaf, node.Contributing, styles, indent+treeIndent))
		}
		sb.WriteString("\n")
		return
	}

	sb.WriteString("\n")
	for _, ch := range node.Children {
		switch {
		case ch.Node != nil:
			writeTextNode(sb, ch.Node, styles, depth+1)
		case ch.Leaf != nil:
			sb.WriteString(indent + treeIndent)
			sb.WriteString(leafText(ch.Leaf, node.Contributing, styles, indent+treeIndent))
			sb.WriteString("\n")
		}
	}
}

// leafText styles a value. Multi-line values continue at the given indent.
func leafText(leaf *grouping.RenderedLeaf, contributing bool, styles Styles, indent string) string {
	style := styles.Value
	switch {
	case !contributing:
		style = styles.NonContributing
	case leaf.Emphasized:
		style = styles.Symbol
	}

	lines := strings.Split(leaf.Text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n"+indent)
}

// FormatTreeMarkdown formats a rendered grouping tree as a nested markdown list.
// Non-contributing labels are italic; values are inline code, or fenced
// blocks when they span several lines.
func FormatTreeMarkdown(node *grouping.RenderedNode) string {
	var sb strings.Builder
	writeMarkdownNode(&sb, node, 0)
	return sb.String()
}

func writeMarkdownNode(sb *strings.Builder, node *grouping.RenderedNode, depth int) {
	if node == nil {
		return
	}
	indent := strings.Repeat(treeIndent, depth)

	label := "**" + node.Label + "**"
	if !node.Contributing {
		label = "_" + node.Label + "_"
	}
	sb.WriteString(indent + "- " + label)
	if node.Hint != "" {
		sb.WriteString(" (" + node.Hint + ")")
	}

	var blocks []string
	if node.Layout == grouping.LayoutInline {
		for _, ch := range node.Children {
			if ch.Leaf == nil {
				continue
			}
			if strings.Contains(ch.Leaf.Text, "\n") {
				blocks = append(blocks, ch.Leaf.Text)
				continue
			}
			sb.WriteString(" " + markdownCode(ch.Leaf.Text))
		}
		sb.WriteString("\n")
		writeFences(sb, blocks, indent+treeIndent)
		return
	}

	sb.WriteString("\n")
	for _, ch := range node.Children {
		switch {
		case ch.Node != nil:
			writeMarkdownNode(sb, ch.Node, depth+1)
		case ch.Leaf != nil:
			if strings.Contains(ch.Leaf.Text, "\n") {
				writeFences(sb, []string{ch.Leaf.Text}, indent+treeIndent)
				continue
			}
			sb.WriteString(indent + treeIndent + "- " + markdownCode(ch.Leaf.Text) + "\n")
		}
	}
}

func writeFences(sb *strings.Builder, blocks []string, indent string) {
	for _, block := range blocks {
		sb.WriteString(indent + "```json\n")
		for _, line := range strings.Split(block, "\n") {
			sb.WriteString(indent + line + "\n")
		}
		sb.WriteString(indent + "```\n")
	}
}

// markdownCode wraps s in a code span, widening the fence when s contains backticks.
func markdownCode(s string) string {
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}
