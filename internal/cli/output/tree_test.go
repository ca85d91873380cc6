package output

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/FengLee1113/sentry/pkg/grouping"
)

func plainStyles() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyles(r)
}

func sampleTree() *grouping.RenderedNode {
	return &grouping.RenderedNode{
		Label:        "exception",
		Contributing: true,
		Layout:       grouping.LayoutBlock,
		Children: []grouping.RenderedChild{
			{Node: &grouping.RenderedNode{
				Label:        "type",
				Contributing: true,
				Layout:       grouping.LayoutInline,
				Children: []grouping.RenderedChild{
					{Leaf: &grouping.RenderedLeaf{Type: "type", Text: "ValueError"}},
				},
			}},
			{Node: &grouping.RenderedNode{
				Label:  "value",
				Hint:   "stacktrace takes precedence",
				Layout: grouping.LayoutInline,
				Children: []grouping.RenderedChild{
					{Leaf: &grouping.RenderedLeaf{Type: "value", Text: "bad `input`"}},
				},
			}},
			{Leaf: &grouping.RenderedLeaf{Type: "exception", Text: "{\n  \"a\": 1\n}"}},
		},
	}
}

func TestFormatTree(t *testing.T) {
	got := FormatTree(sampleTree(), plainStyles())

	want := "exception\n" +
		"  type ValueError\n" +
		"  value (stacktrace takes precedence) bad `input`\n" +
		"  {\n" +
		"    \"a\": 1\n" +
		"  }\n"
	assert.Equal(t, want, got)
}

func TestFormatTree_Nil(t *testing.T) {
	assert.Empty(t, FormatTree(nil, plainStyles()))
}

func TestFormatTreeMarkdown(t *testing.T) {
	got := FormatTreeMarkdown(sampleTree())

	want := "- **exception**\n" +
		"  - **type** `ValueError`\n" +
		"  - _value_ (stacktrace takes precedence) `` bad `input` ``\n" +
		"  ```json\n" +
		"  {\n" +
		"    \"a\": 1\n" +
		"  }\n" +
		"  ```\n"
	assert.Equal(t, want, got)
}

func TestMarkdownCode(t *testing.T) {
	assert.Equal(t, "`plain`", markdownCode("plain"))
	assert.Equal(t, "``a`b``", markdownCode("a`b"))
	assert.Equal(t, "`` `tick` ``", markdownCode("`tick`"))
}
