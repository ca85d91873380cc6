package grouping

import (
	"github.com/FengLee1113/sentry/pkg/core"
)

// Layout is the presentation hint for a node's children.
type Layout string

// Layout modes.
const (
	LayoutInline Layout = "inline"
	LayoutBlock  Layout = "block"
)

// RenderedNode is a component after filtering, annotated for display.
type RenderedNode struct {
	Label        string          `json:"label" yaml:"label"`
	Hint         string          `json:"hint,omitempty" yaml:"hint,omitempty"`
	Contributing bool            `json:"contributing" yaml:"contributing"`
	Layout       Layout          `json:"layout" yaml:"layout"`
	Children     []RenderedChild `json:"children" yaml:"children"`
}

// RenderedChild is one displayed entry of a node. Exactly one field is set.
type RenderedChild struct {
	Node *RenderedNode `json:"node,omitempty" yaml:"node,omitempty"`
	Leaf *RenderedLeaf `json:"leaf,omitempty" yaml:"leaf,omitempty"`
}

// RenderedLeaf is a displayed terminal value.
type RenderedLeaf struct {
	Type       string `json:"type" yaml:"type"`
	Text       string `json:"text" yaml:"text"`
	Emphasized bool   `json:"emphasized,omitempty" yaml:"emphasized,omitempty"`
}

// emphasizedTypes are value types drawn with extra weight.
var emphasizedTypes = map[string]bool{
	"function": true,
	"symbol":   true,
}

// Render filters and annotates a component tree.
//
// A nil component renders as an empty block node.
func Render(c *core.GroupComponent, showNonContributing bool) *RenderedNode {
	if c == nil {
		return &RenderedNode{Layout: LayoutBlock, Children: []RenderedChild{}}
	}

	label := c.Label()
	node := &RenderedNode{
		Label:        label,
		Hint:         c.Hint,
		Contributing: c.Contributes,
		Layout:       LayoutBlock,
		Children:     make([]RenderedChild, 0, len(c.Values)),
	}
	if ShouldInline(c) {
		node.Layout = LayoutInline
	}

	for _, v := range c.Values {
		switch tv := v.(type) {
		case *core.GroupComponent:
			if !Visible(tv, showNonContributing) {
				continue
			}
			node.Children = append(node.Children, RenderedChild{Node: Render(tv, showNonContributing)})
		case core.Leaf:
			node.Children = append(node.Children, RenderedChild{Leaf: &RenderedLeaf{
				Type:       label,
				Text:       tv.Text(),
				Emphasized: emphasizedTypes[label],
			}})
		}
	}

	return node
}

// Visible reports whether a child component is displayed.
// Dead components are never shown; other non-contributing components are
// shown only when showNonContributing is set.
func Visible(c *core.GroupComponent, showNonContributing bool) bool {
	if c == nil || c.IsDead() {
		return false
	}
	if !showNonContributing && !c.Contributes {
		return false
	}
	return true
}

// ShouldInline reports whether every value of the component is a leaf.
// It looks at the unfiltered values and never affects filtering.
func ShouldInline(c *core.GroupComponent) bool {
	if c == nil {
		return false
	}
	for _, v := range c.Values {
		if _, ok := v.(*core.GroupComponent); ok {
			return false
		}
	}
	return true
}
