package grouping

import (
	"github.com/FengLee1113/sentry/pkg/core"
)

// RenderedVariant is a grouping variant prepared for display.
type RenderedVariant struct {
	Key         string        `json:"key" yaml:"key"`
	Type        string        `json:"type" yaml:"type"`
	Title       string        `json:"title" yaml:"title"`
	Hash        string        `json:"hash,omitempty" yaml:"hash,omitempty"`
	Hint        string        `json:"hint,omitempty" yaml:"hint,omitempty"`
	Contributes bool          `json:"contributes" yaml:"contributes"`
	Config      string        `json:"config,omitempty" yaml:"config,omitempty"`
	Tree        *RenderedNode `json:"tree,omitempty" yaml:"tree,omitempty"`
}

// fingerprintLabel labels the values of custom fingerprint variants.
const fingerprintLabel = "fingerprint"

// RenderVariant renders a single grouping variant.
//
// Component variants render their tree. Custom fingerprint variants render
// their fingerprint values as an inline node. Other variants have no tree.
func RenderVariant(v *core.GroupingVariant, showNonContributing bool) RenderedVariant {
	rv := RenderedVariant{
		Key:         v.Key,
		Type:        string(v.Type),
		Title:       v.Title(),
		Hash:        v.Hash,
		Hint:        v.Hint,
		Contributes: v.Contributes,
	}
	if v.Config != nil {
		rv.Config = v.Config.ID
	}

	switch {
	case v.Type.HasComponent() && v.Component != nil:
		rv.Tree = Render(v.Component, showNonContributing)
	case v.Type == core.VariantCustomFingerprint:
		fp := &core.GroupComponent{
			ID:          fingerprintLabel,
			Contributes: v.Contributes,
			Values:      make([]core.Value, 0, len(v.Values)),
		}
		for _, s := range v.Values {
			fp.Values = append(fp.Values, core.Leaf{Raw: s})
		}
		rv.Tree = Render(fp, showNonContributing)
	}

	return rv
}

// RenderInfo renders every variant, keeping the input order.
// Non-contributing variants are skipped unless showNonContributing is set.
func RenderInfo(info core.GroupingInfo, showNonContributing bool) []RenderedVariant {
	out := make([]RenderedVariant, 0, len(info))
	for i := range info {
		if !showNonContributing && !info[i].Contributes {
			continue
		}
		out = append(out, RenderVariant(&info[i], showNonContributing))
	}
	return out
}
