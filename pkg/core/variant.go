package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// Grouping variants
// =============================================================================

// VariantType identifies how a grouping variant computes its hash.
type VariantType string

// Variant types reported by the grouping engine.
const (
	VariantComponent         VariantType = "component"
	VariantCustomFingerprint VariantType = "custom-fingerprint"
	VariantSaltedComponent   VariantType = "salted-component"
	VariantChecksum          VariantType = "checksum"
	VariantFallback          VariantType = "fallback"
)

// HasComponent reports whether variants of this type carry a component tree.
func (t VariantType) HasComponent() bool {
	return t == VariantComponent || t == VariantSaltedComponent
}

// GroupingConfig names the grouping strategy configuration used by a variant.
type GroupingConfig struct {
	ID string `json:"id"`
}

// GroupingVariant is one of the alternative ways the server grouped an event.
type GroupingVariant struct {
	Key         string          `json:"key"`
	Type        VariantType     `json:"type"`
	Description string          `json:"description,omitempty"`
	Hash        string          `json:"hash,omitempty"`
	Hint        string          `json:"hint,omitempty"`
	Contributes bool            `json:"contributes"`
	Config      *GroupingConfig `json:"config,omitempty"`
	Component   *GroupComponent `json:"component,omitempty"`
	Values      []string        `json:"values,omitempty"`
}

// Title returns a human-readable title for the variant.
func (v *GroupingVariant) Title() string {
	if v.Description != "" {
		return v.Description
	}
	return strings.ReplaceAll(v.Key, "_", " ")
}

// GroupingInfo is the full set of grouping variants of an event, ordered for display.
type GroupingInfo []GroupingVariant

// Variant returns the variant with the given key.
func (g GroupingInfo) Variant(key string) (*GroupingVariant, bool) {
	for i := range g {
		if g[i].Key == key {
			return &g[i], true
		}
	}
	return nil, false
}

// Keys returns the variant keys in display order.
func (g GroupingInfo) Keys() []string {
	keys := make([]string, len(g))
	for i, v := range g {
		keys[i] = v.Key
	}
	return keys
}

// UnmarshalJSON decodes the server's map of variant key to variant and
// orders the variants: contributing variants first, then by key.
func (g *GroupingInfo) UnmarshalJSON(data []byte) error {
	var raw map[string]*GroupingVariant
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode grouping info: %w", err)
	}

	variants := make(GroupingInfo, 0, len(raw))
	for key, v := range raw {
		if v == nil {
			continue
		}
		if v.Key == "" {
			v.Key = key
		}
		variants = append(variants, *v)
	}
	SortVariants(variants)

	*g = variants
	return nil
}

// SortVariants orders variants for display: contributing first, then by key.
func SortVariants(variants []GroupingVariant) {
	sort.SliceStable(variants, func(i, j int) bool {
		if variants[i].Contributes != variants[j].Contributes {
			return variants[i].Contributes
		}
		return variants[i].Key < variants[j].Key
	})
}
