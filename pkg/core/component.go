package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// =============================================================================
// Grouping components
// =============================================================================

// Value is one entry of a GroupComponent's value list.
// It is either a nested *GroupComponent or a Leaf.
type Value interface {
	isValue()
}

// GroupComponent is a node of the grouping diagnostics tree.
// Contributing components take part in computing the event fingerprint.
type GroupComponent struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	Hint        string  `json:"hint,omitempty"`
	Contributes bool    `json:"contributes"`
	Values      []Value `json:"values"`
}

func (*GroupComponent) isValue() {}

// Label returns the display label of the component: Name when set, ID otherwise.
func (c *GroupComponent) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// IsDead reports whether the component carries no diagnostic value at all:
// it does not contribute, has no hint and no values.
func (c *GroupComponent) IsDead() bool {
	return !c.Contributes && c.Hint == "" && len(c.Values) == 0
}

// UnmarshalJSON decodes a component, dispatching each raw value to either a
// nested component or a leaf. A missing or null values list decodes as empty.
func (c *GroupComponent) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          string            `json:"id"`
		Name        *string           `json:"name"`
		Hint        *string           `json:"hint"`
		Contributes bool              `json:"contributes"`
		Values      []json.RawMessage `json:"values"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.ID = raw.ID
	c.Name = deref(raw.Name)
	c.Hint = deref(raw.Hint)
	c.Contributes = raw.Contributes
	c.Values = make([]Value, 0, len(raw.Values))

	for i, rv := range raw.Values {
		v, err := decodeValue(rv)
		if err != nil {
			return fmt.Errorf("component %q value %d: %w", c.Label(), i, err)
		}
		c.Values = append(c.Values, v)
	}
	return nil
}

// MarshalJSON encodes the component with its values in order.
func (c *GroupComponent) MarshalJSON() ([]byte, error) {
	values := make([]any, 0, len(c.Values))
	for _, v := range c.Values {
		switch tv := v.(type) {
		case *GroupComponent:
			values = append(values, tv)
		case Leaf:
			values = append(values, tv.Raw)
		}
	}
	type alias struct {
		ID          string `json:"id"`
		Name        string `json:"name,omitempty"`
		Hint        string `json:"hint,omitempty"`
		Contributes bool   `json:"contributes"`
		Values      []any  `json:"values"`
	}
	return json.Marshal(alias{
		ID:          c.ID,
		Name:        c.Name,
		Hint:        c.Hint,
		Contributes: c.Contributes,
		Values:      values,
	})
}

// decodeValue turns one raw JSON value into a Value.
// Objects carrying an "id" key are components; everything else is a leaf.
func decodeValue(data json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, err
		}
		if _, ok := probe["id"]; ok {
			child := &GroupComponent{}
			if err := json.Unmarshal(trimmed, child); err != nil {
				return nil, err
			}
			return child, nil
		}
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return Leaf{Raw: v}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// =============================================================================
// Leaf
// =============================================================================

// Leaf is a terminal value of the grouping tree: a string, a number or an
// arbitrary structured value.
type Leaf struct {
	Raw any
}

func (Leaf) isValue() {}

// IsScalar reports whether the leaf is a string or a number.
func (l Leaf) IsScalar() bool {
	switch l.Raw.(type) {
	case string, json.Number, int, int64, float64:
		return true
	default:
		return false
	}
}

// Text returns the display text of the leaf. Strings and numbers are shown
// as-is; other values are rendered as indented JSON with sorted keys.
func (l Leaf) Text() string {
	switch v := l.Raw.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case int, int64, float64:
		return fmt.Sprint(v)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l.Raw); err != nil {
		return fmt.Sprintf("%v", l.Raw)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
