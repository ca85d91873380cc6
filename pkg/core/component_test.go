package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupComponent_UnmarshalJSON(t *testing.T) {
	src := `{
		"id": "frame",
		"name": null,
		"contributes": true,
		"hint": null,
		"values": [
			{"id": "function", "name": "function", "contributes": true, "hint": null, "values": ["main"]},
			"literal",
			17,
			{"key": "value"},
			[1, 2],
			true,
			null
		]
	}`

	var c GroupComponent
	require.NoError(t, json.Unmarshal([]byte(src), &c))

	assert.Equal(t, "frame", c.ID)
	assert.Empty(t, c.Name)
	assert.Empty(t, c.Hint)
	assert.True(t, c.Contributes)
	require.Len(t, c.Values, 7)

	child, ok := c.Values[0].(*GroupComponent)
	require.True(t, ok, "first value should be a component")
	assert.Equal(t, "function", child.Label())
	assert.Equal(t, []Value{Leaf{Raw: "main"}}, child.Values)

	for i := 1; i < 7; i++ {
		_, isLeaf := c.Values[i].(Leaf)
		assert.True(t, isLeaf, "value %d should be a leaf", i)
	}
	assert.Equal(t, json.Number("17"), c.Values[2].(Leaf).Raw)
}

func TestGroupComponent_UnmarshalJSON_MissingValues(t *testing.T) {
	var c GroupComponent
	require.NoError(t, json.Unmarshal([]byte(`{"id": "frame", "contributes": false}`), &c))

	assert.NotNil(t, c.Values)
	assert.Empty(t, c.Values)
	assert.True(t, c.IsDead())
}

func TestGroupComponent_UnmarshalJSON_InvalidValue(t *testing.T) {
	var c GroupComponent
	err := json.Unmarshal([]byte(`{"id": "frame", "values": [{"id": 3}]}`), &c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `component "frame" value 0`)
}

func TestGroupComponent_MarshalJSON(t *testing.T) {
	c := &GroupComponent{
		ID:          "exception",
		Contributes: true,
		Values: []Value{
			&GroupComponent{ID: "type", Contributes: true, Values: []Value{Leaf{Raw: "ValueError"}}},
			Leaf{Raw: json.Number("3")},
		},
	}

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "exception",
		"contributes": true,
		"values": [
			{"id": "type", "contributes": true, "values": ["ValueError"]},
			3
		]
	}`, string(out))
}

func TestGroupComponent_Label(t *testing.T) {
	assert.Equal(t, "symbol", (&GroupComponent{ID: "sym", Name: "symbol"}).Label())
	assert.Equal(t, "sym", (&GroupComponent{ID: "sym"}).Label())
}

func TestGroupComponent_IsDead(t *testing.T) {
	tests := []struct {
		name string
		c    GroupComponent
		want bool
	}{
		{"empty non-contributing", GroupComponent{ID: "x"}, true},
		{"contributing", GroupComponent{ID: "x", Contributes: true}, false},
		{"hint", GroupComponent{ID: "x", Hint: "why"}, false},
		{"values", GroupComponent{ID: "x", Values: []Value{Leaf{Raw: "a"}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.IsDead())
		})
	}
}

func TestLeaf_Text(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		want   string
		scalar bool
	}{
		{"string", "ValueError", "ValueError", true},
		{"json number", json.Number("1.50"), "1.50", true},
		{"int", 42, "42", true},
		{"float", 2.5, "2.5", true},
		{"bool", true, "true", false},
		{"null", nil, "null", false},
		{"array", []any{"a", json.Number("1")}, "[\n  \"a\",\n  1\n]", false},
		{"object sorted", map[string]any{"z": "1", "a": "2"}, "{\n  \"a\": \"2\",\n  \"z\": \"1\"\n}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Leaf{Raw: tt.raw}
			assert.Equal(t, tt.want, l.Text())
			assert.Equal(t, tt.scalar, l.IsScalar())
		})
	}
}
