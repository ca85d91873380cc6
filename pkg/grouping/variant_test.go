package grouping

import (
	"encoding/json"
	"testing"

	"github.com/FengLee1113/sentry/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groupingInfoJSON = `{
	"app": {
		"type": "component",
		"description": "in-app exception stack-trace",
		"contributes": false,
		"hint": "none of the frames are in-app",
		"config": {"id": "newstyle:2019-10-29"},
		"component": {"id": "app", "contributes": false, "values": []}
	},
	"system": {
		"type": "component",
		"description": "exception stack-trace",
		"hash": "c4a4b1a5d2e8b3f1a0f9c8e7d6b5a493",
		"contributes": true,
		"config": {"id": "newstyle:2019-10-29"},
		"component": {"id": "system", "contributes": true, "values": [
			{"id": "exception", "contributes": true, "values": [
				{"id": "type", "contributes": true, "values": ["ValueError"]}
			]}
		]}
	},
	"custom": {
		"type": "custom-fingerprint",
		"contributes": true,
		"values": ["{{ default }}", "database"]
	},
	"fallback": {
		"type": "fallback",
		"contributes": false
	}
}`

func decodeInfo(t *testing.T) core.GroupingInfo {
	t.Helper()
	var info core.GroupingInfo
	require.NoError(t, json.Unmarshal([]byte(groupingInfoJSON), &info))
	return info
}

func TestRenderInfo_HidesNonContributingVariants(t *testing.T) {
	info := decodeInfo(t)

	got := RenderInfo(info, false)

	require.Len(t, got, 2)
	assert.Equal(t, "custom", got[0].Key)
	assert.Equal(t, "system", got[1].Key)
}

func TestRenderInfo_ShowsAllVariants(t *testing.T) {
	info := decodeInfo(t)

	got := RenderInfo(info, true)

	keys := make([]string, 0, len(got))
	for _, v := range got {
		keys = append(keys, v.Key)
	}
	assert.Equal(t, []string{"custom", "system", "app", "fallback"}, keys)
}

func TestRenderVariant_Component(t *testing.T) {
	info := decodeInfo(t)
	v, ok := info.Variant("system")
	require.True(t, ok)

	got := RenderVariant(v, true)

	assert.Equal(t, "exception stack-trace", got.Title)
	assert.Equal(t, "newstyle:2019-10-29", got.Config)
	require.NotNil(t, got.Tree)
	assert.Equal(t, "system", got.Tree.Label)
	require.Len(t, got.Tree.Children, 1)
	assert.Equal(t, "exception", got.Tree.Children[0].Node.Label)
}

func TestRenderVariant_CustomFingerprint(t *testing.T) {
	info := decodeInfo(t)
	v, ok := info.Variant("custom")
	require.True(t, ok)

	got := RenderVariant(v, false)

	require.NotNil(t, got.Tree)
	assert.Equal(t, LayoutInline, got.Tree.Layout)
	require.Len(t, got.Tree.Children, 2)
	assert.Equal(t, "{{ default }}", got.Tree.Children[0].Leaf.Text)
	assert.Equal(t, "fingerprint", got.Tree.Children[1].Leaf.Type)
}

func TestRenderVariant_NoTree(t *testing.T) {
	info := decodeInfo(t)
	v, ok := info.Variant("fallback")
	require.True(t, ok)

	got := RenderVariant(v, true)

	assert.Nil(t, got.Tree)
	assert.Equal(t, "fallback", got.Title)
}

func TestCount(t *testing.T) {
	var c core.GroupComponent
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "exception", "contributes": true, "values": [
			{"id": "type", "contributes": true, "values": ["ValueError"]},
			{"id": "value", "contributes": false, "hint": "ignored", "values": ["bad"]},
			{"id": "stacktrace", "contributes": false, "values": []}
		]
	}`), &c))

	got := Count(&c)

	assert.Equal(t, Stats{Contributing: 2, NonContributing: 1, Dead: 1, Leaves: 2, Depth: 2}, got)
	assert.Equal(t, Stats{}, Count(nil))
}
