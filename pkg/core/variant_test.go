package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupingInfo_UnmarshalJSON(t *testing.T) {
	src := `{
		"system": {"type": "component", "contributes": true, "description": "exception stack-trace",
			"component": {"id": "system", "contributes": true, "values": []}},
		"app": {"type": "component", "contributes": false, "hint": "none of the frames are in-app",
			"component": {"id": "app", "contributes": false, "values": []}},
		"custom_fingerprint": {"type": "custom-fingerprint", "contributes": true, "values": ["a", "b"]},
		"ignored": null
	}`

	var info GroupingInfo
	require.NoError(t, json.Unmarshal([]byte(src), &info))

	assert.Equal(t, []string{"custom_fingerprint", "system", "app"}, info.Keys())

	v, ok := info.Variant("custom_fingerprint")
	require.True(t, ok)
	assert.Equal(t, VariantCustomFingerprint, v.Type)
	assert.Equal(t, []string{"a", "b"}, v.Values)
	assert.Equal(t, "custom fingerprint", v.Title())

	v, ok = info.Variant("system")
	require.True(t, ok)
	assert.Equal(t, "exception stack-trace", v.Title())
	require.NotNil(t, v.Component)
	assert.True(t, v.Type.HasComponent())

	_, ok = info.Variant("missing")
	assert.False(t, ok)
}

func TestGroupingInfo_UnmarshalJSON_Invalid(t *testing.T) {
	var info GroupingInfo
	err := json.Unmarshal([]byte(`["not", "a", "map"]`), &info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode grouping info")
}

func TestVariantType_HasComponent(t *testing.T) {
	assert.True(t, VariantComponent.HasComponent())
	assert.True(t, VariantSaltedComponent.HasComponent())
	assert.False(t, VariantCustomFingerprint.HasComponent())
	assert.False(t, VariantChecksum.HasComponent())
	assert.False(t, VariantFallback.HasComponent())
}
