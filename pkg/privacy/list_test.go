package privacy

import (
	"testing"

	"github.com/FengLee1113/sentry/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = []core.ScrubRule{
	{ID: "1", Method: core.MethodMask, Type: core.RuleTypeCreditCard, Source: "$message"},
	{ID: "2", Method: core.MethodRemove, Type: core.RuleTypeIP, Source: "$user.ip_address"},
	{ID: "3", Method: core.MethodReplace, Type: core.RuleTypePattern, Source: "extra.token", Pattern: `[a-f0-9]{32}`},
}

func TestSummary(t *testing.T) {
	got := Summary(testRules[0], DefaultLabels(), NewPrinter("en"))
	assert.Equal(t, "[Mask] [Credit card numbers] from [$message]", got)
}

func TestSummary_Localized(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"de", "[Remove] [IP addresses] aus [$user.ip_address]"},
		{"fr-CA", "[Remove] [IP addresses] de [$user.ip_address]"},
		{"ja", "[Remove] [IP addresses] from [$user.ip_address]"},
		{"", "[Remove] [IP addresses] from [$user.ip_address]"},
		{"not a tag!", "[Remove] [IP addresses] from [$user.ip_address]"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(testRules[1], DefaultLabels(), NewPrinter(tt.lang)))
		})
	}
}

func TestCatalog_AllLanguagesRegistered(t *testing.T) {
	assert.NotPanics(t, func() { newCatalog() })
	for _, tag := range SupportedLanguages {
		assert.Contains(t, Catalog.Languages(), tag)
	}
}

func TestSummary_NilPrinter(t *testing.T) {
	got := Summary(testRules[2], DefaultLabels(), nil)
	assert.Equal(t, "[Replace] [Regex matches] from [extra.token]", got)
}

func TestLabels_UnknownFallsBackToRaw(t *testing.T) {
	labels := DefaultLabels()
	assert.Equal(t, "shred", labels.MethodLabel(core.MethodType("shred")))
	assert.Equal(t, "ssn", labels.TypeLabel(core.RuleType("ssn")))
}

func TestLabels_WithOverrides(t *testing.T) {
	base := DefaultLabels()
	labels := base.WithOverrides(
		map[string]string{"mask": "Redact", "bogus": "ignored"},
		map[string]string{"creditcard": "Cards", "ip": ""},
	)

	assert.Equal(t, "Redact", labels.MethodLabel(core.MethodMask))
	assert.Equal(t, "Cards", labels.TypeLabel(core.RuleTypeCreditCard))
	assert.Equal(t, "IP addresses", labels.TypeLabel(core.RuleTypeIP))
	assert.Equal(t, "Mask", base.MethodLabel(core.MethodMask), "base labels must not change")
}

func TestBuildList_NoActions(t *testing.T) {
	rows := BuildList(testRules, DefaultLabels(), NewPrinter("en"), Actions{})

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, testRules[i].ID, row.Key)
		assert.Empty(t, row.Actions)
		assert.False(t, row.Edit())
		assert.False(t, row.Delete())
	}
	assert.Equal(t, "Regex matches", rows[2].Type)
}

func TestBuildList_ActionsBoundToRuleID(t *testing.T) {
	var edited, deleted []string
	actions := Actions{
		OnEdit: func(id string) func() {
			return func() { edited = append(edited, id) }
		},
		OnDelete: func(id string) func() {
			return func() { deleted = append(deleted, id) }
		},
	}

	rows := BuildList(testRules, DefaultLabels(), nil, actions)

	require.Len(t, rows, 3)
	assert.Equal(t, []Action{ActionEdit, ActionDelete}, rows[0].Actions)

	assert.True(t, rows[1].Edit())
	assert.True(t, rows[2].Delete())
	assert.True(t, rows[0].Delete())

	assert.Equal(t, []string{"2"}, edited)
	assert.Equal(t, []string{"3", "1"}, deleted)
}

func TestBuildList_OnlyDelete(t *testing.T) {
	actions := Actions{OnDelete: func(string) func() { return func() {} }}

	rows := BuildList(testRules[:1], DefaultLabels(), nil, actions)

	require.Len(t, rows, 1)
	assert.Equal(t, []Action{ActionDelete}, rows[0].Actions)
	assert.False(t, rows[0].Edit())
}

func TestBuildList_Empty(t *testing.T) {
	rows := BuildList(nil, DefaultLabels(), nil, Actions{})
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
