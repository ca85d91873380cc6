package commands

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FengLee1113/sentry/internal/cli/testutil"
	"github.com/FengLee1113/sentry/pkg/privacy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func rulesFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(testutil.SetupTestProject(t), "rules.yaml")
}

func TestRulesCommand_Markdown(t *testing.T) {
	out, err := execute(t, NewRulesCommand(), rulesFile(t))
	require.NoError(t, err)

	assert.Contains(t, out, "# Data Scrubbing Rules")
	assert.Contains(t, out, "- `1` [Mask] [Credit card numbers] from [$message]")
	assert.Contains(t, out, "- `2` [Remove] [IP addresses] from [$user.ip_address]")
	assert.NotContains(t, out, "(edit")
	testutil.AssertValidMarkdown(t, out)
	testutil.AssertNoANSI(t, out)
}

func TestRulesCommand_KeepsOrder(t *testing.T) {
	out, err := execute(t, NewRulesCommand(), rulesFile(t))
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Credit card"), strings.Index(out, "IP addresses"))
}

func TestRulesCommand_ShowActions(t *testing.T) {
	out, err := execute(t, NewRulesCommand(), rulesFile(t), "--show-actions")
	require.NoError(t, err)
	assert.Contains(t, out, "from [$message] (edit, delete)")
}

func TestRulesCommand_Text(t *testing.T) {
	out, err := execute(t, NewRulesCommand(), rulesFile(t), "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Data Scrubbing Rules (2)")
	assert.Contains(t, out, "[Mask] [Credit card numbers] from [$message]")
	assert.Contains(t, out, "ID")
	testutil.AssertNoANSI(t, out)
}

func TestRulesCommand_JSON(t *testing.T) {
	out, err := execute(t, NewRulesCommand(), rulesFile(t), "--format", "json", "--show-actions")
	require.NoError(t, err)

	var result RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Rules, 2)
	assert.Equal(t, "1", result.Rules[0].Key)
	assert.Equal(t, "Mask", result.Rules[0].Method)
	assert.Equal(t, []privacy.Action{privacy.ActionEdit, privacy.ActionDelete}, result.Rules[0].Actions)
}

func TestRulesCommand_YAML(t *testing.T) {
	out, err := execute(t, NewRulesCommand(), rulesFile(t), "-f", "yaml")
	require.NoError(t, err)

	var result RulesJSONOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "[Remove] [IP addresses] from [$user.ip_address]", result.Rules[1].Summary)
}

func TestRulesCommand_Filters(t *testing.T) {
	t.Run("by method", func(t *testing.T) {
		out, err := execute(t, NewRulesCommand(), rulesFile(t), "--method", "remove")
		require.NoError(t, err)
		assert.Contains(t, out, "IP addresses")
		assert.NotContains(t, out, "Credit card")
	})

	t.Run("by type", func(t *testing.T) {
		out, err := execute(t, NewRulesCommand(), rulesFile(t), "--type", "creditcard")
		require.NoError(t, err)
		assert.Contains(t, out, "Credit card")
		assert.NotContains(t, out, "IP addresses")
	})

	t.Run("invalid method", func(t *testing.T) {
		_, err := execute(t, NewRulesCommand(), rulesFile(t), "--method", "shred")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shred")
	})

	t.Run("no match", func(t *testing.T) {
		out, err := execute(t, NewRulesCommand(), rulesFile(t), "--method", "hash")
		require.NoError(t, err)
		assert.Contains(t, out, "_No rules_")
	})
}

func TestRulesCommand_ShowRule(t *testing.T) {
	out, err := execute(t, NewRulesCommand(), rulesFile(t), "--id", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "# Rule 2")
	assert.Contains(t, out, "- **Method:** Remove")
	assert.Contains(t, out, "- **Source:** `$user.ip_address`")
}

func TestRulesCommand_ShowRuleNotFound(t *testing.T) {
	_, err := execute(t, NewRulesCommand(), rulesFile(t), "--id", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `rule "42" not found`)
}

func TestRulesCommand_Localized(t *testing.T) {
	t.Setenv("GROUPINFO_LANGUAGE", "de")
	out, err := execute(t, NewRulesCommand(), rulesFile(t))
	require.NoError(t, err)
	assert.Contains(t, out, "[Mask] [Credit card numbers] aus [$message]")
}

func TestRulesCommand_Stdin(t *testing.T) {
	cmd := NewRulesCommand()
	cmd.SetIn(strings.NewReader(testutil.RulesYAML))
	out, err := execute(t, cmd, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Credit card numbers")
}

func TestRulesCommand_MissingFile(t *testing.T) {
	_, err := execute(t, NewRulesCommand(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRulesCommand_NoInput(t *testing.T) {
	_, err := execute(t, NewRulesCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rules file given")
}
