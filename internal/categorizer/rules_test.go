package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowpay/flowpay/internal/logging"
)

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `categories:
  - name: Software
    keywords: ["github", "jetbrains"]
  - name: Marketing
    keywords: ["linkedin"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	rules, err := LoadRules(path, &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "Software", rules[0].Name)
	assert.Equal(t, []string{"github", "jetbrains"}, rules[0].Keywords)
	assert.Equal(t, "Marketing", rules[1].Name)
}

func TestLoadRulesMissingFile(t *testing.T) {
	rules, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"), &logging.MockLogger{})
	require.NoError(t, err)
	assert.Nil(t, rules)
}

func TestLoadRulesEmptyFilename(t *testing.T) {
	rules, err := LoadRules("", &logging.MockLogger{})
	require.NoError(t, err)
	assert.Nil(t, rules)
}

func TestLoadRulesMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [unclosed"), 0600))

	_, err := LoadRules(path, &logging.MockLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse rules file")
}
