package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hibzzgames/testkit/suiterun"
)

func TestReadDefaults(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"testkit"}))

	assert.Equal(t, defaultConfigPath, p.configPath)
	assert.Equal(t, -1, p.detailDepth)
	assert.False(t, p.noColor)
	assert.False(t, p.withFailures)
	assert.Empty(t, p.explicit)
}

func TestReadFlags(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{
		"testkit", "-depth", "2", "-no-color", "-run", "^arithmetic/", "-skip", "slow",
	}))

	assert.Equal(t, 2, p.detailDepth)
	assert.True(t, p.noColor)
	assert.True(t, p.filters.AsFilter(caseID("arithmetic", "sorting")))
	assert.False(t, p.filters.AsFilter(caseID("strings", "splitting")))
	assert.False(t, p.filters.AsFilter(caseID("arithmetic", "slow division")))
}

func TestReadRejectsBadFlag(t *testing.T) {
	var p commandParams
	assert.False(t, p.Read([]string{"testkit", "-depth", "lots"}))
}

func TestFileConfigFillsUnsetFlags(t *testing.T) {
	path := writeConfig(t, "detailDepth: 3\nnoColor: true\nskip:\n  - ^showcase/\n")

	var p commandParams
	require.True(t, p.Read([]string{"testkit", "-config", path, "-depth", "1"}))

	cfg, err := loadFileConfig(p.configPath, true)
	require.NoError(t, err)
	require.NoError(t, p.applyFile(cfg))

	assert.Equal(t, 1, p.detailDepth, "explicit flag wins over config file")
	assert.True(t, p.noColor, "config file fills in unset flags")
	assert.False(t, p.filters.AsFilter(caseID("showcase", "blocked requirements")))
}

func TestMissingConfigIsOnlyAnErrorWhenExplicit(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yml")

	_, err := loadFileConfig(missing, false)
	assert.NoError(t, err)

	_, err = loadFileConfig(missing, true)
	assert.Error(t, err)
}

func TestLoadFileConfigRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "detailDepth: [not an int\n")
	_, err := loadFileConfig(path, true)
	assert.Error(t, err)
}

func TestRerunCommandQuotesArguments(t *testing.T) {
	results := suiterun.Results{Failures: []suiterun.CaseResult{
		{ID: caseID("showcase", "blocked requirements")},
	}}
	var p commandParams
	require.True(t, p.Read([]string{"testkit", "-with-failures"}))

	cmd := rerunCommand("./testkit", p, results)
	assert.Equal(t, `./testkit -with-failures -run '^showcase/blocked requirements$'`, cmd)
}

func caseID(path ...string) suiterun.CaseID {
	return suiterun.CaseID{Path: path}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "testkit.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
