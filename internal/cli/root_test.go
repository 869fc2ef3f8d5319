package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfbackup/cleancsvs/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seed(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"AccountHistory.csv": "Id\n1\n",
		"test.csv":           "Name,CreatedDate,Notes\nAlice,2021-01-01,\nBob,2021-01-02,\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestRootCleansWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Deleted empty file: AccountHistory.csv\n")
	assert.Contains(t, out, "Processed file: test.csv and removed 2 empty columns\n")
	assert.Contains(t, out, "deleted 1 files, processed 1 files, skipped 0 files, removed 2 columns")

	assert.NoFileExists(t, filepath.Join(dir, "AccountHistory.csv"))
	data, err := os.ReadFile(filepath.Join(dir, "test.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Name\r\nAlice\r\nBob\r\n", string(data))

	logData, err := os.ReadFile(filepath.Join(dir, config.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "INFO: Deleted empty file: AccountHistory.csv")
	assert.Contains(t, string(logData), "INFO: Processed file: test.csv and removed 2 empty columns")
	assert.NotContains(t, string(logData), "deleted 1 files")
}

func TestRootDirFlagAndReport(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir)
	reportPath := filepath.Join(t.TempDir(), "run.yaml")

	_, err := execute(t, "--dir", dir, "--report", reportPath)
	require.NoError(t, err)

	report, err := config.LoadReport(reportPath)
	require.NoError(t, err)
	assert.Equal(t, dir, report.Dir)
	assert.False(t, report.DryRun)
	require.Len(t, report.Deleted, 1)
	assert.Equal(t, "AccountHistory.csv", report.Deleted[0].File)
	require.Len(t, report.Processed, 1)
	assert.Equal(t, []string{"CreatedDate", "Notes"}, report.Processed[0].RemovedColumns)
}

func TestRootDryRun(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir)

	out, err := execute(t, "-d", dir, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "Would delete empty file: AccountHistory.csv")
	assert.Contains(t, out, "Dry run of")
	assert.FileExists(t, filepath.Join(dir, "AccountHistory.csv"))
}

func TestRootLogAccumulates(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir)

	_, err := execute(t, "--dir", dir)
	require.NoError(t, err)
	_, err = execute(t, "--dir", dir)
	require.NoError(t, err)

	logData, err := os.ReadFile(filepath.Join(dir, config.LogFileName))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(logData), "Processed file: test.csv"))
	assert.Contains(t, string(logData), "Processed file: test.csv and removed 0 empty columns")
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "somewhere")
	assert.Error(t, err)
}

func TestRootMissingDir(t *testing.T) {
	_, err := execute(t, "--dir", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "not a directory")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cleancsvs")
	assert.Contains(t, out, "OS/Arch")
}
