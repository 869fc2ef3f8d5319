package cleaner

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sfbackup/cleancsvs/internal/logging"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// testLogger captures both sinks.
func testLogger() (*logging.Logger, *bytes.Buffer, *bytes.Buffer) {
	var file, console bytes.Buffer
	return logging.New(&file, &console), &file, &console
}
