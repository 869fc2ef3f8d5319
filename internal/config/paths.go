// Package config holds file names, path helpers and YAML persistence.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// LogFileName is the append-only log written into the target directory.
	LogFileName = "_cleancsvs_log.txt"

	// CSVExt is the case-sensitive extension of files the cleaner touches.
	CSVExt = ".csv"

	// DefaultDir is the directory cleaned when none is given.
	DefaultDir = "."
)

// File modes
const (
	LogFileMode    os.FileMode = 0o644
	ReportFileMode os.FileMode = 0o644
)

// LogFile returns the path to the log file inside dir.
func LogFile(dir string) string {
	return filepath.Join(dir, LogFileName)
}

// IsCSV reports whether name carries the CSV extension.
func IsCSV(name string) bool {
	return strings.HasSuffix(name, CSVExt)
}

// ListCSV returns the names of regular CSV entries directly inside dir,
// in the order the directory listing yields them.
func ListCSV(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsCSV(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// DirExists checks if path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
