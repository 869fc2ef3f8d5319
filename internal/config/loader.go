package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sfbackup/cleancsvs/internal/models"
)

// LoadYAML loads a YAML file into the provided struct.
func LoadYAML(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	return nil
}

// SaveYAML writes v as YAML to path, creating parent directories.
func SaveYAML(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, ReportFileMode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// SaveReport writes a run report.
func SaveReport(path string, r *models.RunReport) error {
	if r == nil {
		return fmt.Errorf("no report to save")
	}
	return SaveYAML(path, r)
}

// LoadReport reads a run report written by SaveReport.
func LoadReport(path string) (*models.RunReport, error) {
	var r models.RunReport
	if err := LoadYAML(path, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
