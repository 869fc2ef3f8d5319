// Package models defines the data types recorded about a cleaning run.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Rule names recorded for deleted files.
const (
	RuleHistory        = "history"
	RuleSummary        = "summary"
	RuleTenantSecurity = "tenant_security"
	RuleEmpty          = "empty"
)

// FileAction records what happened to a single CSV file during a run.
type FileAction struct {
	File           string   `yaml:"file"`
	Rule           string   `yaml:"rule,omitempty"` // set for deletions
	RemovedCount   int      `yaml:"removed_count,omitempty"`
	RemovedColumns []string `yaml:"removed_columns,omitempty"`
	KeptColumns    int      `yaml:"kept_columns,omitempty"`
	Rows           int      `yaml:"rows,omitempty"`
}

// SkippedFile is a CSV file that could not be read and was left as is.
type SkippedFile struct {
	File   string `yaml:"file"`
	Reason string `yaml:"reason"`
}

// RunReport summarizes one cleaning run over a directory.
type RunReport struct {
	RunID     string        `yaml:"run_id"`
	Dir       string        `yaml:"dir"`
	DryRun    bool          `yaml:"dry_run"`
	StartedAt string        `yaml:"started_at"`
	EndedAt   string        `yaml:"ended_at,omitempty"`
	Deleted   []FileAction  `yaml:"deleted"`
	Processed []FileAction  `yaml:"processed"`
	Skipped   []SkippedFile `yaml:"skipped,omitempty"`
}

// NewRunReport creates a report for a run starting now.
func NewRunReport(dir string, dryRun bool) *RunReport {
	return &RunReport{
		RunID:     uuid.New().String(),
		Dir:       dir,
		DryRun:    dryRun,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
		Deleted:   []FileAction{},
		Processed: []FileAction{},
	}
}

// Finish stamps the end time.
func (r *RunReport) Finish() {
	r.EndedAt = time.Now().UTC().Format(time.RFC3339)
}

// RemovedColumnTotal sums removed columns over all processed files.
func (r *RunReport) RemovedColumnTotal() int {
	n := 0
	for _, p := range r.Processed {
		n += p.RemovedCount
	}
	return n
}
