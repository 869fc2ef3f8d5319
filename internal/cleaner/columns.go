package cleaner

import (
	"fmt"
	"path/filepath"

	"github.com/sfbackup/cleancsvs/internal/csvdoc"
	"github.com/sfbackup/cleancsvs/internal/logging"
	"github.com/sfbackup/cleancsvs/internal/models"
)

// DecideColumns returns one keep flag per header. Audit columns are never
// kept; any other column is kept when at least one data row has a
// non-blank cell in it. Missing cells in short rows count as blank and
// cells past the header width are ignored.
func DecideColumns(doc *csvdoc.Document) []bool {
	keep := make([]bool, len(doc.Headers))
	for i, header := range doc.Headers {
		if IsAuditField(header) {
			continue
		}
		for _, row := range doc.Rows {
			if i < len(row) && !isBlank(row[i]) {
				keep[i] = true
				break
			}
		}
	}
	return keep
}

// Project returns a document holding only the kept columns, in their
// original order. Every output row has exactly as many cells as the output
// header; short rows are padded with empty cells.
func Project(doc *csvdoc.Document, keep []bool) *csvdoc.Document {
	var idx []int
	for i, k := range keep {
		if k {
			idx = append(idx, i)
		}
	}

	out := &csvdoc.Document{
		Headers: make([]string, 0, len(idx)),
		Rows:    make([][]string, 0, len(doc.Rows)),
	}
	for _, i := range idx {
		out.Headers = append(out.Headers, doc.Headers[i])
	}
	for _, row := range doc.Rows {
		cells := make([]string, len(idx))
		for j, i := range idx {
			if i < len(row) {
				cells[j] = row[i]
			}
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}

// FilterColumns rewrites the CSV at path without its audit and empty
// columns. Read and parse failures wrap ErrUnreadable; write failures do
// not.
func FilterColumns(path string, log *logging.Logger, opts Options) (models.FileAction, error) {
	name := filepath.Base(path)
	action := models.FileAction{File: name}

	doc, err := csvdoc.Read(path)
	if err != nil {
		return action, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	keep := DecideColumns(doc)
	for i, k := range keep {
		if !k {
			action.RemovedColumns = append(action.RemovedColumns, doc.Headers[i])
		}
	}
	action.RemovedCount = len(action.RemovedColumns)
	action.KeptColumns = len(keep) - action.RemovedCount
	action.Rows = len(doc.Rows)

	if opts.DryRun {
		log.Infof("Would process file: %s and remove %d empty columns", name, action.RemovedCount)
		return action, nil
	}

	if err := csvdoc.Write(path, Project(doc, keep)); err != nil {
		return action, fmt.Errorf("failed to rewrite %s: %w", name, err)
	}

	log.Infof("Processed file: %s and removed %d empty columns", name, action.RemovedCount)
	return action, nil
}
