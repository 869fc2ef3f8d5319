// Package csvdoc reads and writes the ISO-8859-1 CSV files produced by the
// CRM backup export.
package csvdoc

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Document is a parsed CSV file: a header record followed by data rows.
// Rows may be ragged; nothing here validates their width.
type Document struct {
	Headers []string
	Rows    [][]string
}

// Empty reports whether the document has no data rows.
func (d *Document) Empty() bool {
	return len(d.Rows) == 0
}

// Decode converts ISO-8859-1 bytes to a UTF-8 string. Every byte maps to a
// code point, so this only fails on a broken reader.
func Decode(raw []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode ISO-8859-1: %w", err)
	}
	return string(out), nil
}

// Encode converts a UTF-8 string back to ISO-8859-1 bytes.
func Encode(s string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode ISO-8859-1: %w", err)
	}
	return out, nil
}

// Sanitize replaces every NUL with a single space.
func Sanitize(s string) string {
	return strings.ReplaceAll(s, "\x00", " ")
}

// Parse splits text into a header record and data rows. Text with no
// records at all yields an empty Document rather than an error.
func Parse(text string) (*Document, error) {
	r := csv.NewReader(strings.NewReader(splitBareCR(text)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	doc := &Document{}
	if len(records) == 0 {
		return doc, nil
	}
	doc.Headers = records[0]
	doc.Rows = records[1:]
	return doc, nil
}

// splitBareCR turns every CR that ends a record on its own (outside quotes,
// not followed by LF) into LF. encoding/csv only breaks records on LF.
func splitBareCR(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	inQuotes := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == '\r' && !inQuotes && (i+1 == len(text) || text[i+1] != '\n'):
			c = '\n'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Read loads the file at path, decodes it, replaces NULs and parses it.
func Read(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	text, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(Sanitize(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// Marshal renders doc as CSV text with CRLF record terminators, then
// encodes it as ISO-8859-1. CR and LF inside fields are written as is.
func Marshal(doc *Document) ([]byte, error) {
	var buf, rec bytes.Buffer
	w := csv.NewWriter(&rec)

	// csv.Writer with UseCRLF rewrites line breaks inside quoted fields, so
	// each record is written with LF and only its terminator is swapped.
	write := func(record []string) error {
		rec.Reset()
		if len(record) == 1 && record[0] == "" {
			// A lone empty field would come out as a blank line, which
			// readers drop.
			rec.WriteString("\"\"\n")
		} else {
			if err := w.Write(record); err != nil {
				return err
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return err
			}
		}
		buf.Write(bytes.TrimSuffix(rec.Bytes(), []byte("\n")))
		buf.WriteString("\r\n")
		return nil
	}

	if err := write(doc.Headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range doc.Rows {
		if err := write(row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	return Encode(buf.String())
}

// Write replaces the file at path with doc. The data goes to a temporary
// file in the same directory first and is renamed over path only after a
// successful sync, so a failed write leaves the original untouched.
func Write(path string, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set mode on %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
