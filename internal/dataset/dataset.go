// Package dataset reads and writes the flat-file datasets the external
// fetch collaborators leave in the cache directory: JSON arrays for
// pull requests and pages, CSV for stripped tickets. It owns no network
// code; files are the system boundary.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoadAuthoredPRs decodes a pull-request JSON array from path.
func LoadAuthoredPRs(path string) ([]PullRequest, error) {
	var prs []PullRequest
	if err := readJSON(path, &prs); err != nil {
		return nil, err
	}
	return prs, nil
}

// LoadReviewedPRs decodes a reviewed-pull-request JSON array from path.
func LoadReviewedPRs(path string) ([]ReviewedPullRequest, error) {
	var prs []ReviewedPullRequest
	if err := readJSON(path, &prs); err != nil {
		return nil, err
	}
	return prs, nil
}

// LoadPages decodes a documentation-platform export from path.
func LoadPages(path string) (PagesExport, error) {
	var export PagesExport
	if err := readJSON(path, &export); err != nil {
		return PagesExport{}, err
	}
	return export, nil
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadTickets reads a stripped ticket CSV into one map per data row,
// keyed by header name. Short rows map their trailing columns to "".
func LoadTickets(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty ticket csv", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
}

// WriteJSON marshals v with indentation and writes it to path via a
// temporary file renamed into place, so readers never observe a partial
// dataset.
func WriteJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".dataset-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
