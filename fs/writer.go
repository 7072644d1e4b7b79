package fs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// ResultFileName returns the name of the search result file for a listing
// date saved on the given ISO day, e.g. search_result_today_2024-03-09.json.
func ResultFileName(date, isoDay string) string {
	return "search_result_" + date + "_" + isoDay + ".json"
}

// WriteJSON writes v to path as indented JSON.
// HTML characters are not escaped so stored row text stays readable.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ResultWriter writes search results into an output directory.
type ResultWriter struct {
	baseDir string
}

// NewResultWriter creates a new ResultWriter that writes to baseDir.
func NewResultWriter(baseDir string) *ResultWriter {
	return &ResultWriter{baseDir: baseDir}
}

// WriteResult writes v as JSON to name inside the output directory and
// returns the full path.
func (w *ResultWriter) WriteResult(name string, v any) (string, error) {
	path := filepath.Join(w.baseDir, name)
	if err := WriteJSON(path, v); err != nil {
		return "", err
	}
	return path, nil
}

// Dir returns the output directory.
func (w *ResultWriter) Dir() string {
	return w.baseDir
}
