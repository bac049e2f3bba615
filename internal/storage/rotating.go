// Package storage appends job batches to indexed JSON array files that rotate
// once they grow past a size limit.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gotfriends-scraper/internal/scraper"
)

// DefaultFileSizeLimitMB is the rotation threshold used by WriteJobs
const DefaultFileSizeLimitMB = 1000

var (
	// ErrInvalidIndex is returned by Append for file indexes below 1
	ErrInvalidIndex = errors.New("file index must be >= 1")
	// ErrNotArray is returned when an existing output file does not hold a JSON array
	ErrNotArray = errors.New("expected a JSON array")
)

// RotatingWriter appends jobs to <stem>_<index>.json and moves to the next index
// once the merged array would grow past LimitBytes.
type RotatingWriter struct {
	BaseName   string
	LimitBytes int64
}

// NewRotatingWriter writes to files derived from baseName. A limitMB <= 0 uses
// DefaultFileSizeLimitMB.
func NewRotatingWriter(baseName string, limitMB int) *RotatingWriter {
	if limitMB <= 0 {
		limitMB = DefaultFileSizeLimitMB
	}
	return &RotatingWriter{
		BaseName:   baseName,
		LimitBytes: int64(limitMB) * 1024 * 1024,
	}
}

// WriteJobs appends jobs to the file for index using the default limit
func WriteJobs(jobs []scraper.Job, baseName string, index int) (int, error) {
	return NewRotatingWriter(baseName, DefaultFileSizeLimitMB).Append(jobs, index)
}

// FileName returns the path of the rotation file for index
func (w *RotatingWriter) FileName(index int) string {
	stem := w.BaseName
	if ext := filepath.Ext(stem); ext != "" && ext != filepath.Base(stem) {
		stem = strings.TrimSuffix(stem, ext)
	}
	return fmt.Sprintf("%s_%d.json", stem, index)
}

// Append merges jobs into the current file and returns the index that received them.
// When the merged array exceeds the limit the existing file is left as is and a new
// file holding only jobs is started.
func (w *RotatingWriter) Append(jobs []scraper.Job, index int) (int, error) {
	if index < 1 {
		return index, fmt.Errorf("%w: got %d", ErrInvalidIndex, index)
	}

	filename := w.FileName(index)
	existing, err := readEntries(filename)
	if err != nil {
		return index, err
	}

	fresh, err := toEntries(jobs)
	if err != nil {
		return index, err
	}

	combined := make([]json.RawMessage, 0, len(existing)+len(fresh))
	combined = append(combined, existing...)
	combined = append(combined, fresh...)

	data, err := encodeCompact(combined)
	if err != nil {
		return index, err
	}

	if int64(len(data)) > w.LimitBytes {
		index++
		filename = w.FileName(index)
		log.Printf("🔁 Size limit reached (%d > %d bytes), rotating to %s", len(data), w.LimitBytes, filename)
		if data, err = encodeCompact(fresh); err != nil {
			return index, err
		}
	}

	if err := writeIndented(filename, data); err != nil {
		return index, err
	}

	log.Printf("💾 Saved %d jobs to %s", len(jobs), filename)
	return index, nil
}

func readEntries(filename string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	//null decodes to a nil slice
	if entries == nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, ErrNotArray)
	}
	return entries, nil
}

func toEntries(jobs []scraper.Job) ([]json.RawMessage, error) {
	entries := make([]json.RawMessage, 0, len(jobs))
	for _, job := range jobs {
		raw, err := encodeCompact(job)
		if err != nil {
			return nil, err
		}
		entries = append(entries, raw)
	}
	return entries, nil
}

// encodeCompact keeps non-ASCII and <>& literal
func encodeCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal jobs: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func writeIndented(filename string, compact []byte) error {
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return fmt.Errorf("failed to indent jobs: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(filename, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
