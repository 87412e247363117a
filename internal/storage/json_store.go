// Package storage reads and writes the JSON task file. It is best-effort
// by contract: load errors are reported as typed sentinels so callers can
// degrade to an empty collection instead of aborting.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sandeepkv93/tareas/internal/model"
)

var (
	ErrNotExist    = errors.New("storage: data file does not exist")
	ErrInvalidJSON = errors.New("storage: data file is not valid JSON")
	ErrNotList     = errors.New("storage: data file is not a JSON list")
)

// Record is one raw task object as found on disk, before id coercion.
type Record = map[string]any

// Load parses the JSON array at path. Any failure comes back as a wrapped
// sentinel (ErrNotExist, ErrInvalidJSON, ErrNotList) alongside a nil slice;
// callers treat all of them as "empty collection". Non-object elements of
// the array are skipped.
func Load(path string) ([]Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var top any
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}
	items, ok := top.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: got %T", ErrNotList, path, top)
	}

	out := make([]Record, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// Save writes tasks as an indented JSON array. Non-ASCII text is kept
// literal. The write goes through a temp file and rename so a crash leaves
// either the old file or the new one, never a half-written mix.
func Save(path string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
