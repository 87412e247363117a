// Package export writes timestamped JSON and CSV snapshots of the task
// list. It never mutates the store.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sandeepkv93/tareas/internal/model"
	"github.com/sandeepkv93/tareas/internal/storage"
)

const stampLayout = "20060102_150405"

type Exporter struct {
	dir string
	now func() time.Time
}

func New(dir string) *Exporter {
	return &Exporter{dir: dir, now: time.Now}
}

// JSON writes tasks to tasks_<stamp>.json in the export directory and
// returns the path. The file has the exact shape of the primary data file.
func (e *Exporter) JSON(tasks []model.Task) (string, error) {
	path := filepath.Join(e.dir, fmt.Sprintf("tasks_%s.json", e.now().Format(stampLayout)))
	if err := storage.Save(path, tasks); err != nil {
		return "", fmt.Errorf("export json: %w", err)
	}
	return path, nil
}

// CSV writes tasks to tasks_<stamp>.csv with the fixed six-column header,
// one row per task, and returns the path.
func (e *Exporter) CSV(tasks []model.Task) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir %s: %w", e.dir, err)
	}
	path := filepath.Join(e.dir, fmt.Sprintf("tasks_%s.csv", e.now().Format(stampLayout)))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(model.CSVHeader); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, task := range tasks {
		if err := w.Write(task.CSVRecord()); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}
