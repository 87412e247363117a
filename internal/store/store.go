// Package store holds the in-memory task collection and owns id
// assignment, mutation, and persistence triggering.
package store

import (
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/tareas/internal/model"
	"github.com/sandeepkv93/tareas/internal/storage"
)

type Store struct {
	path   string
	tasks  map[int]model.Task
	nextID int
	logger *log.Logger
	now    func() time.Time
}

func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		path:   path,
		tasks:  make(map[int]model.Task),
		nextID: 1,
		logger: logger,
		now:    time.Now,
	}
}

// Load replaces the in-memory collection with the contents of the data
// file. Storage failures degrade to an empty collection with an advisory
// log line; records whose id cannot be coerced to an integer are dropped.
func (s *Store) Load() {
	s.tasks = make(map[int]model.Task)

	records, err := storage.Load(s.path)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotExist):
			s.logger.Debug("no data file yet, starting empty", "path", s.path)
		default:
			s.logger.Warn("could not read data file, starting empty", "err", err)
		}
	}
	for _, rec := range records {
		id, ok := coerceID(rec["id"])
		if !ok {
			s.logger.Debug("dropping record without usable id", "id", rec["id"])
			continue
		}
		s.tasks[id] = taskFromRecord(id, rec)
	}
	s.recalcNextID()
}

func (s *Store) recalcNextID() {
	s.nextID = 1
	for id := range s.tasks {
		if id >= s.nextID {
			s.nextID = id + 1
		}
	}
}

// Add creates a task with the next free id and persists the store. Title
// and description are trimmed; both timestamps are stamped now.
func (s *Store) Add(title, description string, done bool) model.Task {
	stamp := model.FormatTime(s.now())
	task := model.Task{
		ID:          s.nextID,
		Date:        stamp,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Done:        done,
		UpdatedAt:   stamp,
	}
	s.tasks[task.ID] = task
	s.nextID++
	s.Persist()
	return task
}

// Edit overwrites title, description, and done of an existing task and
// refreshes updated_at. Returns false when id is absent.
func (s *Store) Edit(id int, title, description string, done bool) bool {
	task, ok := s.tasks[id]
	if !ok {
		return false
	}
	task.Title = strings.TrimSpace(title)
	task.Description = strings.TrimSpace(description)
	task.Done = done
	task.UpdatedAt = model.FormatTime(s.now())
	s.tasks[id] = task
	s.Persist()
	return true
}

// Toggle flips the completion flag of an existing task.
func (s *Store) Toggle(id int) bool {
	task, ok := s.tasks[id]
	if !ok {
		return false
	}
	task.Done = !task.Done
	task.UpdatedAt = model.FormatTime(s.now())
	s.tasks[id] = task
	s.Persist()
	return true
}

// Delete removes a task. The id is never handed out again this session.
func (s *Store) Delete(id int) bool {
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	s.Persist()
	return true
}

func (s *Store) Get(id int) (model.Task, bool) {
	task, ok := s.tasks[id]
	return task, ok
}

// Tasks returns the collection ordered by ascending id.
func (s *Store) Tasks() []model.Task {
	ids := make([]int, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]model.Task, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.tasks[id])
	}
	return out
}

func (s *Store) Len() int {
	return len(s.tasks)
}

// Persist writes the full collection to the data file. Write failures are
// advisory only: the in-memory state stays authoritative.
func (s *Store) Persist() {
	if err := storage.Save(s.path, s.Tasks()); err != nil {
		s.logger.Warn("could not persist tasks", "err", err)
	}
}

// coerceID turns a raw id value into an integer the way a lenient reader
// would: JSON numbers (floats truncate) and numeric strings count,
// anything else does not.
func coerceID(v any) (int, bool) {
	switch typed := v.(type) {
	case json.Number:
		if n, err := typed.Int64(); err == nil {
			return int(n), true
		}
		if f, err := typed.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case float64:
		return int(typed), true
	case int:
		return typed, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func taskFromRecord(id int, rec storage.Record) model.Task {
	return model.Task{
		ID:          id,
		Date:        stringField(rec, "date"),
		Title:       stringField(rec, "title"),
		Description: stringField(rec, "description"),
		Done:        boolField(rec, "done"),
		UpdatedAt:   stringField(rec, "updated_at"),
	}
}

func stringField(rec storage.Record, key string) string {
	v, _ := rec[key].(string)
	return v
}

func boolField(rec storage.Record, key string) bool {
	v, _ := rec[key].(bool)
	return v
}
