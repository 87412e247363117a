package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/tareas/internal/model"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	records, err := Load(path)
	if !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	records, err := Load(path)
	if !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got: %v", err)
	}
	if records != nil {
		t.Fatalf("expected nil records, got %#v", records)
	}
}

func TestLoadNonListDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte(`{"id": 1}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrNotList) {
		t.Fatalf("expected ErrNotList, got: %v", err)
	}
}

func TestLoadSkipsNonObjectElements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	payload := `[{"id": 1, "title": "a"}, "loose string", 42, {"id": 2, "title": "b"}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	records, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 object records, got %d", len(records))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "tasks.json")
	tasks := []model.Task{
		{ID: 1, Date: "2026-08-30T09:00:00", Title: "Comprar leche", Description: "2%", UpdatedAt: "2026-08-30T09:00:00"},
		{ID: 2, Date: "2026-08-30T09:01:00", Title: "Pagar alquiler", Done: true, UpdatedAt: "2026-08-30T09:05:00"},
	}
	if err := Save(path, tasks); err != nil {
		t.Fatalf("save: %v", err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["title"] != "Comprar leche" || records[1]["done"] != true {
		t.Fatalf("unexpected round trip: %#v", records)
	}
}

func TestSaveKeepsNonASCIILiteral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	tasks := []model.Task{
		{ID: 1, Date: "2026-08-30T09:00:00", Title: "Llamar a mamá", Description: "¡urgente!", UpdatedAt: "2026-08-30T09:00:00"},
	}
	if err := Save(path, tasks); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(raw), "Llamar a mamá") {
		t.Fatalf("expected literal non-ASCII text, got: %s", raw)
	}
	if strings.Contains(string(raw), `\u`) {
		t.Fatalf("expected no unicode escapes, got: %s", raw)
	}
}

func TestSaveNilWritesEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := Save(path, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Fatalf("expected empty JSON list, got: %q", raw)
	}
}
