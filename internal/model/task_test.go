package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	stamp := FormatTime(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	task := Task{
		ID:          1,
		Date:        stamp,
		Title:       "Buy milk",
		Description: "2%",
		UpdatedAt:   stamp,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsBadID(t *testing.T) {
	stamp := FormatTime(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	task := Task{ID: 0, Date: stamp, Title: "Buy milk", UpdatedAt: stamp}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got: %v", err)
	}
}

func TestTaskValidateRequiresTitle(t *testing.T) {
	stamp := FormatTime(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	task := Task{ID: 1, Date: stamp, Title: "   ", UpdatedAt: stamp}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got: %v", err)
	}
}

func TestFormatTimeSecondPrecision(t *testing.T) {
	ts := time.Date(2026, 8, 30, 9, 5, 7, 123456789, time.UTC)
	if got := FormatTime(ts); got != "2026-08-30T09:05:07" {
		t.Fatalf("unexpected timestamp format: %q", got)
	}
}

func TestCSVRecordMatchesHeader(t *testing.T) {
	task := Task{
		ID:          3,
		Date:        "2026-08-30T09:00:00",
		Title:       "Llamar al médico",
		Description: "pedir cita",
		Done:        true,
		UpdatedAt:   "2026-08-30T10:00:00",
	}
	rec := task.CSVRecord()
	if len(rec) != len(CSVHeader) {
		t.Fatalf("record length %d, header length %d", len(rec), len(CSVHeader))
	}
	want := []string{"3", "2026-08-30T09:00:00", "Llamar al médico", "pedir cita", "true", "2026-08-30T10:00:00"}
	for i := range want {
		if rec[i] != want[i] {
			t.Fatalf("column %s = %q, want %q", CSVHeader[i], rec[i], want[i])
		}
	}
}
