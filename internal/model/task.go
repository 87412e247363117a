package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidID    = errors.New("model: task id must be a positive integer")
	ErrEmptyTitle   = errors.New("model: task title is required")
	ErrMissingDate  = errors.New("model: task date is required")
	ErrMissingStamp = errors.New("model: task updated_at is required")
)

// TimeLayout is the persisted timestamp format: ISO-8601 at second
// precision, local time, no zone offset.
const TimeLayout = "2006-01-02T15:04:05"

// FormatTime renders a timestamp in the persisted layout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// Task is a single to-do item. The JSON tags are the on-disk contract:
// the data file and JSON exports are arrays of exactly this shape.
type Task struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	UpdatedAt   string `json:"updated_at"`
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, t.ID)
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(t.Date) == "" {
		return ErrMissingDate
	}
	if strings.TrimSpace(t.UpdatedAt) == "" {
		return ErrMissingStamp
	}
	return nil
}

// CSVHeader is the fixed column set of CSV exports, in order.
var CSVHeader = []string{"id", "date", "title", "description", "done", "updated_at"}

// CSVRecord returns the task as one CSV row matching CSVHeader.
func (t Task) CSVRecord() []string {
	return []string{
		strconv.Itoa(t.ID),
		t.Date,
		t.Title,
		t.Description,
		strconv.FormatBool(t.Done),
		t.UpdatedAt,
	}
}
