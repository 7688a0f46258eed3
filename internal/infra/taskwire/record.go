// Package taskwire converts between tasks and their JSON/YAML wire form.
package taskwire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// ID is a task ID on the wire. It decodes from a JSON number or a numeric string.
type ID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := domain.ParseTaskID(s)
		if err != nil {
			return fmt.Errorf("id %q: %w", s, err)
		}
		*id = ID(n)
		return nil
	}

	if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*id = ID(n)
		return nil
	}
	// Integral floats such as 3.0 are accepted.
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || f != math.Trunc(f) {
		return fmt.Errorf("id %s: %w", data, domain.ErrInvalidTaskID)
	}
	*id = ID(f)
	return nil
}

// Record is the wire representation of a task.
// Unknown fields (for example userId) are ignored on decode.
// Field order is the output order of exports.
type Record struct {
	ID        ID     `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Task converts r to a domain task. Missing or unparseable timestamps become zero.
func (r Record) Task() domain.Task {
	return domain.Task{
		ID:        domain.TaskID(r.ID),
		Title:     r.Title,
		Completed: r.Completed,
		CreatedAt: parseTime(r.CreatedAt),
		UpdatedAt: parseTime(r.UpdatedAt),
	}
}

// FromTask converts a domain task to its wire form.
func FromTask(t domain.Task) Record {
	return Record{
		ID:        ID(t.ID),
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
}

// ToTasks converts records to domain tasks, keeping their order.
func ToTasks(records []Record) []domain.Task {
	tasks := make([]domain.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, r.Task())
	}
	return tasks
}

// FromTasks converts domain tasks to records, keeping their order.
func FromTasks(tasks []domain.Task) []Record {
	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, FromTask(t))
	}
	return records
}

// Layouts accepted for timestamps, most specific first. Date-only values are
// UTC; date-times without an offset are local time.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		loc := time.Local
		if layout == time.DateOnly {
			loc = time.UTC
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
