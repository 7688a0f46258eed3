// Package domain contains core business entities and interfaces.
package domain

import (
	"strconv"
	"time"
)

// TaskID identifies a task. It is the sole identity key for lookup, toggle and delete.
type TaskID int64

// String returns the decimal form of the ID.
func (id TaskID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseTaskID parses a base-10 task ID.
func ParseTaskID(s string) (TaskID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidTaskID
	}
	return TaskID(n), nil
}

// Task represents a single to-do entry.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt time.Time // Set at creation (zero if the source omitted it)
	UpdatedAt time.Time // Set at creation; not refreshed on mutation
	Title     string    // Title (non-empty when created through AddTask)
	ID        TaskID    // Unique within a collection
	Completed bool      // Done flag
}

// IsActive returns true if the task has not been completed yet.
func (t Task) IsActive() bool {
	return !t.Completed
}

// StateText describes the completion state the way notices phrase it.
func (t Task) StateText() string {
	if t.Completed {
		return "Complete"
	}
	return "Incomplete"
}
