// Package history records package operations in a BoltDB database.
package history

import (
	"time"
)

// Operation represents the type of package operation.
type Operation string

const (
	OpInstall Operation = "install"
	OpRemove  Operation = "remove"
	OpRefresh Operation = "refresh"
	OpUpgrade Operation = "upgrade"
)

// Entry represents a single operation in the history.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation Operation `json:"operation"`
	Binary    string    `json:"binary"`   // pacman binary that ran the operation
	Packages  []string  `json:"packages"` // packages affected, empty for refresh/upgrade-all
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"` // captured stderr or error text
}

// NewEntry creates a new history entry, initially marked unsuccessful.
func NewEntry(op Operation, binary string, packages []string) *Entry {
	return &Entry{
		ID:        time.Now().Format("20060102150405.000000"),
		Timestamp: time.Now(),
		Operation: op,
		Binary:    binary,
		Packages:  packages,
	}
}

// MarkSuccess marks the entry as successful.
func (e *Entry) MarkSuccess() {
	e.Success = true
}

// MarkFailed marks the entry as failed with an error message.
func (e *Entry) MarkFailed(err error) {
	e.Success = false
	if err != nil {
		e.Error = err.Error()
	}
}
