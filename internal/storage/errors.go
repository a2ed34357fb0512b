// ABOUTME: Sentinel and structured errors surfaced by the record store.
// ABOUTME: Callers match with errors.Is/As; the store never swallows these.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound indicates an operation targeted a nonexistent record.
var ErrNotFound = errors.New("storage: not found")

// ErrDuplicateID indicates an insert collided with an existing unique key.
var ErrDuplicateID = errors.New("storage: duplicate id")

// ErrSessionAlreadyActive indicates a workout session is already in
// progress; only one active session may exist at a time.
var ErrSessionAlreadyActive = errors.New("storage: a workout session is already active")

// ExerciseNotFoundError indicates a workout references an exercise id that
// does not resolve to an existing core record.
type ExerciseNotFoundError struct {
	ExerciseID uuid.UUID
}

func (e *ExerciseNotFoundError) Error() string {
	return fmt.Sprintf("storage: workout references missing exercise %s", e.ExerciseID)
}

// PartialImportError reports a bulk import that accepted some records and
// rejected others. The accepted records remain committed.
type PartialImportError struct {
	Accepted    int
	RejectedIDs []uuid.UUID
}

func (e *PartialImportError) Error() string {
	ids := make([]string, len(e.RejectedIDs))
	for i, id := range e.RejectedIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("storage: import rejected %d record(s): %s",
		len(e.RejectedIDs), strings.Join(ids, ", "))
}
