package domain

import "errors"

// ErrTaskNotFound is the not-found signal returned by the task store.
var ErrTaskNotFound = errors.New("task not found")

// Task is the persisted unit of work record. Title and Description are
// pointers because the column is nullable and responses distinguish
// null from empty.
type Task struct {
	ID          int64   `db:"id"`
	Title       *string `db:"title"`
	Description *string `db:"description"`
	IsCompleted bool    `db:"is_completed"`
}
