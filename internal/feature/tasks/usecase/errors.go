// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when no task matches the given ID for the
	// requesting user. An existing task owned by another user is reported
	// with the same error so that task IDs cannot be probed.
	ErrTaskNotFound = errors.New("task not found")
)
