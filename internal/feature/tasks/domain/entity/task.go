// Package entity defines the domain entities for the tasks feature.
package entity

import "time"

// Status represents the progress state of a task.
type Status string

// Valid task statuses. New tasks always start as StatusPending.
const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In-Progress"
	StatusCompleted  Status = "Completed"
)

// Task represents a single to-do item owned by a user.
// The owner reference is immutable after creation; every query against
// tasks must be scoped by UserID.
type Task struct {
	// ID is the unique identifier for the task.
	ID uint `gorm:"primaryKey"`

	// UserID references the owning user. All reads and writes are
	// scoped to this value.
	UserID uint `gorm:"index;not null"`

	// Title is the short summary of the task.
	Title string `gorm:"size:255;not null"`

	// Description holds the free-form details of the task.
	Description string `gorm:"size:1024"`

	// Status is the progress state of the task (Pending, In-Progress, Completed).
	Status Status `gorm:"size:20;not null;default:Pending"`

	// City is the location the task is associated with, used for the
	// weather lookup.
	City string `gorm:"size:100"`

	// Weather is a short description of the current weather in City,
	// derived at create/update time.
	Weather string `gorm:"size:255"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the task was last updated.
	UpdatedAt time.Time
}
