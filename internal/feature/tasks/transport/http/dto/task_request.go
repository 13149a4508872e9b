// Package dto defines data transfer objects for the tasks feature's HTTP transport layer.
package dto

// CreateTaskReq represents the request body for POST /api/tasks.
// Title, description and city are all required; the owner is always taken
// from the authenticated request, never from the body.
type CreateTaskReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	City        string `json:"city" binding:"required"`
}

// UpdateTaskReq represents the request body for PUT /api/tasks/:id.
// Every field is optional; absent or empty fields keep their current value.
type UpdateTaskReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	City        string `json:"city"`
}
