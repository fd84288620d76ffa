package dto

import (
	"time"

	"github.com/taskify-app/taskify-api/internal/models"
)

// CreateTaskRequest is the payload for POST /tasks. Priority and due date
// are pointers so that "missing" is distinguishable from the zero value.
type CreateTaskRequest struct {
	Title       string               `json:"title" binding:"required,min=1,max=200"`
	Description string               `json:"description" binding:"omitempty,max=1000"`
	DueDate     *time.Time           `json:"dueDate" binding:"required"`
	Priority    *models.TaskPriority `json:"priority" binding:"required"`
}

// UpdateTaskRequest is the partial-patch payload for PUT /tasks/{id}. Absent
// fields keep their stored values; a present empty description clears it.
type UpdateTaskRequest struct {
	Title       *string              `json:"title" binding:"omitempty,max=200"`
	Description *string              `json:"description" binding:"omitempty,max=1000"`
	DueDate     *time.Time           `json:"dueDate"`
	Priority    *models.TaskPriority `json:"priority"`
	Status      *models.TaskStatus   `json:"status"`
}

// TaskFilterRequest holds the query parameters of GET /tasks/filter.
type TaskFilterRequest struct {
	Status     *models.TaskStatus   `form:"status"`
	Priority   *models.TaskPriority `form:"priority"`
	PageNumber int                  `form:"pageNumber,default=1"`
	PageSize   int                  `form:"pageSize,default=10"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          uint64              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	DueDate     time.Time           `json:"dueDate"`
	Priority    models.TaskPriority `json:"priority"`
	Status      models.TaskStatus   `json:"status"`
	UserID      uint64              `json:"userId"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   *time.Time          `json:"updatedAt"`
}

// TaskListResponse represents a paginated list of tasks.
type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	TotalCount int64          `json:"totalCount"`
	PageNumber int            `json:"pageNumber"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// ToTaskResponse converts a Task model to TaskResponse.
func ToTaskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    task.Priority,
		Status:      task.Status,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskResponses converts a slice of tasks.
func ToTaskResponses(tasks []models.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskResponse(task)
	}
	return items
}

// ToTaskListResponse converts one page of tasks to TaskListResponse.
func ToTaskListResponse(tasks []models.Task, pageNumber, pageSize int, totalCount int64) TaskListResponse {
	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return TaskListResponse{
		Tasks:      ToTaskResponses(tasks),
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
