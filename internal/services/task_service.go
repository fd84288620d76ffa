package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/taskify-app/taskify-api/internal/models"
	"github.com/taskify-app/taskify-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrTitleEmpty   = errors.New("title cannot be empty")
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// TaskService handles task business logic. Every operation takes the
// caller's identity and only ever touches that caller's tasks; a task owned
// by someone else is reported exactly like a missing one.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    models.TaskPriority
}

// UpdateTaskInput represents a partial update. Nil fields are left
// untouched; a non-nil empty description clears it.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *models.TaskPriority
	Status      *models.TaskStatus
}

// TaskFilterInput represents filters for the paginated listing.
type TaskFilterInput struct {
	Status     *models.TaskStatus
	Priority   *models.TaskPriority
	PageNumber int
	PageSize   int
}

// Create creates a new task owned by the caller.
func (s *TaskService) Create(input CreateTaskInput, callerID uint64) (*models.Task, error) {
	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Status:      models.StatusPending,
		UserID:      callerID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetByID returns the caller's task with the given id.
func (s *TaskService) GetByID(taskID, callerID uint64) (*models.Task, error) {
	return s.findOwned(taskID, callerID)
}

// ListAll returns every task owned by the caller, newest first.
func (s *TaskService) ListAll(callerID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListFiltered returns one page of the caller's tasks matching the optional
// status and priority filters, plus the total count of matches before
// pagination. Non-positive paging values fall back to the defaults.
func (s *TaskService) ListFiltered(input TaskFilterInput, callerID uint64) ([]models.Task, int64, error) {
	page := input.PageNumber
	if page < 1 {
		page = defaultPageNumber
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	tasks, total, err := s.taskRepo.List(repository.TaskFilter{
		OwnerID:  callerID,
		Status:   input.Status,
		Priority: input.Priority,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, total, nil
}

// Update applies a partial patch to the caller's task and stamps the update
// time.
func (s *TaskService) Update(taskID uint64, input UpdateTaskInput, callerID uint64) (*models.Task, error) {
	task, err := s.findOwned(taskID, callerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}

	now := time.Now().UTC()
	task.UpdatedAt = &now

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes the caller's task.
func (s *TaskService) Delete(taskID, callerID uint64) error {
	task, err := s.findOwned(taskID, callerID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// findOwned loads a task and checks ownership. Missing tasks and tasks owned
// by another user both come back as ErrTaskNotFound so that existence never
// leaks across users.
func (s *TaskService) findOwned(taskID, callerID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.UserID != callerID {
		return nil, ErrTaskNotFound
	}

	return task, nil
}
