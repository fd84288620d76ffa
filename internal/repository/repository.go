package repository

import (
	"github.com/taskify-app/taskify-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by exact username match
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by exact email match
	FindByEmail(email string) (*models.User, error)

	// FindByUsernameOrEmail finds a user whose username or email exactly
	// matches the given value
	FindByUsernameOrEmail(value string) (*models.User, error)
}

// TaskFilter holds filtering and pagination options for listing tasks.
// OwnerID is always required; Page and PageSize of zero disable slicing.
type TaskFilter struct {
	OwnerID  uint64
	Status   *models.TaskStatus
	Priority *models.TaskPriority
	Page     int
	PageSize int
}

// TaskRepository defines the interface for task data access. The repository
// is owner-agnostic for single-row lookups; ownership checks live in the
// service layer.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListByOwner retrieves all tasks of one owner, newest first
	ListByOwner(ownerID uint64) ([]models.Task, error)

	// List retrieves tasks with filtering and pagination, returning the page
	// and the pre-pagination total
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete removes a task
	Delete(id uint64) error
}
