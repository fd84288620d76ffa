package models

import (
	"time"
)

// TaskPriority encodes task priority as 0=Low, 1=Medium, 2=High.
type TaskPriority int

const (
	PriorityLow TaskPriority = iota
	PriorityMedium
	PriorityHigh
)

// Valid reports whether the value is one of the known priorities.
func (p TaskPriority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// TaskStatus encodes task status as 0=Pending, 1=Completed.
type TaskStatus int

const (
	StatusPending TaskStatus = iota
	StatusCompleted
)

// Valid reports whether the value is one of the known statuses.
func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Title       string       `gorm:"type:varchar(200);not null" json:"title"`
	Description string       `gorm:"type:varchar(1000)" json:"description"`
	DueDate     time.Time    `gorm:"not null" json:"dueDate"`
	Priority    TaskPriority `gorm:"not null" json:"priority"`
	Status      TaskStatus   `gorm:"not null;default:0" json:"status"`
	UserID      uint64       `gorm:"not null;index" json:"userId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   *time.Time   `gorm:"autoUpdateTime:false" json:"updatedAt"`

	// Relations
	Owner User `gorm:"foreignKey:UserID" json:"-"`
}
