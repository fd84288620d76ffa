package models

import (
	"time"
)

type User struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    *string    `gorm:"type:varchar(50)" json:"firstName,omitempty"`
	LastName     *string    `gorm:"type:varchar(50)" json:"lastName,omitempty"`
	Role         string     `gorm:"type:varchar(20);not null;default:'User'" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false" json:"-"`

	// Relations
	Tasks []Task `gorm:"foreignKey:UserID" json:"-"`
}
