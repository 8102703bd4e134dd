package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Username     string         `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	IsAdmin      bool           `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Quizzes []Quiz `json:"quizzes,omitempty" gorm:"foreignKey:AuthorID"`
	Tips    []Tip  `json:"tips,omitempty" gorm:"foreignKey:AuthorID"`
}
