package models

import (
	"time"

	"gorm.io/gorm"
)

// Quiz is a single question/answer pair. AuthorID is 0 for quizzes without
// an author (seeded or anonymous content).
type Quiz struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Question  string         `json:"question" gorm:"not null"`
	Answer    string         `json:"answer" gorm:"not null"`
	AuthorID  uint           `json:"author_id" gorm:"index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Tips   []Tip `json:"tips,omitempty" gorm:"foreignKey:QuizID"`
}
