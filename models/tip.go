package models

import (
	"time"

	"gorm.io/gorm"
)

// Tip is a hint submitted by a user on someone else's quiz. Tips live and
// die with their quiz; the author's username is resolved at read time, never
// stored here.
type Tip struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Text      string         `json:"text" gorm:"not null"`
	QuizID    uint           `json:"quiz_id" gorm:"not null;index"`
	AuthorID  uint           `json:"author_id" gorm:"index"`
	Accepted  bool           `json:"accepted" gorm:"not null;default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
