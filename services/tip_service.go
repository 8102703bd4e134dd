package services

import (
	"context"
	"errors"
	"strings"

	"quizhub/models"

	"gorm.io/gorm"
)

// TipService manages the hints users leave on quizzes they could not solve.
// Acceptance and deletion are gated upstream by the admin-or-author check on
// the owning quiz.
type TipService struct {
	db *gorm.DB
}

func NewTipService(db *gorm.DB) *TipService {
	return &TipService{db: db}
}

// Create attaches a new, unaccepted tip to a quiz. The quiz must exist and
// the text must not be blank.
func (s *TipService) Create(ctx context.Context, quizID, authorID uint, text string) (*models.Tip, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "text", Value: text}}}
	}

	var quiz models.Quiz
	err := s.db.WithContext(ctx).Select("id").First(&quiz, quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("find quiz for tip", err)
	}

	tip := models.Tip{
		Text:     text,
		QuizID:   quizID,
		AuthorID: authorID,
	}
	if err := s.db.WithContext(ctx).Create(&tip).Error; err != nil {
		return nil, storeErr("create tip", err)
	}
	return &tip, nil
}

// Accept marks a tip as curated by the quiz's author or an admin. The tip
// must belong to the given quiz; a tip id paired with the wrong quiz is
// NotFound, not a different tip.
func (s *TipService) Accept(ctx context.Context, quizID, tipID uint) (*models.Tip, error) {
	tip, err := s.findInQuiz(ctx, quizID, tipID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(tip).Update("accepted", true).Error; err != nil {
		return nil, storeErr("accept tip", err)
	}
	tip.Accepted = true
	return tip, nil
}

// Delete removes a single tip from a quiz.
func (s *TipService) Delete(ctx context.Context, quizID, tipID uint) error {
	tip, err := s.findInQuiz(ctx, quizID, tipID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(tip).Error; err != nil {
		return storeErr("delete tip", err)
	}
	return nil
}

func (s *TipService) findInQuiz(ctx context.Context, quizID, tipID uint) (*models.Tip, error) {
	var tip models.Tip
	err := s.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		First(&tip, tipID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("find tip", err)
	}
	return &tip, nil
}
