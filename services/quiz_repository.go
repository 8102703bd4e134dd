package services

import (
	"context"
	"errors"
	"strings"

	"quizhub/models"

	"gorm.io/gorm"
)

// QuizPageSize is the fixed number of quizzes per listing page.
const QuizPageSize = 10

// QuizFilter narrows a quiz listing. Search is free text matched against the
// question; AuthorID, when ByAuthor is set, restricts to one author's
// quizzes.
type QuizFilter struct {
	Search   string
	AuthorID uint
	ByAuthor bool
}

// QuizRepository is the persistence layer for quizzes. Association loading
// strategy (joins vs. batched preloads) is its internal concern; callers get
// fully assembled entities.
type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// FindByID loads a quiz with its tips and author. Ids that cannot resolve,
// including zero, yield ErrNotFound rather than a raw query error.
func (r *QuizRepository) FindByID(ctx context.Context, id uint) (*models.Quiz, error) {
	if id == 0 {
		return nil, ErrNotFound
	}

	var quiz models.Quiz
	err := r.db.WithContext(ctx).
		Preload("Tips").
		Preload("Author").
		First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("find quiz", err)
	}
	return &quiz, nil
}

// List returns one page of quizzes matching the filter plus the total match
// count before offset/limit. Pages are 1-based; anything below 1 is read as
// page 1.
func (r *QuizRepository) List(ctx context.Context, filter QuizFilter, page int) ([]models.Quiz, int64, error) {
	if page < 1 {
		page = 1
	}

	var count int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&models.Quiz{}), filter).
		Count(&count).Error; err != nil {
		return nil, 0, storeErr("count quizzes", err)
	}

	var quizzes []models.Quiz
	err := r.applyFilter(r.db.WithContext(ctx), filter).
		Preload("Author").
		Order("created_at DESC").
		Offset(QuizPageSize * (page - 1)).
		Limit(QuizPageSize).
		Find(&quizzes).Error
	if err != nil {
		return nil, 0, storeErr("list quizzes", err)
	}
	return quizzes, count, nil
}

func (r *QuizRepository) applyFilter(tx *gorm.DB, filter QuizFilter) *gorm.DB {
	if pattern := searchPattern(filter.Search); pattern != "" {
		tx = tx.Where("LOWER(question) LIKE ?", pattern)
	}
	if filter.ByAuthor {
		tx = tx.Where("author_id = ?", filter.AuthorID)
	}
	return tx
}

// searchPattern turns free text into a LIKE pattern where each whitespace
// run becomes a wildcard gap: "capital cuba" matches "Capital de Cuba".
func searchPattern(search string) string {
	words := strings.Fields(strings.ToLower(search))
	if len(words) == 0 {
		return ""
	}
	return "%" + strings.Join(words, "%") + "%"
}

// Create persists a new quiz. The author comes from the caller's session
// identity and may be zero when anonymous authorship is permitted upstream.
func (r *QuizRepository) Create(ctx context.Context, question, answer string, authorID uint) (*models.Quiz, error) {
	if err := validateQuizFields(question, answer); err != nil {
		return nil, err
	}

	quiz := models.Quiz{
		Question: question,
		Answer:   answer,
		AuthorID: authorID,
	}
	if err := r.db.WithContext(ctx).Create(&quiz).Error; err != nil {
		return nil, storeErr("create quiz", err)
	}
	return &quiz, nil
}

// Update mutates only question and answer; id and author are immutable once
// assigned.
func (r *QuizRepository) Update(ctx context.Context, quiz *models.Quiz, question, answer string) (*models.Quiz, error) {
	if err := validateQuizFields(question, answer); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Model(quiz).
		Updates(map[string]interface{}{"question": question, "answer": answer}).Error
	if err != nil {
		return nil, storeErr("update quiz", err)
	}
	quiz.Question = question
	quiz.Answer = answer
	return quiz, nil
}

// Delete removes a quiz together with its tips. The cascade is explicit and
// runs inside one transaction so a tip can never outlive its quiz.
func (r *QuizRepository) Delete(ctx context.Context, quiz *models.Quiz) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&models.Tip{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Quiz{}, quiz.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		return storeErr("delete quiz", err)
	}
	return err
}

func validateQuizFields(question, answer string) error {
	var fields []FieldError
	if strings.TrimSpace(question) == "" {
		fields = append(fields, FieldError{Field: "question", Value: question})
	}
	if strings.TrimSpace(answer) == "" {
		fields = append(fields, FieldError{Field: "answer", Value: answer})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
