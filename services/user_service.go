package services

import (
	"context"
	"errors"
	"strings"

	"quizhub/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService is the user-management collaborator. Quiz code only reads
// users through UsernameByID; the mutating operations back the account
// pages and are gated upstream by the admin-or-self check.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, storeErr("list users", err)
	}
	return users, nil
}

// FindByID loads a user together with the quizzes they authored.
func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, ErrNotFound
	}

	var user models.User
	err := s.db.WithContext(ctx).Preload("Quizzes").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("find user", err)
	}
	return &user, nil
}

// UsernameByID is the store lookup behind UsernameResolver.
func (s *UserService) UsernameByID(ctx context.Context, id uint) (string, error) {
	if id == 0 {
		return "", ErrNotFound
	}

	var user models.User
	err := s.db.WithContext(ctx).Select("id", "username").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", storeErr("find username", err)
	}
	return user.Username, nil
}

// UpdatePassword rehashes and stores a user's password.
func (s *UserService) UpdatePassword(ctx context.Context, id uint, password string) error {
	if strings.TrimSpace(password) == "" {
		return &ValidationError{Fields: []FieldError{{Field: "password", Value: ""}}}
	}

	user, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(user).Update("password_hash", string(hash)).Error; err != nil {
		return storeErr("update password", err)
	}
	return nil
}

// Delete removes a user account. Their quizzes survive with the now-dangling
// author id resolving to no username, the same way anonymous quizzes read.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(user).Error; err != nil {
		return storeErr("delete user", err)
	}
	return nil
}
