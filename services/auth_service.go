package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"quizhub/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

// ErrInvalidCredentials covers both unknown usernames and wrong passwords,
// indistinguishably.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService registers accounts and issues the JWTs the middleware turns
// into per-request sessions.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	var fields []FieldError
	if strings.TrimSpace(username) == "" {
		fields = append(fields, FieldError{Field: "username", Value: username})
	}
	if strings.TrimSpace(password) == "" {
		fields = append(fields, FieldError{Field: "password", Value: ""})
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Uniqueness rides on the username index rather than a prior count, so
	// two concurrent registers cannot both slip past a check; the loser's
	// constraint violation maps to the same ValidationError a sequential
	// duplicate gets.
	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, &ValidationError{Fields: []FieldError{{Field: "username", Value: username}}}
		}
		return nil, storeErr("create user", err)
	}
	return &user, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, storeErr("find user for login", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, &user, nil
}
