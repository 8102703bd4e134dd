package services

import (
	"fmt"
	"strings"
	"testing"

	"quizhub/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory database per test, named after the test so
	// parallel tests never collide.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Quiz{}, &models.Tip{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) *models.User {
	t.Helper()
	user := models.User{Username: username, PasswordHash: "x", IsAdmin: isAdmin}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return &user
}

func seedQuiz(t *testing.T, db *gorm.DB, question, answer string, authorID uint) *models.Quiz {
	t.Helper()
	quiz := models.Quiz{Question: question, Answer: answer, AuthorID: authorID}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seed quiz %q: %v", question, err)
	}
	return &quiz
}

func seedTip(t *testing.T, db *gorm.DB, quizID, authorID uint, text string) *models.Tip {
	t.Helper()
	tip := models.Tip{QuizID: quizID, AuthorID: authorID, Text: text}
	if err := db.Create(&tip).Error; err != nil {
		t.Fatalf("seed tip %q: %v", text, err)
	}
	return &tip
}
