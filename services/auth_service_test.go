package services

import (
	"context"
	"errors"
	"testing"

	"quizhub/models"
)

func TestRegisterAndLogin(t *testing.T) {
	auth := NewAuthService(newTestDB(t), "test-secret")
	ctx := context.Background()

	user, err := auth.Register(ctx, "ana", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 || user.Username != "ana" {
		t.Errorf("registered user = %+v", user)
	}
	if user.PasswordHash == "secret123" {
		t.Error("password stored unhashed")
	}

	token, logged, err := auth.Login(ctx, "ana", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || logged.ID != user.ID {
		t.Errorf("login returned token %q, user %+v", token, logged)
	}

	if _, _, err := auth.Login(ctx, "ana", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := auth.Login(ctx, "nobody", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown username: %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterBlankFields(t *testing.T) {
	auth := NewAuthService(newTestDB(t), "test-secret")

	_, err := auth.Register(context.Background(), "  ", "")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if len(validation.Fields) != 2 {
		t.Errorf("got %d rejected fields, want 2", len(validation.Fields))
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret")
	ctx := context.Background()

	if _, err := auth.Register(ctx, "ana", "secret123"); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// The duplicate trips the unique index on create; it must surface as
	// the same ValidationError a form-level check would, not a store fault.
	_, err := auth.Register(ctx, "ana", "other456")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("duplicate register = %v, want ValidationError", err)
	}
	if len(validation.Fields) != 1 || validation.Fields[0].Field != "username" {
		t.Errorf("fields = %+v", validation.Fields)
	}

	var count int64
	db.Model(&models.User{}).Where("username = ?", "ana").Count(&count)
	if count != 1 {
		t.Errorf("%d users named ana, want 1", count)
	}
}
