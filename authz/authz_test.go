package authz

import (
	"testing"

	"quizhub/models"
)

func TestLoginRequired(t *testing.T) {
	if LoginRequired(nil) {
		t.Error("anonymous request allowed")
	}
	if LoginRequired(&Session{}) {
		t.Error("zero-id session allowed")
	}
	if !LoginRequired(&Session{ID: 7, Username: "pepe"}) {
		t.Error("authenticated session denied")
	}
}

func TestAdminOrAuthor(t *testing.T) {
	quiz := &models.Quiz{ID: 1, Question: "Capital de Cuba", Answer: "La Habana", AuthorID: 5}

	tests := []struct {
		name    string
		session *Session
		want    bool
	}{
		{"anonymous", nil, false},
		{"unrelated user", &Session{ID: 9}, false},
		{"author", &Session{ID: 5}, true},
		{"admin", &Session{ID: 9, IsAdmin: true}, true},
		{"admin who is also author", &Session{ID: 5, IsAdmin: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdminOrAuthor(tt.session, quiz); got != tt.want {
				t.Errorf("AdminOrAuthor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdminOrAuthorAnonymousQuiz(t *testing.T) {
	// AuthorID 0 means no author; a zero-id session must not match it.
	quiz := &models.Quiz{ID: 1, AuthorID: 0}
	if AdminOrAuthor(&Session{ID: 0}, quiz) {
		t.Error("zero-id session allowed on authorless quiz")
	}
}

func TestAdminOrSelf(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		target  uint
		want    bool
	}{
		{"anonymous", nil, 5, false},
		{"other user", &Session{ID: 9}, 5, false},
		{"self", &Session{ID: 5}, 5, true},
		{"admin", &Session{ID: 9, IsAdmin: true}, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdminOrSelf(tt.session, tt.target); got != tt.want {
				t.Errorf("AdminOrSelf = %v, want %v", got, tt.want)
			}
		})
	}
}
