package authz

import "quizhub/models"

// Session is the authenticated identity attached to a request, or nil when
// the request is anonymous.
type Session struct {
	ID       uint
	Username string
	IsAdmin  bool
}

// LoginRequired allows only authenticated requests.
func LoginRequired(session *Session) bool {
	return session != nil && session.ID != 0
}

// AdminOrAuthor allows admins and the quiz's own author.
func AdminOrAuthor(session *Session, quiz *models.Quiz) bool {
	if session == nil || quiz == nil {
		return false
	}
	return session.IsAdmin || (session.ID != 0 && session.ID == quiz.AuthorID)
}

// AdminOrSelf allows admins and the user the operation targets. Shared with
// the user-management handlers, which gate profile edits the same way quiz
// edits are gated.
func AdminOrSelf(session *Session, targetUserID uint) bool {
	if session == nil {
		return false
	}
	return session.IsAdmin || (session.ID != 0 && session.ID == targetUserID)
}
