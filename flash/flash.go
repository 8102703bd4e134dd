// Package flash carries one-shot success/error messages across redirects on
// a cookie, consumed by the next rendered response.
package flash

import (
	"encoding/gob"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const sessionName = "quizhub_flash"

func init() {
	gob.Register(Message{})
}

// Message is a single flash entry.
type Message struct {
	Kind string `json:"kind"` // "success" or "error"
	Text string `json:"text"`
}

// Store queues and drains flash messages on a signed cookie session.
type Store struct {
	cookies *sessions.CookieStore
	logger  *zap.Logger
}

func NewStore(secret []byte, logger *zap.Logger) *Store {
	return &Store{
		cookies: sessions.NewCookieStore(secret),
		logger:  logger,
	}
}

// Success queues a success message for the next response.
func (s *Store) Success(c *gin.Context, text string) {
	s.add(c, "success", text)
}

// Error queues an error message for the next response.
func (s *Store) Error(c *gin.Context, text string) {
	s.add(c, "error", text)
}

func (s *Store) add(c *gin.Context, kind, text string) {
	session, _ := s.cookies.Get(c.Request, sessionName)
	session.AddFlash(Message{Kind: kind, Text: text})
	if err := session.Save(c.Request, c.Writer); err != nil && s.logger != nil {
		s.logger.Warn("flash save failed", zap.Error(err))
	}
}

// Take drains every queued message. Messages appear in exactly one
// response.
func (s *Store) Take(c *gin.Context) []Message {
	session, _ := s.cookies.Get(c.Request, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(c.Request, c.Writer); err != nil && s.logger != nil {
			s.logger.Warn("flash save failed", zap.Error(err))
		}
	}

	messages := make([]Message, 0, len(raw))
	for _, entry := range raw {
		if msg, ok := entry.(Message); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
