package middleware

import (
	"net/http"
	"strings"

	"quizhub/authz"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "session"

// Auth rejects requests without a valid Bearer token and attaches the
// decoded session to the context.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionFromToken(c, jwtSecret)
		if !authz.LoginRequired(session) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// OptionalAuth attaches the session when a valid token is present but never
// rejects; listings behave differently for logged-in users without
// requiring login.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session := sessionFromToken(c, jwtSecret); session != nil {
			c.Set(sessionKey, session)
		}
		c.Next()
	}
}

// CurrentSession returns the request's authenticated identity, or nil for
// anonymous requests.
func CurrentSession(c *gin.Context) *authz.Session {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	session, ok := value.(*authz.Session)
	if !ok {
		return nil
	}
	return session
}

func sessionFromToken(c *gin.Context, jwtSecret string) *authz.Session {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil
	}
	username, _ := claims["username"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return &authz.Session{
		ID:       uint(userID),
		Username: username,
		IsAdmin:  isAdmin,
	}
}
