// internal/interfaces/http/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "jinstore_session"

// getOrCreateSessionID gets the UI session ID from the cookie or creates
// a new one. Session-scoped state (the selection tracker) hangs off it.
func getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(sessionCookie)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()

		// Set session cookie (24 hours)
		c.SetCookie(sessionCookie, sessionID, 86400, "/", "", false, true)
	}

	return sessionID
}
