package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect-api/internal/session"
)

const sessionHeader = "X-Session-ID"

// defaultSessionID serves clients that never send a session header; they
// all share one state machine, mirroring the single-client prototype.
const defaultSessionID = "default"

func resolveSession(c *gin.Context, manager *session.Manager) *session.Session {
	id := c.GetHeader(sessionHeader)
	if id == "" {
		id = defaultSessionID
	}
	return manager.Get(c.Request.Context(), id)
}
