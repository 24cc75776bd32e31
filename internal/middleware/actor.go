package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// actorIDKey is the key used to store the acting user's ID in the Gin context.
const actorIDKey = contextKey("actorID")

// ActorIDHeader is set by the gateway after authentication; the engine trusts
// it and never performs authorization itself.
const ActorIDHeader = "X-Actor-ID"

// ActorMiddleware extracts the acting user's ID from the request header and
// stores it in the Gin context. Requests without an actor are rejected:
// every mutation is attributed to someone.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(ActorIDHeader)
		if actorID == "" {
			GetLoggerFromCtx(c.Request.Context()).Warn("Request missing actor header", slog.String("header", ActorIDHeader))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + ActorIDHeader + " header"})
			return
		}

		c.Set(string(actorIDKey), actorID)
		c.Next()
	}
}

// GetActorIDFromContext retrieves the acting user ID from the Gin context.
// It returns the actor ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	actorIDVal, exists := c.Get(string(actorIDKey))
	if !exists {
		return "", false
	}

	actorID, ok := actorIDVal.(string)
	if !ok {
		return "", false
	}

	return actorID, true
}
