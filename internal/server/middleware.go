package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"solosphere-server/internal/marketerrors"
	"solosphere-server/services/market/helpers"
	"solosphere-server/utils"
)

// allowedOrigins are the browser clients permitted to send credentialed
// requests
var allowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://solosphere.web.app",
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// CORSMiddleware answers preflights and marks responses for the known
// browser origins. Credentials are allowed because the session rides in a
// cookie.
func CORSMiddleware(c *gin.Context) {
	origin := c.GetHeader("Origin")
	for _, allowed := range allowedOrigins {
		if origin == allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
			break
		}
	}

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.Next()
}

// TokenVerifier validates a session token and returns the email it is
// bound to
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// RequireAuth is the session guard: it reads the token cookie, verifies it
// and attaches the resolved email to the request context. A missing or
// invalid token answers 401. Matching the identity against a resource
// owner is each handler's own responsibility.
func RequireAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(helpers.SessionCookie)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrInvalidToken, "unauthorized access")
			c.Abort()
			return
		}

		email, err := tokens.Verify(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrInvalidToken, "unauthorized access")
			utils.Warn("RequireAuth: token verification failed", map[string]any{
				"path": c.Request.URL.Path,
			})
			c.Abort()
			return
		}

		helpers.SetSessionEmail(c, email)
		c.Next()
	}
}
