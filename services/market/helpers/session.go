package helpers

import "github.com/gin-gonic/gin"

// SessionCookie is the cookie carrying the signed session token
const SessionCookie = "token"

// sessionEmailKey is the gin context key the session guard stores the
// verified identity under
const sessionEmailKey = "sessionEmail"

// SetSessionEmail attaches the verified session identity to the request context
func SetSessionEmail(c *gin.Context, email string) {
	c.Set(sessionEmailKey, email)
}

// SessionEmail returns the verified session identity, if the guard ran
func SessionEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(sessionEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
