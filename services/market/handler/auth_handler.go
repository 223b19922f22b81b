package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"solosphere-server/services/market/helpers"
	"solosphere-server/utils"
)

// sessionCookieMaxAge matches the token validity window: the session is
// long-lived by design and acts as a persistent login.
const sessionCookieMaxAge = 365 * 24 * 60 * 60

// TokenIssuer issues a signed session token for an email
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// AuthHandler serves the session routes (/jwt and /logout)
type AuthHandler struct {
	tokens     TokenIssuer
	production bool
}

// NewAuthHandler creates a new AuthHandler instance. In production the
// cookie is Secure and cross-site; in development it stays same-site so a
// local client over plain HTTP can authenticate.
func NewAuthHandler(tokens TokenIssuer, production bool) *AuthHandler {
	return &AuthHandler{tokens: tokens, production: production}
}

// IssueTokenHandler handles POST /jwt
func (h *AuthHandler) IssueTokenHandler(c *gin.Context) {
	var req helpers.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "IssueTokenHandler", err)
		return
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, fmt.Errorf("failed to issue token: %w", err), "internal server error")
		utils.Error("IssueTokenHandler: failed to issue token", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	h.setSessionCookie(c, token, sessionCookieMaxAge)
	c.JSON(http.StatusOK, gin.H{"success": true})
	helpers.LogSuccess("IssueTokenHandler", "session token issued", map[string]any{
		"email": req.Email,
	})
}

// LogoutHandler handles GET /logout. It only clears the cookie; the token
// itself stays cryptographically valid until its natural expiry.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
	helpers.LogSuccess("LogoutHandler", "session cookie cleared", nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(helpers.SessionCookie, value, maxAge, "/", "", h.production, true)
}
