package handlers

import (
	"net/http"

	"serviceboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler issues and clears the credential cookie.
type AuthHandler struct {
	Tokens     *utils.JWTManager
	Revoker    utils.TokenRevoker
	CookieName string
	// Production cookies are Secure and SameSite=None so a separately hosted
	// client can send them; otherwise SameSite=Strict.
	Production bool
}

func NewAuthHandler(tokens *utils.JWTManager, revoker utils.TokenRevoker, cookieName string, production bool) *AuthHandler {
	return &AuthHandler{Tokens: tokens, Revoker: revoker, CookieName: cookieName, Production: production}
}

func (h *AuthHandler) sameSite() http.SameSite {
	if h.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// IssueTokenHandler handles POST /jwt.
func (h *AuthHandler) IssueTokenHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email is required", err.Error())
		return
	}

	token, _, err := h.Tokens.GenerateToken(req.Email)
	if err != nil {
		respondError(c, err, "IssueToken: failed to sign token", !h.Production)
		return
	}

	c.SetSameSite(h.sameSite())
	c.SetCookie(h.CookieName, token, int(h.Tokens.TTL().Seconds()), "/", "", h.Production, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LogoutHandler handles GET /logout. A still-valid token is revoked before the cookie is cleared.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := utils.LoggerFrom(c)

	if token, err := c.Cookie(h.CookieName); err == nil && token != "" {
		if claims, err := h.Tokens.ValidateToken(token); err == nil {
			if err := h.Revoker.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				logger.Error("Logout: failed to revoke token", zap.Error(err))
			}
		}
	}

	c.SetSameSite(h.sameSite())
	c.SetCookie(h.CookieName, "", -1, "/", "", h.Production, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
