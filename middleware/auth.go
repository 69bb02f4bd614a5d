// middleware/auth.go
package middleware

import (
	"net/http"

	"serviceboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClaimsKey is the gin context key holding the verified *utils.Claims.
const ClaimsKey = "claims"

const unauthorizedMessage = "Unauthorized access"

// TokenValidator verifies a credential and returns its claims.
type TokenValidator interface {
	ValidateToken(token string) (*utils.Claims, error)
}

// JWTCookieAuthMiddleware verifies the credential cookie before the route runs.
// The chain continues only after the token has been parsed, checked for
// expiry and checked against the revocation list.
func JWTCookieAuthMiddleware(cookieName string, tokens TokenValidator, revoker utils.TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.LoggerFrom(c)

		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: unauthorizedMessage})
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			logger.Debug("Rejected credential", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: unauthorizedMessage})
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Error("Failed to check token revocation", zap.Error(err))
		}
		if err != nil || revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: unauthorizedMessage})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireEmailParam rejects the request unless the authenticated email equals
// the named path parameter. It must run after JWTCookieAuthMiddleware.
func RequireEmailParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok || claims.Email != c.Param(param) {
			utils.LoggerFrom(c).Warn("Scoped access denied", zap.String("param", param))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: unauthorizedMessage})
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by JWTCookieAuthMiddleware.
func ClaimsFrom(c *gin.Context) (*utils.Claims, bool) {
	val, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*utils.Claims)
	return claims, ok && claims != nil
}
